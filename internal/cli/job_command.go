package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"yt-study-copilot/internal/api"
	"yt-study-copilot/internal/model"
)

func runJob(args []string) error {
	fs := flag.NewFlagSet("job", flag.ContinueOnError)
	jobID := fs.Int("id", 0, "job id")
	watch := fs.Bool("watch", false, "poll until the job reaches a terminal status")
	timeout := fs.Duration("timeout", 5*time.Minute, "watch timeout")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID <= 0 {
		return fmt.Errorf("--id is required and must be a positive job id")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()
	ctx := context.Background()

	var job model.Job
	if *watch {
		job, err = e.client.PollJobUntilDone(ctx, *jobID, api.PollOptions{
			Interval: e.cfg.PollInterval,
			Timeout:  *timeout,
		})
	} else {
		job, err = e.client.GetJob(ctx, *jobID)
	}
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(job)
	}
	fmt.Printf("job_id: %d\n", job.JobID)
	fmt.Printf("type: %s\n", orDash(job.JobType))
	fmt.Printf("status: %s\n", job.Status)
	if job.Error != "" {
		fmt.Printf("error: %s\n", job.Error)
	}
	return nil
}
