package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"yt-study-copilot/internal/api"
	"yt-study-copilot/internal/model"
)

// createPollTimeout caps the submit flow's wait: ingestion of a single
// video usually lands well inside three minutes.
const createPollTimeout = 180 * time.Second

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	sourceURL := fs.String("url", "", "YouTube video or playlist URL")
	language := fs.String("language", "en", "preferred transcript language")
	noWait := fs.Bool("no-wait", false, "submit only; do not poll the ingestion job")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	src := strings.TrimSpace(*sourceURL)
	if src == "" {
		var err error
		src, err = promptRequired("YouTube URL")
		if err != nil {
			return err
		}
	}
	if !model.IsLikelyYouTubeURL(src) {
		return fmt.Errorf("please enter a valid YouTube URL (youtube.com or youtu.be)")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()
	ctx := context.Background()

	created, err := e.client.CreateStudyPackFromYouTube(ctx, src, *language)
	if err != nil {
		return err
	}

	if !*jsonOut {
		fmt.Printf("study_pack_id: %d\n", created.StudyPackID)
		fmt.Printf("job_id: %d\n", created.JobID)
		if created.PlaylistID != "" {
			fmt.Printf("playlist: %s (%d entries)\n", orDash(created.PlaylistTitle), created.PlaylistCount)
		} else if created.VideoID != "" {
			fmt.Printf("video_id: %s\n", created.VideoID)
		}
	}

	if *noWait {
		if *jsonOut {
			return printJSON(created)
		}
		fmt.Printf("ingestion queued; watch it with: yt-study-copilot job --id %d --watch\n", created.JobID)
		return nil
	}

	if !*jsonOut {
		fmt.Println("ingesting...")
	}
	job, err := e.client.PollJobUntilDone(ctx, created.JobID, api.PollOptions{
		Interval: e.cfg.PollInterval,
		Timeout:  createPollTimeout,
	})
	if err != nil {
		return err
	}
	if job.Status == model.JobFailed {
		msg := job.Error
		if msg == "" {
			msg = "job failed"
		}
		return fmt.Errorf("ingestion failed: %s", msg)
	}

	if *jsonOut {
		return printJSON(struct {
			Created model.StudyPackCreated `json:"created"`
			Job     model.Job              `json:"job"`
		}{created, job})
	}
	fmt.Println("ingestion done")
	fmt.Printf("next: yt-study-copilot generate --pack %d\n", created.StudyPackID)
	return nil
}
