package api

import (
	"context"
	"fmt"
	"time"

	"yt-study-copilot/internal/model"
)

const (
	DefaultPollInterval = 1200 * time.Millisecond
	DefaultPollTimeout  = 120 * time.Second
)

type PollOptions struct {
	Interval time.Duration
	Timeout  time.Duration
}

// TimeoutError reports that a job did not reach a terminal status before
// the deadline. LastStatus is the last status observed.
type TimeoutError struct {
	JobID      int
	LastStatus string
	Timeout    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for job %d to finish (last status: %s)", e.Timeout, e.JobID, e.LastStatus)
}

// PollJobUntilDone fetches the job at a fixed interval until its status is
// done or failed. A failed job is a normal return, not an error; callers
// check Job.Status. Transport and HTTP errors propagate unchanged with no
// retry. Cancelling ctx stops the loop between polls.
func (c *Client) PollJobUntilDone(ctx context.Context, jobID int, opts PollOptions) (model.Job, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		job, err := c.GetJob(ctx, jobID)
		if err != nil {
			return model.Job{}, err
		}
		if model.IsTerminalJobStatus(job.Status) {
			return job, nil
		}
		if time.Now().After(deadline) {
			return model.Job{}, &TimeoutError{JobID: jobID, LastStatus: job.Status, Timeout: timeout}
		}

		select {
		case <-ctx.Done():
			return model.Job{}, ctx.Err()
		case <-ticker.C:
		}
	}
}
