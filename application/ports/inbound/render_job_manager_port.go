package inbound

import (
	"context"

	"generate-reel-service/domain"
)

type JobState string

const (
	JobRunning JobState = "running"
	JobDone    JobState = "done"
	JobFailed  JobState = "failed"
)

type JobEvent struct {
	State    JobState
	Progress float64
	Error    string
	Video    *domain.RenderedVideo
}

type RenderJobManagerPort interface {
	// Start schedules an asynchronous render and returns its job id.
	Start(ctx context.Context, params AssembleParams) (string, error)
	// Events returns the job's progress stream. The channel closes after a
	// terminal done or failed event. ok is false for unknown job ids.
	Events(jobID string) (events <-chan JobEvent, ok bool)
	// Result returns the finished artifact for a done job.
	Result(jobID string) (*domain.RenderedVideo, bool)
}
