package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/domain"
	"generate-reel-service/infrastructure/adapters"
)

type scriptedAssembler struct {
	steps []float64
	video *domain.RenderedVideo
	err   error
}

func (s *scriptedAssembler) Assemble(_ context.Context, params inbound.AssembleParams) (*domain.RenderedVideo, error) {
	for _, pct := range s.steps {
		if params.OnProgress != nil {
			params.OnProgress(pct)
		}
	}
	return s.video, s.err
}

func collectEvents(t *testing.T, events <-chan inbound.JobEvent) []inbound.JobEvent {
	t.Helper()
	var collected []inbound.JobEvent
	timeout := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return collected
			}
			collected = append(collected, event)
		case <-timeout:
			t.Fatal("timed out waiting for job events")
		}
	}
}

func TestRenderJobManager_SuccessfulJob(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	video := &domain.RenderedVideo{Data: []byte("mp4"), FileName: "out.mp4"}
	manager := NewRenderJobManager(adapters.NewZerologWrapper(),
		&scriptedAssembler{steps: []float64{0, 25, 50, 100}, video: video}, workerPool)

	jobID, err := manager.Start(context.Background(), inbound.AssembleParams{
		Scenes: testScenes(4),
	})
	if err != nil {
		t.Fatal("Start failed:", err)
	}

	events, ok := manager.Events(jobID)
	if !ok {
		t.Fatal("job id is unknown right after start")
	}

	collected := collectEvents(t, events)
	if len(collected) == 0 {
		t.Fatal("no events received")
	}

	// The fan-in does not order events across channels, so the terminal
	// event is located by state rather than by position.
	var terminal *inbound.JobEvent
	last := -1.0
	for i, event := range collected {
		if event.State != inbound.JobRunning {
			terminal = &collected[i]
			continue
		}
		if event.Progress < last {
			t.Fatal("running progress went backwards:", collected)
		}
		last = event.Progress
	}

	if terminal == nil {
		t.Fatal("no terminal event received:", collected)
	}
	if terminal.State != inbound.JobDone {
		t.Fatal("terminal event:", terminal.State, terminal.Error)
	}
	if terminal.Progress != 100 {
		t.Error("terminal progress:", terminal.Progress)
	}
	if terminal.Video == nil || string(terminal.Video.Data) != "mp4" {
		t.Error("terminal event is missing the artifact")
	}

	result, ok := manager.Result(jobID)
	if !ok || result == nil {
		t.Fatal("finished job has no result")
	}
	if result.FileName != "out.mp4" {
		t.Error("result file name:", result.FileName)
	}
}

func TestRenderJobManager_FailedJob(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	manager := NewRenderJobManager(adapters.NewZerologWrapper(),
		&scriptedAssembler{err: errors.New("encode blew up")}, workerPool)

	jobID, err := manager.Start(context.Background(), inbound.AssembleParams{
		Scenes: testScenes(4),
	})
	if err != nil {
		t.Fatal("Start failed:", err)
	}

	events, ok := manager.Events(jobID)
	if !ok {
		t.Fatal("job id is unknown right after start")
	}

	collected := collectEvents(t, events)
	var terminal *inbound.JobEvent
	for i, event := range collected {
		if event.State != inbound.JobRunning {
			terminal = &collected[i]
		}
	}
	if terminal == nil {
		t.Fatal("no terminal event received:", collected)
	}
	if terminal.State != inbound.JobFailed {
		t.Fatal("terminal event:", terminal.State)
	}
	if terminal.Error == "" {
		t.Error("failed event carries no error message")
	}

	if _, ok := manager.Result(jobID); ok {
		t.Error("failed job should have no result")
	}
}

func waitForIdlePool(t *testing.T, workerPool *ants.Pool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for workerPool.Running() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("pool workers still occupied:", workerPool.Running())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// A job nobody subscribes to must not pin pool workers past the retention
// window.
func TestRenderJobManager_ReleasesWorkersWhenUnobserved(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	manager := NewRenderJobManager(adapters.NewZerologWrapper(),
		&scriptedAssembler{steps: []float64{0, 50, 100}, video: &domain.RenderedVideo{Data: []byte("mp4")}}, workerPool)
	manager.(*renderJobManager).retention = 50 * time.Millisecond

	if _, err := manager.Start(context.Background(), inbound.AssembleParams{
		Scenes: testScenes(4),
	}); err != nil {
		t.Fatal("Start failed:", err)
	}

	waitForIdlePool(t, workerPool)
}

// A subscriber that stops reading at the terminal event, the way the SSE
// endpoint does, must also leave the pool idle.
func TestRenderJobManager_ReleasesWorkersAfterTerminalEvent(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	manager := NewRenderJobManager(adapters.NewZerologWrapper(),
		&scriptedAssembler{steps: []float64{0, 50, 100}, video: &domain.RenderedVideo{Data: []byte("mp4")}}, workerPool)
	manager.(*renderJobManager).retention = 50 * time.Millisecond

	jobID, err := manager.Start(context.Background(), inbound.AssembleParams{
		Scenes: testScenes(4),
	})
	if err != nil {
		t.Fatal("Start failed:", err)
	}

	events, ok := manager.Events(jobID)
	if !ok {
		t.Fatal("job id is unknown right after start")
	}

	timeout := time.After(5 * time.Second)
	for terminal := false; !terminal; {
		select {
		case event, open := <-events:
			if !open {
				t.Fatal("event stream closed before the terminal event")
			}
			terminal = event.State != inbound.JobRunning
		case <-timeout:
			t.Fatal("timed out waiting for the terminal event")
		}
	}

	waitForIdlePool(t, workerPool)
}

func TestRenderJobManager_EvictsFinishedJobs(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	manager := NewRenderJobManager(adapters.NewZerologWrapper(),
		&scriptedAssembler{video: &domain.RenderedVideo{Data: []byte("mp4"), FileName: "out.mp4"}}, workerPool)
	manager.(*renderJobManager).retention = 50 * time.Millisecond

	jobID, err := manager.Start(context.Background(), inbound.AssembleParams{
		Scenes: testScenes(4),
	})
	if err != nil {
		t.Fatal("Start failed:", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, ok := manager.Events(jobID); !ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("finished job was never evicted")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, ok := manager.Result(jobID); ok {
		t.Error("evicted job still serves a result")
	}
}

func TestRenderJobManager_UnknownJob(t *testing.T) {
	workerPool, err := ants.NewPool(2)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	manager := NewRenderJobManager(adapters.NewZerologWrapper(), &scriptedAssembler{}, workerPool)

	if _, ok := manager.Events("nope"); ok {
		t.Error("unknown job id returned an event stream")
	}
	if _, ok := manager.Result("nope"); ok {
		t.Error("unknown job id returned a result")
	}
}

func TestRenderJobManager_RejectsEmptyScenes(t *testing.T) {
	workerPool, err := ants.NewPool(2)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	manager := NewRenderJobManager(adapters.NewZerologWrapper(), &scriptedAssembler{}, workerPool)

	var validationErr *domain.ValidationError
	_, err = manager.Start(context.Background(), inbound.AssembleParams{})
	if !errors.As(err, &validationErr) {
		t.Fatal("expected a validation error, got", err)
	}
}
