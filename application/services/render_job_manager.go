package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/channel_utils"
	"generate-reel-service/domain"
)

// defaultJobRetention is how long a finished job (and its artifact) stays
// retrievable before the entry is evicted and its event forwarders are
// released.
const defaultJobRetention = 10 * time.Minute

type renderJob struct {
	events <-chan inbound.JobEvent
	// done cancels the event forwarders on eviction so an unobserved job
	// cannot pin pool workers.
	done chan struct{}

	mu    sync.Mutex
	state inbound.JobState
	video *domain.RenderedVideo
}

func (j *renderJob) finish(state inbound.JobState, video *domain.RenderedVideo) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state = state
	j.video = video
}

type renderJobManager struct {
	logger     outbound.LoggerPort
	assembler  inbound.VideoAssemblerPort
	workerPool outbound.TaskDispatcher
	retention  time.Duration

	mu   sync.RWMutex
	jobs map[string]*renderJob
}

func NewRenderJobManager(logger outbound.LoggerPort, assembler inbound.VideoAssemblerPort, workerPool outbound.TaskDispatcher) inbound.RenderJobManagerPort {
	return &renderJobManager{
		logger:     logger,
		assembler:  assembler,
		workerPool: workerPool,
		retention:  defaultJobRetention,
		jobs:       make(map[string]*renderJob),
	}
}

func (m *renderJobManager) Start(ctx context.Context, params inbound.AssembleParams) (string, error) {
	if len(params.Scenes) == 0 {
		return "", domain.NewValidationError("scene list is empty")
	}

	progressCh := make(chan inbound.JobEvent, 16)
	terminalCh := make(chan inbound.JobEvent, 1)

	job := &renderJob{done: make(chan struct{}), state: inbound.JobRunning}

	events, err := channel_utils.MergeChannels[inbound.JobEvent](m.workerPool, job.done, progressCh, terminalCh)
	if err != nil {
		m.logger.Error(err, "error merging job event channels")
		return "", err
	}
	job.events = events

	jobID := uuid.NewString()

	m.mu.Lock()
	m.jobs[jobID] = job
	m.mu.Unlock()

	callerProgress := params.OnProgress
	params.OnProgress = func(pct float64) {
		if callerProgress != nil {
			callerProgress(pct)
		}
		// A slow subscriber must not stall the render; intermediate
		// percentages are droppable, the terminal event is not.
		select {
		case progressCh <- inbound.JobEvent{State: inbound.JobRunning, Progress: pct}:
		default:
		}
	}

	// The render outlives the request that scheduled it.
	renderCtx := context.WithoutCancel(ctx)

	err = m.workerPool.Submit(func() {
		defer close(progressCh)
		defer close(terminalCh)
		defer time.AfterFunc(m.retention, func() { m.evict(jobID) })

		video, err := m.assembler.Assemble(renderCtx, params)
		if err != nil {
			m.logger.ErrorWithFields(err, "render job failed", map[string]interface{}{
				"job": jobID,
			})
			job.finish(inbound.JobFailed, nil)
			terminalCh <- inbound.JobEvent{State: inbound.JobFailed, Error: err.Error()}
			return
		}

		job.finish(inbound.JobDone, video)
		terminalCh <- inbound.JobEvent{State: inbound.JobDone, Progress: 100, Video: video}
	})
	if err != nil {
		m.mu.Lock()
		delete(m.jobs, jobID)
		m.mu.Unlock()
		close(job.done)
		close(progressCh)
		close(terminalCh)
		return "", err
	}

	return jobID, nil
}

// evict drops a finished job and releases its event forwarders. The
// artifact is unreachable afterwards.
func (m *renderJobManager) evict(jobID string) {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if ok {
		delete(m.jobs, jobID)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	close(job.done)
	m.logger.DebugWithFields("render job evicted", map[string]interface{}{
		"job": jobID,
	})
}

func (m *renderJobManager) Events(jobID string) (<-chan inbound.JobEvent, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, false
	}
	return job.events, true
}

func (m *renderJobManager) Result(jobID string) (*domain.RenderedVideo, bool) {
	m.mu.RLock()
	job, ok := m.jobs[jobID]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	job.mu.Lock()
	defer job.mu.Unlock()
	if job.state != inbound.JobDone || job.video == nil {
		return nil, false
	}
	return job.video, true
}
