package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/domain"
	"generate-reel-service/infrastructure/gin_interface/dto"
	"generate-reel-service/middleware"
)

type ReelsController interface {
	RenderPreview(c *gin.Context)
	CreateReel(c *gin.Context)
	StartRenderJob(c *gin.Context)
	StreamJobEvents(c *gin.Context)
	JobResult(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type reelsController struct {
	logger    outbound.LoggerPort
	assembler inbound.VideoAssemblerPort
	pipeline  inbound.ReelCreatorPipelinePort
	jobs      inbound.RenderJobManagerPort
}

func NewReelsController(
	logger outbound.LoggerPort,
	assembler inbound.VideoAssemblerPort,
	pipeline inbound.ReelCreatorPipelinePort,
	jobs inbound.RenderJobManagerPort,
) ReelsController {
	return &reelsController{
		logger:    logger,
		assembler: assembler,
		pipeline:  pipeline,
		jobs:      jobs,
	}
}

// RenderPreview renders the storyboard and streams the MP4 straight back,
// skipping upload and publication.
func (r *reelsController) RenderPreview(c *gin.Context) {
	scenesField := c.PostForm("scenes")
	if scenesField == "" {
		abortWithError(c, r.logger, 400, errors.New("missing scenes form field"))
		return
	}

	var sceneDTOs []dto.SceneDTO
	if err := json.Unmarshal([]byte(scenesField), &sceneDTOs); err != nil {
		abortWithError(c, r.logger, 400, err)
		return
	}

	scenes, err := dto.ScenesToDomain(sceneDTOs)
	if err != nil {
		abortWithError(c, r.logger, 400, err)
		return
	}

	audio, err := readAudioPart(c)
	if err != nil {
		abortWithError(c, r.logger, 400, err)
		return
	}

	video, err := r.assembler.Assemble(c.Request.Context(), inbound.AssembleParams{
		Scenes:     scenes,
		Audio:      audio,
		OutputName: c.PostForm("output_name"),
	})
	if err != nil {
		r.logger.Error(err, "Preview render failed")
		status, body := statusForError(err)
		c.AbortWithStatusJSON(status, body)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+video.FileName+`"`)
	c.Data(200, video.ContentType, video.Data)
}

func (r *reelsController) CreateReel(c *gin.Context) {
	var req dto.CreateReelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, r.logger, 400, err)
		return
	}

	scenes, err := dto.ScenesToDomain(req.Scenes)
	if err != nil {
		abortWithError(c, r.logger, 400, err)
		return
	}

	res, err := r.pipeline.StartPipeline(c.Request.Context(), inbound.StartPipelineParams{
		Scenes:               scenes,
		Caption:              req.Caption,
		ScheduledPublishTime: req.ScheduledPublishTime,
		OutputName:           req.OutputName,
	})
	if err != nil {
		r.logger.Error(err, "Reel creation failed")
		status, body := statusForError(err)
		c.AbortWithStatusJSON(status, body)
		return
	}

	c.JSON(200, dto.CreateReelResponse{
		ID:                   res.ID,
		CreationID:           res.CreationID,
		VideoURL:             res.VideoURL,
		Status:               res.Status,
		ScheduledPublishTime: res.ScheduledPublishTime,
	})
}

func (r *reelsController) StartRenderJob(c *gin.Context) {
	var req dto.StartRenderJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, r.logger, 400, err)
		return
	}

	scenes, err := dto.ScenesToDomain(req.Scenes)
	if err != nil {
		abortWithError(c, r.logger, 400, err)
		return
	}

	jobID, err := r.jobs.Start(c.Request.Context(), inbound.AssembleParams{
		Scenes:     scenes,
		OutputName: req.OutputName,
	})
	if err != nil {
		r.logger.Error(err, "Failed to start render job")
		status, body := statusForError(err)
		c.AbortWithStatusJSON(status, body)
		return
	}

	c.JSON(202, dto.StartRenderJobResponse{JobID: jobID})
}

func (r *reelsController) StreamJobEvents(c *gin.Context) {
	jobID := c.Param("id")
	events, ok := r.jobs.Events(jobID)
	if !ok {
		c.AbortWithStatusJSON(404, gin.H{"error": "unknown job id"})
		return
	}

	clientGone := c.Request.Context().Done()

	// After the terminal event the stream keeps receiving until the channel
	// closes so the fan-in workers are never left blocked on a send.
	terminalSeen := false
	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-events:
			if !open {
				return false
			}
			if terminalSeen {
				return true
			}
			switch event.State {
			case inbound.JobFailed:
				c.SSEvent("error", gin.H{"error": event.Error})
				terminalSeen = true
			case inbound.JobDone:
				c.SSEvent("done", gin.H{"progress": event.Progress})
				terminalSeen = true
			default:
				c.SSEvent("progress", gin.H{"progress": event.Progress})
			}
			return true
		case <-clientGone:
			return false
		}
	})
}

// JobResult serves the finished artifact of an async render job.
func (r *reelsController) JobResult(c *gin.Context) {
	video, ok := r.jobs.Result(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(404, gin.H{"error": "no finished render for this job id"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+video.FileName+`"`)
	c.Data(200, video.ContentType, video.Data)
}

func (r *reelsController) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func (r *reelsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/render", r.RenderPreview)
	g.POST("/reels", r.CreateReel)
	g.POST("/render/jobs", r.StartRenderJob)
	g.GET("/render/jobs/:id/events", middleware.SSEMiddleware(), r.StreamJobEvents)
	g.GET("/render/jobs/:id/result", r.JobResult)
	g.GET("/health", r.Health)
}

func readAudioPart(c *gin.Context) (*domain.AudioTrack, error) {
	file, header, err := c.Request.FormFile("audio")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func(file multipart.File) {
		_ = file.Close()
	}(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &domain.AudioTrack{Data: data, FileName: header.Filename}, nil
}
