package controllers

import (
	"io"

	"github.com/gin-gonic/gin"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/domain"
	"generate-reel-service/infrastructure/gin_interface/dto"
)

type StoryboardController interface {
	CreateStoryboard(c *gin.Context)
	ExportStoryboard(c *gin.Context)
	ImportStoryboard(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyboardController struct {
	logger    outbound.LoggerPort
	generator inbound.StoryboardGeneratorPort
}

func NewStoryboardController(
	logger outbound.LoggerPort,
	generator inbound.StoryboardGeneratorPort,
) StoryboardController {
	return &storyboardController{
		logger:    logger,
		generator: generator,
	}
}

func (s *storyboardController) CreateStoryboard(c *gin.Context) {
	var req dto.CreateStoryboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, s.logger, 400, err)
		return
	}

	scenes := s.generator.Generate(domain.StoryBrief{
		Idea:         req.Idea,
		Audience:     req.Audience,
		Tone:         domain.Tone(req.Tone),
		CallToAction: req.CallToAction,
		Length:       domain.Length(req.Length),
	})

	c.JSON(200, dto.StoryboardResponse{Scenes: dto.ScenesFromDomain(scenes)})
}

func (s *storyboardController) ExportStoryboard(c *gin.Context) {
	var req dto.ExportStoryboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, s.logger, 400, err)
		return
	}

	scenes, err := dto.ScenesToDomain(req.Scenes)
	if err != nil {
		abortWithError(c, s.logger, 400, err)
		return
	}

	doc, err := dto.MarshalStoryboard(scenes)
	if err != nil {
		abortWithError(c, s.logger, 500, err)
		return
	}

	c.Data(200, "application/x-yaml", doc)
}

func (s *storyboardController) ImportStoryboard(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, s.logger, 400, err)
		return
	}

	scenes, err := dto.UnmarshalStoryboard(raw)
	if err != nil {
		abortWithError(c, s.logger, 400, err)
		return
	}

	c.JSON(200, dto.StoryboardResponse{Scenes: dto.ScenesFromDomain(scenes)})
}

func (s *storyboardController) RegisterRoutes(g *gin.Engine) {
	g.POST("/storyboard", s.CreateStoryboard)
	g.POST("/storyboard/export", s.ExportStoryboard)
	g.POST("/storyboard/import", s.ImportStoryboard)
}
