package inbound

import (
	"context"

	"generate-reel-service/domain"
)

type StartPipelineParams struct {
	Scenes               []domain.Scene
	Audio                *domain.AudioTrack
	Caption              string
	ScheduledPublishTime string
	OutputName           string
	OnProgress           func(pct float64)
}

type ReelCreatorResponse struct {
	ID                   string
	CreationID           string
	VideoURL             string
	Status               string
	ScheduledPublishTime string
}

type ReelCreatorPipelinePort interface {
	StartPipeline(ctx context.Context, params StartPipelineParams) (*ReelCreatorResponse, error)
}
