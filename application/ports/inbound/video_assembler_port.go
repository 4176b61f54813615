package inbound

import (
	"context"

	"generate-reel-service/domain"
)

type AssembleParams struct {
	Scenes []domain.Scene
	Audio  *domain.AudioTrack
	// OutputName overrides the generated ai-video-<timestamp>.mp4 name.
	OutputName string
	// OnProgress receives percentages in [0,100], monotonically
	// non-decreasing within one call. May be nil.
	OnProgress func(pct float64)
}

type VideoAssemblerPort interface {
	Assemble(ctx context.Context, params AssembleParams) (*domain.RenderedVideo, error)
}
