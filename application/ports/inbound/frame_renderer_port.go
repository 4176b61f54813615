package inbound

import (
	"context"

	"generate-reel-service/domain"
)

type FrameRendererPort interface {
	// Render rasterizes one scene into a PNG at the renderer's configured
	// resolution. It blocks only when the scene background is an image.
	Render(ctx context.Context, scene domain.Scene) ([]byte, error)
	FrameSize() (width, height int)
}
