package outbound

import (
	"context"
	"image"
)

type ImageFetcherPort interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}
