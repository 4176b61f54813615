package adapters

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"generate-reel-service/application/ports/outbound"
)

type imageFetcher struct {
	ContentFetcher
	logger outbound.LoggerPort
}

func NewImageFetcher(contentFetcher ContentFetcher, logger outbound.LoggerPort) outbound.ImageFetcherPort {
	return &imageFetcher{
		ContentFetcher: contentFetcher,
		logger:         logger,
	}
}

func (f *imageFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating image request: %w", err)
	}

	payload, err := f.FetchContent(req)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		f.logger.ErrorWithFields(err, "Failed to decode background image", map[string]interface{}{
			"URL": url,
		})
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	f.logger.DebugWithFields("background image fetched", map[string]interface{}{
		"URL":    url,
		"format": format,
	})
	return img, nil
}
