package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	StorageBackendBlob = "blob"
	StorageBackendS3   = "s3"
)

type RenderConfig struct {
	FrameWidth     int
	FrameHeight    int
	ScratchDir     string
	StorageBackend string
}

func GetRenderConfig() (*RenderConfig, error) {
	cfg := &RenderConfig{
		FrameWidth:     1080,
		FrameHeight:    1920,
		ScratchDir:     os.Getenv("SCRATCH_DIR"),
		StorageBackend: StorageBackendBlob,
	}

	if v := os.Getenv("FRAME_WIDTH"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("FRAME_WIDTH must be a positive integer")
		}
		cfg.FrameWidth = width
	}

	if v := os.Getenv("FRAME_HEIGHT"); v != "" {
		height, err := strconv.Atoi(v)
		if err != nil || height <= 0 {
			return nil, fmt.Errorf("FRAME_HEIGHT must be a positive integer")
		}
		cfg.FrameHeight = height
	}

	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		if v != StorageBackendBlob && v != StorageBackendS3 {
			return nil, fmt.Errorf("STORAGE_BACKEND must be %q or %q", StorageBackendBlob, StorageBackendS3)
		}
		cfg.StorageBackend = v
	}

	return cfg, nil
}
