package config

import (
	"fmt"
	"os"
)

type BlobStoreConfig struct {
	UploadURL string
	Token     string
}

func GetBlobStoreConfig() (*BlobStoreConfig, error) {
	uploadURL := os.Getenv("BLOB_STORE_URL")
	if uploadURL == "" {
		return nil, fmt.Errorf("BLOB_STORE_URL must be set")
	}

	token := os.Getenv("BLOB_READ_WRITE_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BLOB_READ_WRITE_TOKEN must be set")
	}

	return &BlobStoreConfig{
		UploadURL: uploadURL,
		Token:     token,
	}, nil
}
