package outbound

import "context"

type StoreVideoRequest struct {
	Data        []byte
	FileName    string
	ContentType string
}

type StoreVideoResponse struct {
	URL      string
	Pathname string
}

type VideoStorePort interface {
	Store(ctx context.Context, req StoreVideoRequest) (*StoreVideoResponse, error)
}
