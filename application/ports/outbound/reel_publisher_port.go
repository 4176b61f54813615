package outbound

import "context"

type PublishReelRequest struct {
	Caption              string
	VideoURL             string
	ScheduledPublishTime string
}

type PublishReelResponse struct {
	ID                   string
	CreationID           string
	ScheduledPublishTime string
	Status               string
}

type ReelPublisherPort interface {
	// Validate rejects a request that the platform would refuse, before
	// any rendering or network work is spent on it. VideoURL may still be
	// empty at validation time.
	Validate(req PublishReelRequest) error
	Publish(ctx context.Context, req PublishReelRequest) (*PublishReelResponse, error)
}
