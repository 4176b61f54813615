package services

import (
	"context"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/application/ports/outbound"
)

type reelCreatorPipeline struct {
	logger    outbound.LoggerPort
	assembler inbound.VideoAssemblerPort
	store     outbound.VideoStorePort
	publisher outbound.ReelPublisherPort
}

func NewReelCreatorPipeline(
	logger outbound.LoggerPort,
	assembler inbound.VideoAssemblerPort,
	store outbound.VideoStorePort,
	publisher outbound.ReelPublisherPort) inbound.ReelCreatorPipelinePort {
	return &reelCreatorPipeline{
		logger:    logger,
		assembler: assembler,
		store:     store,
		publisher: publisher,
	}
}

func (s *reelCreatorPipeline) StartPipeline(ctx context.Context, params inbound.StartPipelineParams) (*inbound.ReelCreatorResponse, error) {
	// Publication inputs are checked up front so a bad caption or schedule
	// never costs a render.
	if err := s.publisher.Validate(outbound.PublishReelRequest{
		Caption:              params.Caption,
		ScheduledPublishTime: params.ScheduledPublishTime,
	}); err != nil {
		return nil, err
	}

	video, err := s.assembler.Assemble(ctx, inbound.AssembleParams{
		Scenes:     params.Scenes,
		Audio:      params.Audio,
		OutputName: params.OutputName,
		OnProgress: params.OnProgress,
	})
	if err != nil {
		s.logger.Error(err, "error assembling video")
		return nil, err
	}

	stored, err := s.store.Store(ctx, outbound.StoreVideoRequest{
		Data:        video.Data,
		FileName:    video.FileName,
		ContentType: video.ContentType,
	})
	if err != nil {
		s.logger.Error(err, "error storing video")
		return nil, err
	}

	published, err := s.publisher.Publish(ctx, outbound.PublishReelRequest{
		Caption:              params.Caption,
		VideoURL:             stored.URL,
		ScheduledPublishTime: params.ScheduledPublishTime,
	})
	if err != nil {
		s.logger.Error(err, "error publishing video")
		return nil, err
	}

	return &inbound.ReelCreatorResponse{
		ID:                   published.ID,
		CreationID:           published.CreationID,
		VideoURL:             stored.URL,
		Status:               published.Status,
		ScheduledPublishTime: published.ScheduledPublishTime,
	}, nil
}
