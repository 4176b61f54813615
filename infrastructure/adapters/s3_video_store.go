package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/config"
	"generate-reel-service/domain"
)

type s3VideoStore struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

// NewS3VideoStore is the alternative storage backend, selected with
// STORAGE_BACKEND=s3.
func NewS3VideoStore(logger outbound.LoggerPort, s3Config *config.S3Config) outbound.VideoStorePort {
	store := &s3VideoStore{
		logger:   logger,
		s3Config: s3Config,
	}
	if s3Config == nil {
		return store
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(s3Config.Region)})
	if err != nil {
		logger.Error(err, "Failed to create AWS session")
		return store
	}
	store.s3Svc = s3.New(sess)
	return store
}

func (s *s3VideoStore) Store(ctx context.Context, req outbound.StoreVideoRequest) (*outbound.StoreVideoResponse, error) {
	if s.s3Config == nil || s.s3Svc == nil {
		return nil, &domain.ConfigurationError{Reason: "S3 storage is not configured"}
	}

	itemPath := fmt.Sprintf("reels/%s/%s", uuid.NewString(), req.FileName)

	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(itemPath),
		Body:        bytes.NewReader(req.Data),
		ContentType: aws.String(req.ContentType),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.Error(err, "Failed to upload object to S3")
		return nil, err
	}

	return &outbound.StoreVideoResponse{
		URL:      fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, itemPath),
		Pathname: itemPath,
	}, nil
}
