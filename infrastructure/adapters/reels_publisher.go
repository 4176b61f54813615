package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/config"
	"generate-reel-service/domain"
)

const (
	maxCaptionLength = 2200
	// Platform constraints on scheduled publication.
	minScheduleLead = 20 * time.Minute
	maxScheduleLead = 75 * 24 * time.Hour
)

type publishRequest struct {
	Caption              string `json:"caption,omitempty"`
	VideoURL             string `json:"videoUrl"`
	ScheduledPublishTime string `json:"scheduledPublishTime,omitempty"`
}

type publishResponse struct {
	ID                   string                 `json:"id"`
	CreationID           string                 `json:"creationId"`
	ScheduledPublishTime string                 `json:"scheduledPublishTime"`
	Status               string                 `json:"status"`
	Error                string                 `json:"error"`
	Details              map[string]interface{} `json:"details"`
}

type reelsPublisher struct {
	logger outbound.LoggerPort
	cfg    *config.PublisherConfig
	client *http.Client
	now    func() time.Time
}

// NewReelsPublisher posts finished reels to the platform publish API.
// cfg may be nil; missing credentials surface per publish call.
func NewReelsPublisher(logger outbound.LoggerPort, cfg *config.PublisherConfig) outbound.ReelPublisherPort {
	return &reelsPublisher{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{},
		now:    time.Now,
	}
}

func (p *reelsPublisher) Validate(req outbound.PublishReelRequest) error {
	if len(req.Caption) > maxCaptionLength {
		return domain.NewValidationError("caption exceeds %d characters", maxCaptionLength)
	}

	if req.ScheduledPublishTime != "" {
		scheduled, err := time.Parse(time.RFC3339, req.ScheduledPublishTime)
		if err != nil {
			return domain.NewValidationError("scheduledPublishTime %q is not a valid RFC3339 timestamp", req.ScheduledPublishTime)
		}
		lead := scheduled.Sub(p.now())
		if lead < minScheduleLead {
			return domain.NewValidationError("scheduledPublishTime must be at least 20 minutes in the future")
		}
		if lead > maxScheduleLead {
			return domain.NewValidationError("scheduledPublishTime must be at most 75 days in the future")
		}
	}

	return nil
}

func (p *reelsPublisher) Publish(ctx context.Context, req outbound.PublishReelRequest) (*outbound.PublishReelResponse, error) {
	if p.cfg == nil {
		return nil, &domain.ConfigurationError{Reason: "publisher credentials are not configured"}
	}
	if err := p.Validate(req); err != nil {
		return nil, err
	}
	if req.VideoURL == "" {
		return nil, domain.NewValidationError("videoUrl is required")
	}
	if parsed, err := url.ParseRequestURI(req.VideoURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, domain.NewValidationError("videoUrl %q is not a valid URL", req.VideoURL)
	}

	payload, err := json.Marshal(publishRequest{
		Caption:              req.Caption,
		VideoURL:             req.VideoURL,
		ScheduledPublishTime: req.ScheduledPublishTime,
	})
	if err != nil {
		p.logger.Error(err, "Failed to marshal publish request")
		return nil, err
	}

	endpoint := fmt.Sprintf("%s?account_id=%s", p.cfg.APIURL, url.QueryEscape(p.cfg.AccountID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		p.logger.Error(err, "Failed to create publish request")
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.AccessToken)

	res, err := p.client.Do(httpReq)
	if err != nil {
		p.logger.Error(err, "Failed to send publish request")
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			p.logger.Error(err, "Failed to close publish response body")
		}
	}(res.Body)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		p.logger.Error(err, "Failed to read publish response body")
		return nil, err
	}

	var parsed publishResponse
	if err := json.Unmarshal(raw, &parsed); err != nil && res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil, fmt.Errorf("unexpected publish response: %s", raw)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message := parsed.Error
		if message == "" {
			message = fmt.Sprintf("publish rejected with status %d", res.StatusCode)
		}
		p.logger.ErrorWithFields(nil, "Publish rejected", map[string]interface{}{
			"status":  res.StatusCode,
			"message": message,
			"details": parsed.Details,
		})
		return nil, &domain.RemoteAPIError{
			StatusCode: res.StatusCode,
			Message:    message,
			Details:    parsed.Details,
		}
	}

	return &outbound.PublishReelResponse{
		ID:                   parsed.ID,
		CreationID:           parsed.CreationID,
		ScheduledPublishTime: parsed.ScheduledPublishTime,
		Status:               parsed.Status,
	}, nil
}
