package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/config"
	"generate-reel-service/domain"
)

type blobUploadResponse struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
	Error    string `json:"error"`
}

type blobVideoStore struct {
	logger outbound.LoggerPort
	cfg    *config.BlobStoreConfig
	client *http.Client
}

// NewBlobVideoStore uploads artifacts to a blob endpoint via multipart
// form submission. cfg may be nil; the missing credentials are then
// reported per request instead of at startup.
func NewBlobVideoStore(logger outbound.LoggerPort, cfg *config.BlobStoreConfig) outbound.VideoStorePort {
	return &blobVideoStore{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{},
	}
}

func (s *blobVideoStore) Store(ctx context.Context, req outbound.StoreVideoRequest) (*outbound.StoreVideoResponse, error) {
	if s.cfg == nil {
		return nil, &domain.ConfigurationError{Reason: "blob store credentials are not configured"}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, req.FileName))
	header.Set("Content-Type", req.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating multipart body: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return nil, fmt.Errorf("writing multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.UploadURL, &body)
	if err != nil {
		s.logger.Error(err, "Failed to create the upload request")
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	res, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Error(err, "Failed to send the upload request")
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			s.logger.Error(err, "Failed to close the upload response body")
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		s.logger.Error(err, "Failed to read the upload response body")
		return nil, err
	}

	var uploaded blobUploadResponse
	if err := json.Unmarshal(payload, &uploaded); err != nil && res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil, fmt.Errorf("unexpected upload response: %s", payload)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message := uploaded.Error
		if message == "" {
			message = fmt.Sprintf("upload rejected with status %d", res.StatusCode)
		}
		s.logger.ErrorWithFields(nil, "Upload rejected", map[string]interface{}{
			"status":  res.StatusCode,
			"message": message,
		})
		return nil, &domain.RemoteAPIError{StatusCode: res.StatusCode, Message: message}
	}

	if uploaded.URL == "" {
		return nil, fmt.Errorf("upload response is missing the blob URL")
	}

	return &outbound.StoreVideoResponse{
		URL:      uploaded.URL,
		Pathname: uploaded.Pathname,
	}, nil
}
