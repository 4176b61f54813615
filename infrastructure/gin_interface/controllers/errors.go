package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/domain"
)

func abortWithError(c *gin.Context, logger outbound.LoggerPort, status int, err error) {
	if abortErr := c.AbortWithError(status, err); abortErr != nil {
		logger.Error(abortErr, "failed to abort with error")
	}
}

// statusForError maps domain failures onto HTTP statuses. Remote error
// payloads are surfaced to the caller unmodified.
func statusForError(err error) (int, gin.H) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return 400, gin.H{"error": validationErr.Reason}
	}

	var remoteErr *domain.RemoteAPIError
	if errors.As(err, &remoteErr) {
		body := gin.H{"error": remoteErr.Message}
		if remoteErr.Details != nil {
			body["details"] = remoteErr.Details
		}
		return 502, body
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		return 503, gin.H{"error": configErr.Reason}
	}

	var resourceErr *domain.ResourceLoadError
	if errors.As(err, &resourceErr) {
		return 422, gin.H{"error": resourceErr.Error()}
	}

	if errors.Is(err, domain.ErrRenderBusy) {
		return 409, gin.H{"error": err.Error()}
	}

	if errors.Is(err, domain.ErrEncoderNotReady) {
		return 503, gin.H{"error": err.Error()}
	}

	return 500, gin.H{"error": err.Error()}
}
