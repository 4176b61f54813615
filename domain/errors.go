package domain

import (
	"errors"
	"fmt"
)

// ErrEncoderNotReady is returned for encode calls made before the encoder
// finished loading, or after its initialization failed.
var ErrEncoderNotReady = errors.New("video encoder is not ready")

// ErrRenderBusy is returned when an assemble call overlaps one already in
// flight. The scratch area admits a single writer.
var ErrRenderBusy = errors.New("a render is already in progress")

// ConfigurationError reports missing collaborator credentials. It is
// raised per request at the collaborator boundary, never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// ValidationError rejects bad input before any encoder or network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ResourceLoadError identifies a background asset that could not be loaded.
type ResourceLoadError struct {
	URL string
	Err error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.URL, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

// RemoteAPIError carries a collaborator's error response verbatim.
type RemoteAPIError struct {
	StatusCode int
	Message    string
	Details    map[string]interface{}
}

func (e *RemoteAPIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote API returned status %d", e.StatusCode)
	}
	return e.Message
}
