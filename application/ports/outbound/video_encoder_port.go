package outbound

import "context"

type EncoderState string

const (
	EncoderUninitialized EncoderState = "uninitialized"
	EncoderLoading       EncoderState = "loading"
	EncoderReady         EncoderState = "ready"
	EncoderFailed        EncoderState = "failed"
)

type EncodeParams struct {
	// WorkDir is the scratch directory holding the manifest, the frame
	// files and, when present, the audio file.
	WorkDir      string
	ManifestName string
	// AudioName is empty when no soundtrack was supplied.
	AudioName  string
	OutputName string
}

// VideoEncoderPort is an explicit handle around the process-wide encoder.
// Encode is rejected unless the handle reached the ready state.
type VideoEncoderPort interface {
	Init(ctx context.Context) error
	State() EncoderState
	Encode(ctx context.Context, params EncodeParams) error
}
