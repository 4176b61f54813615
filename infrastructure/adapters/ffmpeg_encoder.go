package adapters

import (
	"context"
	"fmt"
	"os/exec"
	"sync/atomic"

	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/domain"
)

type ffmpegEncoder struct {
	logger outbound.LoggerPort
	state  atomic.Value
	binary string
}

// NewFFmpegEncoder returns an uninitialized encoder handle. Init must
// succeed before Encode is accepted; a failed Init is terminal until Init
// is called again.
func NewFFmpegEncoder(logger outbound.LoggerPort) outbound.VideoEncoderPort {
	e := &ffmpegEncoder{logger: logger}
	e.state.Store(outbound.EncoderUninitialized)
	return e
}

func (e *ffmpegEncoder) State() outbound.EncoderState {
	return e.state.Load().(outbound.EncoderState)
}

func (e *ffmpegEncoder) Init(ctx context.Context) error {
	e.state.Store(outbound.EncoderLoading)

	binary, err := exec.LookPath("ffmpeg")
	if err != nil {
		e.state.Store(outbound.EncoderFailed)
		e.logger.Error(err, "ffmpeg binary not found")
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, binary, "-version")
	if out, err := cmd.CombinedOutput(); err != nil {
		e.state.Store(outbound.EncoderFailed)
		return fmt.Errorf("ffmpeg probe failed: %v, output: %s", err, out)
	}

	e.binary = binary
	e.state.Store(outbound.EncoderReady)
	e.logger.InfoWithFields("encoder ready", map[string]interface{}{
		"binary": binary,
	})
	return nil
}

func (e *ffmpegEncoder) Encode(ctx context.Context, params outbound.EncodeParams) error {
	if e.State() != outbound.EncoderReady {
		return domain.ErrEncoderNotReady
	}

	args := []string{
		"-y",
		"-f", "concat", "-safe", "0", "-i", params.ManifestName,
	}
	if params.AudioName != "" {
		args = append(args, "-i", params.AudioName)
	}
	args = append(args, "-c:v", "libx264", "-pix_fmt", "yuv420p")
	if params.AudioName != "" {
		// Cap the output to the shorter of frames and soundtrack.
		args = append(args, "-c:a", "aac", "-shortest")
	}
	args = append(args, params.OutputName)

	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Dir = params.WorkDir

	if out, err := cmd.CombinedOutput(); err != nil {
		e.logger.ErrorWithFields(err, "ffmpeg encode failed", map[string]interface{}{
			"workDir": params.WorkDir,
			"output":  string(out),
		})
		return fmt.Errorf("ffmpeg encode error: %v, output: %s", err, out)
	}

	return nil
}
