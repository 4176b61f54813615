package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/domain"
)

const (
	manifestFileName = "frames.txt"
	encodedFileName  = "output.mp4"
	defaultAudioExt  = ".mp3"
)

type videoAssembler struct {
	logger   outbound.LoggerPort
	renderer inbound.FrameRendererPort
	encoder  outbound.VideoEncoderPort
	scratch  string
	busy     atomic.Bool
}

// NewVideoAssembler owns the scratch directory and the encoder handle.
// The scratch area admits one writer: overlapping Assemble calls are
// rejected rather than interleaved.
func NewVideoAssembler(logger outbound.LoggerPort, renderer inbound.FrameRendererPort, encoder outbound.VideoEncoderPort, scratchDir string) inbound.VideoAssemblerPort {
	if scratchDir == "" {
		scratchDir = filepath.Join(os.TempDir(), "reel-render")
	}
	return &videoAssembler{
		logger:   logger,
		renderer: renderer,
		encoder:  encoder,
		scratch:  scratchDir,
	}
}

func (a *videoAssembler) Assemble(ctx context.Context, params inbound.AssembleParams) (*domain.RenderedVideo, error) {
	if len(params.Scenes) == 0 {
		return nil, domain.NewValidationError("scene list is empty")
	}
	for _, scene := range params.Scenes {
		if scene.Duration <= 0 {
			return nil, domain.NewValidationError("scene %s has a non-positive duration", scene.ID)
		}
	}

	if !a.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrRenderBusy
	}
	defer a.busy.Store(false)

	report := func(pct float64) {
		if params.OnProgress != nil {
			params.OnProgress(pct)
		}
	}
	report(0)

	// Residue from a failed prior run is cleared here, not at exit.
	if err := os.RemoveAll(a.scratch); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("clearing scratch directory: %w", err)
	}
	if err := os.MkdirAll(a.scratch, 0o755); err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}

	total := len(params.Scenes)
	var manifest strings.Builder
	lastFrame := ""

	for i, scene := range params.Scenes {
		frame, err := a.renderer.Render(ctx, scene)
		if err != nil {
			a.logger.ErrorWithFields(err, "frame render failed", map[string]interface{}{
				"scene": scene.ID,
				"index": i,
			})
			return nil, err
		}

		name := fmt.Sprintf("frame-%02d.png", i)
		if err := os.WriteFile(filepath.Join(a.scratch, name), frame, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}

		fmt.Fprintf(&manifest, "file '%s'\nduration %.2f\n", name, scene.Duration)
		lastFrame = name

		// Rasterization owns the first half of the progress range; the
		// encode pass owns the rest.
		report(float64(i+1) / float64(total) * 50)
	}

	// The concat demuxer drops the final duration directive unless the last
	// frame is listed once more without one.
	fmt.Fprintf(&manifest, "file '%s'\n", lastFrame)

	if err := os.WriteFile(filepath.Join(a.scratch, manifestFileName), []byte(manifest.String()), 0o644); err != nil {
		return nil, fmt.Errorf("writing concat manifest: %w", err)
	}

	audioName := ""
	if params.Audio != nil {
		ext := filepath.Ext(params.Audio.FileName)
		if ext == "" {
			ext = defaultAudioExt
		}
		audioName = "audio" + ext
		if err := os.WriteFile(filepath.Join(a.scratch, audioName), params.Audio.Data, 0o644); err != nil {
			return nil, fmt.Errorf("writing audio track: %w", err)
		}
	}

	if err := a.encoder.Encode(ctx, outbound.EncodeParams{
		WorkDir:      a.scratch,
		ManifestName: manifestFileName,
		AudioName:    audioName,
		OutputName:   encodedFileName,
	}); err != nil {
		return nil, err
	}

	outputPath := filepath.Join(a.scratch, encodedFileName)
	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("reading encoder output: %w", err)
	}

	fileName := params.OutputName
	if fileName == "" {
		fileName = fmt.Sprintf("ai-video-%d.mp4", time.Now().Unix())
	}

	width, height := a.renderer.FrameSize()
	a.logger.InfoWithFields("video assembled", map[string]interface{}{
		"scenes":     total,
		"bytes":      len(data),
		"name":       fileName,
		"resolution": fmt.Sprintf("%dx%d", width, height),
	})
	report(100)

	return &domain.RenderedVideo{
		Data:        data,
		ContentType: "video/mp4",
		FileName:    fileName,
		LocalPath:   outputPath,
	}, nil
}
