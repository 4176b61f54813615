package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"generate-reel-service/domain"
	"generate-reel-service/infrastructure/adapters"
)

type stubImageFetcher struct {
	img image.Image
	err error
}

func (s *stubImageFetcher) Fetch(_ context.Context, _ string) (image.Image, error) {
	return s.img, s.err
}

func newTestRenderer(t *testing.T, fetcher *stubImageFetcher) *frameRenderer {
	t.Helper()
	renderer, err := NewFrameRenderer(adapters.NewZerologWrapper(), fetcher, RenderOptions{Width: 270, Height: 480})
	if err != nil {
		t.Fatal("Failed to create frame renderer:", err)
	}
	return renderer.(*frameRenderer)
}

func decodeFrame(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal("Frame is not a decodable PNG:", err)
	}
	return img
}

func TestFrameRenderer_DefaultSize(t *testing.T) {
	renderer, err := NewFrameRenderer(adapters.NewZerologWrapper(), &stubImageFetcher{}, RenderOptions{})
	if err != nil {
		t.Fatal("Failed to create frame renderer:", err)
	}
	w, h := renderer.FrameSize()
	if w != DefaultFrameWidth || h != DefaultFrameHeight {
		t.Fatalf("default frame size is %dx%d, want %dx%d", w, h, DefaultFrameWidth, DefaultFrameHeight)
	}
}

func TestFrameRenderer_GradientScene(t *testing.T) {
	renderer := newTestRenderer(t, &stubImageFetcher{})

	frame, err := renderer.Render(context.Background(), domain.Scene{
		ID:              "scene-test-0",
		Title:           "Launch day",
		Narration:       "Here's exactly what you're getting.",
		SupportingPoint: "Built for founders who want results, not noise.",
		Duration:        4,
		Background:      domain.Gradient{CSS: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"},
		Overlay:         domain.OverlayLight,
		CTA:             "Subscribe now",
	})
	if err != nil {
		t.Fatal("Render failed:", err)
	}

	img := decodeFrame(t, frame)
	if img.Bounds().Dx() != 270 || img.Bounds().Dy() != 480 {
		t.Fatalf("frame is %v, want 270x480", img.Bounds())
	}
}

func TestFrameRenderer_ColorFillScene(t *testing.T) {
	renderer := newTestRenderer(t, &stubImageFetcher{})

	frame, err := renderer.Render(context.Background(), domain.Scene{
		Title:      "Solid",
		Narration:  "One color only.",
		Duration:   3,
		Background: domain.ColorFill{Color: "#1a2b3c"},
		Overlay:    domain.OverlayDark,
	})
	if err != nil {
		t.Fatal("Render failed:", err)
	}

	img := decodeFrame(t, frame)
	// Below the overlay panel the fill shows through untouched.
	r, g, b, _ := img.At(135, 470).RGBA()
	got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	if got != (color.RGBA{0x1a, 0x2b, 0x3c, 0xff}) {
		t.Fatal("bottom pixel is not the fill color:", got)
	}
}

func TestFrameRenderer_UnparseableColorStillRenders(t *testing.T) {
	renderer := newTestRenderer(t, &stubImageFetcher{})

	frame, err := renderer.Render(context.Background(), domain.Scene{
		Title:      "Fallback",
		Duration:   3,
		Background: domain.ColorFill{Color: "not-a-color"},
		Overlay:    domain.OverlayLight,
	})
	if err != nil {
		t.Fatal("Render failed:", err)
	}
	decodeFrame(t, frame)
}

func TestFrameRenderer_CTAOnlyWhenPresent(t *testing.T) {
	renderer := newTestRenderer(t, &stubImageFetcher{})

	scene := domain.Scene{
		Title:      "Closing",
		Narration:  "The next move is yours.",
		Duration:   5,
		Background: domain.ColorFill{Color: "#203a43"},
		Overlay:    domain.OverlayLight,
	}

	plain, err := renderer.Render(context.Background(), scene)
	if err != nil {
		t.Fatal("Render without CTA failed:", err)
	}

	scene.CTA = "Join now"
	withCTA, err := renderer.Render(context.Background(), scene)
	if err != nil {
		t.Fatal("Render with CTA failed:", err)
	}

	if bytes.Equal(plain, withCTA) {
		t.Fatal("CTA pill left no trace on the frame")
	}

	again, err := renderer.Render(context.Background(), scene)
	if err != nil {
		t.Fatal("Second render with CTA failed:", err)
	}
	if !bytes.Equal(withCTA, again) {
		t.Fatal("rendering the same scene twice produced different frames")
	}
}

func TestFrameRenderer_ImageScene(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetRGBA(x, y, color.RGBA{0x20, 0x80, 0x40, 0xff})
		}
	}
	renderer := newTestRenderer(t, &stubImageFetcher{img: src})

	frame, err := renderer.Render(context.Background(), domain.Scene{
		Title:      "Photo",
		Duration:   3,
		Background: domain.ImageURL{URL: "https://example.com/bg.png"},
		Overlay:    domain.OverlayLight,
	})
	if err != nil {
		t.Fatal("Render failed:", err)
	}

	img := decodeFrame(t, frame)
	r, g, b, _ := img.At(135, 470).RGBA()
	got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	if got != (color.RGBA{0x20, 0x80, 0x40, 0xff}) {
		t.Fatal("image background was not painted:", got)
	}
}

func TestFrameRenderer_ImageFetchFailure(t *testing.T) {
	fetchErr := errors.New("connection refused")
	renderer := newTestRenderer(t, &stubImageFetcher{err: fetchErr})

	_, err := renderer.Render(context.Background(), domain.Scene{
		Title:      "Broken",
		Duration:   3,
		Background: domain.ImageURL{URL: "https://example.com/missing.png"},
		Overlay:    domain.OverlayLight,
	})

	var loadErr *domain.ResourceLoadError
	if !errors.As(err, &loadErr) {
		t.Fatal("expected a resource load error, got", err)
	}
	if loadErr.URL != "https://example.com/missing.png" {
		t.Error("error does not name the failing URL:", loadErr.URL)
	}
	if !errors.Is(err, fetchErr) {
		t.Error("underlying fetch error was lost")
	}
}
