package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/domain"
)

const (
	DefaultFrameWidth  = 1080
	DefaultFrameHeight = 1920
)

type RenderOptions struct {
	Width  int
	Height int
}

// overlayPalette is the contrast set selected by a scene's overlay value.
type overlayPalette struct {
	Panel   color.RGBA
	Heading color.RGBA
	Body    color.RGBA
	CTAFill color.RGBA
	CTAText color.RGBA
}

var overlayPalettes = map[domain.Overlay]overlayPalette{
	// Light copy needs a dark translucent panel against bright art.
	domain.OverlayLight: {
		Panel:   color.RGBA{0x11, 0x11, 0x11, 0x8c},
		Heading: color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
		Body:    color.RGBA{0xe6, 0xe6, 0xe6, 0xff},
		CTAFill: color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
		CTAText: color.RGBA{0x11, 0x11, 0x11, 0xff},
	},
	domain.OverlayDark: {
		Panel:   color.RGBA{0xf5, 0xf5, 0xf5, 0x96},
		Heading: color.RGBA{0x14, 0x14, 0x14, 0xff},
		Body:    color.RGBA{0x2e, 0x2e, 0x2e, 0xff},
		CTAFill: color.RGBA{0x14, 0x14, 0x14, 0xff},
		CTAText: color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
	},
}

type frameRenderer struct {
	logger  outbound.LoggerPort
	fetcher outbound.ImageFetcherPort
	width   int
	height  int

	headingFace   font.Face
	narrationFace font.Face
	supportFace   font.Face
	ctaFace       font.Face
}

// NewFrameRenderer builds a renderer with faces sized to the canvas. Face
// construction failure is a fatal environment error, not a per-render one.
func NewFrameRenderer(logger outbound.LoggerPort, fetcher outbound.ImageFetcherPort, opts RenderOptions) (inbound.FrameRendererPort, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultFrameWidth
	}
	height := opts.Height
	if height <= 0 {
		height = DefaultFrameHeight
	}

	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}

	newFace := func(fnt *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	w := float64(width)
	headingFace, err := newFace(bold, w*0.065)
	if err != nil {
		return nil, err
	}
	narrationFace, err := newFace(regular, w*0.042)
	if err != nil {
		return nil, err
	}
	supportFace, err := newFace(regular, w*0.032)
	if err != nil {
		return nil, err
	}
	ctaFace, err := newFace(bold, w*0.036)
	if err != nil {
		return nil, err
	}

	return &frameRenderer{
		logger:        logger,
		fetcher:       fetcher,
		width:         width,
		height:        height,
		headingFace:   headingFace,
		narrationFace: narrationFace,
		supportFace:   supportFace,
		ctaFace:       ctaFace,
	}, nil
}

func (r *frameRenderer) FrameSize() (int, int) {
	return r.width, r.height
}

func (r *frameRenderer) Render(ctx context.Context, scene domain.Scene) ([]byte, error) {
	frame := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	if err := r.paintBackground(ctx, frame, scene.Background); err != nil {
		return nil, err
	}

	palette, ok := overlayPalettes[scene.Overlay]
	if !ok {
		palette = overlayPalettes[domain.OverlayLight]
	}

	r.paintOverlayPanel(frame, palette)
	bottom := r.drawTextBlocks(frame, scene, palette)
	if scene.CTA != "" {
		r.drawCTA(frame, scene.CTA, palette, bottom)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return nil, fmt.Errorf("encoding frame: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *frameRenderer) paintBackground(ctx context.Context, frame *image.RGBA, background domain.Background) error {
	switch bg := background.(type) {
	case domain.Gradient:
		r.paintGradient(frame, parseGradientStops(bg.CSS))
		return nil
	case domain.ColorFill:
		fill, err := parseCSSColor(bg.Color)
		if err != nil {
			r.logger.WarnWithFields("unparseable fill color, using charcoal", map[string]interface{}{
				"color": bg.Color,
			})
			fill = color.RGBA{0x14, 0x14, 0x14, 0xff}
		}
		draw.Draw(frame, frame.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
		return nil
	case domain.ImageURL:
		img, err := r.fetcher.Fetch(ctx, bg.URL)
		if err != nil {
			return &domain.ResourceLoadError{URL: bg.URL, Err: err}
		}
		r.drawCover(frame, img)
		return nil
	default:
		return fmt.Errorf("unsupported background type %T", background)
	}
}

// paintGradient sweeps the stops along the top-left to bottom-right diagonal.
func (r *frameRenderer) paintGradient(frame *image.RGBA, stops []color.RGBA) {
	maxSum := float64(r.width + r.height - 2)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			t := float64(x+y) / maxSum
			frame.SetRGBA(x, y, gradientAt(stops, t))
		}
	}
}

// drawCover scales the source to cover the canvas: the centered crop of the
// source matching the canvas aspect ratio is resampled over the full frame.
func (r *frameRenderer) drawCover(frame *image.RGBA, src image.Image) {
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	cropW, cropH := srcW, srcH
	if srcW*r.height > srcH*r.width {
		// Source is wider than the canvas: trim the sides.
		cropW = srcH * r.width / r.height
	} else {
		cropH = srcW * r.height / r.width
	}

	x0 := b.Min.X + (srcW-cropW)/2
	y0 := b.Min.Y + (srcH-cropH)/2
	cropRect := image.Rect(x0, y0, x0+cropW, y0+cropH)

	xdraw.CatmullRom.Scale(frame, frame.Bounds(), src, cropRect, xdraw.Src, nil)
}

func (r *frameRenderer) paintOverlayPanel(frame *image.RGBA, palette overlayPalette) {
	panel := image.Rect(0, 0, r.width, int(float64(r.height)*0.55))
	draw.Draw(frame, panel, image.NewUniform(palette.Panel), image.Point{}, draw.Over)
}

// drawTextBlocks stacks the heading, narration and supporting point and
// returns the y coordinate below the last block.
func (r *frameRenderer) drawTextBlocks(frame *image.RGBA, scene domain.Scene, palette overlayPalette) int {
	padding := int(float64(r.width) * 0.08)
	maxWidth := r.width - 2*padding
	blockMargin := int(float64(r.height) * 0.035)

	y := int(float64(r.height) * 0.10)

	y = r.drawBlock(frame, strings.ToUpper(scene.Title), r.headingFace,
		palette.Heading, padding, y, maxWidth, int(float64(r.width)*0.082))
	y += blockMargin

	y = r.drawBlock(frame, scene.Narration, r.narrationFace,
		palette.Body, padding, y, maxWidth, int(float64(r.width)*0.058))
	y += blockMargin

	y = r.drawBlock(frame, scene.SupportingPoint, r.supportFace,
		palette.Body, padding, y, maxWidth, int(float64(r.width)*0.046))

	return y
}

func (r *frameRenderer) drawBlock(frame *image.RGBA, text string, face font.Face, col color.RGBA, x, y, maxWidth, lineHeight int) int {
	for _, line := range wrapText(face, text, maxWidth) {
		y += lineHeight
		drawer := font.Drawer{
			Dst:  frame,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(x, y),
		}
		drawer.DrawString(line)
	}
	return y
}

func (r *frameRenderer) drawCTA(frame *image.RGBA, cta string, palette overlayPalette, blocksBottom int) {
	pillW := int(float64(r.width) * 0.56)
	pillH := int(float64(r.height) * 0.052)
	margin := int(float64(r.height) * 0.035)

	x0 := (r.width - pillW) / 2
	y0 := blocksBottom + margin
	if y0+pillH > r.height {
		y0 = r.height - pillH
	}
	pill := image.Rect(x0, y0, x0+pillW, y0+pillH)
	draw.Draw(frame, pill, image.NewUniform(palette.CTAFill), image.Point{}, draw.Over)

	textW := font.MeasureString(r.ctaFace, cta).Ceil()
	metrics := r.ctaFace.Metrics()
	textH := (metrics.Ascent + metrics.Descent).Ceil()
	dotX := x0 + (pillW-textW)/2
	dotY := y0 + (pillH-textH)/2 + metrics.Ascent.Ceil()

	drawer := font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(palette.CTAText),
		Face: r.ctaFace,
		Dot:  fixed.P(dotX, dotY),
	}
	drawer.DrawString(cta)
}
