package domain

type Tone string

const (
	ToneInspirational Tone = "inspirational"
	ToneEducational   Tone = "educational"
	TonePlayful       Tone = "playful"
	ToneDirect        Tone = "direct"
)

type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

type Overlay string

const (
	OverlayLight Overlay = "light"
	OverlayDark  Overlay = "dark"
)

// StoryBrief is the caller-supplied input to storyboard generation.
// The pipeline never mutates it.
type StoryBrief struct {
	Idea         string
	Audience     string
	Tone         Tone
	CallToAction string
	Length       Length
}

// Background is a closed union: Gradient, ImageURL or ColorFill.
// The renderer type-switches over the concrete types, so adding a new
// kind forces a decision at every dispatch site.
type Background interface {
	isBackground()
}

type Gradient struct {
	CSS string
}

type ImageURL struct {
	URL string
}

type ColorFill struct {
	Color string
}

func (Gradient) isBackground()  {}
func (ImageURL) isBackground()  {}
func (ColorFill) isBackground() {}

// Scene is one timed beat of the storyboard. Scene order is the temporal
// order of appearance in the final video.
type Scene struct {
	ID              string
	Title           string
	Narration       string
	SupportingPoint string
	Duration        float64
	Background      Background
	Overlay         Overlay
	CTA             string
}

// AudioTrack carries a user-supplied soundtrack. FileName is kept only
// to preserve the original extension when staged for the encoder.
type AudioTrack struct {
	Data     []byte
	FileName string
}

// RenderedVideo is the final artifact. LocalPath points at the encoder's
// output file and is valid until the next render clears the scratch area.
type RenderedVideo struct {
	Data        []byte
	ContentType string
	FileName    string
	LocalPath   string
}
