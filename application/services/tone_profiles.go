package services

import "generate-reel-service/domain"

// toneProfile supplies the narration pools for one tone plus the overlay
// contrast its copy reads best against.
type toneProfile struct {
	Hooks    []string
	Supports []string
	Closes   []string
	Overlay  domain.Overlay
}

var toneProfiles = map[domain.Tone]toneProfile{
	domain.ToneInspirational: {
		Hooks: []string{
			"Imagine what happens when you finally start.",
			"The version of you that ships this already exists.",
			"Every big story starts with one small scene.",
			"You don't need permission to build this.",
		},
		Supports: []string{
			"Momentum beats motivation, every single day.",
			"Small consistent steps compound faster than you think.",
			"The people you admire started exactly where you are.",
			"Progress loves a deadline.",
		},
		Closes: []string{
			"Start today. Your future self is watching.",
			"The next move is yours.",
			"Don't wait for ready. Ready is a myth.",
		},
		Overlay: domain.OverlayLight,
	},
	domain.ToneEducational: {
		Hooks: []string{
			"Here's the thing most people get wrong.",
			"Three things nobody tells you about this.",
			"Let's break this down in under a minute.",
			"The data on this surprised even us.",
		},
		Supports: []string{
			"Step one is simpler than it looks.",
			"This is where most people quit. Don't.",
			"A small tweak here changes the whole outcome.",
			"Write this one down.",
		},
		Closes: []string{
			"Now you know more than 90% of people trying this.",
			"Save this for when you need it.",
			"That's the whole playbook.",
		},
		Overlay: domain.OverlayDark,
	},
	domain.TonePlayful: {
		Hooks: []string{
			"Okay, hear us out on this one.",
			"POV: you just found your new favorite thing.",
			"We did the chaotic thing so you don't have to.",
			"This should not work as well as it does.",
		},
		Supports: []string{
			"Yes, it's really that easy. We checked.",
			"Your group chat is going to hear about this.",
			"Mildly obsessed? Us too.",
			"No gatekeeping here.",
		},
		Closes: []string{
			"Go on, you know you want to.",
			"Tell them we sent you.",
			"See you in the comments.",
		},
		Overlay: domain.OverlayLight,
	},
	domain.ToneDirect: {
		Hooks: []string{
			"Here's exactly what you're getting.",
			"No hype. Just the facts.",
			"This solves one problem, extremely well.",
			"You have 30 seconds. Here's the pitch.",
		},
		Supports: []string{
			"It works out of the box.",
			"One decision. Measurable results.",
			"Less setup, more output.",
			"Everything else is noise.",
		},
		Closes: []string{
			"Decide now. Thank yourself later.",
			"The offer is simple. Take it.",
			"That's it. That's the video.",
		},
		Overlay: domain.OverlayDark,
	},
}

// durationTemplates fix the scene count and per-scene seconds per length.
var durationTemplates = map[domain.Length][]float64{
	domain.LengthShort:  {4, 4, 5},
	domain.LengthMedium: {3.5, 4, 4, 4.5},
	domain.LengthLong:   {3, 3.5, 4, 4, 4.5},
}

// valuePropTemplates rotate across middle scenes, parameterized by the
// brief's audience.
var valuePropTemplates = []string{
	"Built for %s who want results, not noise.",
	"The shortcut %s have been waiting for.",
	"Why %s keep coming back to this.",
	"Exactly what %s need, nothing they don't.",
}

// gradientPalette is the fixed set of named backgrounds scenes draw from.
var gradientPalette = []domain.Gradient{
	{CSS: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"},
	{CSS: "linear-gradient(135deg, #ff9a9e 0%, #fad0c4 100%)"},
	{CSS: "linear-gradient(135deg, #0f2027 0%, #203a43 50%, #2c5364 100%)"},
	{CSS: "linear-gradient(135deg, #f83600 0%, #f9d423 100%)"},
	{CSS: "linear-gradient(135deg, #11998e 0%, #38ef7d 100%)"},
}

const (
	defaultIdea      = "Your next big idea"
	defaultAudience  = "your audience"
	payoffTitle      = "Here's the payoff"
	momentumTitle    = "Keep it moving"
	closingTitle     = "Make it yours"
	ctaPlaceholder   = "Tell viewers what to do next"
	defaultToneKey   = domain.ToneDirect
	defaultLengthKey = domain.LengthShort
)
