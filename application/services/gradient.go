package services

import (
	"fmt"
	"image/color"
	"strings"
)

// defaultGradientStops backs gradient strings that yield no usable stops.
var defaultGradientStops = []color.RGBA{
	{R: 0x0f, G: 0x20, B: 0x27, A: 0xff},
	{R: 0x20, G: 0x3a, B: 0x43, A: 0xff},
	{R: 0x2c, G: 0x53, B: 0x64, A: 0xff},
}

var namedColors = map[string]color.RGBA{
	"white":  {0xff, 0xff, 0xff, 0xff},
	"black":  {0x00, 0x00, 0x00, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0x80, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
	"orange": {0xff, 0xa5, 0x00, 0xff},
	"purple": {0x80, 0x00, 0x80, 0xff},
	"pink":   {0xff, 0xc0, 0xcb, 0xff},
	"teal":   {0x00, 0x80, 0x80, 0xff},
	"navy":   {0x00, 0x00, 0x80, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
}

// parseGradientStops extracts the ordered color stops from a CSS
// linear-gradient string. Parsing is best effort: direction tokens and
// percentage annotations are dropped and tokens that do not parse as a
// color are skipped. With no usable stops the fixed default applies.
func parseGradientStops(css string) []color.RGBA {
	s := strings.TrimSpace(css)
	if open := strings.Index(s, "("); open >= 0 {
		s = s[open+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), ")")

	var stops []color.RGBA
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" || strings.Contains(token, "deg") || strings.HasPrefix(token, "to ") {
			continue
		}
		// "#ff9a9e 0%" -> "#ff9a9e"
		if fields := strings.Fields(token); len(fields) > 0 {
			token = fields[0]
		}
		c, err := parseCSSColor(token)
		if err != nil {
			continue
		}
		stops = append(stops, c)
	}

	if len(stops) == 0 {
		return defaultGradientStops
	}
	return stops
}

// parseCSSColor handles #rgb, #rrggbb and a small set of named colors.
func parseCSSColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unrecognized color %q", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		r, errR := hexNibble(hex[0])
		g, errG := hexNibble(hex[1])
		b, errB := hexNibble(hex[2])
		if errR != nil || errG != nil || errB != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, nil
	case 6:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			hi, errH := hexNibble(hex[2*i])
			lo, errL := hexNibble(hex[2*i+1])
			if errH != nil || errL != nil {
				return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
			}
			rgb[i] = hi<<4 | lo
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
}

func hexNibble(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", b)
}

// gradientAt interpolates evenly spaced stops at position t in [0,1].
func gradientAt(stops []color.RGBA, t float64) color.RGBA {
	if len(stops) == 1 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	span := t * float64(len(stops)-1)
	idx := int(span)
	frac := span - float64(idx)
	return lerpColor(stops[idx], stops[idx+1], frac)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 0xff,
	}
}
