package services

import (
	"strings"

	"golang.org/x/image/font"
)

// wrapText greedily packs words into lines whose measured pixel width stays
// under maxWidth. A word that alone exceeds maxWidth still gets its own
// line; text already narrower than maxWidth comes back as a single line.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
