package dto

import (
	"fmt"

	"generate-reel-service/domain"
)

const (
	backgroundKindGradient = "gradient"
	backgroundKindImage    = "image"
	backgroundKindColor    = "color"
)

type BackgroundDTO struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

type SceneDTO struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	Narration       string        `json:"narration" yaml:"narration"`
	SupportingPoint string        `json:"supporting_point" yaml:"supporting_point"`
	Duration        float64       `json:"duration" yaml:"duration"`
	Background      BackgroundDTO `json:"background" yaml:"background"`
	Overlay         string        `json:"overlay" yaml:"overlay"`
	CTA             string        `json:"cta,omitempty" yaml:"cta,omitempty"`
}

func SceneFromDomain(scene domain.Scene) SceneDTO {
	out := SceneDTO{
		ID:              scene.ID,
		Title:           scene.Title,
		Narration:       scene.Narration,
		SupportingPoint: scene.SupportingPoint,
		Duration:        scene.Duration,
		Overlay:         string(scene.Overlay),
		CTA:             scene.CTA,
	}

	switch bg := scene.Background.(type) {
	case domain.Gradient:
		out.Background = BackgroundDTO{Kind: backgroundKindGradient, Value: bg.CSS}
	case domain.ImageURL:
		out.Background = BackgroundDTO{Kind: backgroundKindImage, Value: bg.URL}
	case domain.ColorFill:
		out.Background = BackgroundDTO{Kind: backgroundKindColor, Value: bg.Color}
	}

	return out
}

func (s SceneDTO) ToDomain() (domain.Scene, error) {
	scene := domain.Scene{
		ID:              s.ID,
		Title:           s.Title,
		Narration:       s.Narration,
		SupportingPoint: s.SupportingPoint,
		Duration:        s.Duration,
		Overlay:         domain.Overlay(s.Overlay),
		CTA:             s.CTA,
	}

	switch s.Background.Kind {
	case backgroundKindGradient:
		scene.Background = domain.Gradient{CSS: s.Background.Value}
	case backgroundKindImage:
		scene.Background = domain.ImageURL{URL: s.Background.Value}
	case backgroundKindColor:
		scene.Background = domain.ColorFill{Color: s.Background.Value}
	default:
		return domain.Scene{}, fmt.Errorf("unknown background kind %q", s.Background.Kind)
	}

	return scene, nil
}

func ScenesFromDomain(scenes []domain.Scene) []SceneDTO {
	out := make([]SceneDTO, 0, len(scenes))
	for _, scene := range scenes {
		out = append(out, SceneFromDomain(scene))
	}
	return out
}

func ScenesToDomain(scenes []SceneDTO) ([]domain.Scene, error) {
	out := make([]domain.Scene, 0, len(scenes))
	for i, scene := range scenes {
		converted, err := scene.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		out = append(out, converted)
	}
	return out, nil
}
