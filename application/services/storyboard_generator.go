package services

import (
	"fmt"
	"strings"

	"generate-reel-service/application/ports/inbound"
	"generate-reel-service/application/ports/outbound"
	"generate-reel-service/domain"
)

type storyboardGenerator struct {
	logger outbound.LoggerPort
	random outbound.RandomSourcePort
}

func NewStoryboardGenerator(logger outbound.LoggerPort, random outbound.RandomSourcePort) inbound.StoryboardGeneratorPort {
	return &storyboardGenerator{
		logger: logger,
		random: random,
	}
}

func (g *storyboardGenerator) Generate(brief domain.StoryBrief) []domain.Scene {
	brief = withDefaults(brief)

	profile, ok := toneProfiles[brief.Tone]
	if !ok {
		g.logger.WarnWithFields("unknown tone, falling back", map[string]interface{}{
			"tone":     string(brief.Tone),
			"fallback": string(defaultToneKey),
		})
		profile = toneProfiles[defaultToneKey]
	}

	template, ok := durationTemplates[brief.Length]
	if !ok {
		template = durationTemplates[defaultLengthKey]
	}

	batchToken := g.random.Token()
	last := len(template) - 1

	scenes := make([]domain.Scene, 0, len(template))
	for i, duration := range template {
		scene := domain.Scene{
			ID:         fmt.Sprintf("scene-%s-%d", batchToken, i),
			Duration:   duration,
			Overlay:    profile.Overlay,
			Background: gradientPalette[g.random.Intn(len(gradientPalette))],
		}

		switch {
		case i == 0:
			scene.Title = brief.Idea
			scene.Narration = g.pick(profile.Hooks)
			scene.SupportingPoint = g.valueProp(0, brief)
		case i == last:
			scene.Title = closingTitle
			scene.Narration = g.pick(profile.Closes)
			scene.SupportingPoint = brief.CallToAction
			if scene.SupportingPoint == "" {
				scene.SupportingPoint = ctaPlaceholder
			}
			scene.CTA = brief.CallToAction
		default:
			if i == 1 {
				scene.Title = payoffTitle
			} else {
				scene.Title = momentumTitle
			}
			scene.Narration = g.pick(profile.Supports)
			scene.SupportingPoint = g.valueProp(i, brief)
		}

		scenes = append(scenes, scene)
	}

	return scenes
}

func (g *storyboardGenerator) pick(pool []string) string {
	return pool[g.random.Intn(len(pool))]
}

func (g *storyboardGenerator) valueProp(position int, brief domain.StoryBrief) string {
	template := valuePropTemplates[position%len(valuePropTemplates)]
	return fmt.Sprintf(template, brief.Audience)
}

// withDefaults fills blank brief fields before generation so that
// regenerating from the same (possibly sparse) brief is stable.
func withDefaults(brief domain.StoryBrief) domain.StoryBrief {
	brief.Idea = strings.TrimSpace(brief.Idea)
	brief.Audience = strings.TrimSpace(brief.Audience)
	brief.CallToAction = strings.TrimSpace(brief.CallToAction)

	if brief.Idea == "" {
		brief.Idea = defaultIdea
	}
	if brief.Audience == "" {
		brief.Audience = defaultAudience
	}
	return brief
}
