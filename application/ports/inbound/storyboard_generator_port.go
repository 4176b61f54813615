package inbound

import "generate-reel-service/domain"

type StoryboardGeneratorPort interface {
	// Generate expands a brief into an ordered scene sequence. Blank brief
	// fields are defaulted before expansion so regeneration is stable.
	Generate(brief domain.StoryBrief) []domain.Scene
}
