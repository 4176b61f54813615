package dto

import (
	"gopkg.in/yaml.v3"

	"generate-reel-service/domain"
)

// StoryboardDocument is the offline-editable YAML form of a storyboard.
type StoryboardDocument struct {
	Version string     `yaml:"version"`
	Scenes  []SceneDTO `yaml:"scenes"`
}

const storyboardDocumentVersion = "1"

func MarshalStoryboard(scenes []domain.Scene) ([]byte, error) {
	doc := StoryboardDocument{
		Version: storyboardDocumentVersion,
		Scenes:  ScenesFromDomain(scenes),
	}
	return yaml.Marshal(&doc)
}

func UnmarshalStoryboard(data []byte) ([]domain.Scene, error) {
	var doc StoryboardDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return ScenesToDomain(doc.Scenes)
}
