package dto

type CreateStoryboardRequest struct {
	Idea         string `json:"idea"`
	Audience     string `json:"audience"`
	Tone         string `json:"tone" binding:"required"`
	CallToAction string `json:"call_to_action"`
	Length       string `json:"length" binding:"required"`
}

type ExportStoryboardRequest struct {
	Scenes []SceneDTO `json:"scenes" binding:"required"`
}

type CreateReelRequest struct {
	Scenes               []SceneDTO `json:"scenes" binding:"required"`
	Caption              string     `json:"caption"`
	ScheduledPublishTime string     `json:"scheduled_publish_time"`
	OutputName           string     `json:"output_name"`
}

type StartRenderJobRequest struct {
	Scenes     []SceneDTO `json:"scenes" binding:"required"`
	OutputName string     `json:"output_name"`
}
