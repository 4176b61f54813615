package dto

type StoryboardResponse struct {
	Scenes []SceneDTO `json:"scenes"`
}

type CreateReelResponse struct {
	ID                   string `json:"id"`
	CreationID           string `json:"creation_id"`
	VideoURL             string `json:"video_url"`
	Status               string `json:"status"`
	ScheduledPublishTime string `json:"scheduled_publish_time,omitempty"`
}

type StartRenderJobResponse struct {
	JobID string `json:"job_id"`
}
