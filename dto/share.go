package dto

// ShareRequest builds shareable content for an unlocked achievement,
// streak, or progress moment.
type ShareRequest struct {
	Type          string `json:"type" validate:"required,oneof=achievement streak moment"`
	AchievementID string `json:"achievement_id,omitempty"`
}

func (r ShareRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ShareResponse struct {
	ShareText  string   `json:"share_text"`
	ShareImage string   `json:"share_image"`
	ShareURL   string   `json:"share_url"`
	Platforms  []string `json:"platforms"`
}
