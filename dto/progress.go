package dto

import (
	"time"

	"github.com/aroma-labs/aroma_api/analytics"
)

// AchievementResponse is a catalog achievement, optionally annotated with
// the user's unlock state.
type AchievementResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Threshold     int        `json:"threshold,omitempty"`
	ShareTemplate string     `json:"share_template"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
	Value         *float64   `json:"value,omitempty"`
}

// ProgressResponse bundles the recomputed stats snapshot with the
// achievements newly unlocked by the evaluation that produced it.
type ProgressResponse struct {
	Stats           analytics.Stats       `json:"stats"`
	NewAchievements []AchievementResponse `json:"new_achievements"`
}

type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
	Total        int                   `json:"total"`
}

type MomentListResponse struct {
	Moments []analytics.Moment `json:"moments"`
	Total   int                `json:"total"`
}
