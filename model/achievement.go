package model

import (
	"time"
)

// Achievement categories.
const (
	CategoryStreak      = "streak"
	CategoryImprovement = "improvement"
)

// Achievement is a catalog milestone. The catalog is compiled into the
// binary (see the analytics package); it is not stored or configurable at
// runtime.
type Achievement struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"` // streak, improvement
	Threshold     int    `json:"threshold,omitempty"`
	ShareTemplate string `json:"share_template"`
}

// UserAchievement is the persisted unlock ledger. One row exists per
// (user, achievement) pair at most; unlocks are never deleted.
type UserAchievement struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"not null;index"`
	AchievementID string    `json:"achievement_id" gorm:"not null"`
	Value         *float64  `json:"value,omitempty"` // metric that triggered the unlock
	UnlockedAt    time.Time `json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`
}
