package repositories

import (
	"errors"
	"time"

	"github.com/aroma-labs/aroma_api/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AchievementRepository owns the persisted unlock ledger.
type AchievementRepository struct {
	BaseRepository
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *AchievementRepository) ListUnlocked(userID string) ([]model.UserAchievement, error) {
	var unlocked []model.UserAchievement
	if err := r.db.Where("user_id = ?", userID).Order("unlocked_at ASC").Find(&unlocked).Error; err != nil {
		return nil, err
	}

	return unlocked, nil
}

// RecordUnlock writes one unlock row. It is a no-op when the achievement id
// is already present for the user, which keeps repeated evaluation
// idempotent.
func (r *AchievementRepository) RecordUnlock(userID, achievementID string, value *float64, unlockedAt time.Time) error {
	var existing model.UserAchievement

	err := r.db.Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&existing).Error
	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	unlock := model.UserAchievement{
		ID:            id.String(),
		UserID:        userID,
		AchievementID: achievementID,
		Value:         value,
		UnlockedAt:    unlockedAt,
		CreatedAt:     time.Now(),
	}

	return r.db.Create(&unlock).Error
}
