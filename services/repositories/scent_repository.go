package repositories

import (
	"errors"
	"time"

	"github.com/aroma-labs/aroma_api/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScentRepository reads the scent catalog and manages per-user collections.
type ScentRepository struct {
	BaseRepository
}

func NewScentRepository(db *gorm.DB) *ScentRepository {
	return &ScentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *ScentRepository) ListScents() ([]model.Scent, error) {
	var scents []model.Scent
	if err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&scents).Error; err != nil {
		return nil, err
	}

	return scents, nil
}

func (r *ScentRepository) GetScent(scentID string) (*model.Scent, error) {
	var scent model.Scent
	if err := r.db.Where("id = ?", scentID).First(&scent).Error; err != nil {
		return nil, err
	}

	return &scent, nil
}

func (r *ScentRepository) UpdateScent(scent *model.Scent) error {
	scent.UpdatedAt = time.Now()
	return r.db.Save(scent).Error
}

// ListCollection returns the user's active collection with scents
// preloaded, in the order they were added.
func (r *ScentRepository) ListCollection(userID string) ([]model.UserScent, error) {
	var collection []model.UserScent
	err := r.db.Preload("Scent").
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&collection).Error
	if err != nil {
		return nil, err
	}

	return collection, nil
}

// AddToCollection is a no-op when the scent is already in the collection.
func (r *ScentRepository) AddToCollection(userID, scentID string) error {
	var existing model.UserScent

	err := r.db.Where("user_id = ? AND scent_id = ?", userID, scentID).First(&existing).Error
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

	now := time.Now()
	entry := model.UserScent{
		ID:        id.String(),
		UserID:    userID,
		ScentID:   scentID,
		AddedAt:   now,
		CreatedAt: now,
	}

	return r.db.Create(&entry).Error
}

func (r *ScentRepository) RemoveFromCollection(userID, scentID string) error {
	return r.db.Where("user_id = ? AND scent_id = ?", userID, scentID).
		Delete(&model.UserScent{}).Error
}
