package model

import (
	"time"
)

// Scent is a catalog entry for a trainable scent. Catalog rows are seeded
// once and treated as immutable by the API.
type Scent struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Family      string    `json:"family"` // floral, fruity, spicy, resinous
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserScent maps a user to a scent in their active training collection.
// The collection is the source of the scent snapshot taken at session start.
type UserScent struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	ScentID   string    `json:"scent_id" gorm:"not null"`
	AddedAt   time.Time `json:"added_at"`
	CreatedAt time.Time `json:"created_at"`

	// Relationship
	Scent Scent `json:"scent" gorm:"foreignKey:ScentID"`
}
