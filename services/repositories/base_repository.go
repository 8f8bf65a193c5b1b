// Package repositories holds the gorm data-access layer. Each repository
// embeds BaseRepository and owns the queries for one model family.
package repositories

import (
	"gorm.io/gorm"
)

// BaseRepository carries the shared gorm handle embedded by every
// repository.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB exposes the handle for queries the typed helpers do not cover.
func (r *BaseRepository) DB() *gorm.DB {
	return r.db
}
