package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Rating bounds for a perceived scent intensity.
const (
	MinIntensity = 0
	MaxIntensity = 10
)

// TrainingSession is one pass through the user's scent collection, each
// scent rated for perceived intensity. CreatedAt is the canonical time
// bucket for all analytics windowing; a session only counts toward
// analytics once Completed is true.
type TrainingSession struct {
	ID           string          `json:"id" gorm:"primaryKey"`
	UserID       string          `json:"user_id" gorm:"not null;index"`
	Completed    bool            `json:"completed" gorm:"default:false"`
	ScentRatings json.RawMessage `json:"scent_ratings" gorm:"type:text"` // map of scent id -> intensity [0,10]
	DurationSec  int             `json:"duration_sec" gorm:"default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Ratings decodes the stored rating map. A nil or empty payload decodes to
// an empty map rather than an error.
func (s *TrainingSession) Ratings() (map[string]int, error) {
	ratings := map[string]int{}
	if len(s.ScentRatings) == 0 {
		return ratings, nil
	}

	if err := json.Unmarshal(s.ScentRatings, &ratings); err != nil {
		return nil, fmt.Errorf("invalid scent ratings payload: %w", err)
	}

	return ratings, nil
}

// SetRatings validates every intensity against [MinIntensity, MaxIntensity]
// and encodes the map for storage.
func (s *TrainingSession) SetRatings(ratings map[string]int) error {
	for scentID, value := range ratings {
		if value < MinIntensity || value > MaxIntensity {
			return fmt.Errorf("rating %d for scent %s is outside [%d,%d]",
				value, scentID, MinIntensity, MaxIntensity)
		}
	}

	data, err := json.Marshal(ratings)
	if err != nil {
		return err
	}

	s.ScentRatings = data
	return nil
}
