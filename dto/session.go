package dto

import (
	"time"

	"github.com/aroma-labs/aroma_api/engine"
)

// SubmitRatingRequest carries one perceived-intensity rating for the scent
// currently presented by the session engine.
type SubmitRatingRequest struct {
	Intensity int `json:"intensity" validate:"gte=0,lte=10"`
}

func (r SubmitRatingRequest) Validate() error {
	return GetValidator().Struct(r)
}

// AppendSessionRequest persists a session record completed outside a live
// engine run (e.g. a client that finished offline).
type AppendSessionRequest struct {
	ScentRatings map[string]int `json:"scent_ratings" validate:"required,min=1"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	DurationSec  int            `json:"duration_sec" validate:"gte=0"`
}

func (r AppendSessionRequest) Validate() error {
	return GetValidator().Struct(r)
}

// StartTrainingRequest opens a live training session. When ScentIDs is
// empty the user's collection is used, falling back to the full catalog.
type StartTrainingRequest struct {
	ScentIDs []string `json:"scent_ids"`
}

// TrainingStateResponse is the engine snapshot rendered to the UI.
type TrainingStateResponse struct {
	State  engine.State `json:"state"`
	Active bool         `json:"active"`
}

// SessionResponse mirrors a stored training session record.
type SessionResponse struct {
	ID           string         `json:"id"`
	Completed    bool           `json:"completed"`
	ScentRatings map[string]int `json:"scent_ratings"`
	DurationSec  int            `json:"duration_sec"`
	CreatedAt    time.Time      `json:"created_at"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// CompleteSessionResponse is returned when a live session finishes: the
// stored record plus the analytics evaluated against the updated history.
type CompleteSessionResponse struct {
	Session  SessionResponse  `json:"session"`
	Progress ProgressResponse `json:"progress"`
}
