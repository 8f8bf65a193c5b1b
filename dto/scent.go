package dto

import (
	"time"
)

type ScentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Family      string `json:"family"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type ScentListResponse struct {
	Scents []ScentResponse `json:"scents"`
	Total  int             `json:"total"`
}

// AddScentRequest adds a catalog scent to the user's active collection.
type AddScentRequest struct {
	ScentID string `json:"scent_id" validate:"required"`
}

func (r AddScentRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CollectionScentResponse struct {
	ScentResponse
	AddedAt time.Time `json:"added_at"`
}

type CollectionResponse struct {
	Scents []CollectionScentResponse `json:"scents"`
	Total  int                       `json:"total"`
}

// MediaUploadResponse reports a stored object and its presigned URL.
type MediaUploadResponse struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}
