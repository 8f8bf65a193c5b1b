package services

import (
	"github.com/alphabatem/common/context"
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/model"
	"github.com/aroma-labs/aroma_api/services/repositories"
	"github.com/aroma-labs/aroma_api/shared"
)

// ScentService exposes the scent catalog and each user's training
// collection.
type ScentService struct {
	context.DefaultService
	sqlSvc *SqliteService

	scentRepo *repositories.ScentRepository
}

const SCENT_SVC = "scent_svc"

func (svc ScentService) Id() string {
	return SCENT_SVC
}

func (svc *ScentService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.scentRepo = repositories.NewScentRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *ScentService) GetScents() (*dto.ScentListResponse, error) {
	scents, err := svc.scentRepo.ListScents()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.ScentListResponse{
		Scents: make([]dto.ScentResponse, 0, len(scents)),
		Total:  len(scents),
	}

	for _, scent := range scents {
		resp.Scents = append(resp.Scents, mapScentToResponse(scent))
	}

	return resp, nil
}

func (svc *ScentService) GetCollection(userID string) (*dto.CollectionResponse, error) {
	collection, err := svc.scentRepo.ListCollection(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.CollectionResponse{
		Scents: make([]dto.CollectionScentResponse, 0, len(collection)),
		Total:  len(collection),
	}

	for _, entry := range collection {
		resp.Scents = append(resp.Scents, dto.CollectionScentResponse{
			ScentResponse: mapScentToResponse(entry.Scent),
			AddedAt:       entry.AddedAt,
		})
	}

	return resp, nil
}

func (svc *ScentService) AddToCollection(userID string, req dto.AddScentRequest) (*dto.CollectionResponse, error) {
	scent, err := svc.scentRepo.GetScent(req.ScentID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if !scent.IsActive {
		return nil, shared.NewBadRequestError(nil, "Scent is not available")
	}

	if err := svc.scentRepo.AddToCollection(userID, scent.ID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return svc.GetCollection(userID)
}

func (svc *ScentService) RemoveFromCollection(userID, scentID string) (*dto.CollectionResponse, error) {
	if err := svc.scentRepo.RemoveFromCollection(userID, scentID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return svc.GetCollection(userID)
}

// CollectionScents returns the scent models for a live session snapshot.
// An empty collection falls back to the full active catalog so a new user
// can train immediately.
func (svc *ScentService) CollectionScents(userID string) ([]model.Scent, error) {
	collection, err := svc.scentRepo.ListCollection(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if len(collection) == 0 {
		scents, err := svc.scentRepo.ListScents()
		if err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
		return scents, nil
	}

	scents := make([]model.Scent, 0, len(collection))
	for _, entry := range collection {
		scents = append(scents, entry.Scent)
	}

	return scents, nil
}

// ScentsByIDs resolves an explicit scent selection for a session snapshot.
func (svc *ScentService) ScentsByIDs(ids []string) ([]model.Scent, error) {
	scents := make([]model.Scent, 0, len(ids))
	for _, id := range ids {
		scent, err := svc.scentRepo.GetScent(id)
		if err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
		scents = append(scents, *scent)
	}

	return scents, nil
}

// ScentNames maps every catalog id to its display name, used when
// rendering progress moments.
func (svc *ScentService) ScentNames() (map[string]string, error) {
	scents, err := svc.scentRepo.ListScents()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	names := make(map[string]string, len(scents))
	for _, scent := range scents {
		names[scent.ID] = scent.Name
	}

	return names, nil
}

func mapScentToResponse(scent model.Scent) dto.ScentResponse {
	return dto.ScentResponse{
		ID:          scent.ID,
		Name:        scent.Name,
		Family:      scent.Family,
		Description: scent.Description,
		ImageURL:    scent.ImageURL,
	}
}
