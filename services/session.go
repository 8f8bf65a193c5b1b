package services

import (
	"sort"

	"github.com/alphabatem/common/context"
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/model"
	"github.com/aroma-labs/aroma_api/services/repositories"
	"github.com/aroma-labs/aroma_api/shared"
)

// SessionService serves the stored training history and accepts records
// completed outside a live engine run.
type SessionService struct {
	context.DefaultService
	sqlSvc      *SqliteService
	progressSvc *ProgressService

	sessionRepo *repositories.SessionRepository
}

const SESSION_SVC = "session_svc"

func (svc SessionService) Id() string {
	return SESSION_SVC
}

func (svc *SessionService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)

	svc.sessionRepo = repositories.NewSessionRepository(svc.sqlSvc.Db())
	return nil
}

// GetSessions lists the user's history, newest first.
func (svc *SessionService) GetSessions(userID string) (*dto.SessionListResponse, error) {
	records, err := svc.sessionRepo.ListSessions(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	resp := &dto.SessionListResponse{
		Sessions: make([]dto.SessionResponse, 0, len(records)),
		Total:    len(records),
	}

	for i := range records {
		session, err := mapSessionToResponse(&records[i])
		if err != nil {
			return nil, err
		}
		resp.Sessions = append(resp.Sessions, session)
	}

	return resp, nil
}

func (svc *SessionService) GetSession(userID, sessionID string) (*dto.SessionResponse, error) {
	record, err := svc.sessionRepo.GetSession(userID, sessionID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	session, err := mapSessionToResponse(record)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// AppendSession stores a completed session that ran without a live engine
// (an offline client sync), then folds it into the user's progress.
func (svc *SessionService) AppendSession(userID string, req dto.AppendSessionRequest) (*dto.CompleteSessionResponse, error) {
	record := &model.TrainingSession{
		UserID:      userID,
		Completed:   true,
		DurationSec: req.DurationSec,
	}

	if req.CreatedAt != nil {
		record.CreatedAt = *req.CreatedAt
	}

	if err := record.SetRatings(req.ScentRatings); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid scent ratings")
	}

	stored, err := svc.sessionRepo.AppendSession(record)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	progress, err := svc.progressSvc.EvaluateProgress(userID)
	if err != nil {
		return nil, err
	}

	session, err := mapSessionToResponse(stored)
	if err != nil {
		return nil, err
	}

	return &dto.CompleteSessionResponse{
		Session:  session,
		Progress: *progress,
	}, nil
}

func mapSessionToResponse(record *model.TrainingSession) (dto.SessionResponse, error) {
	ratings, err := record.Ratings()
	if err != nil {
		return dto.SessionResponse{}, shared.NewInternalError(err, "Corrupt session record")
	}

	return dto.SessionResponse{
		ID:           record.ID,
		Completed:    record.Completed,
		ScentRatings: ratings,
		DurationSec:  record.DurationSec,
		CreatedAt:    record.CreatedAt,
	}, nil
}
