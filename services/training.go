package services

import (
	"errors"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/engine"
	"github.com/aroma-labs/aroma_api/model"
	"github.com/aroma-labs/aroma_api/services/repositories"
	"github.com/aroma-labs/aroma_api/shared"
	log "github.com/sirupsen/logrus"
)

// TrainingService owns the live, in-memory training sessions. One session
// runs per user at a time; a single ticker goroutine advances every timed
// countdown once per second. All engine access is serialized by the
// service mutex because the engine itself is not goroutine safe.
type TrainingService struct {
	context.DefaultService
	sqlSvc        *SqliteService
	scentSvc      *ScentService
	progressSvc   *ProgressService
	monitoringSvc *MonitoringService

	sessionRepo *repositories.SessionRepository

	mu     sync.Mutex
	active map[string]*engine.Session
	closed chan struct{}
}

const TRAINING_SVC = "training_svc"

func (svc TrainingService) Id() string {
	return TRAINING_SVC
}

func (svc *TrainingService) Configure(ctx *context.Context) error {
	svc.active = make(map[string]*engine.Session)
	svc.closed = make(chan struct{})
	return svc.DefaultService.Configure(ctx)
}

func (svc *TrainingService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.scentSvc = svc.Service(SCENT_SVC).(*ScentService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.sessionRepo = repositories.NewSessionRepository(svc.sqlSvc.Db())

	go svc.tickLoop()

	return nil
}

func (svc *TrainingService) Shutdown() {
	close(svc.closed)
}

// tickLoop drives every active countdown. Paused sessions and sessions
// waiting on a rating ignore ticks, so unconditional ticking is safe.
func (svc *TrainingService) tickLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.mu.Lock()
			for _, session := range svc.active {
				session.Tick()
			}
			svc.mu.Unlock()
		case <-svc.closed:
			return
		}
	}
}

// StartSession opens a new live session over the requested scents. Any
// session already running for the user is discarded unfinished.
func (svc *TrainingService) StartSession(userID string, req dto.StartTrainingRequest) (*dto.TrainingStateResponse, error) {
	var scents []model.Scent
	var err error

	if len(req.ScentIDs) > 0 {
		scents, err = svc.scentSvc.ScentsByIDs(req.ScentIDs)
	} else {
		scents, err = svc.scentSvc.CollectionScents(userID)
	}
	if err != nil {
		return nil, err
	}

	session, err := engine.New(scents)
	if err != nil {
		if errors.Is(err, engine.ErrNoScents) {
			return nil, shared.NewBadRequestError(err, "No scents available for training")
		}
		return nil, shared.NewInternalError(err, "Failed to create session")
	}

	svc.mu.Lock()
	if _, exists := svc.active[userID]; exists {
		log.Printf("Replacing unfinished training session for user %s", userID)
	}
	svc.active[userID] = session
	svc.monitoringSvc.SetActiveTrainingSessions(len(svc.active))
	state := session.Snapshot()
	svc.mu.Unlock()

	return &dto.TrainingStateResponse{State: state, Active: true}, nil
}

// BeginSession leaves the intro and starts the first breathing countdown.
func (svc *TrainingService) BeginSession(userID string) (*dto.TrainingStateResponse, error) {
	return svc.withSession(userID, func(session *engine.Session) error {
		return session.Begin()
	})
}

// GetState returns the current snapshot of the user's live session.
func (svc *TrainingService) GetState(userID string) (*dto.TrainingStateResponse, error) {
	return svc.withSession(userID, func(session *engine.Session) error {
		return nil
	})
}

// PauseSession halts the countdown of the current timed phase.
func (svc *TrainingService) PauseSession(userID string) (*dto.TrainingStateResponse, error) {
	return svc.withSession(userID, func(session *engine.Session) error {
		return session.Pause()
	})
}

// ResumeSession continues a paused countdown.
func (svc *TrainingService) ResumeSession(userID string) (*dto.TrainingStateResponse, error) {
	return svc.withSession(userID, func(session *engine.Session) error {
		return session.Resume()
	})
}

// RestartPhase resets the current timed phase to its full duration.
func (svc *TrainingService) RestartPhase(userID string) (*dto.TrainingStateResponse, error) {
	return svc.withSession(userID, func(session *engine.Session) error {
		return session.Restart()
	})
}

// SkipPhase ends the current timed phase immediately.
func (svc *TrainingService) SkipPhase(userID string) (*dto.TrainingStateResponse, error) {
	return svc.withSession(userID, func(session *engine.Session) error {
		return session.Skip()
	})
}

// SubmitRating records the intensity for the scent just smelled. When the
// final scent is rated, the session is persisted and progress evaluated;
// completed is non-nil in that case and state is nil.
func (svc *TrainingService) SubmitRating(userID string, req dto.SubmitRatingRequest) (*dto.TrainingStateResponse, *dto.CompleteSessionResponse, error) {
	svc.mu.Lock()

	session, ok := svc.active[userID]
	if !ok {
		svc.mu.Unlock()
		return nil, nil, shared.NewNotFoundError(nil, "No active training session")
	}

	result, err := session.SubmitRating(req.Intensity)
	if err != nil {
		svc.mu.Unlock()
		return nil, nil, mapEngineError(err)
	}

	if result == nil {
		state := session.Snapshot()
		svc.mu.Unlock()
		return &dto.TrainingStateResponse{State: state, Active: true}, nil, nil
	}

	delete(svc.active, userID)
	svc.monitoringSvc.SetActiveTrainingSessions(len(svc.active))
	svc.mu.Unlock()

	completed, err := svc.completeSession(userID, result)
	if err != nil {
		return nil, nil, err
	}

	return nil, completed, nil
}

// AbandonSession discards the live session, persisting whatever was rated
// as an incomplete record. Incomplete records never count toward
// analytics.
func (svc *TrainingService) AbandonSession(userID string) error {
	svc.mu.Lock()

	session, ok := svc.active[userID]
	if !ok {
		svc.mu.Unlock()
		return shared.NewNotFoundError(nil, "No active training session")
	}

	ratings := session.Ratings()
	delete(svc.active, userID)
	svc.monitoringSvc.SetActiveTrainingSessions(len(svc.active))
	svc.mu.Unlock()

	if len(ratings) == 0 {
		return nil
	}

	record := &model.TrainingSession{
		UserID:    userID,
		Completed: false,
	}

	if err := record.SetRatings(ratings); err != nil {
		return shared.NewInternalError(err, "Failed to encode ratings")
	}

	if _, err := svc.sessionRepo.AppendSession(record); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	return nil
}

// completeSession persists the finished run and folds it into the user's
// progress.
func (svc *TrainingService) completeSession(userID string, result *engine.Result) (*dto.CompleteSessionResponse, error) {
	record := &model.TrainingSession{
		UserID:      userID,
		Completed:   true,
		DurationSec: int(result.CompletedAt.Sub(result.StartedAt).Seconds()),
		CreatedAt:   result.CompletedAt,
	}

	if err := record.SetRatings(result.Ratings); err != nil {
		return nil, shared.NewInternalError(err, "Failed to encode ratings")
	}

	stored, err := svc.sessionRepo.AppendSession(record)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.monitoringSvc.RecordSessionCompleted()

	progress, err := svc.progressSvc.EvaluateProgress(userID)
	if err != nil {
		return nil, err
	}

	return &dto.CompleteSessionResponse{
		Session: dto.SessionResponse{
			ID:           stored.ID,
			Completed:    stored.Completed,
			ScentRatings: result.Ratings,
			DurationSec:  stored.DurationSec,
			CreatedAt:    stored.CreatedAt,
		},
		Progress: *progress,
	}, nil
}

// withSession runs op on the user's live session under the service mutex
// and returns the resulting snapshot.
func (svc *TrainingService) withSession(userID string, op func(*engine.Session) error) (*dto.TrainingStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	session, ok := svc.active[userID]
	if !ok {
		return nil, shared.NewNotFoundError(nil, "No active training session")
	}

	if err := op(session); err != nil {
		return nil, mapEngineError(err)
	}

	state := session.Snapshot()
	return &dto.TrainingStateResponse{State: state, Active: true}, nil
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrNotTimedPhase):
		return shared.NewBadRequestError(err, "Control not available in this phase")
	case errors.Is(err, engine.ErrNotRating):
		return shared.NewBadRequestError(err, "Session is not awaiting a rating")
	case errors.Is(err, engine.ErrRatingOutOfRange):
		return shared.NewBadRequestError(err, "Rating must be between 0 and 10")
	case errors.Is(err, engine.ErrInvalidTransition):
		return shared.NewBadRequestError(err, "Invalid session transition")
	}

	return shared.NewInternalError(err, "Session error")
}
