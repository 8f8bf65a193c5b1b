package handlers

import (
	"mime/multipart"

	"github.com/aroma-labs/aroma_api/analytics"
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/gofiber/fiber/v2"
)

type AuthServiceInterface interface {
	RequiredAuth() fiber.Handler
}

type TrainingServiceInterface interface {
	StartSession(userID string, req dto.StartTrainingRequest) (*dto.TrainingStateResponse, error)
	BeginSession(userID string) (*dto.TrainingStateResponse, error)
	GetState(userID string) (*dto.TrainingStateResponse, error)
	PauseSession(userID string) (*dto.TrainingStateResponse, error)
	ResumeSession(userID string) (*dto.TrainingStateResponse, error)
	RestartPhase(userID string) (*dto.TrainingStateResponse, error)
	SkipPhase(userID string) (*dto.TrainingStateResponse, error)
	SubmitRating(userID string, req dto.SubmitRatingRequest) (*dto.TrainingStateResponse, *dto.CompleteSessionResponse, error)
	AbandonSession(userID string) error
}

type SessionServiceInterface interface {
	GetSessions(userID string) (*dto.SessionListResponse, error)
	GetSession(userID, sessionID string) (*dto.SessionResponse, error)
	AppendSession(userID string, req dto.AppendSessionRequest) (*dto.CompleteSessionResponse, error)
}

type ProgressServiceInterface interface {
	GetStats(userID string) (*analytics.Stats, error)
	GetAchievements(userID string) (*dto.AchievementListResponse, error)
	GetMoments(userID string) (*dto.MomentListResponse, error)
	CreateShareContent(userID string, req dto.ShareRequest) (*dto.ShareResponse, error)
}

type ScentServiceInterface interface {
	GetScents() (*dto.ScentListResponse, error)
	GetCollection(userID string) (*dto.CollectionResponse, error)
	AddToCollection(userID string, req dto.AddScentRequest) (*dto.CollectionResponse, error)
	RemoveFromCollection(userID, scentID string) (*dto.CollectionResponse, error)
}

type MediaServiceInterface interface {
	UploadScentImage(scentID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadShareCard(userID string, image []byte, contentType string) (string, error)
}
