package repositories

import (
	"time"

	"github.com/aroma-labs/aroma_api/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles training session record persistence.
type SessionRepository struct {
	BaseRepository
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ListSessions returns every session record for the user, incomplete ones
// included. No ordering is guaranteed; analytics sorts explicitly.
func (r *SessionRepository) ListSessions(userID string) ([]model.TrainingSession, error) {
	var sessions []model.TrainingSession
	if err := r.db.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// AppendSession persists a session record, assigning id and created-at when
// the caller did not provide them.
func (r *SessionRepository) AppendSession(session *model.TrainingSession) (*model.TrainingSession, error) {
	if session.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		session.ID = id.String()
	}

	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

func (r *SessionRepository) UpdateSession(session *model.TrainingSession) error {
	session.UpdatedAt = time.Now()
	return r.db.Save(session).Error
}

func (r *SessionRepository) GetSession(userID, sessionID string) (*model.TrainingSession, error) {
	var session model.TrainingSession
	if err := r.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}
