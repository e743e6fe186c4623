package repository

import (
	"errors"

	"github.com/budgetbook/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository handles session data access. Rows are keyed by the
// token digest and are only ever created and deleted, never updated.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByTokenHash retrieves a session by its token digest
func (r *SessionRepository) GetByTokenHash(tokenHash string) (*models.Session, error) {
	var session models.Session
	result := r.db.Where("token_hash = ?", tokenHash).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, result.Error
	}
	return &session, nil
}

// DeleteByTokenHash deletes the session matching a token digest.
// Deleting a missing session is not an error.
func (r *SessionRepository) DeleteByTokenHash(tokenHash string) error {
	return r.db.Where("token_hash = ?", tokenHash).Delete(&models.Session{}).Error
}

// DeleteByUserID deletes all sessions for a user
func (r *SessionRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}
