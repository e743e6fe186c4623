package repository

import (
	"errors"

	"github.com/budgetbook/internal/models"
	"gorm.io/gorm"
)

var (
	ErrOutgoingNotFound = errors.New("monthly outgoing not found")
)

// OutgoingRepository handles expense item data access
type OutgoingRepository struct {
	db *gorm.DB
}

// NewOutgoingRepository creates a new OutgoingRepository
func NewOutgoingRepository(db *gorm.DB) *OutgoingRepository {
	return &OutgoingRepository{db: db}
}

// Create creates a new outgoing
func (r *OutgoingRepository) Create(outgoing *models.Outgoing) error {
	return r.db.Create(outgoing).Error
}

// ListByMonthAndUserID retrieves a month's outgoings ordered by due day
func (r *OutgoingRepository) ListByMonthAndUserID(monthID, userID string) ([]models.Outgoing, error) {
	var outgoings []models.Outgoing
	result := r.db.Where("user_id = ? AND month_id = ?", userID, monthID).
		Order("due_day ASC").
		Find(&outgoings)
	if result.Error != nil {
		return nil, result.Error
	}
	return outgoings, nil
}

// GetByIDAndUserID retrieves an outgoing by ID scoped to its owner
func (r *OutgoingRepository) GetByIDAndUserID(id, userID string) (*models.Outgoing, error) {
	var outgoing models.Outgoing
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&outgoing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOutgoingNotFound
		}
		return nil, result.Error
	}
	return &outgoing, nil
}

// Update updates an outgoing
func (r *OutgoingRepository) Update(outgoing *models.Outgoing) error {
	return r.db.Save(outgoing).Error
}

// DeleteByIDAndUserID deletes an outgoing scoped to its owner. Zero
// matched rows is reported as not found.
func (r *OutgoingRepository) DeleteByIDAndUserID(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Outgoing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOutgoingNotFound
	}
	return nil
}
