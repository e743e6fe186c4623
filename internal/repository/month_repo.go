package repository

import (
	"errors"

	"github.com/budgetbook/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMonthNotFound = errors.New("month not found")
)

// MonthRepository handles month data access
type MonthRepository struct {
	db *gorm.DB
}

// NewMonthRepository creates a new MonthRepository
func NewMonthRepository(db *gorm.DB) *MonthRepository {
	return &MonthRepository{db: db}
}

// ListByUserID retrieves all months for a user, newest first
func (r *MonthRepository) ListByUserID(userID string) ([]models.Month, error) {
	var months []models.Month
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&months)
	if result.Error != nil {
		return nil, result.Error
	}
	return months, nil
}

// GetByIDAndUserID retrieves a month by ID scoped to its owner
func (r *MonthRepository) GetByIDAndUserID(id, userID string) (*models.Month, error) {
	var month models.Month
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&month)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMonthNotFound
		}
		return nil, result.Error
	}
	return &month, nil
}

// CreateWithRollover creates a month and copies every outgoing of the
// user's most recently created other month into it, all in one
// transaction. A user's first month gets no copies; transfers are
// never copied.
func (r *MonthRepository) CreateWithRollover(month *models.Month) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(month).Error; err != nil {
			return err
		}

		var previous models.Month
		err := tx.Where("user_id = ? AND id <> ?", month.UserID, month.ID).
			Order("created_at DESC").
			First(&previous).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var outgoings []models.Outgoing
		if err := tx.Where("month_id = ?", previous.ID).Find(&outgoings).Error; err != nil {
			return err
		}
		if len(outgoings) == 0 {
			return nil
		}

		copies := make([]models.Outgoing, len(outgoings))
		for i, item := range outgoings {
			copies[i] = models.Outgoing{
				UserID:      month.UserID,
				MonthID:     month.ID,
				Name:        item.Name,
				DueDay:      item.DueDay,
				AccountCode: item.AccountCode,
				Amount:      item.Amount,
				IsRecurring: item.IsRecurring,
			}
		}

		return tx.Create(&copies).Error
	})
}

// Update updates a month
func (r *MonthRepository) Update(month *models.Month) error {
	return r.db.Save(month).Error
}

// DeleteByIDAndUserID deletes a month scoped to its owner. Zero matched
// rows is reported as not found. Child outgoings and transfers are
// removed by the datastore's cascading constraints.
func (r *MonthRepository) DeleteByIDAndUserID(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Month{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMonthNotFound
	}
	return nil
}
