package repository

import (
	"errors"

	"github.com/budgetbook/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTransferNotFound = errors.New("transfer not found")
)

// TransferRepository handles transfer item data access
type TransferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new TransferRepository
func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

// Create creates a new transfer
func (r *TransferRepository) Create(transfer *models.Transfer) error {
	return r.db.Create(transfer).Error
}

// ListByMonthAndUserID retrieves a month's transfers in creation order
func (r *TransferRepository) ListByMonthAndUserID(monthID, userID string) ([]models.Transfer, error) {
	var transfers []models.Transfer
	result := r.db.Where("user_id = ? AND month_id = ?", userID, monthID).
		Order("created_at ASC").
		Find(&transfers)
	if result.Error != nil {
		return nil, result.Error
	}
	return transfers, nil
}

// GetByIDAndUserID retrieves a transfer by ID scoped to its owner
func (r *TransferRepository) GetByIDAndUserID(id, userID string) (*models.Transfer, error) {
	var transfer models.Transfer
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transfer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, result.Error
	}
	return &transfer, nil
}

// Update updates a transfer
func (r *TransferRepository) Update(transfer *models.Transfer) error {
	return r.db.Save(transfer).Error
}

// DeleteByIDAndUserID deletes a transfer scoped to its owner. Zero
// matched rows is reported as not found.
func (r *TransferRepository) DeleteByIDAndUserID(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transfer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransferNotFound
	}
	return nil
}
