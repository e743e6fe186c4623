package repository

import (
	"errors"

	"github.com/budgetbook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account code already exists")
)

// AccountRepository handles account data access
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}

// ListByUserID retrieves all accounts for a user ordered by code
func (r *AccountRepository) ListByUserID(userID string) ([]models.Account, error) {
	var accounts []models.Account
	result := r.db.Where("user_id = ?", userID).Order("code ASC").Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

// CountByUserID counts accounts for a user
func (r *AccountRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// SeedDefaults inserts the given starter accounts in a single transaction.
// Conflicts on (user_id, code) are ignored, so concurrent first-time
// listings cannot create duplicate seed rows.
func (r *AccountRepository) SeedDefaults(accounts []models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&accounts).Error
	})
}

// GetByCodeAndUserID retrieves an account by code and owning user
func (r *AccountRepository) GetByCodeAndUserID(code, userID string) (*models.Account, error) {
	var account models.Account
	result := r.db.Where("code = ? AND user_id = ?", code, userID).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, result.Error
	}
	return &account, nil
}

// Update updates an account
func (r *AccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}

// DeleteByCodeAndUserID deletes an account by code scoped to its owner.
// Zero matched rows is reported as not found.
func (r *AccountRepository) DeleteByCodeAndUserID(code, userID string) error {
	result := r.db.Where("code = ? AND user_id = ?", code, userID).Delete(&models.Account{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
