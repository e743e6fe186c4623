package service

import (
	"errors"
	"strings"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
)

var (
	ErrAccountCodeRequired = errors.New("account code is required")
	ErrBankNameRequired    = errors.New("bank name is required")
)

// starterAccounts are created the first time a user lists accounts
// with none on record.
var starterAccounts = []struct {
	Code     string
	BankName string
}{
	{"N", "Account N"},
	{"B", "Account B"},
	{"C", "Account C"},
}

// AccountService handles bank account operations
type AccountService struct {
	accountRepo *repository.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// ListAccounts lists a user's accounts ordered by code. A user with no
// accounts gets the three starter accounts seeded first; the seed
// insert ignores (user_id, code) conflicts so a concurrent first
// listing cannot duplicate them.
func (s *AccountService) ListAccounts(userID string) ([]models.Account, error) {
	accounts, err := s.accountRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) > 0 {
		return accounts, nil
	}

	seeds := make([]models.Account, len(starterAccounts))
	for i, starter := range starterAccounts {
		seeds[i] = models.Account{
			UserID:   userID,
			Code:     starter.Code,
			BankName: starter.BankName,
		}
	}
	if err := s.accountRepo.SeedDefaults(seeds); err != nil {
		return nil, err
	}

	return s.accountRepo.ListByUserID(userID)
}

// CreateAccountRequest represents the create account request
type CreateAccountRequest struct {
	Code     string `json:"code" binding:"required"`
	BankName string `json:"bank_name" binding:"required"`
}

// CreateAccount creates a new account. The code is trimmed and
// upper-cased before storage.
func (s *AccountService) CreateAccount(userID string, req *CreateAccountRequest) (*models.Account, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, ErrAccountCodeRequired
	}
	bankName := strings.TrimSpace(req.BankName)
	if bankName == "" {
		return nil, ErrBankNameRequired
	}

	account := &models.Account{
		UserID:   userID,
		Code:     code,
		BankName: bankName,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	return account, nil
}

// UpdateAccountRequest represents the rename account request
type UpdateAccountRequest struct {
	BankName string `json:"bank_name" binding:"required"`
}

// UpdateAccount renames an account identified by code. A code owned by
// another user matches nothing and reads as not found.
func (s *AccountService) UpdateAccount(userID, code string, req *UpdateAccountRequest) (*models.Account, error) {
	account, err := s.accountRepo.GetByCodeAndUserID(code, userID)
	if err != nil {
		return nil, err
	}

	account.BankName = strings.TrimSpace(req.BankName)
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteAccount removes an account identified by code, scoped to its owner
func (s *AccountService) DeleteAccount(userID, code string) error {
	return s.accountRepo.DeleteByCodeAndUserID(code, userID)
}
