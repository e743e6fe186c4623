package service

import (
	"strings"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
)

// TransferService handles inter-account transfer operations
type TransferService struct {
	transferRepo *repository.TransferRepository
	monthRepo    *repository.MonthRepository
}

// NewTransferService creates a new TransferService
func NewTransferService(
	transferRepo *repository.TransferRepository,
	monthRepo *repository.MonthRepository,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		monthRepo:    monthRepo,
	}
}

// ListTransfers lists a month's transfers in creation order
func (s *TransferService) ListTransfers(userID, monthID string) ([]models.Transfer, error) {
	return s.transferRepo.ListByMonthAndUserID(monthID, userID)
}

// CreateTransferRequest represents the create transfer request
type CreateTransferRequest struct {
	MonthID       string  `json:"month_id" binding:"required"`
	ToAccountCode string  `json:"to_account_code" binding:"required"`
	Amount        float64 `json:"amount"`
	Note          string  `json:"note"`
}

// noteOrNil turns a blank note into null
func noteOrNil(note string) *string {
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		return &trimmed
	}
	return nil
}

// CreateTransfer creates a transfer after checking the target month
// belongs to the caller. An unowned month reads as not found.
func (s *TransferService) CreateTransfer(userID string, req *CreateTransferRequest) (*models.Transfer, error) {
	month, err := s.monthRepo.GetByIDAndUserID(req.MonthID, userID)
	if err != nil {
		return nil, err
	}

	transfer := &models.Transfer{
		UserID:        userID,
		MonthID:       month.ID,
		ToAccountCode: strings.ToUpper(strings.TrimSpace(req.ToAccountCode)),
		Amount:        req.Amount,
		Note:          noteOrNil(req.Note),
	}

	if err := s.transferRepo.Create(transfer); err != nil {
		return nil, err
	}

	return transfer, nil
}

// UpdateTransferRequest represents the update transfer request
type UpdateTransferRequest struct {
	ToAccountCode string  `json:"to_account_code" binding:"required"`
	Amount        float64 `json:"amount"`
	Note          string  `json:"note"`
}

// UpdateTransfer edits a transfer scoped to its owner
func (s *TransferService) UpdateTransfer(userID, id string, req *UpdateTransferRequest) (*models.Transfer, error) {
	transfer, err := s.transferRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	transfer.ToAccountCode = strings.ToUpper(strings.TrimSpace(req.ToAccountCode))
	transfer.Amount = req.Amount
	transfer.Note = noteOrNil(req.Note)

	if err := s.transferRepo.Update(transfer); err != nil {
		return nil, err
	}

	return transfer, nil
}

// DeleteTransfer removes a transfer scoped to its owner
func (s *TransferService) DeleteTransfer(userID, id string) error {
	return s.transferRepo.DeleteByIDAndUserID(id, userID)
}
