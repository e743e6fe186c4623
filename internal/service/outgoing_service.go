package service

import (
	"strings"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
)

// OutgoingService handles expense item operations
type OutgoingService struct {
	outgoingRepo *repository.OutgoingRepository
	monthRepo    *repository.MonthRepository
}

// NewOutgoingService creates a new OutgoingService
func NewOutgoingService(
	outgoingRepo *repository.OutgoingRepository,
	monthRepo *repository.MonthRepository,
) *OutgoingService {
	return &OutgoingService{
		outgoingRepo: outgoingRepo,
		monthRepo:    monthRepo,
	}
}

// ListOutgoings lists a month's outgoings ordered by due day
func (s *OutgoingService) ListOutgoings(userID, monthID string) ([]models.Outgoing, error) {
	return s.outgoingRepo.ListByMonthAndUserID(monthID, userID)
}

// CreateOutgoingRequest represents the create outgoing request
type CreateOutgoingRequest struct {
	MonthID     string  `json:"month_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	DueDay      int     `json:"due_day" binding:"required,min=1,max=31"`
	AccountCode string  `json:"account_code" binding:"required"`
	Amount      float64 `json:"amount"`
	IsRecurring *bool   `json:"is_recurring"`
}

// CreateOutgoing creates an outgoing after checking the target month
// belongs to the caller. An unowned month reads as not found.
// is_recurring defaults to true when omitted.
func (s *OutgoingService) CreateOutgoing(userID string, req *CreateOutgoingRequest) (*models.Outgoing, error) {
	month, err := s.monthRepo.GetByIDAndUserID(req.MonthID, userID)
	if err != nil {
		return nil, err
	}

	isRecurring := true
	if req.IsRecurring != nil {
		isRecurring = *req.IsRecurring
	}

	outgoing := &models.Outgoing{
		UserID:      userID,
		MonthID:     month.ID,
		Name:        strings.TrimSpace(req.Name),
		DueDay:      req.DueDay,
		AccountCode: strings.ToUpper(strings.TrimSpace(req.AccountCode)),
		Amount:      req.Amount,
		IsRecurring: isRecurring,
	}

	if err := s.outgoingRepo.Create(outgoing); err != nil {
		return nil, err
	}

	return outgoing, nil
}

// UpdateOutgoingRequest represents the update outgoing request
type UpdateOutgoingRequest struct {
	Name        string  `json:"name" binding:"required"`
	DueDay      int     `json:"due_day" binding:"required,min=1,max=31"`
	AccountCode string  `json:"account_code" binding:"required"`
	Amount      float64 `json:"amount"`
	IsRecurring bool    `json:"is_recurring"`
}

// UpdateOutgoing edits an outgoing scoped to its owner
func (s *OutgoingService) UpdateOutgoing(userID, id string, req *UpdateOutgoingRequest) (*models.Outgoing, error) {
	outgoing, err := s.outgoingRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	outgoing.Name = strings.TrimSpace(req.Name)
	outgoing.DueDay = req.DueDay
	outgoing.AccountCode = strings.ToUpper(strings.TrimSpace(req.AccountCode))
	outgoing.Amount = req.Amount
	outgoing.IsRecurring = req.IsRecurring

	if err := s.outgoingRepo.Update(outgoing); err != nil {
		return nil, err
	}

	return outgoing, nil
}

// DeleteOutgoing removes an outgoing scoped to its owner
func (s *OutgoingService) DeleteOutgoing(userID, id string) error {
	return s.outgoingRepo.DeleteByIDAndUserID(id, userID)
}
