package service

import (
	"strings"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
)

// MonthService handles budget month operations, including the rollover
// of the previous month's outgoings into every newly created month.
type MonthService struct {
	monthRepo *repository.MonthRepository
}

// NewMonthService creates a new MonthService
func NewMonthService(monthRepo *repository.MonthRepository) *MonthService {
	return &MonthService{monthRepo: monthRepo}
}

// ListMonths lists a user's months, newest first
func (s *MonthService) ListMonths(userID string) ([]models.Month, error) {
	return s.monthRepo.ListByUserID(userID)
}

// GetMonth retrieves a single month scoped to its owner
func (s *MonthService) GetMonth(userID, id string) (*models.Month, error) {
	return s.monthRepo.GetByIDAndUserID(id, userID)
}

// MonthRequest represents the create/update month request
type MonthRequest struct {
	MonthLabel  string  `json:"month_label" binding:"required"`
	Wage        float64 `json:"wage"`
	FloatAmount float64 `json:"float_amount"`
}

// startingPoint derives the balance available for outgoings once the
// month's float reserve is set aside.
func startingPoint(wage, floatAmount float64) float64 {
	return wage - floatAmount
}

// CreateMonth creates a month and rolls the previous month's outgoings
// into it. Creation and rollover run in one transaction, so a failed
// copy leaves no half-created month behind.
func (s *MonthService) CreateMonth(userID string, req *MonthRequest) (*models.Month, error) {
	month := &models.Month{
		UserID:        userID,
		MonthLabel:    strings.TrimSpace(req.MonthLabel),
		Wage:          req.Wage,
		FloatAmount:   req.FloatAmount,
		StartingPoint: startingPoint(req.Wage, req.FloatAmount),
	}

	if err := s.monthRepo.CreateWithRollover(month); err != nil {
		return nil, err
	}

	return month, nil
}

// UpdateMonth edits a month's fields, recomputing the starting point
func (s *MonthService) UpdateMonth(userID, id string, req *MonthRequest) (*models.Month, error) {
	month, err := s.monthRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	month.MonthLabel = strings.TrimSpace(req.MonthLabel)
	month.Wage = req.Wage
	month.FloatAmount = req.FloatAmount
	month.StartingPoint = startingPoint(req.Wage, req.FloatAmount)

	if err := s.monthRepo.Update(month); err != nil {
		return nil, err
	}

	return month, nil
}

// DeleteMonth removes a month scoped to its owner
func (s *MonthService) DeleteMonth(userID, id string) error {
	return s.monthRepo.DeleteByIDAndUserID(id, userID)
}
