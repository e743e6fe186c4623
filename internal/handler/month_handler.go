package handler

import (
	"errors"

	"github.com/budgetbook/internal/middleware"
	"github.com/budgetbook/internal/repository"
	"github.com/budgetbook/internal/service"
	"github.com/budgetbook/pkg/response"
	"github.com/gin-gonic/gin"
)

// MonthHandler handles budget month API requests
type MonthHandler struct {
	monthService    *service.MonthService
	outgoingService *service.OutgoingService
}

// NewMonthHandler creates a new MonthHandler
func NewMonthHandler(monthService *service.MonthService, outgoingService *service.OutgoingService) *MonthHandler {
	return &MonthHandler{
		monthService:    monthService,
		outgoingService: outgoingService,
	}
}

// ListMonths handles listing months, newest first
// GET /months
func (h *MonthHandler) ListMonths(c *gin.Context) {
	user := middleware.GetUser(c)

	months, err := h.monthService.ListMonths(user.ID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, months)
}

// CreateMonth handles month creation, including the rollover of the
// previous month's outgoings
// POST /months
func (h *MonthHandler) CreateMonth(c *gin.Context) {
	user := middleware.GetUser(c)

	var req service.MonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	month, err := h.monthService.CreateMonth(user.ID, &req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, month)
}

// UpdateMonth handles editing a month
// PUT /months/:id
func (h *MonthHandler) UpdateMonth(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	var req service.MonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	month, err := h.monthService.UpdateMonth(user.ID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrMonthNotFound) {
			response.NotFound(c, "Month not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, month)
}

// DeleteMonth handles deleting a month
// DELETE /months/:id
func (h *MonthHandler) DeleteMonth(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	if err := h.monthService.DeleteMonth(user.ID, id); err != nil {
		if errors.Is(err, repository.ErrMonthNotFound) {
			response.NotFound(c, "Month not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetSummary returns the derived transfer totals and leftover balance
// for a month, recomputed from its current outgoings
// GET /months/:id/summary
func (h *MonthHandler) GetSummary(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	month, err := h.monthService.GetMonth(user.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrMonthNotFound) {
			response.NotFound(c, "Month not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	outgoings, err := h.outgoingService.ListOutgoings(user.ID, month.ID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, service.ComputeMonthSummary(month, outgoings))
}

// RegisterRoutes registers month routes behind the auth middleware
func (h *MonthHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	months := rg.Group("/months", authMiddleware)
	{
		months.GET("", h.ListMonths)
		months.POST("", h.CreateMonth)
		months.PUT("/:id", h.UpdateMonth)
		months.DELETE("/:id", h.DeleteMonth)
		months.GET("/:id/summary", h.GetSummary)
	}
}
