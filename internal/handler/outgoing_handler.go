package handler

import (
	"errors"

	"github.com/budgetbook/internal/middleware"
	"github.com/budgetbook/internal/repository"
	"github.com/budgetbook/internal/service"
	"github.com/budgetbook/pkg/response"
	"github.com/gin-gonic/gin"
)

// OutgoingHandler handles expense item API requests
type OutgoingHandler struct {
	outgoingService *service.OutgoingService
}

// NewOutgoingHandler creates a new OutgoingHandler
func NewOutgoingHandler(outgoingService *service.OutgoingService) *OutgoingHandler {
	return &OutgoingHandler{
		outgoingService: outgoingService,
	}
}

// ListOutgoings handles listing a month's outgoings by due day
// GET /expenses?month_id=
func (h *OutgoingHandler) ListOutgoings(c *gin.Context) {
	user := middleware.GetUser(c)

	monthID := c.Query("month_id")
	if monthID == "" {
		response.BadRequest(c, "month_id query param is required")
		return
	}

	outgoings, err := h.outgoingService.ListOutgoings(user.ID, monthID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, outgoings)
}

// CreateOutgoing handles creating an outgoing
// POST /expenses
func (h *OutgoingHandler) CreateOutgoing(c *gin.Context) {
	user := middleware.GetUser(c)

	var req service.CreateOutgoingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outgoing, err := h.outgoingService.CreateOutgoing(user.ID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrMonthNotFound) {
			response.NotFound(c, "Month not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, outgoing)
}

// UpdateOutgoing handles editing an outgoing
// PUT /expenses/:id
func (h *OutgoingHandler) UpdateOutgoing(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	var req service.UpdateOutgoingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	outgoing, err := h.outgoingService.UpdateOutgoing(user.ID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrOutgoingNotFound) {
			response.NotFound(c, "Monthly outgoing not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, outgoing)
}

// DeleteOutgoing handles deleting an outgoing
// DELETE /expenses/:id
func (h *OutgoingHandler) DeleteOutgoing(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	if err := h.outgoingService.DeleteOutgoing(user.ID, id); err != nil {
		if errors.Is(err, repository.ErrOutgoingNotFound) {
			response.NotFound(c, "Monthly outgoing not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"id": id})
}

// RegisterRoutes registers outgoing routes behind the auth middleware
func (h *OutgoingHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	expenses := rg.Group("/expenses", authMiddleware)
	{
		expenses.GET("", h.ListOutgoings)
		expenses.POST("", h.CreateOutgoing)
		expenses.PUT("/:id", h.UpdateOutgoing)
		expenses.DELETE("/:id", h.DeleteOutgoing)
	}
}
