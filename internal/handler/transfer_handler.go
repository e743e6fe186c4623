package handler

import (
	"errors"

	"github.com/budgetbook/internal/middleware"
	"github.com/budgetbook/internal/repository"
	"github.com/budgetbook/internal/service"
	"github.com/budgetbook/pkg/response"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfer API requests
type TransferHandler struct {
	transferService *service.TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// ListTransfers handles listing a month's transfers in creation order
// GET /transfers?month_id=
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	user := middleware.GetUser(c)

	monthID := c.Query("month_id")
	if monthID == "" {
		response.BadRequest(c, "month_id query param is required")
		return
	}

	transfers, err := h.transferService.ListTransfers(user.ID, monthID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, transfers)
}

// CreateTransfer handles creating a transfer
// POST /transfers
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	user := middleware.GetUser(c)

	var req service.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transfer, err := h.transferService.CreateTransfer(user.ID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrMonthNotFound) {
			response.NotFound(c, "Month not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, transfer)
}

// UpdateTransfer handles editing a transfer
// PUT /transfers/:id
func (h *TransferHandler) UpdateTransfer(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	var req service.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transfer, err := h.transferService.UpdateTransfer(user.ID, id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrTransferNotFound) {
			response.NotFound(c, "Transfer not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, transfer)
}

// DeleteTransfer handles deleting a transfer
// DELETE /transfers/:id
func (h *TransferHandler) DeleteTransfer(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	if err := h.transferService.DeleteTransfer(user.ID, id); err != nil {
		if errors.Is(err, repository.ErrTransferNotFound) {
			response.NotFound(c, "Transfer not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"id": id})
}

// RegisterRoutes registers transfer routes behind the auth middleware
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	transfers := rg.Group("/transfers", authMiddleware)
	{
		transfers.GET("", h.ListTransfers)
		transfers.POST("", h.CreateTransfer)
		transfers.PUT("/:id", h.UpdateTransfer)
		transfers.DELETE("/:id", h.DeleteTransfer)
	}
}
