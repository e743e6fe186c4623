package handler

import (
	"errors"

	"github.com/budgetbook/internal/middleware"
	"github.com/budgetbook/internal/repository"
	"github.com/budgetbook/internal/service"
	"github.com/budgetbook/pkg/response"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles bank account API requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// ListAccounts handles listing (and first-time seeding of) accounts
// GET /accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	user := middleware.GetUser(c)

	accounts, err := h.accountService.ListAccounts(user.ID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, accounts)
}

// CreateAccount handles account creation
// POST /accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	user := middleware.GetUser(c)

	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(user.ID, &req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, account)
}

// UpdateAccount handles renaming an account
// PUT /accounts/:code
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	user := middleware.GetUser(c)
	code := c.Param("code")

	var req service.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(user.ID, code, &req)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.NotFound(c, "Account not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, account)
}

// DeleteAccount handles deleting an account
// DELETE /accounts/:code
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	user := middleware.GetUser(c)
	code := c.Param("code")

	if err := h.accountService.DeleteAccount(user.ID, code); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.NotFound(c, "Account not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"code": code})
}

// RegisterRoutes registers account routes behind the auth middleware
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	accounts := rg.Group("/accounts", authMiddleware)
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.PUT("/:code", h.UpdateAccount)
		accounts.DELETE("/:code", h.DeleteAccount)
	}
}
