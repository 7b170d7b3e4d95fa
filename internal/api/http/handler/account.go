package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookline/catalog/internal/logger"
	"github.com/bookline/catalog/internal/model"
)

// AccountService manages account lifecycle.
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (model.Account, error)
	Get(ctx context.Context, id uuid.UUID) (model.Account, error)
	List(ctx context.Context, offset, limit int) ([]model.Account, error)
	Update(ctx context.Context, identity model.Account, targetID uuid.UUID, username, email, password string) (model.Account, error)
	Delete(ctx context.Context, identity model.Account, targetID uuid.UUID) error
}

// Account handles account endpoints.
type Account struct {
	service        AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAccount(service AccountService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type accountRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type accountResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type accountListQuery struct {
	Offset int `form:"offset,default=0"`
	Limit  int `form:"limit,default=10"`
}

func newAccountResponse(account model.Account) accountResponse {
	return accountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	}
}

// Create registers a new account. Open to unauthenticated callers.
func (h *Account) Create(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAccountResponse(account))
}

// Get returns a single account by ID.
func (h *Account) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	account, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}

// List returns a page of accounts.
func (h *Account) List(c *gin.Context) {
	var query accountListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accounts, err := h.service.List(c.Request.Context(), query.Offset, query.Limit)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, newAccountResponse(account))
	}

	c.JSON(http.StatusOK, gin.H{"accounts": responses})
}

// Update replaces the authenticated account's own fields.
func (h *Account) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, ok := h.contextManager.GetAccountFromContext(c.Request.Context())
	if !ok {
		handleError(c, model.ErrAuthenticationFailed)
		return
	}

	account, err := h.service.Update(c.Request.Context(), identity, id, req.Username, req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Delete removes the authenticated account's own record.
func (h *Account) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	identity, ok := h.contextManager.GetAccountFromContext(c.Request.Context())
	if !ok {
		handleError(c, model.ErrAuthenticationFailed)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
