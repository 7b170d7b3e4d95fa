package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/catalog/internal/logger"
	"github.com/bookline/catalog/internal/model"
)

// AuthService issues access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Refresh(ctx context.Context, account model.Account) (string, error)
}

// Auth handles token endpoints.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuth(service AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges an email/password pair for an access token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// Refresh issues a fresh token for the authenticated account.
func (h *Auth) Refresh(c *gin.Context) {
	account, ok := h.contextManager.GetAccountFromContext(c.Request.Context())
	if !ok {
		handleError(c, model.ErrAuthenticationFailed)
		return
	}

	token, err := h.service.Refresh(c.Request.Context(), account)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}
