package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookline/catalog/internal/logger"
	"github.com/bookline/catalog/internal/model"
)

// IdentityResolver resolves bearer tokens to accounts.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (model.Account, error)
}

// Authenticate validates bearer tokens and injects the resolved account
// into request context. Every failure is reported identically.
type Authenticate struct {
	resolver       IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, resolves the identity and stores
// it on the request context, or aborts with 401.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" || tokenString == header {
		m.abort(c)
		return
	}

	account, err := m.resolver.ResolveIdentity(c.Request.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: identity resolution failed",
			"path", c.FullPath())
		m.abort(c)
		return
	}

	ctx := m.contextManager.SetAccountToContext(c.Request.Context(), account)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}

func (m *Authenticate) abort(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": model.ErrAuthenticationFailed.Error()})
}
