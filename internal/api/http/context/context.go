package context

import (
	"context"

	"github.com/bookline/catalog/internal/model"
)

type contextKey int

// accountKey is the context key under which the authenticated account is stored.
const accountKey contextKey = iota

// Manager stores and retrieves the authenticated account on request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAccountToContext returns a context carrying the authenticated account.
func (m *Manager) SetAccountToContext(ctx context.Context, account model.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// GetAccountFromContext retrieves the authenticated account from the context.
// The boolean reports whether an account was present.
func (m *Manager) GetAccountFromContext(ctx context.Context) (model.Account, bool) {
	account, ok := ctx.Value(accountKey).(model.Account)
	return account, ok
}
