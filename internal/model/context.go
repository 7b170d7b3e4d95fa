package model

import "context"

// ContextManager carries the authenticated account through request context.
type ContextManager interface {
	SetAccountToContext(ctx context.Context, account Account) context.Context
	GetAccountFromContext(ctx context.Context) (Account, bool)
}
