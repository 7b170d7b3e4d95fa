package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookline/catalog/internal/logger"
	"github.com/bookline/catalog/internal/model"
	"github.com/bookline/catalog/internal/normalize"
)

// Auth verifies credentials, issues tokens and resolves bearer tokens to
// accounts. Bad credentials, bad tokens, missing subject claims and unknown
// subjects are all reported as the same authentication failure so callers
// cannot probe which accounts exist.
type Auth struct {
	accounts model.AccountStore
	tokens   model.TokenManager
	hasher   model.PasswordHasher
	logger   *logger.Logger
}

func NewAuth(
	accounts model.AccountStore,
	tokens model.TokenManager,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts: accounts,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
	}
}

// Login verifies the email/password pair and issues a signed access token.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	email = normalize.Email(email)
	a.logger.Debug("Auth service: login attempt", "email", email)

	account, err := a.accounts.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrAuthenticationFailed
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get account by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get account by email: %w", err)
	}

	if !a.hasher.Verify(password, account.PasswordHash) {
		a.logger.Info("Auth service: password mismatch", "email", email)
		return "", model.ErrAuthenticationFailed
	}

	signed, err := a.tokens.Generate(account.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login successful", "email", email)

	return signed, nil
}

// Refresh issues a fresh token for an already-resolved account.
func (a *Auth) Refresh(ctx context.Context, account model.Account) (string, error) {
	signed, err := a.tokens.Generate(account.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to refresh token",
			"email", account.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return signed, nil
}

// ResolveIdentity validates a bearer token and looks up the account named
// by its subject claim.
func (a *Auth) ResolveIdentity(ctx context.Context, tokenString string) (model.Account, error) {
	subject, err := a.tokens.Parse(tokenString)
	if err != nil {
		return model.Account{}, model.ErrAuthenticationFailed
	}
	if subject == "" {
		return model.Account{}, model.ErrAuthenticationFailed
	}

	account, err := a.accounts.GetByEmail(ctx, subject)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, model.ErrAuthenticationFailed
	}
	if err != nil {
		a.logger.Error("Auth service: failed to resolve token subject",
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}
