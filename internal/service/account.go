package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookline/catalog/internal/logger"
	"github.com/bookline/catalog/internal/model"
	"github.com/bookline/catalog/internal/normalize"
)

// Account manages account registration and self-scoped mutation. Username
// and email uniqueness is checked before every write; the username collision
// is reported first when both fields conflict.
type Account struct {
	accounts model.AccountStore
	hasher   model.PasswordHasher
	logger   *logger.Logger
}

func NewAccount(accounts model.AccountStore, hasher model.PasswordHasher, logger *logger.Logger) *Account {
	return &Account{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register creates a new account. Open to unauthenticated callers.
func (s *Account) Register(ctx context.Context, username, email, password string) (model.Account, error) {
	username = normalize.ForStorage(username)
	if username == "" {
		return model.Account{}, fmt.Errorf("%w: username is required", model.ErrValidation)
	}
	email = normalize.Email(email)

	s.logger.Debug("Account service: registering account",
		"username", username,
		"email", email)

	if err := s.checkUnique(ctx, username, email, uuid.Nil); err != nil {
		return model.Account{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Account service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := model.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Account{}, err
		}
		s.logger.Error("Account service: failed to create account",
			"username", username,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account service: account registered",
		"account_id", saved.ID,
		"username", saved.Username)

	return saved, nil
}

// Get returns a single account by ID.
func (s *Account) Get(ctx context.Context, id uuid.UUID) (model.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// List returns accounts paginated by offset and limit.
func (s *Account) List(ctx context.Context, offset, limit int) ([]model.Account, error) {
	accounts, err := s.accounts.List(ctx, offset, limit)
	if err != nil {
		s.logger.Error("Account service: failed to list accounts", "error", err.Error())
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

// Update replaces the username, email and password of the identity's own
// account. Mutating any other account is denied.
func (s *Account) Update(ctx context.Context, identity model.Account, targetID uuid.UUID, username, email, password string) (model.Account, error) {
	if identity.ID != targetID {
		s.logger.Info("Account service: update denied",
			"account_id", identity.ID,
			"target_id", targetID)
		return model.Account{}, model.ErrPermissionDenied
	}

	username = normalize.ForStorage(username)
	if username == "" {
		return model.Account{}, fmt.Errorf("%w: username is required", model.ErrValidation)
	}
	email = normalize.Email(email)

	if err := s.checkUnique(ctx, username, email, targetID); err != nil {
		return model.Account{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := identity
	account.Username = username
	account.Email = email
	account.PasswordHash = hash
	account.UpdatedAt = time.Now()

	saved, err := s.accounts.Update(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Account{}, err
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.Account{}, model.ErrAccountNotFound
		}
		s.logger.Error("Account service: failed to update account",
			"account_id", targetID,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to update account: %w", err)
	}

	s.logger.Info("Account service: account updated", "account_id", saved.ID)

	return saved, nil
}

// Delete removes the identity's own account. Mutating any other account is
// denied. Catalog data is untouched.
func (s *Account) Delete(ctx context.Context, identity model.Account, targetID uuid.UUID) error {
	if identity.ID != targetID {
		s.logger.Info("Account service: delete denied",
			"account_id", identity.ID,
			"target_id", targetID)
		return model.ErrPermissionDenied
	}

	if err := s.accounts.Delete(ctx, targetID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrAccountNotFound
		}
		s.logger.Error("Account service: failed to delete account",
			"account_id", targetID,
			"error", err.Error())
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("Account service: account deleted", "account_id", targetID)

	return nil
}

// checkUnique enforces username and email uniqueness, skipping the entity's
// own row on update. Username is checked first.
func (s *Account) checkUnique(ctx context.Context, username, email string, selfID uuid.UUID) error {
	existing, err := s.accounts.GetByUsername(ctx, username)
	if err == nil && existing.ID != selfID {
		return model.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get account by username: %w", err)
	}

	existing, err = s.accounts.GetByEmail(ctx, email)
	if err == nil && existing.ID != selfID {
		return model.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get account by email: %w", err)
	}

	return nil
}
