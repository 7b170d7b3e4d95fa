package model

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories. Handlers map
// these to stable HTTP statuses; nothing below them leaks to the client.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")

	ErrAuthenticationFailed = errors.New("could not validate credentials")
	ErrPermissionDenied     = errors.New("not enough permissions")
	ErrValidation           = errors.New("invalid input")
)

// Entity-qualified variants. Each matches its generic sentinel through
// errors.Is, so callers can branch on either the kind or the entity.
var (
	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrAuthorNotFound  = fmt.Errorf("author %w", ErrNotFound)
	ErrBookNotFound    = fmt.Errorf("book %w", ErrNotFound)

	ErrUsernameTaken = fmt.Errorf("username %w", ErrDuplicate)
	ErrEmailTaken    = fmt.Errorf("email %w", ErrDuplicate)
	ErrAuthorExists  = fmt.Errorf("author %w", ErrDuplicate)
	ErrBookExists    = fmt.Errorf("book %w", ErrDuplicate)
)
