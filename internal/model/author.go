package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthorStore defines persistence operations for authors. Name lookups are
// against the normalized stored form. Delete cascades to owned books.
type AuthorStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Author, error)
	GetByName(ctx context.Context, name string) (Author, error)
	List(ctx context.Context, filter AuthorFilter) ([]Author, error)
	Create(ctx context.Context, author Author) (Author, error)
	Update(ctx context.Context, author Author) (Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Author represents a literary author. Name is kept in its normalized
// storage form.
type Author struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthorFilter narrows author listings. Name is a substring match.
type AuthorFilter struct {
	Name   string
	Offset int
	Limit  int
}
