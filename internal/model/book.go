package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookStore defines persistence operations for books. Title lookups are
// against the normalized stored form.
type BookStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Book, error)
	GetByTitle(ctx context.Context, title string) (Book, error)
	List(ctx context.Context, filter BookFilter) ([]Book, error)
	Create(ctx context.Context, book Book) (Book, error)
	Update(ctx context.Context, book Book) (Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Book represents a catalogued work. Title is kept in its normalized
// storage form. AuthorID is required.
type Book struct {
	ID        uuid.UUID
	Title     string
	Year      int
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookFilter narrows book listings. Title is a substring match, Year an
// exact match when set.
type BookFilter struct {
	Title  string
	Year   *int
	Offset int
	Limit  int
}
