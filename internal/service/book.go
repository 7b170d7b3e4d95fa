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

// Book manages catalog books. Titles are normalized for storage before
// every uniqueness comparison and write. A book always references an
// existing author; the author check runs before the duplicate-title check.
type Book struct {
	books   model.BookStore
	authors model.AuthorStore
	logger  *logger.Logger
}

func NewBook(books model.BookStore, authors model.AuthorStore, logger *logger.Logger) *Book {
	return &Book{
		books:   books,
		authors: authors,
		logger:  logger,
	}
}

// Create adds a new book under an existing author.
func (s *Book) Create(ctx context.Context, title string, year int, authorID uuid.UUID) (model.Book, error) {
	title = normalize.ForStorage(title)
	if title == "" {
		return model.Book{}, fmt.Errorf("%w: title is required", model.ErrValidation)
	}

	s.logger.Debug("Book service: creating book",
		"title", title,
		"author_id", authorID)

	if _, err := s.authors.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Book{}, model.ErrAuthorNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get author: %w", err)
	}

	if err := s.checkUnique(ctx, title, uuid.Nil); err != nil {
		return model.Book{}, err
	}

	now := time.Now()
	book := model.Book{
		ID:        uuid.New(),
		Title:     title,
		Year:      year,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.books.Create(ctx, book)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Book{}, err
		}
		s.logger.Error("Book service: failed to create book",
			"title", title,
			"error", err.Error())
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.Info("Book service: book created",
		"book_id", saved.ID,
		"title", saved.Title)

	return saved, nil
}

// Get returns a single book by ID.
func (s *Book) Get(ctx context.Context, id uuid.UUID) (model.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Book{}, model.ErrBookNotFound
	}
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

// List returns books matching the filter. The title filter is normalized
// the same way stored titles are.
func (s *Book) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	filter.Title = normalize.ForStorage(filter.Title)

	books, err := s.books.List(ctx, filter)
	if err != nil {
		s.logger.Error("Book service: failed to list books", "error", err.Error())
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

// Update modifies a book's title, year or author. A nil field is left
// unchanged. Retitling to a value that normalizes to the book's own current
// title never conflicts; moving to another author requires that author to
// exist.
func (s *Book) Update(ctx context.Context, id uuid.UUID, title *string, year *int, authorID *uuid.UUID) (model.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Book{}, model.ErrBookNotFound
	}
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to get book: %w", err)
	}

	if authorID != nil {
		if _, err := s.authors.GetByID(ctx, *authorID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.Book{}, model.ErrAuthorNotFound
			}
			return model.Book{}, fmt.Errorf("failed to get author: %w", err)
		}
		book.AuthorID = *authorID
	}

	if title != nil {
		normalized := normalize.ForStorage(*title)
		if normalized == "" {
			return model.Book{}, fmt.Errorf("%w: title is required", model.ErrValidation)
		}
		if err := s.checkUnique(ctx, normalized, id); err != nil {
			return model.Book{}, err
		}
		book.Title = normalized
	}

	if year != nil {
		book.Year = *year
	}

	book.UpdatedAt = time.Now()

	saved, err := s.books.Update(ctx, book)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Book{}, err
		}
		s.logger.Error("Book service: failed to update book",
			"book_id", id,
			"error", err.Error())
		return model.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	s.logger.Info("Book service: book updated", "book_id", saved.ID)

	return saved, nil
}

// Delete removes a book.
func (s *Book) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.books.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrBookNotFound
		}
		return fmt.Errorf("failed to get book: %w", err)
	}

	if err := s.books.Delete(ctx, id); err != nil {
		s.logger.Error("Book service: failed to delete book",
			"book_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete book: %w", err)
	}

	s.logger.Info("Book service: book deleted", "book_id", id)

	return nil
}

func (s *Book) checkUnique(ctx context.Context, title string, selfID uuid.UUID) error {
	existing, err := s.books.GetByTitle(ctx, title)
	if err == nil && existing.ID != selfID {
		return model.ErrBookExists
	}
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get book by title: %w", err)
	}

	return nil
}
