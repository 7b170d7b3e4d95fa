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

// Author manages catalog authors. Names are normalized for storage before
// every uniqueness comparison and write, so two inputs that collapse to the
// same canonical form can never coexist.
type Author struct {
	authors model.AuthorStore
	logger  *logger.Logger
}

func NewAuthor(authors model.AuthorStore, logger *logger.Logger) *Author {
	return &Author{
		authors: authors,
		logger:  logger,
	}
}

// Create adds a new author with a normalized, unique name.
func (s *Author) Create(ctx context.Context, name string) (model.Author, error) {
	name = normalize.ForStorage(name)
	if name == "" {
		return model.Author{}, fmt.Errorf("%w: name is required", model.ErrValidation)
	}

	s.logger.Debug("Author service: creating author", "name", name)

	if err := s.checkUnique(ctx, name, uuid.Nil); err != nil {
		return model.Author{}, err
	}

	now := time.Now()
	author := model.Author{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.authors.Create(ctx, author)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Author{}, err
		}
		s.logger.Error("Author service: failed to create author",
			"name", name,
			"error", err.Error())
		return model.Author{}, fmt.Errorf("failed to create author: %w", err)
	}

	s.logger.Info("Author service: author created",
		"author_id", saved.ID,
		"name", saved.Name)

	return saved, nil
}

// Get returns a single author by ID.
func (s *Author) Get(ctx context.Context, id uuid.UUID) (model.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Author{}, model.ErrAuthorNotFound
	}
	if err != nil {
		return model.Author{}, fmt.Errorf("failed to get author: %w", err)
	}

	return author, nil
}

// List returns authors matching the filter. The name filter is normalized
// the same way stored names are, so the match is case-insensitive.
func (s *Author) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	filter.Name = normalize.ForStorage(filter.Name)

	authors, err := s.authors.List(ctx, filter)
	if err != nil {
		s.logger.Error("Author service: failed to list authors", "error", err.Error())
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

// Update renames an author. Renaming to a value that normalizes to the
// author's own current name never conflicts.
func (s *Author) Update(ctx context.Context, id uuid.UUID, name *string) (model.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Author{}, model.ErrAuthorNotFound
	}
	if err != nil {
		return model.Author{}, fmt.Errorf("failed to get author: %w", err)
	}

	if name != nil {
		normalized := normalize.ForStorage(*name)
		if normalized == "" {
			return model.Author{}, fmt.Errorf("%w: name is required", model.ErrValidation)
		}
		if err := s.checkUnique(ctx, normalized, id); err != nil {
			return model.Author{}, err
		}
		author.Name = normalized
	}

	author.UpdatedAt = time.Now()

	saved, err := s.authors.Update(ctx, author)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Author{}, err
		}
		s.logger.Error("Author service: failed to update author",
			"author_id", id,
			"error", err.Error())
		return model.Author{}, fmt.Errorf("failed to update author: %w", err)
	}

	s.logger.Info("Author service: author updated", "author_id", saved.ID)

	return saved, nil
}

// Delete removes an author and, through the storage cascade, all books the
// author owns.
func (s *Author) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.authors.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to get author: %w", err)
	}

	if err := s.authors.Delete(ctx, id); err != nil {
		s.logger.Error("Author service: failed to delete author",
			"author_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete author: %w", err)
	}

	s.logger.Info("Author service: author deleted", "author_id", id)

	return nil
}

func (s *Author) checkUnique(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.authors.GetByName(ctx, name)
	if err == nil && existing.ID != selfID {
		return model.ErrAuthorExists
	}
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get author by name: %w", err)
	}

	return nil
}
