package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookline/catalog/internal/model"
)

var _ model.AuthorStore = (*AuthorRepository)(nil)

type AuthorRepository struct {
	db *Connection
}

func NewAuthorRepository(db *Connection) *AuthorRepository {
	return &AuthorRepository{
		db: db,
	}
}

func (r *AuthorRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Author, error) {
	var author model.Author
	query := `SELECT id, name, created_at, updated_at FROM authors WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&author.ID, &author.Name, &author.CreatedAt, &author.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, model.ErrNotFound
		}
		return model.Author{}, fmt.Errorf("failed to get author by id: %w", err)
	}

	return author, nil
}

func (r *AuthorRepository) GetByName(ctx context.Context, name string) (model.Author, error) {
	var author model.Author
	query := `SELECT id, name, created_at, updated_at FROM authors WHERE name = $1`

	err := r.db.QueryRow(ctx, query, name).Scan(
		&author.ID, &author.Name, &author.CreatedAt, &author.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, model.ErrNotFound
		}
		return model.Author{}, fmt.Errorf("failed to get author by name: %w", err)
	}

	return author, nil
}

func (r *AuthorRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	// position() keeps % and _ in the filter literal.
	query := `SELECT id, name, created_at, updated_at FROM authors
			  WHERE ($1 = '' OR position($1 in name) > 0)
			  ORDER BY created_at OFFSET $2 LIMIT $3`

	rows, err := r.db.Query(ctx, query, filter.Name, filter.Offset, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var author model.Author
		if err := rows.Scan(&author.ID, &author.Name, &author.CreatedAt, &author.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

func (r *AuthorRepository) Create(ctx context.Context, author model.Author) (model.Author, error) {
	query := `INSERT INTO authors (id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, created_at, updated_at`

	var saved model.Author
	err := r.db.QueryRow(ctx, query,
		author.ID, author.Name, author.CreatedAt, author.UpdatedAt,
	).Scan(&saved.ID, &saved.Name, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if dupErr, ok := duplicateError(err); ok {
			return model.Author{}, dupErr
		}
		return model.Author{}, fmt.Errorf("failed to create author: %w", err)
	}

	return saved, nil
}

func (r *AuthorRepository) Update(ctx context.Context, author model.Author) (model.Author, error) {
	query := `UPDATE authors SET name = $2, updated_at = $3 WHERE id = $1
			  RETURNING id, name, created_at, updated_at`

	var saved model.Author
	err := r.db.QueryRow(ctx, query, author.ID, author.Name, author.UpdatedAt).
		Scan(&saved.ID, &saved.Name, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, model.ErrNotFound
		}
		if dupErr, ok := duplicateError(err); ok {
			return model.Author{}, dupErr
		}
		return model.Author{}, fmt.Errorf("failed to update author: %w", err)
	}

	return saved, nil
}

// Delete removes an author; owned books go with it through the ON DELETE
// CASCADE constraint on books.author_id.
func (r *AuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
