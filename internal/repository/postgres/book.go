package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookline/catalog/internal/model"
)

var _ model.BookStore = (*BookRepository)(nil)

type BookRepository struct {
	db *Connection
}

func NewBookRepository(db *Connection) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	var book model.Book
	query := `SELECT id, title, year, author_id, created_at, updated_at
			  FROM books WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.Year, &book.AuthorID,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	return book, nil
}

func (r *BookRepository) GetByTitle(ctx context.Context, title string) (model.Book, error) {
	var book model.Book
	query := `SELECT id, title, year, author_id, created_at, updated_at
			  FROM books WHERE title = $1`

	err := r.db.QueryRow(ctx, query, title).Scan(
		&book.ID, &book.Title, &book.Year, &book.AuthorID,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by title: %w", err)
	}

	return book, nil
}

func (r *BookRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	// position() keeps % and _ in the filter literal.
	query := `SELECT id, title, year, author_id, created_at, updated_at FROM books
			  WHERE ($1 = '' OR position($1 in title) > 0)
			  AND ($2::int IS NULL OR year = $2)
			  ORDER BY created_at OFFSET $3 LIMIT $4`

	rows, err := r.db.Query(ctx, query, filter.Title, filter.Year, filter.Offset, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Year, &book.AuthorID,
			&book.CreatedAt, &book.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

func (r *BookRepository) Create(ctx context.Context, book model.Book) (model.Book, error) {
	query := `INSERT INTO books (id, title, year, author_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, title, year, author_id, created_at, updated_at`

	var saved model.Book
	err := r.db.QueryRow(ctx, query,
		book.ID, book.Title, book.Year, book.AuthorID,
		book.CreatedAt, book.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Title, &saved.Year, &saved.AuthorID,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if dupErr, ok := duplicateError(err); ok {
			return model.Book{}, dupErr
		}
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	return saved, nil
}

func (r *BookRepository) Update(ctx context.Context, book model.Book) (model.Book, error) {
	query := `UPDATE books SET title = $2, year = $3, author_id = $4, updated_at = $5
			  WHERE id = $1
			  RETURNING id, title, year, author_id, created_at, updated_at`

	var saved model.Book
	err := r.db.QueryRow(ctx, query,
		book.ID, book.Title, book.Year, book.AuthorID, book.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Title, &saved.Year, &saved.AuthorID,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		if dupErr, ok := duplicateError(err); ok {
			return model.Book{}, dupErr
		}
		return model.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return saved, nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
