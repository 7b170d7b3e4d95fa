package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookline/catalog/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	var account model.Account
	query := `SELECT id, username, email, password_hash, created_at, updated_at
			  FROM accounts WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	var account model.Account
	query := `SELECT id, username, email, password_hash, created_at, updated_at
			  FROM accounts WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (model.Account, error) {
	var account model.Account
	query := `SELECT id, username, email, password_hash, created_at, updated_at
			  FROM accounts WHERE username = $1`

	err := r.db.QueryRow(ctx, query, username).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) List(ctx context.Context, offset, limit int) ([]model.Account, error) {
	query := `SELECT id, username, email, password_hash, created_at, updated_at
			  FROM accounts ORDER BY created_at OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(
			&account.ID, &account.Username, &account.Email, &account.PasswordHash,
			&account.CreatedAt, &account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (id, username, email, password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, username, email, password_hash, created_at, updated_at`

	var saved model.Account
	err := r.db.QueryRow(ctx, query,
		account.ID, account.Username, account.Email, account.PasswordHash,
		account.CreatedAt, account.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Username, &saved.Email, &saved.PasswordHash,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if dupErr, ok := duplicateError(err); ok {
			return model.Account{}, dupErr
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) Update(ctx context.Context, account model.Account) (model.Account, error) {
	query := `UPDATE accounts
			  SET username = $2, email = $3, password_hash = $4, updated_at = $5
			  WHERE id = $1
			  RETURNING id, username, email, password_hash, created_at, updated_at`

	var saved model.Account
	err := r.db.QueryRow(ctx, query,
		account.ID, account.Username, account.Email, account.PasswordHash, account.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Username, &saved.Email, &saved.PasswordHash,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		if dupErr, ok := duplicateError(err); ok {
			return model.Account{}, dupErr
		}
		return model.Account{}, fmt.Errorf("failed to update account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
