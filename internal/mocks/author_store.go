package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bookline/catalog/internal/model"
)

// AuthorStore is a testify mock for model.AuthorStore.
type AuthorStore struct {
	mock.Mock
}

func (m *AuthorStore) GetByID(ctx context.Context, id uuid.UUID) (model.Author, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *AuthorStore) GetByName(ctx context.Context, name string) (model.Author, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *AuthorStore) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *AuthorStore) Create(ctx context.Context, author model.Author) (model.Author, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *AuthorStore) Update(ctx context.Context, author model.Author) (model.Author, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *AuthorStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
