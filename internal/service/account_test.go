package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bookline/catalog/internal/mocks"
	"github.com/bookline/catalog/internal/model"
	"github.com/bookline/catalog/internal/testutil"
)

func TestAccount_Register_Success(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	accounts.On("GetByUsername", mock.Anything, "dora").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "dora@example.com").Return(model.Account{}, model.ErrNotFound)
	hasher.On("Hash", "secret").Return("hashed", nil)
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.Username == "dora" && a.Email == "dora@example.com" && a.PasswordHash == "hashed"
	})).Return(model.Account{ID: uuid.New(), Username: "dora", Email: "dora@example.com"}, nil)

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	saved, err := s.Register(ctx, " Dora ", " Dora@Example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "dora", saved.Username)
	assert.Equal(t, "dora@example.com", saved.Email)
}

func TestAccount_Register_BlankUsername(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	// Normalization strips punctuation and whitespace to nothing.
	_, err := s.Register(ctx, " ?! ", "dora@example.com", "secret")
	require.ErrorIs(t, err, model.ErrValidation)
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccount_Register_UsernameCheckedFirst(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	// Both fields collide; the username conflict must win.
	accounts.On("GetByUsername", mock.Anything, "dora").Return(model.Account{ID: uuid.New()}, nil)
	accounts.On("GetByEmail", mock.Anything, "dora@example.com").Return(model.Account{ID: uuid.New()}, nil)

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	_, err := s.Register(ctx, "dora", "dora@example.com", "secret")
	require.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestAccount_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	accounts.On("GetByUsername", mock.Anything, "dora").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "dora@example.com").Return(model.Account{ID: uuid.New()}, nil)

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	_, err := s.Register(ctx, "dora", "dora@example.com", "secret")
	require.ErrorIs(t, err, model.ErrEmailTaken)
	require.ErrorIs(t, err, model.ErrDuplicate)
}

func TestAccount_Register_StorageBackstopConflict(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	// Pre-check passes but a concurrent insert wins the race; the storage
	// constraint violation must surface as the same duplicate error.
	accounts.On("GetByUsername", mock.Anything, "dora").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "dora@example.com").Return(model.Account{}, model.ErrNotFound)
	hasher.On("Hash", "secret").Return("hashed", nil)
	accounts.On("Create", mock.Anything, mock.Anything).Return(model.Account{}, model.ErrUsernameTaken)

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	_, err := s.Register(ctx, "dora", "dora@example.com", "secret")
	require.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestAccount_Update_Self(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	identity := model.Account{ID: uuid.New(), Username: "dora", Email: "dora@example.com"}

	accounts.On("GetByUsername", mock.Anything, "dora maar").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "dora@example.com").Return(identity, nil)
	hasher.On("Hash", "new-secret").Return("new-hash", nil)
	accounts.On("Update", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.ID == identity.ID && a.Username == "dora maar" && a.PasswordHash == "new-hash"
	})).Return(model.Account{ID: identity.ID, Username: "dora maar", Email: "dora@example.com"}, nil)

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	saved, err := s.Update(ctx, identity, identity.ID, "Dora  Maar", "dora@example.com", "new-secret")
	require.NoError(t, err)
	assert.Equal(t, "dora maar", saved.Username)
}

func TestAccount_Update_KeepingOwnValuesDoesNotConflict(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	identity := model.Account{ID: uuid.New(), Username: "dora", Email: "dora@example.com"}

	// Lookups find the account itself; that must not count as a duplicate.
	accounts.On("GetByUsername", mock.Anything, "dora").Return(identity, nil)
	accounts.On("GetByEmail", mock.Anything, "dora@example.com").Return(identity, nil)
	hasher.On("Hash", "secret").Return("hash", nil)
	accounts.On("Update", mock.Anything, mock.Anything).Return(identity, nil)

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, identity, identity.ID, "dora", "dora@example.com", "secret")
	require.NoError(t, err)
}

func TestAccount_Update_BlankUsername(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	identity := model.Account{ID: uuid.New(), Username: "dora", Email: "dora@example.com"}

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, identity, identity.ID, " ?! ", "dora@example.com", "secret")
	require.ErrorIs(t, err, model.ErrValidation)
	accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAccount_Update_OtherAccountDenied(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}
	hasher := &mocks.PasswordHasher{}

	identity := model.Account{ID: uuid.New()}

	s := NewAccount(accounts, hasher, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, identity, uuid.New(), "dora", "dora@example.com", "secret")
	require.ErrorIs(t, err, model.ErrPermissionDenied)
	accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAccount_Delete_Self(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}

	identity := model.Account{ID: uuid.New()}
	accounts.On("Delete", mock.Anything, identity.ID).Return(nil)

	s := NewAccount(accounts, &mocks.PasswordHasher{}, testutil.MakeNoopLogger())

	require.NoError(t, s.Delete(ctx, identity, identity.ID))
}

func TestAccount_Delete_OtherAccountDenied(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}

	identity := model.Account{ID: uuid.New()}

	s := NewAccount(accounts, &mocks.PasswordHasher{}, testutil.MakeNoopLogger())

	err := s.Delete(ctx, identity, uuid.New())
	require.ErrorIs(t, err, model.ErrPermissionDenied)
	accounts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAccount_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}

	id := uuid.New()
	accounts.On("GetByID", mock.Anything, id).Return(model.Account{}, model.ErrNotFound)

	s := NewAccount(accounts, &mocks.PasswordHasher{}, testutil.MakeNoopLogger())

	_, err := s.Get(ctx, id)
	require.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestAccount_List(t *testing.T) {
	ctx := context.Background()
	accounts := &mocks.AccountStore{}

	accounts.On("List", mock.Anything, 0, 10).Return([]model.Account{{Username: "dora"}}, nil)

	s := NewAccount(accounts, &mocks.PasswordHasher{}, testutil.MakeNoopLogger())

	list, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
