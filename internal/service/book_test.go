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

func TestBook_Create_Success(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	authorID := uuid.New()
	authors.On("GetByID", mock.Anything, authorID).Return(model.Author{ID: authorID}, nil)
	books.On("GetByTitle", mock.Anything, "dom casmurro").Return(model.Book{}, model.ErrNotFound)
	books.On("Create", mock.Anything, mock.MatchedBy(func(b model.Book) bool {
		return b.Title == "dom casmurro" && b.Year == 1899 && b.AuthorID == authorID
	})).Return(model.Book{ID: uuid.New(), Title: "dom casmurro", Year: 1899, AuthorID: authorID}, nil)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	saved, err := s.Create(ctx, "Dom Casmurro!", 1899, authorID)
	require.NoError(t, err)
	assert.Equal(t, "dom casmurro", saved.Title)
}

func TestBook_Create_UnknownAuthorTakesPrecedence(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	authorID := uuid.New()
	authors.On("GetByID", mock.Anything, authorID).Return(model.Author{}, model.ErrNotFound)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	// The title is unique, yet the missing author must fail first.
	_, err := s.Create(ctx, "A Unique Title", 2001, authorID)
	require.ErrorIs(t, err, model.ErrAuthorNotFound)
	books.AssertNotCalled(t, "GetByTitle", mock.Anything, mock.Anything)
}

func TestBook_Create_CaseInsensitiveDuplicate(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	authorID := uuid.New()
	authors.On("GetByID", mock.Anything, authorID).Return(model.Author{ID: authorID}, nil)
	books.On("GetByTitle", mock.Anything, "dom casmurro").
		Return(model.Book{ID: uuid.New(), Title: "dom casmurro"}, nil)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, "DOM CASMURRO", 1899, authorID)
	require.ErrorIs(t, err, model.ErrBookExists)
}

func TestBook_Update_RetitleToOwnTitleNeverConflicts(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	id := uuid.New()
	book := model.Book{ID: id, Title: "dom casmurro", Year: 1899, AuthorID: uuid.New()}
	books.On("GetByID", mock.Anything, id).Return(book, nil)
	books.On("GetByTitle", mock.Anything, "dom casmurro").Return(book, nil)
	books.On("Update", mock.Anything, mock.Anything).Return(book, nil)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	title := "Dom Casmurro"
	_, err := s.Update(ctx, id, &title, nil, nil)
	require.NoError(t, err)
}

func TestBook_Update_MoveToUnknownAuthor(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	id := uuid.New()
	books.On("GetByID", mock.Anything, id).Return(model.Book{ID: id, Title: "dom casmurro"}, nil)

	newAuthor := uuid.New()
	authors.On("GetByID", mock.Anything, newAuthor).Return(model.Author{}, model.ErrNotFound)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, id, nil, nil, &newAuthor)
	require.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestBook_Update_YearOnly(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	id := uuid.New()
	book := model.Book{ID: id, Title: "dom casmurro", Year: 1899}
	books.On("GetByID", mock.Anything, id).Return(book, nil)
	books.On("Update", mock.Anything, mock.MatchedBy(func(b model.Book) bool {
		return b.Year == 1900 && b.Title == "dom casmurro"
	})).Return(model.Book{ID: id, Title: "dom casmurro", Year: 1900}, nil)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	year := 1900
	saved, err := s.Update(ctx, id, nil, &year, nil)
	require.NoError(t, err)
	assert.Equal(t, 1900, saved.Year)
	books.AssertNotCalled(t, "GetByTitle", mock.Anything, mock.Anything)
}

func TestBook_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	id := uuid.New()
	books.On("GetByID", mock.Anything, id).Return(model.Book{}, model.ErrNotFound)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	title := "Some Title"
	_, err := s.Update(ctx, id, &title, nil, nil)
	require.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestBook_Delete_Success(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	id := uuid.New()
	books.On("GetByID", mock.Anything, id).Return(model.Book{ID: id}, nil)
	books.On("Delete", mock.Anything, id).Return(nil)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	require.NoError(t, s.Delete(ctx, id))
}

func TestBook_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	id := uuid.New()
	books.On("GetByID", mock.Anything, id).Return(model.Book{}, model.ErrNotFound)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	err := s.Delete(ctx, id)
	require.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestBook_List_NormalizesTitleFilter(t *testing.T) {
	ctx := context.Background()
	books := &mocks.BookStore{}
	authors := &mocks.AuthorStore{}

	year := 1899
	books.On("List", mock.Anything, model.BookFilter{Title: "casmurro", Year: &year, Limit: 20}).
		Return([]model.Book{{Title: "dom casmurro"}}, nil)

	s := NewBook(books, authors, testutil.MakeNoopLogger())

	list, err := s.List(ctx, model.BookFilter{Title: " CASMURRO ", Year: &year, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
