package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookline/catalog/internal/logger"
	"github.com/bookline/catalog/internal/model"
	"github.com/bookline/catalog/internal/normalize"
)

// BookService manages catalog books.
type BookService interface {
	Create(ctx context.Context, title string, year int, authorID uuid.UUID) (model.Book, error)
	Get(ctx context.Context, id uuid.UUID) (model.Book, error)
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	Update(ctx context.Context, id uuid.UUID, title *string, year *int, authorID *uuid.UUID) (model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Book handles book endpoints. Stored titles are canonical lowercase;
// responses render them in display form.
type Book struct {
	service BookService
	logger  *logger.Logger
}

func NewBook(service BookService, logger *logger.Logger) *Book {
	return &Book{service: service, logger: logger}
}

type createBookRequest struct {
	Title string `json:"title" binding:"required"`
	// Pointer so a present zero year passes the required check.
	Year     *int      `json:"year" binding:"required"`
	AuthorID uuid.UUID `json:"author_id" binding:"required"`
}

type updateBookRequest struct {
	Title    *string    `json:"title"`
	Year     *int       `json:"year"`
	AuthorID *uuid.UUID `json:"author_id"`
}

type bookResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Year     int       `json:"year"`
	AuthorID uuid.UUID `json:"author_id"`
}

type bookListQuery struct {
	Title  string `form:"title"`
	Year   *int   `form:"year"`
	Offset int    `form:"offset,default=0"`
	Limit  int    `form:"limit,default=20"`
}

func newBookResponse(book model.Book) bookResponse {
	return bookResponse{
		ID:       book.ID,
		Title:    normalize.ForDisplay(book.Title),
		Year:     book.Year,
		AuthorID: book.AuthorID,
	}
}

// Create adds a new book under an existing author.
func (h *Book) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.service.Create(c.Request.Context(), req.Title, *req.Year, req.AuthorID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookResponse(book))
}

// Get returns a single book by ID.
func (h *Book) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	book, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookResponse(book))
}

// List returns books matching the title and year filters.
func (h *Book) List(c *gin.Context) {
	var query bookListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	books, err := h.service.List(c.Request.Context(), model.BookFilter{
		Title:  query.Title,
		Year:   query.Year,
		Offset: query.Offset,
		Limit:  query.Limit,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]bookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, newBookResponse(book))
	}

	c.JSON(http.StatusOK, gin.H{"books": responses})
}

// Update modifies a book. Absent fields are left unchanged.
func (h *Book) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, req.Title, req.Year, req.AuthorID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookResponse(book))
}

// Delete removes a book.
func (h *Book) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
