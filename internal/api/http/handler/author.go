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

// AuthorService manages catalog authors.
type AuthorService interface {
	Create(ctx context.Context, name string) (model.Author, error)
	Get(ctx context.Context, id uuid.UUID) (model.Author, error)
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, error)
	Update(ctx context.Context, id uuid.UUID, name *string) (model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Author handles author endpoints. Stored names are canonical lowercase;
// responses render them in display form.
type Author struct {
	service AuthorService
	logger  *logger.Logger
}

func NewAuthor(service AuthorService, logger *logger.Logger) *Author {
	return &Author{service: service, logger: logger}
}

type createAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateAuthorRequest struct {
	Name *string `json:"name"`
}

type authorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type authorListQuery struct {
	Name   string `form:"name"`
	Offset int    `form:"offset,default=0"`
	Limit  int    `form:"limit,default=20"`
}

func newAuthorResponse(author model.Author) authorResponse {
	return authorResponse{
		ID:   author.ID,
		Name: normalize.ForDisplay(author.Name),
	}
}

// Create adds a new author.
func (h *Author) Create(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAuthorResponse(author))
}

// Get returns a single author by ID.
func (h *Author) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	author, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthorResponse(author))
}

// List returns authors matching the name filter.
func (h *Author) List(c *gin.Context) {
	var query authorListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authors, err := h.service.List(c.Request.Context(), model.AuthorFilter{
		Name:   query.Name,
		Offset: query.Offset,
		Limit:  query.Limit,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]authorResponse, 0, len(authors))
	for _, author := range authors {
		responses = append(responses, newAuthorResponse(author))
	}

	c.JSON(http.StatusOK, gin.H{"authors": responses})
}

// Update renames an author.
func (h *Author) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	var req updateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthorResponse(author))
}

// Delete removes an author and the books the author owns.
func (h *Author) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Author deleted successfully"})
}
