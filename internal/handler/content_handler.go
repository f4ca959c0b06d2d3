package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
	"github.com/quizforge/quizforge-backend/internal/validator"
)

// ContentHandler handles CRUD for study content pages.
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// List godoc
// GET /api/v1/authoring/contents
func (h *ContentHandler) List(c *gin.Context) {
	contents, err := h.contentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"contents": contents,
	})
}

// Get godoc
// GET /api/v1/authoring/contents/:id
func (h *ContentHandler) Get(c *gin.Context) {
	content, err := h.contentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"content": content,
	})
}

// Create godoc
// POST /api/v1/authoring/contents
func (h *ContentHandler) Create(c *gin.Context) {
	var req model.UpsertContentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	content := model.Content{
		Title: req.Title,
		Body:  req.Body,
		Topic: req.Topic,
	}
	if err := h.contentService.Create(c.Request.Context(), &content); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"content": content,
	})
}

// Update godoc
// PUT /api/v1/authoring/contents/:id
func (h *ContentHandler) Update(c *gin.Context) {
	var req model.UpsertContentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	content := model.Content{
		ID:    c.Param("id"),
		Title: req.Title,
		Body:  req.Body,
		Topic: req.Topic,
	}
	if err := h.contentService.Update(c.Request.Context(), &content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"content": content,
	})
}

// Delete godoc
// DELETE /api/v1/authoring/contents/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
