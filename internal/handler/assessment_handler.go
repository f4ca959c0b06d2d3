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

// AssessmentHandler handles CRUD for assessments.
type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// List godoc
// GET /api/v1/authoring/assessments
func (h *AssessmentHandler) List(c *gin.Context) {
	assessments, err := h.assessmentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"assessments": assessments,
	})
}

// Get godoc
// GET /api/v1/authoring/assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	assessment, err := h.assessmentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"assessment": assessment,
	})
}

// Create godoc
// POST /api/v1/authoring/assessments
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req model.UpsertAssessmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assessment := model.Assessment{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Questions:   req.Questions,
	}
	if err := h.assessmentService.Create(c.Request.Context(), &assessment); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"assessment": assessment,
	})
}

// Update godoc
// PUT /api/v1/authoring/assessments/:id
func (h *AssessmentHandler) Update(c *gin.Context) {
	var req model.UpsertAssessmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assessment := model.Assessment{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Questions:   req.Questions,
	}
	if err := h.assessmentService.Update(c.Request.Context(), &assessment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"assessment": assessment,
	})
}

// Delete godoc
// DELETE /api/v1/authoring/assessments/:id
func (h *AssessmentHandler) Delete(c *gin.Context) {
	if err := h.assessmentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
