package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
)

// QuestionHandler handles the saved question list and mock generation.
type QuestionHandler struct {
	questionService  *service.QuestionService
	generatorService *service.GeneratorService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, generatorService *service.GeneratorService) *QuestionHandler {
	return &QuestionHandler{
		questionService:  questionService,
		generatorService: generatorService,
	}
}

// List godoc
// GET /api/v1/authoring/questions
// Returns all saved questions in list order.
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"questions": questions,
	})
}

// Get godoc
// GET /api/v1/authoring/questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	question, err := h.questionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"question": question,
	})
}

// SaveAll godoc
// POST /api/v1/authoring/questions
// Accepts a JSON array of questions and appends them to the saved list.
// A payload that is not an array of questions is rejected outright.
func (h *QuestionHandler) SaveAll(c *gin.Context) {
	var questions []model.Question
	if err := c.ShouldBindJSON(&questions); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	count, err := h.questionService.SaveAll(c.Request.Context(), questions)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Questions saved successfully!",
		"count":   count,
	})
}

// Delete godoc
// DELETE /api/v1/authoring/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	if err := h.questionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Generate godoc
// POST /api/v1/authoring/questions/generate
// Produces a batch of placeholder questions for the requested topic. Count
// must stay within the allowed range and a topic is required.
func (h *QuestionHandler) Generate(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	questions, err := h.generatorService.Generate(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGenerationParams) {
			response.Fail(c, http.StatusBadRequest, response.ErrGenerationParams)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"questions": questions,
	})
}
