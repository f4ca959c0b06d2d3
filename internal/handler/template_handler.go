package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
)

// TemplateHandler handles question template management.
type TemplateHandler struct {
	templateService *service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func failTemplate(c *gin.Context, err error) {
	var invalid *service.ErrTemplateInvalid
	switch {
	case errors.As(err, &invalid):
		response.FailWithDetails(c, http.StatusUnprocessableEntity, response.ErrTemplateInvalid, invalid.Errors)
	case errors.Is(err, service.ErrImportNotArray):
		response.Fail(c, http.StatusBadRequest, response.ErrImportNotArray)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// List godoc
// GET /api/v1/authoring/templates?category=...&type=...
// Returns stored templates, optionally filtered by category and type.
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.List(c.Request.Context(), c.Query("category"), c.Query("type"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"templates": templates,
	})
}

// Examples godoc
// GET /api/v1/authoring/templates/examples
// Returns the built-in example templates.
func (h *TemplateHandler) Examples(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"templates": h.templateService.Examples(),
	})
}

// Get godoc
// GET /api/v1/authoring/templates/:id
func (h *TemplateHandler) Get(c *gin.Context) {
	template, err := h.templateService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failTemplate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"template": template,
	})
}

// Create godoc
// POST /api/v1/authoring/templates
// Validates and stores a new template. Validation failures list every
// problem at once.
func (h *TemplateHandler) Create(c *gin.Context) {
	var req model.UpsertTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	template := req.ToTemplate()
	if err := h.templateService.Create(c.Request.Context(), &template); err != nil {
		failTemplate(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"template": template,
	})
}

// Update godoc
// PUT /api/v1/authoring/templates/:id
func (h *TemplateHandler) Update(c *gin.Context) {
	var req model.UpsertTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	template := req.ToTemplate()
	template.ID = c.Param("id")
	if err := h.templateService.Update(c.Request.Context(), &template); err != nil {
		failTemplate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"template": template,
	})
}

// Delete godoc
// DELETE /api/v1/authoring/templates/:id
func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.templateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failTemplate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Validate godoc
// POST /api/v1/authoring/templates/validate
// Runs the template validator without storing anything.
func (h *TemplateHandler) Validate(c *gin.Context) {
	var req model.UpsertTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	template := req.ToTemplate()
	result := h.templateService.Validate(&template)

	response.Success(c, http.StatusOK, gin.H{
		"isValid": result.IsValid,
		"errors":  result.Errors,
	})
}

type previewRequest struct {
	Values map[string]string `json:"values"`
}

// Preview godoc
// POST /api/v1/authoring/templates/:id/preview
// Renders the template body with the given placeholder values. Unfilled
// placeholders stay as-is in the output.
func (h *TemplateHandler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	rendered, err := h.templateService.Preview(c.Request.Context(), c.Param("id"), req.Values)
	if err != nil {
		failTemplate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"rendered": rendered,
	})
}

// Export godoc
// GET /api/v1/authoring/templates/export
// Downloads all stored templates as a JSON file named by today's date.
func (h *TemplateHandler) Export(c *gin.Context) {
	doc, err := h.templateService.Export(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := service.ExportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json", doc)
}

// Import godoc
// POST /api/v1/authoring/templates/import
// Imports templates from a JSON array. Valid entries are stored, invalid
// ones are reported; one bad entry does not abort the batch.
func (h *TemplateHandler) Import(c *gin.Context) {
	doc, err := c.GetRawData()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	result, err := h.templateService.Import(c.Request.Context(), doc)
	if err != nil {
		failTemplate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"imported": result.Imported,
		"failed":   result.Failed,
		"errors":   result.Errors,
	})
}
