package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/editor"
	"github.com/quizforge/quizforge-backend/internal/middleware"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
)

// DraftHandler exposes the server-side editor session. Every mutation is one
// editor operation applied to the draft stored in Redis.
type DraftHandler struct {
	draftService    *service.DraftService
	questionService *service.QuestionService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService *service.DraftService, questionService *service.QuestionService) *DraftHandler {
	return &DraftHandler{
		draftService:    draftService,
		questionService: questionService,
	}
}

// failEditor maps editor and draft errors onto API error responses.
func failEditor(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrDraftNotFound)
	case errors.Is(err, editor.ErrIndexOutOfRange):
		response.Fail(c, http.StatusBadRequest, response.ErrIndexOutOfRange)
	case errors.Is(err, editor.ErrOptionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, editor.ErrNoOptionSlot):
		response.Fail(c, http.StatusBadRequest, response.ErrNoOptionSlot)
	case errors.Is(err, editor.ErrInvalidJSON):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidJSON)
	case errors.Is(err, editor.ErrUnknownType),
		errors.Is(err, editor.ErrVariantMismatch),
		errors.Is(err, editor.ErrUnknownImageSlot):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
	case errors.Is(err, editor.ErrImageTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	case errors.Is(err, editor.ErrUnsupportedImage):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

func draftData(draft *editor.Draft) gin.H {
	return gin.H{"draft": draft}
}

type openDraftRequest struct {
	QuestionID string `json:"question_id"`
}

// Open godoc
// POST /api/v1/authoring/drafts
// Starts an editor session. With a question_id the saved question is opened
// for editing; without one a blank coding draft is created.
func (h *DraftHandler) Open(c *gin.Context) {
	claims := middleware.GetClaims(c)

	// An empty body is allowed and means a blank draft.
	var req openDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	var question *model.Question
	if req.QuestionID != "" {
		q, err := h.questionService.Get(c.Request.Context(), req.QuestionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, http.StatusNotFound, response.ErrNotFound)
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		question = q
	}

	draft, err := h.draftService.Open(c.Request.Context(), claims.AuthorID, question)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, draftData(draft))
}

// Get godoc
// GET /api/v1/authoring/drafts/:id
func (h *DraftHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	draft, err := h.draftService.Get(c.Request.Context(), claims.AuthorID, c.Param("id"))
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

type setTypeRequest struct {
	Type model.QuestionType `json:"type" binding:"required"`
}

// SetType godoc
// PUT /api/v1/authoring/drafts/:id/type
// Switches the question type. Switching to the current type is a no-op;
// switching to a new one resets the type-specific payload while shared
// fields survive.
func (h *DraftHandler) SetType(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req setTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		return d.SetType(req.Type)
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

type setFieldsRequest struct {
	QuestionText  *string `json:"questionText"`
	StarterCode   *string `json:"starterCode"`
	Topic         *string `json:"topic"`
	Difficulty    *string `json:"difficulty"`
	CorrectAnswer *string `json:"correctAnswer"`
	Explanation   *string `json:"explanation"`
	CodeSnippet   *string `json:"codeSnippet"`
	CorrectOption *bool   `json:"correctOption"`
}

// SetFields godoc
// PUT /api/v1/authoring/drafts/:id/fields
// Applies the provided field edits to the draft. Absent fields are left
// untouched. CodeSnippet and CorrectOption require the matching question
// type.
func (h *DraftHandler) SetFields(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req setFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		if req.QuestionText != nil {
			d.SetQuestionText(*req.QuestionText)
		}
		if req.StarterCode != nil {
			d.SetStarterCode(*req.StarterCode)
		}
		if req.Topic != nil {
			d.SetTopic(*req.Topic)
		}
		if req.Difficulty != nil {
			d.SetDifficulty(*req.Difficulty)
		}
		if req.CorrectAnswer != nil {
			d.SetCorrectAnswer(*req.CorrectAnswer)
		}
		if req.Explanation != nil {
			d.SetExplanation(*req.Explanation)
		}
		if req.CodeSnippet != nil {
			if err := d.SetCodeSnippet(*req.CodeSnippet); err != nil {
				return err
			}
		}
		if req.CorrectOption != nil {
			if err := d.SetCorrectOption(*req.CorrectOption); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// AddTestCase godoc
// POST /api/v1/authoring/drafts/:id/test-cases
// Appends a blank test case and selects it.
func (h *DraftHandler) AddTestCase(c *gin.Context) {
	claims := middleware.GetClaims(c)

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		d.AddTestCase()
		return nil
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// DeleteTestCase godoc
// DELETE /api/v1/authoring/drafts/:id/test-cases/:index
func (h *DraftHandler) DeleteTestCase(c *gin.Context) {
	claims := middleware.GetClaims(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		return d.DeleteTestCase(index)
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

type setTestCaseFieldRequest struct {
	Field editor.TestCaseField `json:"field" binding:"required"`
	Value string               `json:"value"`
}

// SetTestCaseField godoc
// PUT /api/v1/authoring/drafts/:id/test-cases/:index
// Edits one field of one test case. Input and expected output values that
// parse as JSON are stored structured; anything else stays a literal string.
func (h *DraftHandler) SetTestCaseField(c *gin.Context) {
	claims := middleware.GetClaims(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req setTestCaseFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		return d.SetTestCaseField(index, req.Field, req.Value)
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// GetTestCasesJSON godoc
// GET /api/v1/authoring/drafts/:id/test-cases/json
// Returns the draft's test cases as an indented JSON document, the form the
// raw editing mode works on.
func (h *DraftHandler) GetTestCasesJSON(c *gin.Context) {
	claims := middleware.GetClaims(c)

	draft, err := h.draftService.Get(c.Request.Context(), claims.AuthorID, c.Param("id"))
	if err != nil {
		failEditor(c, err)
		return
	}

	doc, err := draft.TestCasesJSON()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"document": string(doc),
	})
}

// SetTestCasesJSON godoc
// PUT /api/v1/authoring/drafts/:id/test-cases/json
// Replaces the whole test case list from a raw JSON document. An invalid
// document is rejected and the previous list is kept.
func (h *DraftHandler) SetTestCasesJSON(c *gin.Context) {
	claims := middleware.GetClaims(c)

	doc, err := c.GetRawData()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		return d.SetTestCasesJSON(doc)
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// AddOption godoc
// POST /api/v1/authoring/drafts/:id/options
// Appends a blank incorrect option. Only choice-based question types carry
// an option list.
func (h *DraftHandler) AddOption(c *gin.Context) {
	claims := middleware.GetClaims(c)

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		_, err := d.AddOption()
		return err
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// RemoveOption godoc
// DELETE /api/v1/authoring/drafts/:id/options/:optionId
func (h *DraftHandler) RemoveOption(c *gin.Context) {
	claims := middleware.GetClaims(c)

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		return d.RemoveOption(c.Param("optionId"))
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

type setOptionRequest struct {
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"isCorrect"`
}

// SetOption godoc
// PUT /api/v1/authoring/drafts/:id/options/:optionId
// Edits an option's text and correctness flag. Absent fields are left
// untouched.
func (h *DraftHandler) SetOption(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req setOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	optionID := c.Param("optionId")
	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		if req.Text != nil {
			if err := d.SetOptionText(optionID, *req.Text); err != nil {
				return err
			}
		}
		if req.IsCorrect != nil {
			if err := d.SetOptionCorrect(optionID, *req.IsCorrect); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// AttachImage godoc
// POST /api/v1/authoring/drafts/:id/images/:slot
// Attaches an uploaded image to the question or explanation slot. The file
// is embedded into the draft as a base64 data URI.
func (h *DraftHandler) AttachImage(c *gin.Context) {
	claims := middleware.GetClaims(c)

	slot, err := editor.ParseImageSlot(c.Param("slot"))
	if err != nil {
		failEditor(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		_, err := d.AttachImage(slot, contentType, fileHeader.Size, file)
		return err
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// RemoveImage godoc
// DELETE /api/v1/authoring/drafts/:id/images/:slot/:index
func (h *DraftHandler) RemoveImage(c *gin.Context) {
	claims := middleware.GetClaims(c)

	slot, err := editor.ParseImageSlot(c.Param("slot"))
	if err != nil {
		failEditor(c, err)
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	draft, err := h.draftService.Apply(c.Request.Context(), claims.AuthorID, c.Param("id"), func(d *editor.Draft) error {
		return d.RemoveImage(slot, index)
	})
	if err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftData(draft))
}

// Commit godoc
// POST /api/v1/authoring/drafts/:id/commit
// Validates the draft and promotes it into the saved question list. On
// validation failure the per-field messages are returned and the session
// stays open.
func (h *DraftHandler) Commit(c *gin.Context) {
	claims := middleware.GetClaims(c)

	question, err := h.draftService.Commit(c.Request.Context(), claims.AuthorID, c.Param("id"))
	if err != nil {
		var invalid *service.ErrDraftInvalid
		if errors.As(err, &invalid) {
			response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrDraftInvalid, invalid.Fields)
			return
		}
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"question": question,
	})
}

// Discard godoc
// DELETE /api/v1/authoring/drafts/:id
// Ends the editor session without committing.
func (h *DraftHandler) Discard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	if err := h.draftService.Discard(c.Request.Context(), claims.AuthorID, c.Param("id")); err != nil {
		failEditor(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
