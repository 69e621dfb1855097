package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/certsprint/ppt-lms-backend/internal/model"
	"github.com/certsprint/ppt-lms-backend/internal/response"
	"github.com/certsprint/ppt-lms-backend/internal/service"
	"github.com/certsprint/ppt-lms-backend/internal/validator"
)

// QuestionAdminHandler exposes pool question management for admins.
type QuestionAdminHandler struct {
	questionService *service.QuestionService
}

// NewQuestionAdminHandler creates a new QuestionAdminHandler.
func NewQuestionAdminHandler(questionService *service.QuestionService) *QuestionAdminHandler {
	return &QuestionAdminHandler{questionService: questionService}
}

// List godoc
// GET /api/v1/admin/questions?exam_type=&page=&per_page=
func (h *QuestionAdminHandler) List(c *gin.Context) {
	examType := c.DefaultQuery("exam_type", service.DefaultExamType)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	questions, total, err := h.questionService.List(c.Request.Context(), examType, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	totalPages := (total + perPage - 1) / perPage
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"questions": questions}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Create godoc
// POST /api/v1/admin/questions
func (h *QuestionAdminHandler) Create(c *gin.Context) {
	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	points := req.Points
	if points == 0 {
		points = defaultPoints(model.QuestionKind(req.Kind))
	}

	q := &model.Question{
		ExamType:      req.ExamType,
		Domain:        req.Domain,
		Text:          req.Text,
		Kind:          model.QuestionKind(req.Kind),
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Points:        points,
		Instructions:  req.Instructions,
		Active:        true,
	}

	if err := h.questionService.Create(c.Request.Context(), q); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"question": q})
}

// Update godoc
// PUT /api/v1/admin/questions/:id
func (h *QuestionAdminHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	q := &model.Question{
		ID:            id,
		ExamType:      c.DefaultQuery("exam_type", service.DefaultExamType),
		Domain:        req.Domain,
		Text:          req.Text,
		Kind:          model.QuestionKind(req.Kind),
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Points:        req.Points,
		Instructions:  req.Instructions,
		Active:        *req.Active,
	}

	if err := h.questionService.Update(c.Request.Context(), q); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": q})
}

// Deactivate godoc
// DELETE /api/v1/admin/questions/:id
// Questions are soft-deleted so historical answer snapshots stay intact.
func (h *QuestionAdminHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	examType := c.DefaultQuery("exam_type", service.DefaultExamType)
	if err := h.questionService.Deactivate(c.Request.Context(), id, examType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func defaultPoints(kind model.QuestionKind) int {
	if kind == model.QuestionKindPerformance {
		return 20
	}
	return 10
}
