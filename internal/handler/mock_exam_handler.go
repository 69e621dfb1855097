package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/certsprint/ppt-lms-backend/internal/middleware"
	"github.com/certsprint/ppt-lms-backend/internal/model"
	"github.com/certsprint/ppt-lms-backend/internal/response"
	"github.com/certsprint/ppt-lms-backend/internal/service"
	"github.com/certsprint/ppt-lms-backend/internal/validator"
)

// MockExamHandler handles the timed mock exam simulator endpoints. Every
// route runs behind JWT, session and course access middleware; handlers
// only translate requests into attempt service transitions.
type MockExamHandler struct {
	attemptService *service.AttemptService
}

// NewMockExamHandler creates a new MockExamHandler.
func NewMockExamHandler(attemptService *service.AttemptService) *MockExamHandler {
	return &MockExamHandler{attemptService: attemptService}
}

func clientMeta(c *gin.Context) service.ClientMeta {
	return service.ClientMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// GetState godoc
// GET /api/v1/student/mock-exam/state
// Returns the attempt state for the session, creating an empty one on
// first touch. A reload mid-attempt resumes the stored exam; an expired
// clock auto-submits before the state is returned.
func (h *MockExamHandler) GetState(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	view, err := h.attemptService.GetState(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, clientMeta(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Start godoc
// POST /api/v1/student/mock-exam/start
// Composes a fresh exam and opens the attempt. Idempotent against double
// submission: a second start returns the attempt as-is.
func (h *MockExamHandler) Start(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	view, err := h.attemptService.Start(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, clientMeta(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Navigate godoc
// POST /api/v1/student/mock-exam/navigate
// Moves the current question pointer. Out-of-range targets are ignored.
func (h *MockExamHandler) Navigate(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.NavigateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	view, err := h.attemptService.Navigate(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, req.Question, clientMeta(c))
	if err != nil {
		h.failTransition(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Answer godoc
// POST /api/v1/student/mock-exam/answer
// Upserts the chosen letter for a question.
func (h *MockExamHandler) Answer(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.AnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.attemptService.Answer(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, req.QuestionID, req.Answer, clientMeta(c)); err != nil {
		h.failTransition(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "saved"})
}

// Flag godoc
// POST /api/v1/student/mock-exam/flag
// Toggles the review flag on a question.
func (h *MockExamHandler) Flag(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.FlagRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	flagged, err := h.attemptService.Flag(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, req.QuestionID, clientMeta(c))
	if err != nil {
		h.failTransition(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"flagged": flagged})
}

// SyncTime godoc
// POST /api/v1/student/mock-exam/time
// Out-of-band timer sync. The server clock is authoritative; the response
// carries the authoritative remaining seconds.
func (h *MockExamHandler) SyncTime(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.SyncTimeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	remaining, err := h.attemptService.SyncTime(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, req.Remaining, clientMeta(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"time_remaining": remaining})
}

// Submit godoc
// POST /api/v1/student/mock-exam/submit
// Scores and finalizes the attempt. Safe to call twice: the submitted
// latch returns the stored outcome without re-scoring.
func (h *MockExamHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	outcome, err := h.attemptService.Submit(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, clientMeta(c))
	if err != nil {
		h.failTransition(c, err)
		return
	}

	response.Success(c, http.StatusOK, outcome)
}

// Reset godoc
// POST /api/v1/student/mock-exam/reset
// Discards the attempt and composed exam entirely.
func (h *MockExamHandler) Reset(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.attemptService.Reset(c.Request.Context(), claims.UserID, claims.ClassID, service.DefaultExamType, clientMeta(c)); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "reset"})
}

// GetResults godoc
// GET /api/v1/student/mock-exam/results
// Returns the user's persisted result history.
func (h *MockExamHandler) GetResults(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	results, err := h.attemptService.Results(c.Request.Context(), claims.UserID, service.DefaultExamType)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

func (h *MockExamHandler) failTransition(c *gin.Context, err error) {
	if errors.Is(err, service.ErrAttemptNotStarted) {
		response.Fail(c, http.StatusConflict, response.ErrExamNotStarted)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
