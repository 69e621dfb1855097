package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/certsprint/ppt-lms-backend/internal/middleware"
	"github.com/certsprint/ppt-lms-backend/internal/response"
	"github.com/certsprint/ppt-lms-backend/internal/service"
)

// HandoutHandler serves the weekly course handout pages.
type HandoutHandler struct {
	handoutService *service.HandoutService
}

// NewHandoutHandler creates a new HandoutHandler.
func NewHandoutHandler(handoutService *service.HandoutService) *HandoutHandler {
	return &HandoutHandler{handoutService: handoutService}
}

// List godoc
// GET /api/v1/student/handouts
func (h *HandoutHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"handouts": h.handoutService.List(c.Request.Context()),
	})
}

// GetWeek godoc
// GET /api/v1/student/handouts/:week
// Returns one week's handout with the student's profile and instructor.
func (h *HandoutHandler) GetWeek(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	page, err := h.handoutService.GetPage(c.Request.Context(), week, claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrHandoutNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, page)
}
