package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/certsprint/ppt-lms-backend/internal/response"
	"github.com/certsprint/ppt-lms-backend/internal/service"
)

// RequireCourseAccess gates course content routes behind the enrollment
// check. It runs after RequireJWT: the claims carry the user, role and
// class needed for the access decision. A storage failure here is a
// connectivity fault and fails the request.
func RequireCourseAccess(accessService *service.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		ok, err := accessService.HasAccess(c.Request.Context(), claims.UserID, claims.Role, claims.ClassID)
		if err != nil {
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if !ok {
			response.AbortFail(c, http.StatusForbidden, response.ErrNotEnrolled)
			return
		}

		c.Next()
	}
}
