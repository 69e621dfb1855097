package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/certsprint/ppt-lms-backend/internal/config"
	"github.com/certsprint/ppt-lms-backend/internal/handler"
	"github.com/certsprint/ppt-lms-backend/internal/middleware"
	"github.com/certsprint/ppt-lms-backend/internal/response"
	"github.com/certsprint/ppt-lms-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth          *handler.AuthHandler
	MockExam      *handler.MockExamHandler
	Handout       *handler.HandoutHandler
	QuestionAdmin *handler.QuestionAdminHandler
	WS            *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	accessService *service.AccessService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.GetProfile)
	}

	// ─── 2. Student Group (JWT + Single Session + Course Access) ───────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireJWT(authService),
		middleware.CheckSession(authService),
		middleware.RequireCourseAccess(accessService),
	)
	{
		mockExam := studentAPI.Group("/mock-exam")
		{
			mockExam.GET("/state", handlers.MockExam.GetState)
			mockExam.POST("/start", handlers.MockExam.Start)
			mockExam.POST("/navigate", handlers.MockExam.Navigate)
			mockExam.POST("/answer", handlers.MockExam.Answer)
			mockExam.POST("/flag", handlers.MockExam.Flag)
			mockExam.POST("/time", handlers.MockExam.SyncTime)
			mockExam.POST("/submit", handlers.MockExam.Submit)
			mockExam.POST("/reset", handlers.MockExam.Reset)
			mockExam.GET("/results", handlers.MockExam.GetResults)
		}

		studentAPI.GET("/handouts", handlers.Handout.List)
		studentAPI.GET("/handouts/:week", handlers.Handout.GetWeek)
	}

	// ─── 3. WebSocket Group (WS Auth via query token) ──────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/student/mock-exam/stream", handlers.WS.AttemptStream)
	}

	// ─── 4. Admin Group (JWT, admin role) ──────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/questions", handlers.QuestionAdmin.List)
		adminAPI.POST("/questions", handlers.QuestionAdmin.Create)
		adminAPI.PUT("/questions/:id", handlers.QuestionAdmin.Update)
		adminAPI.DELETE("/questions/:id", handlers.QuestionAdmin.Deactivate)
	}

	return router
}
