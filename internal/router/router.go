package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/handler"
	"github.com/quizforge/quizforge-backend/internal/middleware"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Question   *handler.QuestionHandler
	Draft      *handler.DraftHandler
	Template   *handler.TemplateHandler
	Content    *handler.ContentHandler
	Assessment *handler.AssessmentHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
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
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

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
	}

	// ─── 2. Authoring Group (JWT + Active Session) ─────────────────────
	authoring := router.Group("/api/v1/authoring")
	authoring.Use(middleware.RequireAuthorJWT(authService))
	{
		authoring.POST("/auth/logout", handlers.Auth.Logout)
		authoring.GET("/auth/me", handlers.Auth.GetProfile)

		// Saved question list and mock generation
		authoring.GET("/questions", handlers.Question.List)
		authoring.POST("/questions", handlers.Question.SaveAll)
		authoring.POST("/questions/generate", handlers.Question.Generate)
		authoring.GET("/questions/:id", handlers.Question.Get)
		authoring.DELETE("/questions/:id", handlers.Question.Delete)

		// Editor draft sessions
		authoring.POST("/drafts", handlers.Draft.Open)
		authoring.GET("/drafts/:id", handlers.Draft.Get)
		authoring.DELETE("/drafts/:id", handlers.Draft.Discard)
		authoring.POST("/drafts/:id/commit", handlers.Draft.Commit)
		authoring.PUT("/drafts/:id/type", handlers.Draft.SetType)
		authoring.PUT("/drafts/:id/fields", handlers.Draft.SetFields)

		// Test case editing, form mode and raw JSON mode
		authoring.POST("/drafts/:id/test-cases", handlers.Draft.AddTestCase)
		authoring.GET("/drafts/:id/test-cases/json", handlers.Draft.GetTestCasesJSON)
		authoring.PUT("/drafts/:id/test-cases/json", handlers.Draft.SetTestCasesJSON)
		authoring.PUT("/drafts/:id/test-cases/:index", handlers.Draft.SetTestCaseField)
		authoring.DELETE("/drafts/:id/test-cases/:index", handlers.Draft.DeleteTestCase)

		// Option editing for choice-based types
		authoring.POST("/drafts/:id/options", handlers.Draft.AddOption)
		authoring.PUT("/drafts/:id/options/:optionId", handlers.Draft.SetOption)
		authoring.DELETE("/drafts/:id/options/:optionId", handlers.Draft.RemoveOption)

		// Image attachments
		authoring.POST("/drafts/:id/images/:slot", handlers.Draft.AttachImage)
		authoring.DELETE("/drafts/:id/images/:slot/:index", handlers.Draft.RemoveImage)

		// Template management
		authoring.GET("/templates", handlers.Template.List)
		authoring.POST("/templates", handlers.Template.Create)
		authoring.GET("/templates/examples", handlers.Template.Examples)
		authoring.GET("/templates/export", handlers.Template.Export)
		authoring.POST("/templates/import", handlers.Template.Import)
		authoring.POST("/templates/validate", handlers.Template.Validate)
		authoring.GET("/templates/:id", handlers.Template.Get)
		authoring.PUT("/templates/:id", handlers.Template.Update)
		authoring.DELETE("/templates/:id", handlers.Template.Delete)
		authoring.POST("/templates/:id/preview", handlers.Template.Preview)

		// Content pages
		authoring.GET("/contents", handlers.Content.List)
		authoring.POST("/contents", handlers.Content.Create)
		authoring.GET("/contents/:id", handlers.Content.Get)
		authoring.PUT("/contents/:id", handlers.Content.Update)
		authoring.DELETE("/contents/:id", handlers.Content.Delete)

		// Assessments
		authoring.GET("/assessments", handlers.Assessment.List)
		authoring.POST("/assessments", handlers.Assessment.Create)
		authoring.GET("/assessments/:id", handlers.Assessment.Get)
		authoring.PUT("/assessments/:id", handlers.Assessment.Update)
		authoring.DELETE("/assessments/:id", handlers.Assessment.Delete)
	}

	// ─── 3. WebSocket Group (WS Auth via query token) ──────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAuthorWSAuth(authService))
	{
		ws.GET("/drafts/:id/stream", handlers.WS.DraftEventStream)
	}

	return router
}
