package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "jumysal-backend/internal/auth"
	"jumysal-backend/internal/documents"
	"jumysal-backend/internal/faq"
	"jumysal-backend/internal/jobs"
	"jumysal-backend/internal/profiles"
	"jumysal-backend/internal/resumes"
	"jumysal-backend/internal/shared/config"
	"jumysal-backend/internal/shared/metrics"
	"jumysal-backend/internal/shared/server/middleware"
	"jumysal-backend/internal/shared/server/respond"
	"jumysal-backend/internal/stats"
	"jumysal-backend/internal/users"
)

// RouterDeps carries the handlers registered on the engine. Nil handlers are
// skipped so tests can wire only the slice they exercise.
type RouterDeps struct {
	Config           config.Config
	GoogleAuth       *googleauth.GoogleService
	UsersHandler     *users.Handler
	ProfilesHandler  *profiles.Handler
	ResumesHandler   *resumes.Handler
	DocumentsHandler *documents.Handler
	JobsHandler      *jobs.Handler
	FAQHandler       *faq.Handler
	StatsHandler     *stats.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				middleware.GroupGenerate: {Rate: 0.2, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if strings.HasPrefix(c.Request.URL.Path, "/api/v1/resume/generate") {
					return middleware.GroupGenerate
				}
				return ""
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.FAQHandler != nil {
		deps.FAQHandler.RegisterRoutes(api)
	}
	if deps.StatsHandler != nil {
		deps.StatsHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
