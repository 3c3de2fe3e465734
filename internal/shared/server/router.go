package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generation"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/users"
)

// RouterDeps carries the wired handlers and auth primitives the router mounts.
type RouterDeps struct {
	Config     config.Config
	Verifier   middleware.TokenVerifier
	CheckUser  middleware.UserChecker
	Health     *health.Service
	Users      *users.Handler
	Resumes    *resumes.Handler
	Generation *generation.Handler
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
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.Users.RegisterPublicRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.Auth(deps.Verifier, deps.CheckUser))
	deps.Users.RegisterRoutes(authed)
	deps.Resumes.RegisterRoutes(authed)
	deps.Generation.RegisterRoutes(authed)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
