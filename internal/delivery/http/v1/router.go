package v1

import (
	"net/http"
	"time"

	"go-devconnector-backend/config"
	"go-devconnector-backend/internal/delivery/http/middleware"
	"go-devconnector-backend/internal/delivery/http/response"
	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	ProfileUC domain.ProfileUsecase
	PostUC    domain.PostUsecase
	Tokens    *token.Service
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.GinMode == "release")) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Credential endpoints share one strict limiter.
	credLimiter := middleware.RateLimitMiddleware(middleware.CredentialRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewUserHandler(api, deps.AuthUC, credLimiter)
		NewAuthHandler(api, protected, deps.AuthUC, credLimiter)
		NewProfileHandler(api, protected, deps.ProfileUC)
		NewPostHandler(api, protected, deps.PostUC)
	}

	return r
}
