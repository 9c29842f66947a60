package v1

import (
	"net/http"
	"time"

	"github.com/Larissacdias1/scib-candidates-platform/config"
	"github.com/Larissacdias1/scib-candidates-platform/internal/delivery/http/middleware"
	"github.com/Larissacdias1/scib-candidates-platform/internal/delivery/http/response"
	"github.com/Larissacdias1/scib-candidates-platform/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares; CORS must run first so error responses carry
	// the right headers.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	uploadLimiter := middleware.RateLimit(middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewCandidateHandler(v1, uploadLimiter, deps.CandidateUC)

	return r
}
