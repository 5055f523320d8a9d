package v1

import (
	"net/http"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ProfileUC     domain.ProfileUsecase
	ApplicationUC domain.ApplicationUsecase
	AnalyticsUC   domain.AnalyticsUsecase
	ExternalUC    domain.ExternalJobsUsecase
	UserRepo      domain.UserRepository
	Tokens        *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints take the brunt of abuse; cap them tighter than
	// the rest of the API.
	api.Use(middleware.RateLimit(300, time.Minute))
	authLimited := api.Group("")
	authLimited.Use(middleware.RateLimit(20, time.Minute))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.UserRepo))

	candidateOnly := protected.Group("")
	candidateOnly.Use(middleware.RequireRole(domain.RoleCandidate))

	employerOnly := protected.Group("")
	employerOnly.Use(middleware.RequireRole(domain.RoleEmployer))

	NewAuthHandler(authLimited, protected, deps.AuthUC)
	NewJobHandler(api, employerOnly, deps.JobUC)
	NewProfileHandler(protected, candidateOnly, employerOnly, deps.ProfileUC)
	NewApplicationHandler(protected, candidateOnly, employerOnly, deps.ApplicationUC)
	NewAnalyticsHandler(employerOnly, deps.AnalyticsUC)
	NewExternalJobsHandler(api, protected, employerOnly, deps.ExternalUC)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	return r
}
