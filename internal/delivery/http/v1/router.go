package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CompanyUC     domain.CompanyUsecase
	ApplicationUC domain.ApplicationUsecase
	AdminUC       domain.AdminUsecase
	Tokens        *auth.Manager
	Media         storage.Uploader
	DB            *pgxpool.Pool
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	rlWindow := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, rlWindow)))

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		if deps.DB != nil {
			if err := deps.DB.Ping(c.Request.Context()); err != nil {
				response.Error(c, http.StatusServiceUnavailable, "Database unavailable", nil)
				return
			}
		}
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints carry a stricter limit than the global one.
	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, rlWindow))
	public := r.Group("")
	public.Use(loginLimiter)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	// Recruiter-only routes. Admins pass too so moderation keeps working.
	recruiter := r.Group("")
	recruiter.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	recruiter.Use(middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin))

	// Anonymous browse routes skip the login limiter; the global one
	// still applies.
	open := r.Group("")

	NewUserHandler(public, protected, deps.AuthUC, deps.Tokens, deps.Media, deps.Config)
	NewJobHandler(open, recruiter, deps.JobUC)
	NewCompanyHandler(open, recruiter, deps.CompanyUC, deps.Media)
	NewApplicationHandler(protected, recruiter, deps.ApplicationUC)
	NewAdminHandler(public, recruiter, deps.AdminUC, deps.AuthUC, deps.Tokens, deps.Config)

	return r
}
