package v1

import (
	"net/http"

	"github.com/daryllundy/resume-builder-sub000/config"
	"github.com/daryllundy/resume-builder-sub000/internal/delivery/http/middleware"
	"github.com/daryllundy/resume-builder-sub000/internal/delivery/http/response"
	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	ResumeUC  domain.ResumeUsecase
	JobUC     domain.JobPostUsecase
	HistoryUC domain.HistoryUsecase
	TailorUC  domain.TailorUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Custom binding validators (job_status) for the DTO tags.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewResumeHandler(api, deps.ResumeUC)
	NewJobHandler(api, deps.JobUC)
	NewHistoryHandler(api, deps.HistoryUC)
	NewAIHandler(api, deps.TailorUC, int64(deps.Config.MaxUploadSizeMB)<<20)

	return r
}
