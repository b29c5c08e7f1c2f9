package v1

import (
	"net/http"
	"time"

	"github.com/daryllundy/resume-builder-sub000/internal/delivery/http/response"
	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobPostUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobPostUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.PATCH("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}

	// Kept for frontend compatibility: saving a pasted job description just
	// creates a job post in the "saved" stage.
	api.POST("/job-description/save", handler.SaveDescription)
}

type CreateJobRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Status      string     `json:"status" binding:"job_status"`
	Notes       string     `json:"notes"`
	Deadline    *time.Time `json:"deadline"`
}

type UpdateJobRequest struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
	Status      *string    `json:"status" binding:"omitempty,job_status"`
	Notes       *string    `json:"notes"`
	Deadline    *time.Time `json:"deadline"`
}

type SaveDescriptionRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description" binding:"required"`
	URL         string `json:"url"`
}

func (h *JobHandler) List(c *gin.Context) {
	posts, err := h.jobUC.ListJobPosts(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posts retrieved", posts)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	post := &domain.JobPost{
		Title:       req.Title,
		Company:     req.Company,
		Location:    toPtr(req.Location),
		Description: req.Description,
		URL:         toPtr(req.URL),
		Status:      domain.JobStatus(req.Status),
		Notes:       toPtr(req.Notes),
		Deadline:    req.Deadline,
	}
	if err := h.jobUC.CreateJobPost(c, post); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job post created", post)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	post, err := h.jobUC.GetJobPost(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post retrieved", post)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var status *domain.JobStatus
	if req.Status != nil {
		s := domain.JobStatus(*req.Status)
		status = &s
	}

	post, err := h.jobUC.UpdateJobPost(c, id, domain.JobPostUpdate{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		URL:         req.URL,
		Status:      status,
		Notes:       req.Notes,
		Deadline:    req.Deadline,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post updated", post)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.jobUC.DeleteJobPost(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job post deleted", gin.H{"deleted": true})
}

func (h *JobHandler) SaveDescription(c *gin.Context) {
	var req SaveDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	title := req.Title
	if title == "" {
		title = "Untitled position"
	}
	company := req.Company
	if company == "" {
		company = "Unknown company"
	}

	var url *string
	if req.URL != "" {
		url = &req.URL
	}

	post := &domain.JobPost{
		Title:       title,
		Company:     company,
		Description: req.Description,
		URL:         url,
		Status:      domain.StatusSaved,
	}
	if err := h.jobUC.CreateJobPost(c, post); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job description saved", post)
}
