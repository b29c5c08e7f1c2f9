package v1

import (
	"net/http"
	"strconv"

	"github.com/daryllundy/resume-builder-sub000/internal/delivery/http/response"
	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyUC domain.HistoryUsecase
}

func NewHistoryHandler(api *gin.RouterGroup, historyUC domain.HistoryUsecase) {
	handler := &HistoryHandler{historyUC: historyUC}

	history := api.Group("/tailoring-history")
	{
		history.GET("", handler.List)
		history.POST("", handler.Create)
	}
}

type CreateHistoryRequest struct {
	ResumeID       int64  `json:"resume_id"`
	JobPostID      *int64 `json:"job_post_id"`
	OriginalResume string `json:"original_resume"`
	JobDescription string `json:"job_description"`
	TailoredResume string `json:"tailored_resume" binding:"required"`
	TemplateID     string `json:"template_id"`
}

func (h *HistoryHandler) List(c *gin.Context) {
	var resumeID *int64
	if raw := c.Query("resume_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid resume_id filter"))
			return
		}
		resumeID = &id
	}

	entries, err := h.historyUC.ListHistory(c, resumeID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Tailoring history retrieved", entries)
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var req CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry := &domain.TailoringEntry{
		UserID:         1,
		ResumeID:       req.ResumeID,
		JobPostID:      req.JobPostID,
		OriginalResume: req.OriginalResume,
		JobDescription: req.JobDescription,
		TailoredResume: req.TailoredResume,
		TemplateID:     req.TemplateID,
	}
	if err := h.historyUC.RecordHistory(c, entry); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Tailoring history recorded", entry)
}
