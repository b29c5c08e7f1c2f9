package v1

import (
	"net/http"
	"strconv"

	"github.com/daryllundy/resume-builder-sub000/internal/delivery/http/response"
	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(api *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := api.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("", handler.Create)
		resumes.GET("/:id", handler.Get)
		resumes.PUT("/:id", handler.Update)
		resumes.PATCH("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
		resumes.POST("/:id/set-default", handler.SetDefault)
	}
}

type CreateResumeRequest struct {
	Title            string `json:"title" binding:"required"`
	Content          string `json:"content"`
	OriginalFileName string `json:"original_file_name"`
	IsDefault        bool   `json:"is_default"`
}

type UpdateResumeRequest struct {
	Title            *string `json:"title"`
	Content          *string `json:"content"`
	OriginalFileName *string `json:"original_file_name"`
	IsDefault        *bool   `json:"is_default"`
}

func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.resumeUC.ListResumes(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req CreateResumeRequest
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

	resume := &domain.Resume{
		Title:            req.Title,
		Content:          req.Content,
		OriginalFileName: toPtr(req.OriginalFileName),
		IsDefault:        req.IsDefault,
	}
	if err := h.resumeUC.CreateResume(c, resume); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Resume created", resume)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	resume, err := h.resumeUC.GetResume(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume retrieved", resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeUC.UpdateResume(c, id, domain.ResumeUpdate{
		Title:            req.Title,
		Content:          req.Content,
		OriginalFileName: req.OriginalFileName,
		IsDefault:        req.IsDefault,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.resumeUC.DeleteResume(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", gin.H{"deleted": true})
}

func (h *ResumeHandler) SetDefault(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	resume, err := h.resumeUC.SetDefaultResume(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Default resume set", resume)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid id")
	}
	return id, nil
}
