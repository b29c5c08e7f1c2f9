package v1

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/daryllundy/resume-builder-sub000/internal/delivery/http/response"
	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"
	"github.com/daryllundy/resume-builder-sub000/pkg/docparse"

	"github.com/gin-gonic/gin"
)

// AIHandler fronts the prompt-orchestration layer plus the document helpers
// that the frontend reaches through the same /api surface.
type AIHandler struct {
	tailorUC      domain.TailorUsecase
	maxUploadSize int64
}

func NewAIHandler(api *gin.RouterGroup, tailorUC domain.TailorUsecase, maxUploadSize int64) {
	handler := &AIHandler{tailorUC: tailorUC, maxUploadSize: maxUploadSize}

	api.POST("/tailor", handler.Tailor)
	api.POST("/elite-tailor", handler.EliteTailor)
	api.POST("/improve-resume", handler.ImproveResume)
	api.POST("/analyze-gaps", handler.AnalyzeGaps)
	api.POST("/improve-section", handler.ImproveSection)
	api.POST("/ai-section-suggestions", handler.SectionSuggestions)
	api.POST("/ai-quick-suggestions", handler.QuickSuggestions)
	api.POST("/analyze-resume", handler.AnalyzeResume)
	api.POST("/resume-impact-score", handler.ImpactScore)
	api.POST("/generate-template", handler.GenerateTemplate)
	api.POST("/parse-resume", handler.ParseResume)
	api.POST("/convert-document", handler.ConvertDocument)
}

type TailorRequest struct {
	ResumeID       *int64 `json:"resume_id"`
	JobPostID      *int64 `json:"job_post_id"`
	ResumeText     string `json:"resume_text" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
	TemplateID     string `json:"template_id"`
}

type ResumeTextRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
}

type GapsRequest struct {
	ResumeText     string `json:"resume_text" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
}

type SectionRequest struct {
	SectionName    string `json:"section_name"`
	SectionText    string `json:"section_text" binding:"required"`
	JobDescription string `json:"job_description"`
}

type TemplateRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
	TemplateID string `json:"template_id"`
}

type ConvertRequest struct {
	Content string `json:"content" binding:"required"`
	Format  string `json:"format" binding:"required"`
}

func (h *AIHandler) Tailor(c *gin.Context) {
	h.runTailor(c, h.tailorUC.Tailor)
}

func (h *AIHandler) EliteTailor(c *gin.Context) {
	h.runTailor(c, h.tailorUC.EliteTailor)
}

func (h *AIHandler) runTailor(c *gin.Context, run func(context.Context, domain.TailorInput) (*domain.TailorResult, error)) {
	var req TailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := run(c, domain.TailorInput{
		ResumeID:       req.ResumeID,
		JobPostID:      req.JobPostID,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		TemplateID:     req.TemplateID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume tailored", result)
}

func (h *AIHandler) ImproveResume(c *gin.Context) {
	var req ResumeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.tailorUC.ImproveResume(c, req.ResumeText)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume improved", result)
}

func (h *AIHandler) AnalyzeGaps(c *gin.Context) {
	var req GapsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	analysis, err := h.tailorUC.AnalyzeGaps(c, req.ResumeText, req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Gap analysis complete", analysis)
}

func (h *AIHandler) ImproveSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	improved, err := h.tailorUC.ImproveSection(c, req.SectionName, req.SectionText, req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Section improved", improved)
}

func (h *AIHandler) SectionSuggestions(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	suggestions, err := h.tailorUC.SectionSuggestions(c, req.SectionName, req.SectionText)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Suggestions generated", gin.H{"suggestions": suggestions})
}

func (h *AIHandler) QuickSuggestions(c *gin.Context) {
	var req ResumeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	suggestions, err := h.tailorUC.QuickSuggestions(c, req.ResumeText)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Suggestions generated", gin.H{"suggestions": suggestions})
}

func (h *AIHandler) AnalyzeResume(c *gin.Context) {
	var req ResumeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	analysis, err := h.tailorUC.AnalyzeResume(c, req.ResumeText)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume analyzed", analysis)
}

func (h *AIHandler) ImpactScore(c *gin.Context) {
	var req ResumeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	analysis, err := h.tailorUC.ImpactScore(c, req.ResumeText)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Impact score computed", gin.H{
		"score":    analysis.Score,
		"analysis": analysis,
	})
}

func (h *AIHandler) GenerateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	formatted, err := h.tailorUC.GenerateTemplate(c, req.ResumeText, req.TemplateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Template generated", gin.H{"formatted_resume": formatted})
}

// ParseResume accepts a multipart upload and returns the extracted text.
func (h *AIHandler) ParseResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file upload named 'file' is required"))
		return
	}
	if file.Size > h.maxUploadSize {
		c.Error(apperror.BadRequest("File too large"))
		return
	}

	f, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	text, err := docparse.ExtractText(file.Filename, data)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	response.Success(c, http.StatusOK, "Resume parsed", gin.H{
		"text":     text,
		"filename": file.Filename,
	})
}

// ConvertDocument renders tailored resume text into an export format.
// Only text-based targets are supported; binary formats are generated
// client-side from this output.
func (h *AIHandler) ConvertDocument(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	switch strings.ToLower(req.Format) {
	case "txt", "text":
		c.Header("Content-Disposition", `attachment; filename="resume.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(req.Content))
	case "md", "markdown":
		c.Header("Content-Disposition", `attachment; filename="resume.md"`)
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(req.Content))
	default:
		c.Error(apperror.BadRequest("Unsupported format: " + req.Format))
	}
}
