package apiclient

import (
	"time"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
)

// Typed request payloads, one per endpoint shape. decodeBody rejects unknown
// fields, so a misdirected body fails before touching storage.

type createResumePayload struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	OriginalFileName string `json:"original_file_name"`
	IsDefault        bool   `json:"is_default"`
}

func (p createResumePayload) toDomain() *domain.Resume {
	return &domain.Resume{
		Title:            p.Title,
		Content:          p.Content,
		OriginalFileName: optional(p.OriginalFileName),
		IsDefault:        p.IsDefault,
	}
}

type updateResumePayload struct {
	Title            *string `json:"title"`
	Content          *string `json:"content"`
	OriginalFileName *string `json:"original_file_name"`
	IsDefault        *bool   `json:"is_default"`
}

func (p updateResumePayload) toDomain() domain.ResumeUpdate {
	return domain.ResumeUpdate{
		Title:            p.Title,
		Content:          p.Content,
		OriginalFileName: p.OriginalFileName,
		IsDefault:        p.IsDefault,
	}
}

type createJobPayload struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	Deadline    *time.Time `json:"deadline"`
}

func (p createJobPayload) toDomain() *domain.JobPost {
	return &domain.JobPost{
		Title:       p.Title,
		Company:     p.Company,
		Location:    optional(p.Location),
		Description: p.Description,
		URL:         optional(p.URL),
		Status:      domain.JobStatus(p.Status),
		Notes:       optional(p.Notes),
		Deadline:    p.Deadline,
	}
}

type updateJobPayload struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
	Status      *string    `json:"status"`
	Notes       *string    `json:"notes"`
	Deadline    *time.Time `json:"deadline"`
}

func (p updateJobPayload) toDomain() domain.JobPostUpdate {
	var status *domain.JobStatus
	if p.Status != nil {
		s := domain.JobStatus(*p.Status)
		status = &s
	}
	return domain.JobPostUpdate{
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Description: p.Description,
		URL:         p.URL,
		Status:      status,
		Notes:       p.Notes,
		Deadline:    p.Deadline,
	}
}

type saveDescriptionPayload struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (p saveDescriptionPayload) toDomain() *domain.JobPost {
	title := p.Title
	if title == "" {
		title = "Untitled position"
	}
	company := p.Company
	if company == "" {
		company = "Unknown company"
	}
	return &domain.JobPost{
		Title:       title,
		Company:     company,
		Description: p.Description,
		URL:         optional(p.URL),
		Status:      domain.StatusSaved,
	}
}

type createHistoryPayload struct {
	ResumeID       int64  `json:"resume_id"`
	JobPostID      *int64 `json:"job_post_id"`
	OriginalResume string `json:"original_resume"`
	JobDescription string `json:"job_description"`
	TailoredResume string `json:"tailored_resume"`
	TemplateID     string `json:"template_id"`
}

func (p createHistoryPayload) toDomain() *domain.TailoringEntry {
	return &domain.TailoringEntry{
		UserID:         1,
		ResumeID:       p.ResumeID,
		JobPostID:      p.JobPostID,
		OriginalResume: p.OriginalResume,
		JobDescription: p.JobDescription,
		TailoredResume: p.TailoredResume,
		TemplateID:     p.TemplateID,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
