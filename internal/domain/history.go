package domain

import (
	"context"
	"time"
)

// TailoringEntry is an immutable audit record of one tailoring run. Entries
// are only ever created and listed, never updated, and the collection is kept
// most-recent-first. The resume and job description are stored as snapshots,
// so deleting the referenced resume or job post does not invalidate a row.
type TailoringEntry struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	ResumeID       int64     `json:"resume_id"`
	JobPostID      *int64    `json:"job_post_id"`
	OriginalResume string    `json:"original_resume"`
	JobDescription string    `json:"job_description"`
	TailoredResume string    `json:"tailored_resume"`
	TemplateID     string    `json:"template_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type HistoryRepository interface {
	// GetAll returns entries most-recent-first.
	GetAll(ctx context.Context) ([]TailoringEntry, error)
	GetByResumeID(ctx context.Context, resumeID int64) ([]TailoringEntry, error)
	Create(ctx context.Context, entry *TailoringEntry) error
}

type HistoryUsecase interface {
	ListHistory(ctx context.Context, resumeID *int64) ([]TailoringEntry, error)
	RecordHistory(ctx context.Context, entry *TailoringEntry) error
}
