package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	OriginalFileName *string   `json:"original_file_name"`
	IsDefault        bool      `json:"is_default"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ResumeUpdate carries a partial update; nil fields keep their stored value.
type ResumeUpdate struct {
	Title            *string
	Content          *string
	OriginalFileName *string
	IsDefault        *bool
}

type ResumeRepository interface {
	GetAll(ctx context.Context) ([]Resume, error)
	GetByID(ctx context.Context, id int64) (*Resume, error)
	Create(ctx context.Context, resume *Resume) error
	Update(ctx context.Context, id int64, patch ResumeUpdate) (*Resume, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// SetDefault clears the default flag on every resume, then sets it on id.
	// A missing id leaves the collection with no default and returns ErrNotFound.
	SetDefault(ctx context.Context, id int64) (*Resume, error)
}

type ResumeUsecase interface {
	ListResumes(ctx context.Context) ([]Resume, error)
	GetResume(ctx context.Context, id int64) (*Resume, error)
	CreateResume(ctx context.Context, resume *Resume) error
	UpdateResume(ctx context.Context, id int64, patch ResumeUpdate) (*Resume, error)
	DeleteResume(ctx context.Context, id int64) error
	SetDefaultResume(ctx context.Context, id int64) (*Resume, error)
}
