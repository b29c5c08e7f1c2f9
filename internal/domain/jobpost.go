package domain

import (
	"context"
	"time"
)

// JobStatus tracks a job post through the application pipeline. The order is
// advisory only; no transition order is enforced.
type JobStatus string

const (
	StatusSaved     JobStatus = "saved"
	StatusApplied   JobStatus = "applied"
	StatusHRScreen  JobStatus = "hr_screen"
	StatusInterview JobStatus = "interview"
	StatusOffer     JobStatus = "offer"
	StatusAccepted  JobStatus = "accepted"
	StatusRejected  JobStatus = "rejected"
)

func (s JobStatus) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusHRScreen, StatusInterview,
		StatusOffer, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// JobStatuses lists every accepted status in pipeline order.
func JobStatuses() []JobStatus {
	return []JobStatus{
		StatusSaved, StatusApplied, StatusHRScreen, StatusInterview,
		StatusOffer, StatusAccepted, StatusRejected,
	}
}

type JobPost struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     *string    `json:"location"`
	Description  string     `json:"description"`
	URL          *string    `json:"url"`
	Status       JobStatus  `json:"status"`
	Notes        *string    `json:"notes"`
	DateAdded    time.Time  `json:"date_added"`
	DateModified time.Time  `json:"date_modified"`
	Deadline     *time.Time `json:"deadline"`
}

// JobPostUpdate carries a partial update; nil fields keep their stored value.
type JobPostUpdate struct {
	Title       *string
	Company     *string
	Location    *string
	Description *string
	URL         *string
	Status      *JobStatus
	Notes       *string
	Deadline    *time.Time
}

type JobPostRepository interface {
	GetAll(ctx context.Context) ([]JobPost, error)
	GetByID(ctx context.Context, id int64) (*JobPost, error)
	Create(ctx context.Context, post *JobPost) error
	Update(ctx context.Context, id int64, patch JobPostUpdate) (*JobPost, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type JobPostUsecase interface {
	ListJobPosts(ctx context.Context) ([]JobPost, error)
	GetJobPost(ctx context.Context, id int64) (*JobPost, error)
	CreateJobPost(ctx context.Context, post *JobPost) error
	UpdateJobPost(ctx context.Context, id int64, patch JobPostUpdate) (*JobPost, error)
	DeleteJobPost(ctx context.Context, id int64) error
}
