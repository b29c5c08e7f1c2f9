package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"
)

type jobPostUsecase struct {
	jobRepo  domain.JobPostRepository
	userRepo domain.UserRepository
}

func NewJobPostUsecase(jobRepo domain.JobPostRepository, userRepo domain.UserRepository) domain.JobPostUsecase {
	return &jobPostUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (u *jobPostUsecase) ListJobPosts(ctx context.Context) ([]domain.JobPost, error) {
	return u.jobRepo.GetAll(ctx)
}

func (u *jobPostUsecase) GetJobPost(ctx context.Context, id int64) (*domain.JobPost, error) {
	post, err := u.jobRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job post not found")
	}
	return post, err
}

func (u *jobPostUsecase) CreateJobPost(ctx context.Context, post *domain.JobPost) error {
	if strings.TrimSpace(post.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if post.Status != "" && !post.Status.Valid() {
		return apperror.BadRequest("Invalid status: " + string(post.Status))
	}
	if post.UserID == 0 {
		if user, err := u.userRepo.Get(ctx); err == nil {
			post.UserID = user.ID
		} else {
			post.UserID = 1
		}
	}
	return u.jobRepo.Create(ctx, post)
}

func (u *jobPostUsecase) UpdateJobPost(ctx context.Context, id int64, patch domain.JobPostUpdate) (*domain.JobPost, error) {
	// An invalid status must never reach persisted state.
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperror.BadRequest("Invalid status: " + string(*patch.Status))
	}
	post, err := u.jobRepo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job post not found")
	}
	return post, err
}

func (u *jobPostUsecase) DeleteJobPost(ctx context.Context, id int64) error {
	ok, err := u.jobRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Job post not found")
	}
	return nil
}
