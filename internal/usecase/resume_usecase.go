package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	userRepo   domain.UserRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, userRepo domain.UserRepository) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo: resumeRepo,
		userRepo:   userRepo,
	}
}

func (u *resumeUsecase) ListResumes(ctx context.Context) ([]domain.Resume, error) {
	return u.resumeRepo.GetAll(ctx)
}

func (u *resumeUsecase) GetResume(ctx context.Context, id int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	return resume, err
}

func (u *resumeUsecase) CreateResume(ctx context.Context, resume *domain.Resume) error {
	if strings.TrimSpace(resume.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if resume.UserID == 0 {
		if user, err := u.userRepo.Get(ctx); err == nil {
			resume.UserID = user.ID
		} else {
			resume.UserID = 1
		}
	}
	return u.resumeRepo.Create(ctx, resume)
}

func (u *resumeUsecase) UpdateResume(ctx context.Context, id int64, patch domain.ResumeUpdate) (*domain.Resume, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	resume, err := u.resumeRepo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	return resume, err
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id int64) error {
	ok, err := u.resumeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Resume not found")
	}
	return nil
}

func (u *resumeUsecase) SetDefaultResume(ctx context.Context, id int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.SetDefault(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	return resume, err
}
