package usecase

import (
	"context"
	"strings"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"
)

type historyUsecase struct {
	historyRepo domain.HistoryRepository
}

func NewHistoryUsecase(historyRepo domain.HistoryRepository) domain.HistoryUsecase {
	return &historyUsecase{historyRepo: historyRepo}
}

func (u *historyUsecase) ListHistory(ctx context.Context, resumeID *int64) ([]domain.TailoringEntry, error) {
	if resumeID != nil {
		return u.historyRepo.GetByResumeID(ctx, *resumeID)
	}
	return u.historyRepo.GetAll(ctx)
}

func (u *historyUsecase) RecordHistory(ctx context.Context, entry *domain.TailoringEntry) error {
	if strings.TrimSpace(entry.TailoredResume) == "" {
		return apperror.BadRequest("Tailored resume text is required")
	}
	return u.historyRepo.Create(ctx, entry)
}
