package local

import (
	"context"
	"time"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/internal/storage/localkv"
)

type historyRepo struct {
	db *DB
}

func NewHistoryRepository(db *DB) domain.HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) GetAll(ctx context.Context) ([]domain.TailoringEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return localkv.Read(r.db.kv, keyHistory, []domain.TailoringEntry{}), nil
}

func (r *historyRepo) GetByResumeID(ctx context.Context, resumeID int64) ([]domain.TailoringEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	entries := localkv.Read(r.db.kv, keyHistory, []domain.TailoringEntry{})
	matched := []domain.TailoringEntry{}
	for _, e := range entries {
		if e.ResumeID == resumeID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Create prepends, keeping the stored collection most-recent-first.
func (r *historyRepo) Create(ctx context.Context, entry *domain.TailoringEntry) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, err := r.db.nextID(func(c *counters) *int64 { return &c.HistoryID })
	if err != nil {
		return err
	}
	entry.ID = id
	entry.CreatedAt = time.Now()

	entries := localkv.Read(r.db.kv, keyHistory, []domain.TailoringEntry{})
	entries = append([]domain.TailoringEntry{*entry}, entries...)
	return localkv.Write(r.db.kv, keyHistory, entries)
}
