package local

import (
	"context"
	"time"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/internal/storage/localkv"
)

type resumeRepo struct {
	db *DB
}

func NewResumeRepository(db *DB) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) GetAll(ctx context.Context) ([]domain.Resume, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return localkv.Read(r.db.kv, keyResumes, []domain.Resume{}), nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	resumes := localkv.Read(r.db.kv, keyResumes, []domain.Resume{})
	for i := range resumes {
		if resumes[i].ID == id {
			return &resumes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, err := r.db.nextID(func(c *counters) *int64 { return &c.ResumeID })
	if err != nil {
		return err
	}
	resume.ID = id
	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	resumes := localkv.Read(r.db.kv, keyResumes, []domain.Resume{})
	resumes = append(resumes, *resume)
	return localkv.Write(r.db.kv, keyResumes, resumes)
}

func (r *resumeRepo) Update(ctx context.Context, id int64, patch domain.ResumeUpdate) (*domain.Resume, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	resumes := localkv.Read(r.db.kv, keyResumes, []domain.Resume{})
	for i := range resumes {
		if resumes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			resumes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			resumes[i].Content = *patch.Content
		}
		if patch.OriginalFileName != nil {
			resumes[i].OriginalFileName = patch.OriginalFileName
		}
		if patch.IsDefault != nil {
			resumes[i].IsDefault = *patch.IsDefault
			// Promoting through a patch demotes every other resume in the
			// same write, so at most one default is ever persisted.
			if *patch.IsDefault {
				for j := range resumes {
					if j != i {
						resumes[j].IsDefault = false
					}
				}
			}
		}
		resumes[i].UpdatedAt = time.Now()
		if err := localkv.Write(r.db.kv, keyResumes, resumes); err != nil {
			return nil, err
		}
		return &resumes[i], nil
	}
	return nil, domain.ErrNotFound
}

func (r *resumeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	resumes := localkv.Read(r.db.kv, keyResumes, []domain.Resume{})
	for i := range resumes {
		if resumes[i].ID == id {
			resumes = append(resumes[:i], resumes[i+1:]...)
			if err := localkv.Write(r.db.kv, keyResumes, resumes); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// SetDefault is two-phase: clear every default flag, then set the target.
// Both phases persist as one write, so at most one resume is ever flagged.
// A missing target leaves the collection with no default, which is the
// documented terminal state for that case.
func (r *resumeRepo) SetDefault(ctx context.Context, id int64) (*domain.Resume, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	resumes := localkv.Read(r.db.kv, keyResumes, []domain.Resume{})
	var target *domain.Resume
	for i := range resumes {
		resumes[i].IsDefault = false
	}
	for i := range resumes {
		if resumes[i].ID == id {
			resumes[i].IsDefault = true
			resumes[i].UpdatedAt = time.Now()
			target = &resumes[i]
			break
		}
	}
	if err := localkv.Write(r.db.kv, keyResumes, resumes); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	return target, nil
}
