package local

import (
	"context"
	"time"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/internal/storage/localkv"
)

type jobPostRepo struct {
	db *DB
}

func NewJobPostRepository(db *DB) domain.JobPostRepository {
	return &jobPostRepo{db: db}
}

func (r *jobPostRepo) GetAll(ctx context.Context) ([]domain.JobPost, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return localkv.Read(r.db.kv, keyJobPosts, []domain.JobPost{}), nil
}

func (r *jobPostRepo) GetByID(ctx context.Context, id int64) (*domain.JobPost, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	posts := localkv.Read(r.db.kv, keyJobPosts, []domain.JobPost{})
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *jobPostRepo) Create(ctx context.Context, post *domain.JobPost) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, err := r.db.nextID(func(c *counters) *int64 { return &c.JobID })
	if err != nil {
		return err
	}
	post.ID = id
	now := time.Now()
	post.DateAdded = now
	post.DateModified = now
	if post.Status == "" {
		post.Status = domain.StatusSaved
	}

	posts := localkv.Read(r.db.kv, keyJobPosts, []domain.JobPost{})
	posts = append(posts, *post)
	return localkv.Write(r.db.kv, keyJobPosts, posts)
}

func (r *jobPostRepo) Update(ctx context.Context, id int64, patch domain.JobPostUpdate) (*domain.JobPost, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	posts := localkv.Read(r.db.kv, keyJobPosts, []domain.JobPost{})
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		if patch.Title != nil {
			posts[i].Title = *patch.Title
		}
		if patch.Company != nil {
			posts[i].Company = *patch.Company
		}
		if patch.Location != nil {
			posts[i].Location = patch.Location
		}
		if patch.Description != nil {
			posts[i].Description = *patch.Description
		}
		if patch.URL != nil {
			posts[i].URL = patch.URL
		}
		if patch.Status != nil {
			posts[i].Status = *patch.Status
		}
		if patch.Notes != nil {
			posts[i].Notes = patch.Notes
		}
		if patch.Deadline != nil {
			posts[i].Deadline = patch.Deadline
		}
		posts[i].DateModified = time.Now()
		if err := localkv.Write(r.db.kv, keyJobPosts, posts); err != nil {
			return nil, err
		}
		return &posts[i], nil
	}
	return nil, domain.ErrNotFound
}

func (r *jobPostRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	posts := localkv.Read(r.db.kv, keyJobPosts, []domain.JobPost{})
	for i := range posts {
		if posts[i].ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			if err := localkv.Write(r.db.kv, keyJobPosts, posts); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
