package local

import (
	"context"
	"time"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/internal/storage/localkv"
)

type userRepo struct {
	db *DB
}

func NewUserRepository(db *DB) domain.UserRepository {
	return &userRepo{db: db}
}

// Get returns the single local user, if one has been saved.
func (r *userRepo) Get(ctx context.Context) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user := localkv.Read(r.db.kv, keyUser, domain.User{})
	if user.ID == 0 {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *userRepo) Save(ctx context.Context, user *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	if user.ID == 0 {
		user.ID = 1
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	return localkv.Write(r.db.kv, keyUser, *user)
}
