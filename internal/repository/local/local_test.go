package local_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/internal/repository/local"
	"github.com/daryllundy/resume-builder-sub000/internal/storage/localkv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *local.DB {
	t.Helper()
	s, err := localkv.Open(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return local.NewDB(s)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestResumeCreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	first := &domain.Resume{UserID: 1, Title: "R1", Content: "body"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &domain.Resume{UserID: 1, Title: "R2", Content: "body"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	// Ids are never reused, even after deletes.
	ok, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, ok)

	third := &domain.Resume{UserID: 1, Title: "R3", Content: "body"}
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID)
}

func TestResumeRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	in := &domain.Resume{
		UserID:           1,
		Title:            "Backend Engineer",
		Content:          "experience...",
		OriginalFileName: strPtr("cv.pdf"),
	}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Content, got.Content)
	require.NotNil(t, got.OriginalFileName)
	assert.Equal(t, "cv.pdf", *got.OriginalFileName)
	assert.False(t, got.IsDefault)
	// Timestamps survive the store as real times.
	assert.True(t, got.CreatedAt.Equal(in.CreatedAt))
}

func TestResumeGetByIDMissing(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	got, err := repo.GetByID(ctx, 999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumeUpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	in := &domain.Resume{UserID: 1, Title: "Original", Content: "keep me"}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.Update(ctx, in.ID, domain.ResumeUpdate{Title: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "keep me", got.Content)
	assert.True(t, got.UpdatedAt.After(in.UpdatedAt) || got.UpdatedAt.Equal(in.UpdatedAt))
}

func TestResumeUpdateMissingLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	got, err := repo.Update(ctx, 999, domain.ResumeUpdate{Title: strPtr("x")})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestResumeDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	in := &domain.Resume{UserID: 1, Title: "R1"}
	require.NoError(t, repo.Create(ctx, in))

	ok, err := repo.Delete(ctx, in.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, in.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSetDefaultKeepsSingleDefault(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	r1 := &domain.Resume{UserID: 1, Title: "R1"}
	r2 := &domain.Resume{UserID: 1, Title: "R2"}
	require.NoError(t, repo.Create(ctx, r1))
	require.NoError(t, repo.Create(ctx, r2))

	countDefaults := func() int {
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		n := 0
		for _, r := range all {
			if r.IsDefault {
				n++
			}
		}
		return n
	}

	t.Run("setting R2 flags only R2", func(t *testing.T) {
		got, err := repo.SetDefault(ctx, r2.ID)
		require.NoError(t, err)
		assert.True(t, got.IsDefault)
		assert.Equal(t, 1, countDefaults())

		first, err := repo.GetByID(ctx, r1.ID)
		require.NoError(t, err)
		assert.False(t, first.IsDefault)
	})

	t.Run("switching back to R1 clears R2", func(t *testing.T) {
		got, err := repo.SetDefault(ctx, r1.ID)
		require.NoError(t, err)
		assert.True(t, got.IsDefault)
		assert.Equal(t, 1, countDefaults())

		second, err := repo.GetByID(ctx, r2.ID)
		require.NoError(t, err)
		assert.False(t, second.IsDefault)
	})

	t.Run("missing target degrades to no default", func(t *testing.T) {
		got, err := repo.SetDefault(ctx, 999)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, 0, countDefaults())
	})
}

func TestUpdateWithIsDefaultDemotesOtherResumes(t *testing.T) {
	ctx := context.Background()
	repo := local.NewResumeRepository(newTestDB(t))

	r1 := &domain.Resume{UserID: 1, Title: "R1"}
	r2 := &domain.Resume{UserID: 1, Title: "R2"}
	require.NoError(t, repo.Create(ctx, r1))
	require.NoError(t, repo.Create(ctx, r2))

	_, err := repo.SetDefault(ctx, r1.ID)
	require.NoError(t, err)

	// Promoting through the patch path must clear the old default too.
	got, err := repo.Update(ctx, r2.ID, domain.ResumeUpdate{IsDefault: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, r := range all {
		if r.IsDefault {
			defaults++
			assert.Equal(t, r2.ID, r.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	// Demoting via patch only touches the target.
	got, err = repo.Update(ctx, r2.ID, domain.ResumeUpdate{IsDefault: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
}

func TestJobPostStatusDefaultsToSaved(t *testing.T) {
	ctx := context.Background()
	repo := local.NewJobPostRepository(newTestDB(t))

	post := &domain.JobPost{UserID: 1, Title: "Go Developer", Company: "Acme"}
	require.NoError(t, repo.Create(ctx, post))
	assert.Equal(t, domain.StatusSaved, post.Status)
	assert.Equal(t, int64(1), post.ID)
}

func TestJobPostUpdateRefreshesDateModified(t *testing.T) {
	ctx := context.Background()
	repo := local.NewJobPostRepository(newTestDB(t))

	post := &domain.JobPost{UserID: 1, Title: "Go Developer", Company: "Acme"}
	require.NoError(t, repo.Create(ctx, post))

	status := domain.StatusApplied
	got, err := repo.Update(ctx, post.ID, domain.JobPostUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, got.Status)
	assert.Equal(t, "Acme", got.Company)
	assert.False(t, got.DateModified.Before(post.DateModified))
	// DateAdded never moves on update.
	assert.True(t, got.DateAdded.Equal(post.DateAdded))
}

func TestCountersAreIndependentPerCollection(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	resumes := local.NewResumeRepository(db)
	jobs := local.NewJobPostRepository(db)

	r := &domain.Resume{UserID: 1, Title: "R1"}
	require.NoError(t, resumes.Create(ctx, r))
	j := &domain.JobPost{UserID: 1, Title: "J1", Company: "Acme"}
	require.NoError(t, jobs.Create(ctx, j))

	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, int64(1), j.ID)
}

func TestCountersSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.db")

	s, err := localkv.Open(path)
	require.NoError(t, err)
	repo := local.NewResumeRepository(local.NewDB(s))
	require.NoError(t, repo.Create(ctx, &domain.Resume{UserID: 1, Title: "R1"}))
	require.NoError(t, s.Close())

	s2, err := localkv.Open(path)
	require.NoError(t, err)
	defer s2.Close()
	repo2 := local.NewResumeRepository(local.NewDB(s2))

	next := &domain.Resume{UserID: 1, Title: "R2"}
	require.NoError(t, repo2.Create(ctx, next))
	assert.Equal(t, int64(2), next.ID)
}

func TestHistoryIsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := local.NewHistoryRepository(newTestDB(t))

	for _, tmpl := range []string{"h1", "h2", "h3"} {
		entry := &domain.TailoringEntry{
			UserID:         1,
			ResumeID:       1,
			OriginalResume: "before",
			JobDescription: "jd",
			TailoredResume: "after",
			TemplateID:     tmpl,
		}
		require.NoError(t, repo.Create(ctx, entry))
	}

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "h3", entries[0].TemplateID)
	assert.Equal(t, "h2", entries[1].TemplateID)
	assert.Equal(t, "h1", entries[2].TemplateID)
	assert.Equal(t, int64(3), entries[0].ID)
}

func TestHistoryFilterByResume(t *testing.T) {
	ctx := context.Background()
	repo := local.NewHistoryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &domain.TailoringEntry{UserID: 1, ResumeID: 1, TemplateID: "a"}))
	require.NoError(t, repo.Create(ctx, &domain.TailoringEntry{UserID: 1, ResumeID: 2, TemplateID: "b"}))
	require.NoError(t, repo.Create(ctx, &domain.TailoringEntry{UserID: 1, ResumeID: 1, TemplateID: "c"}))

	entries, err := repo.GetByResumeID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].TemplateID)
	assert.Equal(t, "a", entries[1].TemplateID)
}

func TestUserSaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := local.NewUserRepository(newTestDB(t))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	u := &domain.User{Username: "demo", Password: "demo"}
	require.NoError(t, repo.Save(ctx, u))
	assert.Equal(t, int64(1), u.ID)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo", got.Username)
}
