package usecase_test

import (
	"context"
	"testing"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/internal/usecase"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock collaborators

type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) GetAll(ctx context.Context) ([]domain.TailoringEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TailoringEntry), args.Error(1)
}

func (m *MockHistoryRepo) GetByResumeID(ctx context.Context, resumeID int64) ([]domain.TailoringEntry, error) {
	args := m.Called(ctx, resumeID)
	return args.Get(0).([]domain.TailoringEntry), args.Error(1)
}

func (m *MockHistoryRepo) Create(ctx context.Context, entry *domain.TailoringEntry) error {
	return m.Called(ctx, entry).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Get(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Save(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockJobPostRepo struct {
	mock.Mock
}

func (m *MockJobPostRepo) GetAll(ctx context.Context) ([]domain.JobPost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) GetByID(ctx context.Context, id int64) (*domain.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) Create(ctx context.Context, post *domain.JobPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockJobPostRepo) Update(ctx context.Context, id int64, patch domain.JobPostUpdate) (*domain.JobPost, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) GetAll(ctx context.Context) ([]domain.Resume, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) Update(ctx context.Context, id int64, patch domain.ResumeUpdate) (*domain.Resume, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockResumeRepo) SetDefault(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func TestTailorParsesFencedReply(t *testing.T) {
	model := new(MockChatModel)
	history := new(MockHistoryRepo)
	users := new(MockUserRepo)
	uc := usecase.NewTailorUsecase(model, history, users)

	reply := "```json\n{\"tailored_resume\":\"Rewritten body\",\"match_score\":150,\"changes\":[\"reworded summary\"],\"summary\":\"ok\"}\n```"
	model.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return(reply, nil)
	users.On("Get", mock.Anything).Return(&domain.User{ID: 1}, nil)
	history.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Tailor(context.Background(), domain.TailorInput{
		ResumeText:     "my resume",
		JobDescription: "the job",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rewritten body", result.TailoredResume)
	// Out-of-range scores are clamped, not rejected.
	assert.Equal(t, float64(100), result.MatchScore)
	// Missing arrays come back empty, never nil.
	assert.NotNil(t, result.KeywordsAdded)
	assert.Equal(t, []string{"reworded summary"}, result.Changes)

	history.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(e *domain.TailoringEntry) bool {
		return e.TailoredResume == "Rewritten body" && e.OriginalResume == "my resume"
	}))
}

func TestTailorRequiresInput(t *testing.T) {
	uc := usecase.NewTailorUsecase(new(MockChatModel), new(MockHistoryRepo), new(MockUserRepo))

	t.Run("missing resume", func(t *testing.T) {
		_, err := uc.Tailor(context.Background(), domain.TailorInput{JobDescription: "jd"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Resume text is required")
	})

	t.Run("missing job description", func(t *testing.T) {
		_, err := uc.Tailor(context.Background(), domain.TailorInput{ResumeText: "resume"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Job description is required")
	})
}

func TestTailorRejectsUnreadableReply(t *testing.T) {
	model := new(MockChatModel)
	uc := usecase.NewTailorUsecase(model, new(MockHistoryRepo), new(MockUserRepo))

	model.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return("sorry, I cannot help with that", nil)

	_, err := uc.Tailor(context.Background(), domain.TailorInput{ResumeText: "r", JobDescription: "j"})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
}

func TestAnalyzeResumeClampsNegativeScore(t *testing.T) {
	model := new(MockChatModel)
	uc := usecase.NewTailorUsecase(model, new(MockHistoryRepo), new(MockUserRepo))

	model.On("Ask", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"score":-20,"strengths":["concise"],"summary":"thin"}`, nil)

	analysis, err := uc.AnalyzeResume(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, float64(0), analysis.Score)
	assert.NotNil(t, analysis.Weaknesses)
}

func TestCreateJobPostRejectsBogusStatus(t *testing.T) {
	repo := new(MockJobPostRepo)
	users := new(MockUserRepo)
	uc := usecase.NewJobPostUsecase(repo, users)

	err := uc.CreateJobPost(context.Background(), &domain.JobPost{
		UserID:  1,
		Title:   "Engineer",
		Company: "Acme",
		Status:  domain.JobStatus("bogus"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid status")
	repo.AssertNotCalled(t, "Create")
}

func TestUpdateJobPostRejectsBogusStatus(t *testing.T) {
	repo := new(MockJobPostRepo)
	uc := usecase.NewJobPostUsecase(repo, new(MockUserRepo))

	bogus := domain.JobStatus("bogus")
	_, err := uc.UpdateJobPost(context.Background(), 5, domain.JobPostUpdate{Status: &bogus})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid status")
	// The invalid value never reaches storage.
	repo.AssertNotCalled(t, "Update")
}

func TestCreateResumeRequiresTitle(t *testing.T) {
	repo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(repo, new(MockUserRepo))

	err := uc.CreateResume(context.Background(), &domain.Resume{UserID: 1, Content: "body"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title is required")
	repo.AssertNotCalled(t, "Create")
}

func TestDeleteResumeMapsMissingToNotFound(t *testing.T) {
	repo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(repo, new(MockUserRepo))

	repo.On("Delete", mock.Anything, int64(999)).Return(false, nil)

	err := uc.DeleteResume(context.Background(), 999)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
