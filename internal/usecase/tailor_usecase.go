package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/apperror"
	"github.com/daryllundy/resume-builder-sub000/pkg/llm"
	"github.com/daryllundy/resume-builder-sub000/pkg/logger"
)

const defaultTemplateID = "classic"

type tailorUsecase struct {
	model       llm.ChatModel
	historyRepo domain.HistoryRepository
	userRepo    domain.UserRepository
}

func NewTailorUsecase(model llm.ChatModel, historyRepo domain.HistoryRepository, userRepo domain.UserRepository) domain.TailorUsecase {
	return &tailorUsecase{
		model:       model,
		historyRepo: historyRepo,
		userRepo:    userRepo,
	}
}

func (u *tailorUsecase) Tailor(ctx context.Context, in domain.TailorInput) (*domain.TailorResult, error) {
	return u.tailor(ctx, in, false)
}

func (u *tailorUsecase) EliteTailor(ctx context.Context, in domain.TailorInput) (*domain.TailorResult, error) {
	return u.tailor(ctx, in, true)
}

func (u *tailorUsecase) tailor(ctx context.Context, in domain.TailorInput, elite bool) (*domain.TailorResult, error) {
	if strings.TrimSpace(in.ResumeText) == "" {
		return nil, apperror.BadRequest("Resume text is required")
	}
	if strings.TrimSpace(in.JobDescription) == "" {
		return nil, apperror.BadRequest("Job description is required")
	}
	if in.TemplateID == "" {
		in.TemplateID = defaultTemplateID
	}

	reply, err := u.model.Ask(ctx, systemPrompt, tailorPrompt(in.ResumeText, in.JobDescription, in.TemplateID, elite))
	if err != nil {
		return nil, apperror.BadGateway("Tailoring service unavailable", err)
	}

	var result domain.TailorResult
	if err := parseModelJSON(reply, &result); err != nil {
		return nil, apperror.BadGateway("Model returned an unreadable reply", err)
	}
	if strings.TrimSpace(result.TailoredResume) == "" {
		return nil, apperror.BadGateway("Model returned an empty rewrite", nil)
	}
	normalizeTailorResult(&result)

	u.recordHistory(ctx, in, result.TailoredResume)
	return &result, nil
}

func (u *tailorUsecase) ImproveResume(ctx context.Context, resumeText string) (*domain.TailorResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, apperror.BadRequest("Resume text is required")
	}

	reply, err := u.model.Ask(ctx, systemPrompt, improveResumePrompt(resumeText))
	if err != nil {
		return nil, apperror.BadGateway("Tailoring service unavailable", err)
	}

	var result domain.TailorResult
	if err := parseModelJSON(reply, &result); err != nil {
		return nil, apperror.BadGateway("Model returned an unreadable reply", err)
	}
	normalizeTailorResult(&result)
	return &result, nil
}

func (u *tailorUsecase) AnalyzeGaps(ctx context.Context, resumeText, jobDescription string) (*domain.GapAnalysis, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return nil, apperror.BadRequest("Resume text and job description are required")
	}

	reply, err := u.model.Ask(ctx, systemPrompt, analyzeGapsPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, apperror.BadGateway("Analysis service unavailable", err)
	}

	var analysis domain.GapAnalysis
	if err := parseModelJSON(reply, &analysis); err != nil {
		return nil, apperror.BadGateway("Model returned an unreadable reply", err)
	}
	analysis.MissingSkills = nonNil(analysis.MissingSkills)
	analysis.WeakAreas = nonNil(analysis.WeakAreas)
	analysis.Recommendations = nonNil(analysis.Recommendations)
	return &analysis, nil
}

func (u *tailorUsecase) ImproveSection(ctx context.Context, sectionName, sectionText, jobDescription string) (*domain.SectionImprovement, error) {
	if strings.TrimSpace(sectionText) == "" {
		return nil, apperror.BadRequest("Section text is required")
	}
	if sectionName == "" {
		sectionName = "experience"
	}

	reply, err := u.model.Ask(ctx, systemPrompt, improveSectionPrompt(sectionName, sectionText, jobDescription))
	if err != nil {
		return nil, apperror.BadGateway("Tailoring service unavailable", err)
	}

	var improved domain.SectionImprovement
	if err := parseModelJSON(reply, &improved); err != nil {
		return nil, apperror.BadGateway("Model returned an unreadable reply", err)
	}
	improved.Notes = nonNil(improved.Notes)
	return &improved, nil
}

func (u *tailorUsecase) SectionSuggestions(ctx context.Context, sectionName, sectionText string) ([]string, error) {
	if sectionName == "" {
		sectionName = "resume section"
	}
	return u.suggestions(ctx, sectionName, sectionText)
}

func (u *tailorUsecase) QuickSuggestions(ctx context.Context, resumeText string) ([]string, error) {
	return u.suggestions(ctx, "resume", resumeText)
}

func (u *tailorUsecase) suggestions(ctx context.Context, subject, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.BadRequest("Text is required")
	}

	reply, err := u.model.Ask(ctx, systemPrompt, suggestionsPrompt(subject, text))
	if err != nil {
		return nil, apperror.BadGateway("Suggestion service unavailable", err)
	}

	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := parseModelJSON(reply, &out); err != nil {
		return nil, apperror.BadGateway("Model returned an unreadable reply", err)
	}
	return nonNil(out.Suggestions), nil
}

func (u *tailorUsecase) AnalyzeResume(ctx context.Context, resumeText string) (*domain.ResumeAnalysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, apperror.BadRequest("Resume text is required")
	}

	reply, err := u.model.Ask(ctx, systemPrompt, analyzeResumePrompt(resumeText))
	if err != nil {
		return nil, apperror.BadGateway("Analysis service unavailable", err)
	}

	var analysis domain.ResumeAnalysis
	if err := parseModelJSON(reply, &analysis); err != nil {
		return nil, apperror.BadGateway("Model returned an unreadable reply", err)
	}
	analysis.Score = clampScore(analysis.Score)
	analysis.Strengths = nonNil(analysis.Strengths)
	analysis.Weaknesses = nonNil(analysis.Weaknesses)
	return &analysis, nil
}

// ImpactScore reuses the resume analysis; callers that only want the number
// read Score and ignore the rest.
func (u *tailorUsecase) ImpactScore(ctx context.Context, resumeText string) (*domain.ResumeAnalysis, error) {
	return u.AnalyzeResume(ctx, resumeText)
}

func (u *tailorUsecase) GenerateTemplate(ctx context.Context, resumeText, templateID string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", apperror.BadRequest("Resume text is required")
	}
	if templateID == "" {
		templateID = defaultTemplateID
	}

	reply, err := u.model.Ask(ctx, systemPrompt, generateTemplatePrompt(resumeText, templateID))
	if err != nil {
		return "", apperror.BadGateway("Template service unavailable", err)
	}

	var out struct {
		FormattedResume string `json:"formatted_resume"`
	}
	if err := parseModelJSON(reply, &out); err != nil {
		return "", apperror.BadGateway("Model returned an unreadable reply", err)
	}
	if strings.TrimSpace(out.FormattedResume) == "" {
		return "", apperror.BadGateway("Model returned an empty document", nil)
	}
	return out.FormattedResume, nil
}

// recordHistory appends the audit entry for a successful tailoring run.
// History is best-effort: a persist failure never fails the tailoring itself.
func (u *tailorUsecase) recordHistory(ctx context.Context, in domain.TailorInput, tailored string) {
	var userID int64 = 1
	if user, err := u.userRepo.Get(ctx); err == nil {
		userID = user.ID
	}
	var resumeID int64
	if in.ResumeID != nil {
		resumeID = *in.ResumeID
	}
	entry := &domain.TailoringEntry{
		UserID:         userID,
		ResumeID:       resumeID,
		JobPostID:      in.JobPostID,
		OriginalResume: in.ResumeText,
		JobDescription: in.JobDescription,
		TailoredResume: tailored,
		TemplateID:     in.TemplateID,
	}
	if err := u.historyRepo.Create(ctx, entry); err != nil {
		logger.Log.Warn("failed to record tailoring history", "error", err)
	}
}

// parseModelJSON decodes a model reply that should be a single JSON object,
// tolerating markdown fences and prose around the object.
func parseModelJSON(reply string, v any) error {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("no JSON object in model reply")
	}
	return json.Unmarshal([]byte(s[start:end+1]), v)
}

func normalizeTailorResult(r *domain.TailorResult) {
	r.MatchScore = clampScore(r.MatchScore)
	r.Changes = nonNil(r.Changes)
	r.KeywordsAdded = nonNil(r.KeywordsAdded)
}

func clampScore(n float64) float64 {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
