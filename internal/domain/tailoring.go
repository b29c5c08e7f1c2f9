package domain

import "context"

// TailorInput describes one tailoring run. ResumeID/JobPostID are optional:
// tailoring can target pasted text that was never saved.
type TailorInput struct {
	ResumeID       *int64
	JobPostID      *int64
	ResumeText     string
	JobDescription string
	TemplateID     string
}

type TailorResult struct {
	TailoredResume string   `json:"tailored_resume"`
	MatchScore     float64  `json:"match_score"`
	Changes        []string `json:"changes"`
	KeywordsAdded  []string `json:"keywords_added"`
	Summary        string   `json:"summary"`
}

type GapAnalysis struct {
	MissingSkills   []string `json:"missing_skills"`
	WeakAreas       []string `json:"weak_areas"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

type SectionImprovement struct {
	ImprovedText string   `json:"improved_text"`
	Notes        []string `json:"notes"`
}

type ResumeAnalysis struct {
	Score      float64  `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Summary    string   `json:"summary"`
}

// TailorUsecase is the prompt-orchestration layer: it builds prompts, calls
// the chat model, validates the structured reply and normalizes its values.
type TailorUsecase interface {
	Tailor(ctx context.Context, in TailorInput) (*TailorResult, error)
	// EliteTailor is Tailor with a more aggressive rewrite prompt.
	EliteTailor(ctx context.Context, in TailorInput) (*TailorResult, error)
	ImproveResume(ctx context.Context, resumeText string) (*TailorResult, error)
	AnalyzeGaps(ctx context.Context, resumeText, jobDescription string) (*GapAnalysis, error)
	ImproveSection(ctx context.Context, sectionName, sectionText, jobDescription string) (*SectionImprovement, error)
	SectionSuggestions(ctx context.Context, sectionName, sectionText string) ([]string, error)
	QuickSuggestions(ctx context.Context, resumeText string) ([]string, error)
	AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error)
	ImpactScore(ctx context.Context, resumeText string) (*ResumeAnalysis, error)
	GenerateTemplate(ctx context.Context, resumeText, templateID string) (string, error)
}
