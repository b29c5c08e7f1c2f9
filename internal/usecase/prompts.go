package usecase

import "fmt"

// Prompt templates for the tailoring features. Every prompt demands a single
// JSON object so the reply can be validated mechanically; see parseModelJSON.

const systemPrompt = `You are an expert resume writer and career coach. You rewrite and
evaluate resumes against job descriptions. Base all reasoning only on the provided text.
Do not invent experience, employers, or dates not explicitly mentioned.
Return only valid JSON. Do not include explanations, markdown, or text before or after
the JSON. Your response must be a single JSON object.`

func tailorPrompt(resume, jobDescription, templateID string, elite bool) string {
	depth := "Rewrite the resume so it highlights the experience most relevant to the job."
	if elite {
		depth = `Aggressively rewrite the resume: reorder sections, rewrite every bullet to
lead with measurable impact, and mirror the job description's terminology wherever the
candidate's experience genuinely supports it.`
	}
	return fmt.Sprintf(`%s
Apply the %q formatting style.

Return your result as a JSON object in this format:
{
  "tailored_resume": string,
  "match_score": number,
  "changes": [string],
  "keywords_added": [string],
  "summary": string
}

match_score is 0-100 and reflects how well the TAILORED resume matches the job.

RESUME:
%s

JOB DESCRIPTION:
%s`, depth, templateID, resume, jobDescription)
}

func improveResumePrompt(resume string) string {
	return fmt.Sprintf(`Improve this resume's wording, structure and impact without a target
job description. Keep all facts intact.

Return your result as a JSON object in this format:
{
  "tailored_resume": string,
  "match_score": number,
  "changes": [string],
  "keywords_added": [string],
  "summary": string
}

match_score is 0-100 and reflects the overall quality of the improved resume.

RESUME:
%s`, resume)
}

func analyzeGapsPrompt(resume, jobDescription string) string {
	return fmt.Sprintf(`Compare the resume with the job description and identify content gaps.

Return your result as a JSON object in this format:
{
  "missing_skills": [string],
  "weak_areas": [string],
  "recommendations": [string],
  "summary": string
}

RESUME:
%s

JOB DESCRIPTION:
%s`, resume, jobDescription)
}

func improveSectionPrompt(sectionName, sectionText, jobDescription string) string {
	return fmt.Sprintf(`Rewrite the %q section of a resume to better match the job description.
Keep all facts intact.

Return your result as a JSON object in this format:
{
  "improved_text": string,
  "notes": [string]
}

SECTION:
%s

JOB DESCRIPTION:
%s`, sectionName, sectionText, jobDescription)
}

func suggestionsPrompt(subject, text string) string {
	return fmt.Sprintf(`Give short, concrete suggestions to improve this %s.

Return your result as a JSON object in this format:
{
  "suggestions": [string]
}

TEXT:
%s`, subject, text)
}

func analyzeResumePrompt(resume string) string {
	return fmt.Sprintf(`Evaluate this resume on clarity, structure and measurable impact.

Return your result as a JSON object in this format:
{
  "score": number,
  "strengths": [string],
  "weaknesses": [string],
  "summary": string
}

score is 0-100.

RESUME:
%s`, resume)
}

func generateTemplatePrompt(resume, templateID string) string {
	return fmt.Sprintf(`Reformat this resume in the %q style without changing its content.

Return your result as a JSON object in this format:
{
  "formatted_resume": string
}

RESUME:
%s`, templateID, resume)
}
