// Package bootstrap seeds the store with one sample user, resume and job post
// so a fresh install has something to click on. It never touches a store that
// already holds data.
package bootstrap

import (
	"context"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/logger"
)

const demoResumeContent = `Jordan Avery
Software Engineer | jordan.avery@example.com

SUMMARY
Backend engineer with 5 years of experience building web services in Go and
Python. Comfortable owning features from design through deployment.

EXPERIENCE
Software Engineer, Northwind Labs (2021 - present)
- Built and operated REST APIs serving 2M requests/day
- Led migration from a monolith to service-oriented deployments

Junior Developer, Contoso (2019 - 2021)
- Implemented internal tooling for the support team

SKILLS
Go, Python, PostgreSQL, Docker, CI/CD`

const demoJobDescription = `We are looking for a Backend Engineer to join our
platform team. You will design and build APIs in Go, own services end to end,
and work closely with product. Experience with PostgreSQL and containerized
deployments is a plus.`

// Seed creates the demo user, resume and job post, but only when both the
// resume and job post collections are empty. Safe to call repeatedly.
func Seed(ctx context.Context, users domain.UserRepository, resumes domain.ResumeRepository, jobs domain.JobPostRepository) error {
	existingResumes, err := resumes.GetAll(ctx)
	if err != nil {
		return err
	}
	existingJobs, err := jobs.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existingResumes) > 0 || len(existingJobs) > 0 {
		return nil
	}

	user := &domain.User{Username: "demo", Password: "demo"}
	if err := users.Save(ctx, user); err != nil {
		return err
	}

	resume := &domain.Resume{
		UserID:    user.ID,
		Title:     "Sample Resume",
		Content:   demoResumeContent,
		IsDefault: true,
	}
	if err := resumes.Create(ctx, resume); err != nil {
		return err
	}

	location := "Remote"
	post := &domain.JobPost{
		UserID:      user.ID,
		Title:       "Backend Engineer",
		Company:     "Northwind Labs",
		Location:    &location,
		Description: demoJobDescription,
		Status:      domain.StatusSaved,
	}
	if err := jobs.Create(ctx, post); err != nil {
		return err
	}

	logger.Log.Info("seeded demo data", "user", user.Username, "resume_id", resume.ID, "job_id", post.ID)
	return nil
}
