package apiclient

import (
	"time"

	"github.com/daryllundy/resume-builder-sub000/config"
	"github.com/daryllundy/resume-builder-sub000/internal/domain"
)

// NewFromConfig builds a shim client from application config, so embedders
// pick up the same backend target and latency simulation as the server.
func NewFromConfig(resumeUC domain.ResumeUsecase, jobUC domain.JobPostUsecase, historyUC domain.HistoryUsecase, cfg *config.Config) *Client {
	return New(resumeUC, jobUC, historyUC, Options{
		BackendBaseURL: cfg.BackendBaseURL,
		Latency:        time.Duration(cfg.SimulatedLatencyMS) * time.Millisecond,
	})
}
