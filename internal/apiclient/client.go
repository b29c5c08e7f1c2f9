// Package apiclient is the local-first API shim: it exposes the same
// request(path, method, body) surface as the HTTP API, resolves data
// endpoints against the local repositories, and forwards AI/compute
// endpoints to the real backend. Callers get uniform asynchronous-feeling
// behavior either way, with all state living in the local store.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/daryllundy/resume-builder-sub000/internal/domain"
	"github.com/daryllundy/resume-builder-sub000/pkg/logger"
)

var (
	ErrUnknownEndpoint   = errors.New("unknown endpoint")
	ErrUnsupportedMethod = errors.New("method not allowed")
)

// aiResources are never handled locally; they go to the real backend.
var aiResources = map[string]bool{
	"tailor":                 true,
	"elite-tailor":           true,
	"improve-resume":         true,
	"analyze-gaps":           true,
	"improve-section":        true,
	"ai-section-suggestions": true,
	"ai-quick-suggestions":   true,
	"generate-template":      true,
	"analyze-resume":         true,
	"resume-impact-score":    true,
	"parse-resume":           true,
	"convert-document":       true,
}

// Multipart marks a request body that must be passed through untouched,
// letting the transport keep the caller's content type (file uploads).
type Multipart struct {
	ContentType string
	Body        io.Reader
}

type Options struct {
	// BackendBaseURL is where AI/compute endpoints are forwarded.
	BackendBaseURL string
	HTTPClient     *http.Client
	// Latency, when positive, adds a randomized delay of up to this much to
	// every call to mimic a network round trip. Correctness never depends
	// on it.
	Latency time.Duration
}

type Client struct {
	resumeUC  domain.ResumeUsecase
	jobUC     domain.JobPostUsecase
	historyUC domain.HistoryUsecase

	backendBaseURL string
	httpDo         *http.Client
	latency        time.Duration
}

func New(resumeUC domain.ResumeUsecase, jobUC domain.JobPostUsecase, historyUC domain.HistoryUsecase, opts Options) *Client {
	httpDo := opts.HTTPClient
	if httpDo == nil {
		httpDo = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		resumeUC:       resumeUC,
		jobUC:          jobUC,
		historyUC:      historyUC,
		backendBaseURL: strings.TrimRight(opts.BackendBaseURL, "/"),
		httpDo:         httpDo,
		latency:        opts.Latency,
	}
}

// Request resolves one REST-shaped call. Data resources are served from the
// local store; AI resources are forwarded. Errors are logged and returned to
// the caller, who owns user-facing display.
func (c *Client) Request(ctx context.Context, path, method string, body any) (json.RawMessage, error) {
	out, err := c.dispatch(ctx, path, method, body)
	if err != nil {
		logger.Log.Warn("api request failed", "path", path, "method", method, "error", err)
		return nil, err
	}
	return out, nil
}

func (c *Client) dispatch(ctx context.Context, path, method string, body any) (json.RawMessage, error) {
	if err := c.simulateLatency(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, path)
	}

	rest, ok := strings.CutPrefix(u.Path, "/api/")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, path)
	}
	segs := strings.Split(strings.Trim(rest, "/"), "/")
	resource := segs[0]
	method = strings.ToUpper(method)

	switch resource {
	case "resumes":
		return c.resumeRoutes(ctx, segs, method, body)
	case "jobs":
		return c.jobRoutes(ctx, segs, method, body)
	case "job-description":
		if len(segs) == 2 && segs[1] == "save" && method == http.MethodPost {
			return c.saveJobDescription(ctx, body)
		}
	case "tailoring-history":
		if len(segs) == 1 {
			return c.historyRoutes(ctx, u.Query(), method, body)
		}
	default:
		if aiResources[resource] {
			return c.forward(ctx, path, method, body)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, path)
	}
	return nil, fmt.Errorf("%w: %s %s", ErrUnsupportedMethod, method, path)
}

func (c *Client) resumeRoutes(ctx context.Context, segs []string, method string, body any) (json.RawMessage, error) {
	switch len(segs) {
	case 1:
		switch method {
		case http.MethodGet:
			resumes, err := c.resumeUC.ListResumes(ctx)
			if err != nil {
				return nil, err
			}
			return marshal(resumes)
		case http.MethodPost:
			var req createResumePayload
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			resume := req.toDomain()
			if err := c.resumeUC.CreateResume(ctx, resume); err != nil {
				return nil, err
			}
			return marshal(resume)
		}
	case 2:
		id, err := parseID(segs[1])
		if err != nil {
			return nil, err
		}
		switch method {
		case http.MethodGet:
			resume, err := c.resumeUC.GetResume(ctx, id)
			if err != nil {
				return nil, err
			}
			return marshal(resume)
		case http.MethodPut, http.MethodPatch:
			var req updateResumePayload
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			resume, err := c.resumeUC.UpdateResume(ctx, id, req.toDomain())
			if err != nil {
				return nil, err
			}
			return marshal(resume)
		case http.MethodDelete:
			if err := c.resumeUC.DeleteResume(ctx, id); err != nil {
				return nil, err
			}
			return marshal(map[string]bool{"deleted": true})
		}
	case 3:
		if segs[2] != "set-default" {
			return nil, fmt.Errorf("%w: /api/resumes/%s/%s", ErrUnknownEndpoint, segs[1], segs[2])
		}
		if method == http.MethodPost {
			id, err := parseID(segs[1])
			if err != nil {
				return nil, err
			}
			resume, err := c.resumeUC.SetDefaultResume(ctx, id)
			if err != nil {
				return nil, err
			}
			return marshal(resume)
		}
	}
	return nil, fmt.Errorf("%w: %s /api/%s", ErrUnsupportedMethod, method, strings.Join(segs, "/"))
}

func (c *Client) jobRoutes(ctx context.Context, segs []string, method string, body any) (json.RawMessage, error) {
	switch len(segs) {
	case 1:
		switch method {
		case http.MethodGet:
			posts, err := c.jobUC.ListJobPosts(ctx)
			if err != nil {
				return nil, err
			}
			return marshal(posts)
		case http.MethodPost:
			var req createJobPayload
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			post := req.toDomain()
			if err := c.jobUC.CreateJobPost(ctx, post); err != nil {
				return nil, err
			}
			return marshal(post)
		}
	case 2:
		id, err := parseID(segs[1])
		if err != nil {
			return nil, err
		}
		switch method {
		case http.MethodGet:
			post, err := c.jobUC.GetJobPost(ctx, id)
			if err != nil {
				return nil, err
			}
			return marshal(post)
		case http.MethodPut, http.MethodPatch:
			var req updateJobPayload
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			post, err := c.jobUC.UpdateJobPost(ctx, id, req.toDomain())
			if err != nil {
				return nil, err
			}
			return marshal(post)
		case http.MethodDelete:
			if err := c.jobUC.DeleteJobPost(ctx, id); err != nil {
				return nil, err
			}
			return marshal(map[string]bool{"deleted": true})
		}
	}
	return nil, fmt.Errorf("%w: %s /api/%s", ErrUnsupportedMethod, method, strings.Join(segs, "/"))
}

func (c *Client) saveJobDescription(ctx context.Context, body any) (json.RawMessage, error) {
	var req saveDescriptionPayload
	if err := decodeBody(body, &req); err != nil {
		return nil, err
	}
	post := req.toDomain()
	if err := c.jobUC.CreateJobPost(ctx, post); err != nil {
		return nil, err
	}
	return marshal(post)
}

func (c *Client) historyRoutes(ctx context.Context, query url.Values, method string, body any) (json.RawMessage, error) {
	switch method {
	case http.MethodGet:
		var resumeID *int64
		for _, key := range []string{"resume_id", "resumeId"} {
			if raw := query.Get(key); raw != "" {
				id, err := parseID(raw)
				if err != nil {
					return nil, err
				}
				resumeID = &id
				break
			}
		}
		entries, err := c.historyUC.ListHistory(ctx, resumeID)
		if err != nil {
			return nil, err
		}
		return marshal(entries)
	case http.MethodPost:
		var req createHistoryPayload
		if err := decodeBody(body, &req); err != nil {
			return nil, err
		}
		entry := req.toDomain()
		if err := c.historyUC.RecordHistory(ctx, entry); err != nil {
			return nil, err
		}
		return marshal(entry)
	}
	return nil, fmt.Errorf("%w: %s /api/tailoring-history", ErrUnsupportedMethod, method)
}

// forward relays the call to the real backend. JSON bodies are encoded here;
// multipart bodies pass through with the caller's content type so the
// transport keeps its boundary.
func (c *Client) forward(ctx context.Context, path, method string, body any) (json.RawMessage, error) {
	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case *Multipart:
		reader = b.Body
		contentType = b.ContentType
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.backendBaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return json.RawMessage(data), nil
}

func (c *Client) simulateLatency(ctx context.Context) error {
	if c.latency <= 0 {
		return nil
	}
	d := time.Duration(rand.Int63n(int64(c.latency))) + 10*time.Millisecond
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// decodeBody converts the caller's loosely typed body into the typed payload
// for the matched endpoint, so malformed requests fail here instead of
// falling through to storage.
func decodeBody(body, into any) error {
	if body == nil {
		return errors.New("request body is required")
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func marshal(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
