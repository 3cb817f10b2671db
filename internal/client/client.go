// Package client is the Go counterpart of the browser uploader: it requests
// presigned targets, streams files directly to object storage, starts an
// ingest job, and polls the job's status until completion.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrJobNotFound is returned when the server no longer knows the job id.
var ErrJobNotFound = errors.New("job not found")

// Target is one presigned upload slot issued by the server.
type Target struct {
	Key         string `json:"key"`
	PutURL      string `json:"putUrl"`
	GetURL      string `json:"getUrl"`
	ContentType string `json:"contentType"`
}

// PhotoRef identifies one uploaded photo when starting an ingest job.
type PhotoRef struct {
	Key         string `json:"key"`
	URL         string `json:"url,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// JobStatus is the server's progress report for an ingest job.
type JobStatus struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// Client talks to the photoflow API and to the presigned storage URLs.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestTargets asks the server for one presigned target per content type.
func (c *Client) RequestTargets(ctx context.Context, contentTypes []string) ([]Target, error) {
	body := map[string]interface{}{
		"count":        len(contentTypes),
		"contentTypes": contentTypes,
	}

	var targets []Target
	if err := c.postJSON(ctx, "/uploads", body, http.StatusOK, &targets); err != nil {
		return nil, err
	}
	if len(targets) != len(contentTypes) {
		return nil, fmt.Errorf("server returned %d targets for %d files", len(targets), len(contentTypes))
	}
	return targets, nil
}

// Upload PUTs size bytes from r directly to the target's presigned URL.
// onProgress receives the transfer percentage, monotonically non-decreasing.
func (c *Client) Upload(ctx context.Context, target Target, r io.Reader, size int64, onProgress func(pct int)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target.PutURL, newProgressReader(r, size, onProgress))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", target.ContentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("upload %q: %w", target.Key, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload %q: unexpected status %d", target.Key, resp.StatusCode)
	}
	return nil
}

// StartIngest submits the uploaded photos and returns the created job id.
func (c *Client) StartIngest(ctx context.Context, photos []PhotoRef) (string, error) {
	body := map[string]interface{}{"photos": photos}

	var resp struct {
		JobID string `json:"jobId"`
	}
	if err := c.postJSON(ctx, "/ingest", body, http.StatusAccepted, &resp); err != nil {
		return "", err
	}
	if resp.JobID == "" {
		return "", errors.New("server returned an empty job id")
	}
	return resp.JobID, nil
}

// JobStatus fetches the current status of a job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (JobStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/jobs/"+jobID+"/status", nil)
	if err != nil {
		return JobStatus{}, fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return JobStatus{}, fmt.Errorf("poll job %q: %w", jobID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return JobStatus{}, ErrJobNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return JobStatus{}, fmt.Errorf("poll job %q: unexpected status %d", jobID, resp.StatusCode)
	}

	var status JobStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return JobStatus{}, fmt.Errorf("decode job status: %w", err)
	}
	return status, nil
}

// WaitForJob polls the job on a fixed interval until it completes or ctx is
// cancelled. Transient poll failures are skipped silently and retried on the
// next tick; a definitive not-found ends the wait.
func (c *Client) WaitForJob(ctx context.Context, jobID string, interval time.Duration, onTick func(JobStatus)) (JobStatus, error) {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.JobStatus(ctx, jobID)
		if errors.Is(err, ErrJobNotFound) {
			return JobStatus{}, err
		}
		if err == nil {
			if onTick != nil {
				onTick(status)
			}
			if status.Status == "completed" {
				return status, nil
			}
		}

		select {
		case <-ctx.Done():
			return JobStatus{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// postJSON sends a JSON body and decodes the response when it carries the
// expected status; any other status is surfaced with the server's message.
func (c *Client) postJSON(ctx context.Context, path string, body interface{}, wantStatus int, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message != "" {
			return fmt.Errorf("POST %s: %s", path, errBody.Message)
		}
		return fmt.Errorf("POST %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
