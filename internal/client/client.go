package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/pkg/requestid"
)

// Client talks to the voltcheck API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// APIError is a non-2xx answer of the server.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("server returned status %d: %s (request id %s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) Info(ctx context.Context) (*api.Info, error) {
	var info api.Info
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) ListJobs(ctx context.Context) (api.JobList, error) {
	var jobs api.JobList
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id uuid.UUID) (*api.Job, error) {
	var job api.Job
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/jobs/"+id.String(), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, form api.JobCreate) (*api.Job, error) {
	var job api.Job
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/jobs", form, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id uuid.UUID) (*api.Status, error) {
	var status api.Status
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/jobs/"+id.String(), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListReports lists the reports, optionally only those of one job.
func (c *Client) ListReports(ctx context.Context, jobID *uuid.UUID) (api.ReportList, error) {
	path := "/api/v1/reports"
	if jobID != nil {
		path += "?jobId=" + url.QueryEscape(jobID.String())
	}

	var reports api.ReportList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) GetReport(ctx context.Context, id uuid.UUID) (*api.Report, error) {
	var report api.Report
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/reports/"+id.String(), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) DeleteReport(ctx context.Context, id uuid.UUID) (*api.Status, error) {
	var status api.Status
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/reports/"+id.String(), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RenderReport downloads the printable report in the given format.
func (c *Client) RenderReport(ctx context.Context, id uuid.UUID, format string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/reports/%s/render?format=%s", id, url.QueryEscape(format))
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	content, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(requestid.Header, requestid.Generate())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call voltcheck server: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(content))}
		var body api.Error
		if json.Unmarshal(content, &body) == nil && body.Message != "" {
			apiErr.Message = body.Message
			if body.RequestId != nil {
				apiErr.RequestID = *body.RequestId
			}
		}
		return nil, apiErr
	}
	return content, nil
}
