package ade

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docsift/docsift/model"
)

// Job statuses reported by the parse-job endpoints.
const (
	JobPending   = "pending"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// LargeFileThreshold is the document size above which ParseAuto switches
// from the synchronous endpoint to a parse job.
const LargeFileThreshold = 50_000_000

// Job is the state of an asynchronous parse job.
type Job struct {
	ID            string             `json:"job_id"`
	Status        string             `json:"status"`
	Progress      float64            `json:"progress"`
	FailureReason string             `json:"failure_reason,omitempty"`
	Result        *model.ParseResult `json:"result,omitempty"`
}

// Done reports whether the job reached a terminal state.
func (j *Job) Done() bool { return j.Status == JobCompleted || j.Status == JobFailed }

// JobFailedError reports a parse job that finished unsuccessfully.
type JobFailedError struct {
	JobID  string
	Reason string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("parse job %s failed: %s", e.JobID, e.Reason)
}

// CreateParseJob starts an asynchronous parse for a large document.
func (c *Client) CreateParseJob(ctx context.Context, req ParseRequest) (*Job, error) {
	if req.Document == "" {
		return nil, fmt.Errorf("parse job: Document must be set")
	}
	parseModel := req.Model
	if parseModel == "" {
		parseModel = c.cfg.ParseModel
	}

	fields := map[string]string{"model": parseModel}
	if req.Split != "" {
		fields["split"] = req.Split
	}

	raw, err := c.postMultipart(ctx, "/v1/ade/parse-jobs", req.Document, fields)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("decoding parse job: %w", err)
	}
	c.logger.Info().Str("job_id", job.ID).Msg("created parse job")
	return &job, nil
}

// GetParseJob fetches the current state of a parse job.
func (c *Client) GetParseJob(ctx context.Context, jobID string) (*Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/ade/parse-jobs/"+jobID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading job response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp, raw)
	}

	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("decoding parse job: %w", err)
	}
	return &job, nil
}

// WaitForParseJob polls a job until it reaches a terminal state, returning
// the parse result on completion. The poll interval defaults to 5 seconds
// when non-positive.
func (c *Client) WaitForParseJob(ctx context.Context, jobID string, interval time.Duration) (*model.ParseResult, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		job, err := c.GetParseJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		c.logger.Debug().
			Str("job_id", jobID).
			Str("status", job.Status).
			Float64("progress", job.Progress).
			Msg("parse job status")

		switch job.Status {
		case JobCompleted:
			if job.Result == nil {
				return nil, fmt.Errorf("parse job %s completed without a result", jobID)
			}
			return job.Result, nil
		case JobFailed:
			return nil, &JobFailedError{JobID: jobID, Reason: job.FailureReason}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
