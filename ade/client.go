package ade

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docsift/docsift/model"
)

// Client talks to the document-intelligence HTTP API: parse, extract, and
// split, plus the asynchronous parse-job endpoints for large documents.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a logger; by default the client is silent.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a client for the given config. A nil config uses
// defaults and the environment.
func NewClient(cfg *Config, opts ...Option) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &Client{
		cfg:    *cfg,
		http:   &http.Client{Timeout: 5 * time.Minute},
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// APIError is a non-2xx response from the service. RetryAfter is populated
// from the Retry-After header on rate-limit responses.
type APIError struct {
	Status     int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsRateLimit reports whether the error is a rate-limit rejection.
func (e *APIError) IsRateLimit() bool { return e.Status == http.StatusTooManyRequests }

// ParseRequest describes one parse call. Exactly one of Document or
// DocumentURL must be set.
type ParseRequest struct {
	// Document is a local file to upload.
	Document string
	// DocumentURL points the service at a remote document instead.
	DocumentURL string
	// Model overrides the configured parse model.
	Model string
	// Split asks the service to segment the document ("page" or a
	// classification mode).
	Split string
	// SaveTo, when set, writes the raw response JSON to
	// <SaveTo>/<stem>_parse_output.json for debugging.
	SaveTo string
}

// Parse runs one synchronous parse.
func (c *Client) Parse(ctx context.Context, req ParseRequest) (*model.ParseResult, error) {
	if (req.Document == "") == (req.DocumentURL == "") {
		return nil, fmt.Errorf("parse: exactly one of Document or DocumentURL must be set")
	}
	parseModel := req.Model
	if parseModel == "" {
		parseModel = c.cfg.ParseModel
	}

	fields := map[string]string{"model": parseModel}
	if req.DocumentURL != "" {
		fields["document_url"] = req.DocumentURL
	}
	if req.Split != "" {
		fields["split"] = req.Split
	}

	start := time.Now()
	raw, err := c.postMultipart(ctx, "/v1/ade/parse", req.Document, fields)
	if err != nil {
		return nil, err
	}

	var result model.ParseResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding parse response: %w", err)
	}

	c.logger.Info().
		Str("document", req.Document).
		Int("pages", result.Metadata.PageCount).
		Int("chunks", len(result.Chunks)).
		Dur("elapsed", time.Since(start)).
		Msg("parsed document")

	if len(result.Metadata.FailedPages) > 0 {
		c.logger.Warn().
			Ints("failed_pages", result.Metadata.FailedPages).
			Msg("parse completed with failed pages")
	}

	if req.SaveTo != "" {
		if err := saveParseOutput(req.SaveTo, req.Document, raw); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

func saveParseOutput(dir, document string, raw []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	stem := strings.TrimSuffix(filepath.Base(document), filepath.Ext(document))
	if stem == "" {
		stem = "document"
	}
	out := filepath.Join(dir, stem+"_parse_output.json")
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return fmt.Errorf("saving parse output: %w", err)
	}
	return nil
}

// ExtractRequest describes one field-extraction call against previously
// parsed markdown.
type ExtractRequest struct {
	Markdown string
	// Schema is a JSON Schema describing the fields to extract.
	Schema json.RawMessage
	Model  string
}

// Extract pulls structured fields out of parsed markdown.
func (c *Client) Extract(ctx context.Context, req ExtractRequest) (*model.ExtractResult, error) {
	extractModel := req.Model
	if extractModel == "" {
		extractModel = c.cfg.ExtractModel
	}

	raw, err := c.postForm(ctx, "/v1/ade/extract", url.Values{
		"markdown": {req.Markdown},
		"schema":   {string(req.Schema)},
		"model":    {extractModel},
	})
	if err != nil {
		return nil, err
	}

	var result model.ExtractResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding extract response: %w", err)
	}
	c.logger.Info().Int("fields", len(result.Fields)).Msg("extracted fields")
	return &result, nil
}

// SplitClass describes one document class a split call may assign.
type SplitClass struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Identifier names the field whose value groups pages into one logical
	// document, such as an invoice number.
	Identifier string `json:"identifier,omitempty"`
}

// Split classifies parsed markdown into logical sub-documents.
func (c *Client) Split(ctx context.Context, markdown string, classes []SplitClass, splitModel string) (*model.SplitResult, error) {
	if splitModel == "" {
		splitModel = c.cfg.SplitModel
	}
	classJSON, err := json.Marshal(classes)
	if err != nil {
		return nil, fmt.Errorf("encoding split classes: %w", err)
	}

	raw, err := c.postForm(ctx, "/v1/ade/split", url.Values{
		"markdown":    {markdown},
		"split_class": {string(classJSON)},
		"model":       {splitModel},
	})
	if err != nil {
		return nil, err
	}

	var result model.SplitResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding split response: %w", err)
	}
	c.logger.Info().Int("splits", len(result.Segments)).Msg("split document")
	return &result, nil
}

// postMultipart uploads the document (when set) plus form fields and returns
// the raw response body.
func (c *Client) postMultipart(ctx context.Context, path, document string, fields map[string]string) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if document != "" {
		f, err := os.Open(document)
		if err != nil {
			return nil, fmt.Errorf("opening document: %w", err)
		}
		defer f.Close()

		part, err := mw.CreateFormFile("document", filepath.Base(document))
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return c.do(ctx, path, &body, mw.FormDataContentType())
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (c *Client) do(ctx context.Context, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp, raw)
	}
	return raw, nil
}

func apiError(resp *http.Response, raw []byte) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	var msg struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &msg); err == nil {
		if msg.Message != "" {
			apiErr.Message = msg.Message
		} else {
			apiErr.Message = msg.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
		apiErr.RetryAfter = time.Duration(secs) * time.Second
	}
	return apiErr
}
