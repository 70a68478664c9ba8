// Package submission posts a finished questionnaire to the lead API.
package submission

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

	"go.uber.org/zap"
)

// Policy decides what a failed submission means for the user.
type Policy string

const (
	// FailOpen logs the failure and lets the user continue to messaging.
	FailOpen Policy = "fail_open"
	// FailClosed stops the user with an alert; retry is theirs to start.
	FailClosed Policy = "fail_closed"
)

var ErrSubmissionFailed = errors.New("lead submission failed")

// ParsePolicy accepts fail_open or fail_closed, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case FailOpen, FailClosed:
		return p, nil
	}
	return "", fmt.Errorf("unknown submit failure policy %q", s)
}

const submitPath = "/api/submit"

const maxResponseBytes = 64 << 10

type Request struct {
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	FormData map[string]any `json:"formData"`
	Flow     string         `json:"flow,omitempty"`
}

// Response is the envelope the submit endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Slug    string `json:"slug,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Result is what the caller acts on. Saved is false when the lead was not
// stored; under FailOpen Err then carries the swallowed cause.
type Result struct {
	Saved bool
	Slug  string
	Err   error
}

type Client struct {
	baseURL string
	policy  Policy
	logger  *zap.Logger
	http    *http.Client
}

// NewClient builds a client for the API at baseURL. A nil httpClient gets a
// default with a 10s timeout.
func NewClient(baseURL string, policy Policy, logger *zap.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  policy,
		logger:  logger,
		http:    httpClient,
	}
}

func (c *Client) Policy() Policy {
	return c.policy
}

// Submit makes exactly one attempt. Under FailOpen a failure is logged and
// the returned error is nil; under FailClosed it wraps ErrSubmissionFailed.
func (c *Client) Submit(ctx context.Context, req Request) (Result, error) {
	res, err := c.post(ctx, req)
	if err == nil {
		return res, nil
	}

	err = fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	if c.policy == FailClosed {
		return Result{Err: err}, err
	}
	c.logger.Warn("lead submission failed, continuing",
		zap.String("flow", req.Flow),
		zap.Error(err),
	)
	return Result{Err: err}, nil
}

func (c *Client) post(ctx context.Context, req Request) (Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, err
	}

	var out Response
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return Result{}, fmt.Errorf("status %d: undecodable body: %w", resp.StatusCode, err)
		}
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		return Result{}, fmt.Errorf("status %d: %s", resp.StatusCode, out.reason())
	}
	return Result{Saved: true, Slug: out.Slug}, nil
}

func (r Response) reason() string {
	switch {
	case r.Error != "":
		return r.Error
	case r.Message != "":
		return r.Message
	}
	return "unsuccessful response"
}
