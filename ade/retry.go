package ade

import (
	"context"
	"errors"
	"time"

	"github.com/docsift/docsift/model"
)

// parseRetries bounds ParseWithRetry's rate-limit retries.
const parseRetries = 3

// retryBaseWait is the first backoff step; overridden in tests.
var retryBaseWait = 10 * time.Second

// ParseWithRetry runs a parse, retrying up to three times when the service
// rejects the call with a rate limit. The wait honors the response's
// Retry-After when given and otherwise backs off exponentially (10s, 20s,
// 40s). Every other error is returned immediately.
func (c *Client) ParseWithRetry(ctx context.Context, req ParseRequest) (*model.ParseResult, error) {
	var lastErr error
	for attempt := 0; attempt < parseRetries; attempt++ {
		result, err := c.Parse(ctx, req)
		if err == nil {
			return result, nil
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.IsRateLimit() {
			return nil, err
		}
		lastErr = err

		wait := apiErr.RetryAfter
		if wait <= 0 {
			wait = time.Duration(1<<attempt) * retryBaseWait
		}
		c.logger.Warn().
			Dur("wait", wait).
			Int("attempt", attempt+1).
			Msg("rate limited, backing off")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}
