package ade

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docsift/docsift/model"
)

// ParseAll parses multiple documents concurrently, at most limit requests in
// flight at once (unlimited when limit <= 0). Results are returned in input
// order; the first failure cancels the remaining work.
func (c *Client) ParseAll(ctx context.Context, documents []string, limit int) ([]*model.ParseResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([]*model.ParseResult, len(documents))
	for i, doc := range documents {
		i, doc := i, doc
		g.Go(func() error {
			result, err := c.Parse(ctx, ParseRequest{Document: doc})
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseAuto parses a document, switching to an asynchronous parse job when
// the file exceeds the large-file threshold.
func (c *Client) ParseAuto(ctx context.Context, req ParseRequest) (*model.ParseResult, error) {
	if req.Document != "" {
		info, err := os.Stat(req.Document)
		if err != nil {
			return nil, err
		}
		if info.Size() > LargeFileThreshold {
			c.logger.Info().
				Int64("bytes", info.Size()).
				Msg("document exceeds synchronous limit, using parse job")
			job, err := c.CreateParseJob(ctx, req)
			if err != nil {
				return nil, err
			}
			return c.WaitForParseJob(ctx, job.ID, 5*time.Second)
		}
	}
	return c.Parse(ctx, req)
}
