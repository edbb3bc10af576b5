package main

import (
	"context"
	"time"

	"github.com/docsift/docsift/ade"
	"github.com/docsift/docsift/model"
)

func parseRequest(document, parseModel, split, saveTo string) ade.ParseRequest {
	return ade.ParseRequest{
		Document: document,
		Model:    parseModel,
		Split:    split,
		SaveTo:   saveTo,
	}
}

func parseOne(ctx context.Context, client *ade.Client, req ade.ParseRequest, forceJob bool) (*model.ParseResult, error) {
	if forceJob {
		job, err := client.CreateParseJob(ctx, req)
		if err != nil {
			return nil, err
		}
		return client.WaitForParseJob(ctx, job.ID, 5*time.Second)
	}
	return client.ParseAuto(ctx, req)
}

// loadAnalysisSource parses a document, or loads an already-saved parse
// result when the path ends in .json.
func loadAnalysisSource(ctx context.Context, path string) (*model.ParseResult, error) {
	if isParseJSON(path) {
		return loadSavedParse(path)
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return client.ParseAuto(ctx, ade.ParseRequest{Document: path})
}

func isParseJSON(path string) bool {
	return len(path) > 5 && path[len(path)-5:] == ".json"
}
