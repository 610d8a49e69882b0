package tools

import (
	"context"

	"github.com/blevesearch/bleve/v2"
)

// SearchIndex is the part of bleve.Index the search tools use.
// bleve.Index satisfies it directly; tests swap in a mock.
type SearchIndex interface {
	SearchInContext(ctx context.Context, req *bleve.SearchRequest) (*bleve.SearchResult, error)
	DocCount() (uint64, error)
	Close() error
}

var _ SearchIndex = bleve.Index(nil)
