package tools

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mdxdocs/docs-indexer/internal/content"
)

const (
	defaultMaxResults = 10
	maxResultsLimit   = 20
)

// SearchResult is one matching page with its score
type SearchResult struct {
	Document content.Document `json:"document"`
	Score    float64          `json:"score"`
}

// SearchContentInput defines input for search_content tool
type SearchContentInput struct {
	Query      string `json:"query" jsonschema:"Full-text query over page titles, headings and body"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"Maximum number of results (optional, defaults to 10, max 20)"`
}

// SearchContentOutput defines output for search_content tool
type SearchContentOutput struct {
	Results   []SearchResult `json:"results"`
	Query     string         `json:"query"`
	TotalHits int            `json:"total_hits"`
}

// indexHolder manages concurrent access to the bleve search index
type indexHolder struct {
	// current holds the active index (atomic access for lock-free reads)
	current atomic.Pointer[SearchIndex]

	// refreshMu serializes rebuilds; searches never take it
	refreshMu sync.Mutex

	// wg tracks in-flight searches so a swapped-out index is closed only
	// once nobody is reading it
	wg sync.WaitGroup
}

var searchMgr = &indexHolder{}

// swap installs next and closes the previous index in the background
func (h *indexHolder) swap(next SearchIndex) {
	var ptr *SearchIndex
	if next != nil {
		ptr = &next
	}
	old := h.current.Swap(ptr)
	if old == nil {
		return
	}

	go func(old SearchIndex) {
		waitStart := time.Now()
		h.wg.Wait()
		if err := old.Close(); err != nil {
			log.Printf("Warning: Error closing old search index: %v", err)
			return
		}
		log.Printf("✓ Old search index closed (waited %v)", time.Since(waitStart).Round(time.Millisecond))
	}(*old)
}

// InitializeSearch opens the on-disk search index, rebuilding it when it is
// missing, from an older schema, or unreadable
func InitializeSearch() error {
	startTime := time.Now()
	dir := settings.SearchIndex

	if _, err := os.Stat(dir); err == nil {
		if version := content.ReadSearchIndexVersion(dir); version != content.SearchSchemaVersion {
			log.Printf("Search index schema mismatch (have: v%d, want: v%d), rebuilding...",
				version, content.SearchSchemaVersion)
		} else if index, err := bleve.Open(dir); err == nil {
			searchMgr.swap(index)
			count, _ := index.DocCount()
			log.Printf("✓ Content search initialized (%d docs) in %v",
				count, time.Since(startTime).Round(time.Millisecond))
			return nil
		} else {
			log.Printf("Warning: Search index unreadable (%v), rebuilding...", err)
		}
	}

	if _, err := rebuild(); err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}
	return nil
}

// documentFromHit copies stored fields back into a Document
func documentFromHit(hit *search.DocumentMatch) content.Document {
	doc := content.Document{ID: hit.ID}

	str := func(name string) string {
		s, _ := hit.Fields[name].(string)
		return s
	}
	list := func(name string) []string {
		switch v := hit.Fields[name].(type) {
		case string:
			return []string{v}
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
		return nil
	}

	doc.Key = str("key")
	doc.Path = str("path")
	doc.Title = str("title")
	doc.Description = str("description")
	doc.Content = str("content")
	doc.URL = str("url")
	doc.Headings = list("headings")
	doc.Keywords = list("keywords")
	if tokens, ok := hit.Fields["token_count"].(float64); ok {
		doc.TokenCount = int(tokens)
	}
	return doc
}

// SearchContent runs a full-text query against the content index
func SearchContent(ctx context.Context, req *mcp.CallToolRequest, input SearchContentInput) (*mcp.CallToolResult, SearchContentOutput, error) {
	// Track in-flight searches for graceful cleanup (MUST be before Load)
	searchMgr.wg.Add(1)
	defer searchMgr.wg.Done()

	indexPtr := searchMgr.current.Load()
	if indexPtr == nil {
		log.Printf("Search index not initialized, initializing now...")
		if err := InitializeSearch(); err != nil {
			return nil, SearchContentOutput{}, fmt.Errorf("failed to initialize search index: %w", err)
		}
		indexPtr = searchMgr.current.Load()
		if indexPtr == nil {
			return nil, SearchContentOutput{}, fmt.Errorf("search index still nil after initialization")
		}
	}
	index := *indexPtr

	maxResults := input.MaxResults
	if maxResults <= 0 || maxResults > maxResultsLimit {
		maxResults = defaultMaxResults
	}

	request := bleve.NewSearchRequest(bleve.NewMatchQuery(input.Query))
	request.Size = maxResults
	request.Fields = []string{"*"}

	searchResults, err := index.SearchInContext(ctx, request)
	if err != nil {
		return nil, SearchContentOutput{}, fmt.Errorf("search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		results = append(results, SearchResult{
			Document: documentFromHit(hit),
			Score:    hit.Score,
		})
	}

	return nil, SearchContentOutput{
		Results:   results,
		Query:     input.Query,
		TotalHits: int(searchResults.Total),
	}, nil
}

// RegisterSearchTools registers the content search tools
func RegisterSearchTools(server *mcp.Server) error {
	if err := InitializeSearch(); err != nil {
		log.Printf("Warning: Content search initialization failed: %v", err)
		log.Printf("Content search will attempt to initialize on first use")
	}

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_content",
			Description: "Full-text search over the documentation pages. Returns matching pages with their slug key, path and URL.",
		},
		SearchContent,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "rebuild_index",
			Description: "Re-walk the content root, rewrite the slug index and rebuild the search index.",
		},
		RebuildIndex,
	)

	return nil
}

// CloseSearch closes the search index once in-flight searches finish
func CloseSearch() error {
	indexPtr := searchMgr.current.Swap(nil)
	if indexPtr == nil {
		return nil
	}

	log.Printf("Waiting for in-flight searches to complete before closing...")
	searchMgr.wg.Wait()

	if err := (*indexPtr).Close(); err != nil {
		return fmt.Errorf("failed to close search index: %w", err)
	}
	log.Printf("✓ Search index closed")
	return nil
}
