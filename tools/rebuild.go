package tools

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mdxdocs/docs-indexer/internal/content"
	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

// RebuildIndexInput defines input for rebuild_index tool
type RebuildIndexInput struct{}

// RebuildIndexOutput defines output for rebuild_index tool
type RebuildIndexOutput struct {
	Files      int                   `json:"files"`
	Keys       int                   `json:"keys"`
	Documents  int                   `json:"documents"`
	Collisions []slugindex.Collision `json:"collisions,omitempty"`
	Message    string                `json:"message"`
}

// rebuild runs the slug indexer and rebuilds the search index, then swaps
// both into the running server
func rebuild() (RebuildIndexOutput, error) {
	startTime := time.Now()

	searchMgr.refreshMu.Lock()
	defer searchMgr.refreshMu.Unlock()

	if err := acquireLock(settings.LockFile); err != nil {
		return RebuildIndexOutput{}, fmt.Errorf("failed to acquire rebuild lock: %w", err)
	}
	defer func() {
		if err := releaseLock(settings.LockFile); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	result, err := slugindex.New(settings.ContentRoot, settings.LinkMap).Run()
	if err != nil {
		return RebuildIndexOutput{}, fmt.Errorf("slug index build failed: %w", err)
	}
	idx := result.Index
	currentSlugs.Store(&idx)

	docs := content.BuildDocuments(os.DirFS(settings.ContentRoot), result, settings.BaseURL, log.Default())
	if err := content.BuildSearchIndex(settings.SearchIndex, docs); err != nil {
		return RebuildIndexOutput{}, fmt.Errorf("search index build failed: %w", err)
	}

	index, err := bleve.Open(settings.SearchIndex)
	if err != nil {
		return RebuildIndexOutput{}, fmt.Errorf("failed to open new search index: %w", err)
	}
	searchMgr.swap(index)

	elapsed := time.Since(startTime).Round(time.Millisecond)
	log.Printf("✓ Rebuild completed in %v", elapsed)

	return RebuildIndexOutput{
		Files:      len(result.Files),
		Keys:       len(result.Index),
		Documents:  len(docs),
		Collisions: result.Collisions,
		Message: fmt.Sprintf("Indexed %d files into %d keys and %d search documents in %v",
			len(result.Files), len(result.Index), len(docs), elapsed),
	}, nil
}

// RebuildIndex rebuilds the slug index and the search index
func RebuildIndex(ctx context.Context, req *mcp.CallToolRequest, input RebuildIndexInput) (*mcp.CallToolResult, RebuildIndexOutput, error) {
	output, err := rebuild()
	if err != nil {
		return nil, RebuildIndexOutput{}, fmt.Errorf("rebuild failed: %w", err)
	}
	return nil, output, nil
}
