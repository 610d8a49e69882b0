package tools

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

// currentSlugs holds the slug index served to readers. Rebuilds swap it whole.
var currentSlugs atomic.Pointer[slugindex.SlugIndex]

var slugLoadMu sync.Mutex

// ResolveSlugInput defines input for resolve_slug tool
type ResolveSlugInput struct {
	Segments []string `json:"segments,omitempty" jsonschema:"URL path segments after the docs prefix (optional)"`
	Slug     string   `json:"slug,omitempty" jsonschema:"Slash separated slug, used when segments is empty (optional)"`
}

// ResolveSlugOutput defines output for resolve_slug tool
type ResolveSlugOutput struct {
	Key   string `json:"key"`
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

// ListSlugsInput defines input for list_slugs tool
type ListSlugsInput struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"Only list keys starting with this prefix (optional)"`
}

// SlugEntry is one key and the file it resolves to
type SlugEntry struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}

// ListSlugsOutput defines output for list_slugs tool
type ListSlugsOutput struct {
	Entries []SlugEntry `json:"entries"`
	Total   int         `json:"total"`
}

// loadSlugs returns the current slug index, reading the link map on first use
func loadSlugs() (slugindex.SlugIndex, error) {
	if idx := currentSlugs.Load(); idx != nil {
		return *idx, nil
	}

	slugLoadMu.Lock()
	defer slugLoadMu.Unlock()

	if idx := currentSlugs.Load(); idx != nil {
		return *idx, nil
	}

	idx, err := slugindex.Load(settings.LinkMap)
	if err != nil {
		return nil, err
	}
	currentSlugs.Store(&idx)
	log.Printf("✓ Slug index loaded (%d keys) from %s", len(idx), settings.LinkMap)
	return idx, nil
}

// segmentsFor picks the lookup segments from the tool input
func segmentsFor(input ResolveSlugInput) []string {
	if len(input.Segments) > 0 {
		return input.Segments
	}
	slug := strings.Trim(input.Slug, "/")
	if slug == "" {
		return nil
	}
	return strings.Split(slug, "/")
}

// ResolveSlug maps URL segments to a content file
func ResolveSlug(ctx context.Context, req *mcp.CallToolRequest, input ResolveSlugInput) (*mcp.CallToolResult, ResolveSlugOutput, error) {
	idx, err := loadSlugs()
	if err != nil {
		return nil, ResolveSlugOutput{}, fmt.Errorf("slug index unavailable: %w", err)
	}

	segments := segmentsFor(input)
	path, found := idx.Resolve(segments)

	return nil, ResolveSlugOutput{
		Key:   slugindex.Slug(segments),
		Path:  path,
		Found: found,
	}, nil
}

// ListSlugs lists keys in ascending order
func ListSlugs(ctx context.Context, req *mcp.CallToolRequest, input ListSlugsInput) (*mcp.CallToolResult, ListSlugsOutput, error) {
	idx, err := loadSlugs()
	if err != nil {
		return nil, ListSlugsOutput{}, fmt.Errorf("slug index unavailable: %w", err)
	}

	entries := make([]SlugEntry, 0, len(idx))
	for _, key := range idx.Keys() {
		if strings.HasPrefix(key, input.Prefix) {
			entries = append(entries, SlugEntry{Key: key, Path: idx[key]})
		}
	}

	return nil, ListSlugsOutput{Entries: entries, Total: len(entries)}, nil
}

// RegisterSlugTools registers slug lookup tools
func RegisterSlugTools(server *mcp.Server) {
	if _, err := loadSlugs(); err != nil {
		log.Printf("Warning: Slug index not loaded: %v", err)
		log.Printf("Run rebuild_index or the indexer command to create it")
	}

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "resolve_slug",
			Description: "Resolve docs URL segments to the content file that renders them. Empty segments resolve the root page.",
		},
		ResolveSlug,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_slugs",
			Description: "List public slug keys and their content files, optionally filtered by prefix.",
		},
		ListSlugs,
	)
}
