package tools

import (
	"path/filepath"

	"github.com/mdxdocs/docs-indexer/internal/content"
	"github.com/mdxdocs/docs-indexer/internal/nav"
	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

const (
	// DefaultSearchIndex is where the bleve index lives when not configured
	DefaultSearchIndex = "./data/search/index"

	// DefaultNavFile is the hand-authored navigation config
	DefaultNavFile = "./src/nav/nav.yaml"

	lockFileName = ".docs-indexer.lock"
)

// Config holds the paths the tools read from and write to
type Config struct {
	ContentRoot string // Content root walked by the indexer
	LinkMap     string // Slug index artifact
	SearchIndex string // bleve index directory
	NavFile     string // Navigation YAML
	BaseURL     string // Route prefix of the docs pages, e.g. "/docs"
	LockFile    string // Inter-process rebuild lock
}

var settings = DefaultConfig()

// DefaultConfig returns the site's conventional layout
func DefaultConfig() Config {
	return Config{
		ContentRoot: slugindex.DefaultRoot,
		LinkMap:     slugindex.DefaultOutput,
		SearchIndex: DefaultSearchIndex,
		NavFile:     DefaultNavFile,
		BaseURL:     content.DefaultBaseURL,
	}
}

// Configure replaces the tool settings. Empty fields fall back to defaults.
func Configure(cfg Config) {
	def := DefaultConfig()
	if cfg.ContentRoot == "" {
		cfg.ContentRoot = def.ContentRoot
	}
	if cfg.LinkMap == "" {
		cfg.LinkMap = def.LinkMap
	}
	if cfg.SearchIndex == "" {
		cfg.SearchIndex = def.SearchIndex
	}
	if cfg.NavFile == "" {
		cfg.NavFile = def.NavFile
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = nav.DefaultBasePath
	}
	if cfg.LockFile == "" {
		cfg.LockFile = filepath.Join(filepath.Dir(cfg.LinkMap), lockFileName)
	}
	settings = cfg
}
