package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"

	"github.com/mdxdocs/docs-indexer/internal/content"
	"github.com/mdxdocs/docs-indexer/internal/slugindex"
	"github.com/mdxdocs/docs-indexer/tools"
)

const (
	version     = "0.1.0"
	serverName  = "docs-indexer"
	description = "MCP server for slug resolution and full-text search over an MDX docs tree"
)

func main() {
	cfg := tools.DefaultConfig()
	showVersion := pflag.Bool("version", false, "print version and exit")
	pflag.StringVar(&cfg.ContentRoot, "content", slugindex.DefaultRoot, "content root to index")
	pflag.StringVar(&cfg.LinkMap, "link-map", slugindex.DefaultOutput, "slug index (link map) path")
	pflag.StringVar(&cfg.SearchIndex, "search-index", tools.DefaultSearchIndex, "bleve search index directory")
	pflag.StringVar(&cfg.NavFile, "nav", tools.DefaultNavFile, "navigation YAML checked by check_navigation")
	pflag.StringVar(&cfg.BaseURL, "base-path", content.DefaultBaseURL, "route prefix the docs pages are served under")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", serverName, version)
		os.Exit(0)
	}

	// Set up logging to stderr (MCP uses stdout for protocol)
	log.SetOutput(os.Stderr)
	log.Printf("%s v%s starting (%s)...", serverName, version, description)

	tools.Configure(cfg)
	server := createMCPServer()

	if err := registerTools(server); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	log.Printf("✓ Server ready and waiting for connections")

	defer func() {
		if err := tools.CloseSearch(); err != nil {
			log.Printf("Error closing search index: %v", err)
		}
	}()

	ctx := context.Background()
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Printf("Server error: %v", err)
	}
}

// createMCPServer initializes the MCP server
func createMCPServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: version,
		},
		nil, // Default options
	)

	log.Printf("Server initialized: %s v%s", serverName, version)
	return server
}

// registerTools registers all MCP tools
func registerTools(server *mcp.Server) error {
	toolCount := 0

	tools.RegisterSlugTools(server)
	toolCount += 2

	if err := tools.RegisterSearchTools(server); err != nil {
		return fmt.Errorf("failed to register search tools: %w", err)
	}
	toolCount += 2

	tools.RegisterNavigationTools(server)
	toolCount++

	log.Printf("✓ All tools registered: %d tools (slugs + search + navigation)", toolCount)
	return nil
}
