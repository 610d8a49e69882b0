package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/mdxdocs/docs-indexer/internal/content"
	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

type options struct {
	root            string
	out             string
	searchIndex     string
	baseURL         string
	failOnCollision bool
	watch           bool
	debounce        time.Duration
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("indexer", pflag.ContinueOnError)
	fs.StringVar(&opts.root, "root", slugindex.DefaultRoot, "content root to index")
	fs.StringVar(&opts.out, "out", slugindex.DefaultOutput, "link map output path")
	fs.StringVar(&opts.searchIndex, "search-index", "", "also build a full-text search index in this directory")
	fs.StringVar(&opts.baseURL, "base-url", content.DefaultBaseURL, "route prefix used for page URLs in the search index")
	fs.BoolVar(&opts.failOnCollision, "fail-on-collision", false, "exit 1 when two files derive the same key")
	fs.BoolVar(&opts.watch, "watch", false, "rebuild when the content tree changes")
	fs.DurationVar(&opts.debounce, "debounce", slugindex.DefaultDebounce, "quiet period before a watch rebuild")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, opts, log.Default()))
}

// run builds the link map and returns the process exit code. Reported build
// failures still exit 0; only an opted-in collision check fails the run.
func run(ctx context.Context, opts options, logger *log.Logger) int {
	logger.Printf("Docs Slug Indexer")
	logger.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	ix := slugindex.New(opts.root, opts.out)
	ix.Logger = logger

	result, err := ix.Run()
	if err == nil {
		buildSearch(opts, result, logger)
	}

	if len(result.Collisions) > 0 {
		for _, c := range result.Collisions {
			logger.Printf("Warning: key %q claimed by %s, overwritten by %s", c.Key, c.Loser, c.Winner)
		}
		if opts.failOnCollision {
			logger.Printf("Error: %d key collisions", len(result.Collisions))
			return 1
		}
	}

	if !opts.watch {
		return 0
	}

	ix.OnBuild = func(result slugindex.Result, err error) {
		if err == nil {
			buildSearch(opts, result, logger)
		}
	}
	if err := ix.Watch(ctx, opts.debounce); err != nil {
		logger.Printf("Error: %v", err)
	}
	return 0
}

// buildSearch rebuilds the search index when one was requested
func buildSearch(opts options, result slugindex.Result, logger *log.Logger) {
	if opts.searchIndex == "" {
		return
	}
	docs := content.BuildDocuments(os.DirFS(opts.root), result, opts.baseURL, logger)
	if err := content.BuildSearchIndex(opts.searchIndex, docs); err != nil {
		logger.Printf("Error: %v", err)
	}
}
