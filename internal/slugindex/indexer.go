package slugindex

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"
)

// Logger is the subset of *log.Logger the indexer writes to
type Logger interface {
	Printf(format string, v ...any)
}

// Indexer runs the full build step: collect, derive keys, write the link map.
type Indexer struct {
	// Root is the content root on disk
	Root string

	// Output is the link map path
	Output string

	// FS overrides the filesystem rooted at Root (tests use fstest.MapFS)
	FS fs.FS

	// Logger receives progress and error lines; defaults to log.Default()
	Logger Logger

	// OnBuild is called after every pass triggered by Watch
	OnBuild func(Result, error)
}

// New creates an indexer for root writing to output
func New(root, output string) *Indexer {
	return &Indexer{Root: root, Output: output}
}

func (ix *Indexer) logger() Logger {
	if ix.Logger == nil {
		return log.Default()
	}
	return ix.Logger
}

func (ix *Indexer) fsys() fs.FS {
	if ix.FS != nil {
		return ix.FS
	}
	return os.DirFS(ix.Root)
}

// Run performs one build pass. Failures are logged and returned, never
// raised: the caller keeps running and decides what to do with them.
// A missing root is reported and the traversal is attempted anyway.
// When the traversal fails the existing link map is left untouched.
func (ix *Indexer) Run() (Result, error) {
	logger := ix.logger()
	start := time.Now()
	fsys := ix.fsys()

	var rootErr error
	if _, err := fs.Stat(fsys, "."); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			rootErr = fmt.Errorf("%w: %s", ErrMissingRootDirectory, ix.Root)
		} else {
			rootErr = fmt.Errorf("failed to stat content root %s: %w", ix.Root, err)
		}
		logger.Printf("Error: %v", rootErr)
	}

	files, err := Collect(fsys)
	if err != nil {
		err = fmt.Errorf("failed to collect content under %s: %w", ix.Root, err)
		logger.Printf("Error: %v", err)
		return Result{}, errors.Join(rootErr, err)
	}
	logger.Printf("✓ Collected %d content files from %s", len(files), ix.Root)

	result := Build(files)

	if err := Write(ix.Output, result.Index); err != nil {
		logger.Printf("Error: %v", err)
		return result, errors.Join(rootErr, err)
	}

	logger.Printf("✓ Wrote %d keys to %s in %v",
		len(result.Index), ix.Output, time.Since(start).Round(time.Millisecond))

	return result, rootErr
}
