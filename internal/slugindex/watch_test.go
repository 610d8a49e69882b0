package slugindex_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

func TestWatchRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "docs")
	writeTree(t, root, map[string]string{"index.mdx": "# Home"})
	out := filepath.Join(dir, "link.map.json")

	builds := make(chan slugindex.Result, 16)
	ix := &slugindex.Indexer{
		Root:   root,
		Output: out,
		Logger: log.New(&bytes.Buffer{}, "", 0),
		OnBuild: func(r slugindex.Result, err error) {
			if err == nil {
				builds <- r
			}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- ix.Watch(ctx, 20*time.Millisecond) }()

	// keep touching the tree until the watcher is up and a build lands
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var result slugindex.Result
	for i := 0; ; i++ {
		select {
		case result = <-builds:
		case <-ticker.C:
			name := filepath.Join(root, fmt.Sprintf("%02d-page.mdx", i%100))
			if err := os.WriteFile(name, []byte("# Page"), 0644); err != nil {
				t.Fatalf("Failed to write page: %v", err)
			}
			continue
		case <-deadline:
			t.Fatal("Timed out waiting for a rebuild")
		}
		break
	}

	if _, ok := result.Index["page"]; !ok {
		t.Errorf("Expected rebuilt index to contain key %q, got %v", "page", result.Index)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected index file after rebuild: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingRoot(t *testing.T) {
	ix := &slugindex.Indexer{
		Root:   filepath.Join(t.TempDir(), "missing"),
		Output: filepath.Join(t.TempDir(), "link.map.json"),
		Logger: log.New(&bytes.Buffer{}, "", 0),
	}
	if err := ix.Watch(context.Background(), time.Millisecond); err == nil {
		t.Error("Expected error watching a missing root")
	}
}
