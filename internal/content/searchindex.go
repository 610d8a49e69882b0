package content

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
)

// NewIndexMapping maps keys and paths as exact terms and everything else
// through the standard analyzer
func NewIndexMapping() mapping.IndexMapping {
	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("key", exact)
	doc.AddFieldMappingsAt("path", exact)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// IndexDocuments submits docs to index in batches
func IndexDocuments(index bleve.Index, docs []Document) error {
	batch := index.NewBatch()
	for i, doc := range docs {
		if err := batch.Index(doc.ID, doc); err != nil {
			return fmt.Errorf("failed to add document %s to batch: %w", doc.ID, err)
		}

		if (i+1)%BatchSize == 0 {
			if err := index.Batch(batch); err != nil {
				return fmt.Errorf("failed to index batch: %w", err)
			}
			batch = index.NewBatch()
		}
	}

	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			return fmt.Errorf("failed to index final batch: %w", err)
		}
	}
	return nil
}

// BuildSearchIndex writes docs into a fresh bleve index at dir. The index is
// built next to dir and renamed into place, then the schema version file is
// written beside it.
func BuildSearchIndex(dir string, docs []Document) error {
	start := time.Now()
	tmpDir := dir + ".tmp"

	// Clean up any leftover temp index from a previous crash
	os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), 0755); err != nil {
		return fmt.Errorf("failed to create search index directory: %w", err)
	}

	index, err := bleve.New(tmpDir, NewIndexMapping())
	if err != nil {
		return fmt.Errorf("failed to create temp search index: %w", err)
	}

	if err := IndexDocuments(index, docs); err != nil {
		index.Close()
		os.RemoveAll(tmpDir)
		return err
	}

	if err := index.Close(); err != nil {
		os.RemoveAll(tmpDir)
		return fmt.Errorf("failed to close temp search index: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		os.RemoveAll(tmpDir)
		return fmt.Errorf("failed to remove old search index: %w", err)
	}
	if err := os.Rename(tmpDir, dir); err != nil {
		os.RemoveAll(tmpDir)
		return fmt.Errorf("failed to rename temp search index: %w", err)
	}

	if err := WriteSearchIndexVersion(dir); err != nil {
		log.Printf("Warning: Failed to write search index version: %v", err)
	}

	log.Printf("✓ Search index: %d documents in %v", len(docs), time.Since(start).Round(time.Millisecond))
	return nil
}

// WriteSearchIndexVersion records SearchSchemaVersion next to dir
func WriteSearchIndexVersion(dir string) error {
	versionPath := filepath.Join(filepath.Dir(dir), VersionFile)
	return os.WriteFile(versionPath, []byte(strconv.Itoa(SearchSchemaVersion)), 0644)
}

// ReadSearchIndexVersion returns the schema version recorded next to dir, 0 if none
func ReadSearchIndexVersion(dir string) int {
	data, err := os.ReadFile(filepath.Join(filepath.Dir(dir), VersionFile))
	if err != nil {
		return 0
	}
	version, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return version
}
