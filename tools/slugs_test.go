package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

func writeLinkMap(t *testing.T, cfg Config, idx slugindex.SlugIndex) {
	t.Helper()
	if err := slugindex.Write(cfg.LinkMap, idx); err != nil {
		t.Fatalf("slugindex.Write() error = %v", err)
	}
}

var siteIndex = slugindex.SlugIndex{
	"":                             "index.mdx",
	"getting-started/installation": "01-getting-started/01-installation.mdx",
	"app":                          "02-app/index.mdx",
	"app/routing":                  "02-app/01-routing.mdx",
}

func TestResolveSlug(t *testing.T) {
	cfg := newSite(t)
	writeLinkMap(t, cfg, siteIndex)

	tests := []struct {
		name  string
		input ResolveSlugInput
		want  ResolveSlugOutput
	}{
		{
			name:  "segments",
			input: ResolveSlugInput{Segments: []string{"app", "routing"}},
			want:  ResolveSlugOutput{Key: "app/routing", Path: "02-app/01-routing.mdx", Found: true},
		},
		{
			name:  "slash separated slug",
			input: ResolveSlugInput{Slug: "/getting-started/installation/"},
			want:  ResolveSlugOutput{Key: "getting-started/installation", Path: "01-getting-started/01-installation.mdx", Found: true},
		},
		{
			name:  "segments win over slug",
			input: ResolveSlugInput{Segments: []string{"app"}, Slug: "app/routing"},
			want:  ResolveSlugOutput{Key: "app", Path: "02-app/index.mdx", Found: true},
		},
		{
			name:  "no segments is the root page",
			input: ResolveSlugInput{},
			want:  ResolveSlugOutput{Key: "", Path: "index.mdx", Found: true},
		},
		{
			name:  "unknown key is not found",
			input: ResolveSlugInput{Segments: []string{"app", "caching"}},
			want:  ResolveSlugOutput{Key: "app/caching", Found: false},
		},
		{
			name:  "ordering prefix is not part of the key",
			input: ResolveSlugInput{Segments: []string{"02-app"}},
			want:  ResolveSlugOutput{Key: "02-app", Found: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := ResolveSlug(context.Background(), nil, tt.input)
			if err != nil {
				t.Fatalf("ResolveSlug() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveSlug() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListSlugs(t *testing.T) {
	cfg := newSite(t)
	writeLinkMap(t, cfg, siteIndex)

	_, all, err := ListSlugs(context.Background(), nil, ListSlugsInput{})
	if err != nil {
		t.Fatalf("ListSlugs() error = %v", err)
	}
	wantAll := []SlugEntry{
		{Key: "", Path: "index.mdx"},
		{Key: "app", Path: "02-app/index.mdx"},
		{Key: "app/routing", Path: "02-app/01-routing.mdx"},
		{Key: "getting-started/installation", Path: "01-getting-started/01-installation.mdx"},
	}
	if diff := cmp.Diff(wantAll, all.Entries); diff != "" {
		t.Errorf("ListSlugs() mismatch (-want +got):\n%s", diff)
	}
	if all.Total != 4 {
		t.Errorf("Total = %d, want 4", all.Total)
	}

	_, app, err := ListSlugs(context.Background(), nil, ListSlugsInput{Prefix: "app/"})
	if err != nil {
		t.Fatalf("ListSlugs(prefix) error = %v", err)
	}
	if diff := cmp.Diff([]SlugEntry{{Key: "app/routing", Path: "02-app/01-routing.mdx"}}, app.Entries); diff != "" {
		t.Errorf("ListSlugs(prefix) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSlugsErrors(t *testing.T) {
	t.Run("missing link map", func(t *testing.T) {
		newSite(t)

		_, _, err := ResolveSlug(context.Background(), nil, ResolveSlugInput{Slug: "app"})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ResolveSlug() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("invalid link map", func(t *testing.T) {
		cfg := newSite(t)
		if err := os.MkdirAll(filepath.Dir(cfg.LinkMap), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(cfg.LinkMap, []byte(`{"app": 1}`), 0644); err != nil {
			t.Fatal(err)
		}

		_, _, err := ListSlugs(context.Background(), nil, ListSlugsInput{})
		if !errors.Is(err, slugindex.ErrInvalidIndex) {
			t.Errorf("ListSlugs() error = %v, want ErrInvalidIndex", err)
		}
		if currentSlugs.Load() != nil {
			t.Error("a rejected link map must not be cached")
		}
	})
}
