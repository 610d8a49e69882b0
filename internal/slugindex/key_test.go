package slugindex_test

import (
	"testing"

	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ordering prefix and extension",
			input:    "guide/01-intro.mdx",
			expected: "guide/intro",
		},
		{
			name:     "section index page",
			input:    "guide/index.mdx",
			expected: "guide",
		},
		{
			name:     "root index page",
			input:    "index.mdx",
			expected: "",
		},
		{
			name:     "ordering prefixes on every segment",
			input:    "02-app/03-building-your-application/01-routing/index.mdx",
			expected: "app/building-your-application/routing",
		},
		{
			name:     "digit hyphen inside a folder name is stripped too",
			input:    "a1-2b/page.mdx",
			expected: "a2b/page",
		},
		{
			name:     "digit hyphen inside folder and ordered file",
			input:    "a1-2b/12-page.mdx",
			expected: "a2b/page",
		},
		{
			name:     "three digits keep the leading one",
			input:    "123-release.mdx",
			expected: "1release",
		},
		{
			name:     "dates lose their separators",
			input:    "blog/2024-01-15-launch.mdx",
			expected: "blog/20launch",
		},
		{
			name:     "non mdx files keep their extension",
			input:    "assets/01-diagram.png",
			expected: "assets/diagram.png",
		},
		{
			name:     "mdx only stripped at the end",
			input:    "notes.mdx.bak",
			expected: "notes.mdx.bak",
		},
		{
			name:     "index only stripped as a trailing segment",
			input:    "guide/indexing.mdx",
			expected: "guide/indexing",
		},
		{
			name:     "nested index segment kept",
			input:    "index/setup.mdx",
			expected: "index/setup",
		},
		{
			name:     "ordered index stem becomes index",
			input:    "01-index.mdx",
			expected: "index",
		},
		{
			name:     "plain page",
			input:    "getting-started/installation.mdx",
			expected: "getting-started/installation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slugindex.DeriveKey(tt.input)
			if result != tt.expected {
				t.Errorf("slugindex.DeriveKey(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{name: "nil segments", segments: nil, expected: ""},
		{name: "empty segments", segments: []string{}, expected: ""},
		{name: "single segment", segments: []string{"guide"}, expected: "guide"},
		{name: "nested segments", segments: []string{"app", "routing", "defining-routes"}, expected: "app/routing/defining-routes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := slugindex.Slug(tt.segments); result != tt.expected {
				t.Errorf("slugindex.Slug(%v) = %q, want %q", tt.segments, result, tt.expected)
			}
		})
	}
}
