package tools

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mdxdocs/docs-indexer/internal/nav"
)

func TestCheckNavigation(t *testing.T) {
	cfg := newSite(t)
	writeLinkMap(t, cfg, siteIndex)

	_, out, err := CheckNavigation(context.Background(), nil, CheckNavigationInput{})
	if err != nil {
		t.Fatalf("CheckNavigation() error = %v", err)
	}

	want := []nav.BrokenLink{{
		Link: nav.Link{Source: "menus.docs", Label: "Caching", Href: "/docs/app/caching"},
		Key:  "app/caching",
	}}
	if diff := cmp.Diff(want, out.Broken); diff != "" {
		t.Errorf("broken links mismatch (-want +got):\n%s", diff)
	}
	if out.Checked != 5 {
		t.Errorf("Checked = %d, want 5", out.Checked)
	}
	if out.Message != "4 of 5 navigation links under /docs resolve" {
		t.Errorf("Message = %q", out.Message)
	}
}

func TestCheckNavigationBasePath(t *testing.T) {
	cfg := newSite(t)
	writeLinkMap(t, cfg, siteIndex)

	// /blog is the only href under this prefix and "" resolves to index.mdx
	_, out, err := CheckNavigation(context.Background(), nil, CheckNavigationInput{BasePath: "/blog"})
	if err != nil {
		t.Fatalf("CheckNavigation() error = %v", err)
	}
	if out.Checked != 1 || len(out.Broken) != 0 {
		t.Errorf("CheckNavigation(/blog) = %+v", out)
	}
}

func TestCheckNavigationMissingNavFile(t *testing.T) {
	cfg := newSite(t)
	writeLinkMap(t, cfg, siteIndex)
	if err := os.Remove(cfg.NavFile); err != nil {
		t.Fatal(err)
	}

	if _, _, err := CheckNavigation(context.Background(), nil, CheckNavigationInput{}); err == nil {
		t.Fatal("CheckNavigation() expected error for missing navigation file")
	}
}
