package tools

import (
	"os"
	"path/filepath"
	"testing"
)

var siteFiles = map[string]string{
	"index.mdx":                              "---\ntitle: Home\n---\n\n# Welcome\n\nDocs home.\n",
	"01-getting-started/01-installation.mdx": "# Installation\n\nInstall the toolkit with npm.\n",
	"02-app/index.mdx":                       "---\ntitle: App Router\n---\n\nBuild apps with nested folders.\n",
	"02-app/01-routing.mdx":                  "# Routing\n\nDynamic segments and shared layouts.\n",
	"assets/logo.png":                        "png",
}

const siteNav = `
navs:
  blog:
    label: Blog
    href: /blog
menus:
  docs:
    - label: Introduction
      href: /docs
    - label: Installation
      href: /docs/getting-started/installation
    - label: App
      href: /docs/app
      subMenus:
        - label: Routing
          href: /docs/app/routing#dynamic
        - label: Caching
          href: /docs/app/caching
`

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll(%s) error = %v", path, err)
		}
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", path, err)
		}
	}
}

// newSite lays out a content root and navigation file in a temp dir and
// points the tool settings at it. Global tool state is reset on cleanup.
func newSite(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	root := filepath.Join(dir, "content")
	writeTree(t, root, siteFiles)
	writeTree(t, dir, map[string]string{"nav/nav.yaml": siteNav})

	prev := settings
	Configure(Config{
		ContentRoot: root,
		LinkMap:     filepath.Join(dir, "nav", "link.map.json"),
		SearchIndex: filepath.Join(dir, "search", "index"),
		NavFile:     filepath.Join(dir, "nav", "nav.yaml"),
	})
	currentSlugs.Store(nil)

	t.Cleanup(func() {
		if err := CloseSearch(); err != nil {
			t.Errorf("CloseSearch() error = %v", err)
		}
		currentSlugs.Store(nil)
		settings = prev
	})
	return settings
}
