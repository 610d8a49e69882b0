package nav

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

// DefaultBasePath is the route prefix the docs content is served under
const DefaultBasePath = "/docs"

// Nav is a top-level header entry, optionally with a dropdown
type Nav struct {
	Label   string `yaml:"label" json:"label"`
	Href    string `yaml:"href,omitempty" json:"href,omitempty"`
	SubNavs []Nav  `yaml:"subNavs,omitempty" json:"sub_navs,omitempty"`
}

// MenuItem is one sidebar entry
type MenuItem struct {
	Label    string     `yaml:"label" json:"label"`
	Href     string     `yaml:"href,omitempty" json:"href,omitempty"`
	SubMenus []MenuItem `yaml:"subMenus,omitempty" json:"sub_menus,omitempty"`
}

// Config is the hand-authored navigation of the site
type Config struct {
	Navs  map[string]Nav        `yaml:"navs" json:"navs"`
	Menus map[string][]MenuItem `yaml:"menus" json:"menus"`
}

// Link is one href found in the navigation
type Link struct {
	Source string `json:"source"` // "navs.<name>" or "menus.<section>"
	Label  string `json:"label"`
	Href   string `json:"href"`
}

// BrokenLink is a docs link whose key is missing from the slug index
type BrokenLink struct {
	Link
	Key string `json:"key"`
}

// Load reads navigation config from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation config: %w", err)
	}
	return Parse(data)
}

// Parse decodes navigation config from YAML
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse navigation config: %w", err)
	}
	return &cfg, nil
}

// Links flattens every href in the config, navs first, then menus,
// each group in name order and each tree depth-first
func (c *Config) Links() []Link {
	var links []Link

	for _, name := range sortedKeys(c.Navs) {
		links = appendNav(links, "navs."+name, c.Navs[name])
	}
	for _, section := range sortedKeys(c.Menus) {
		for _, item := range c.Menus[section] {
			links = appendMenu(links, "menus."+section, item)
		}
	}

	return links
}

func appendNav(links []Link, source string, n Nav) []Link {
	if n.Href != "" {
		links = append(links, Link{Source: source, Label: n.Label, Href: n.Href})
	}
	for _, sub := range n.SubNavs {
		links = appendNav(links, source, sub)
	}
	return links
}

func appendMenu(links []Link, source string, m MenuItem) []Link {
	if m.Href != "" {
		links = append(links, Link{Source: source, Label: m.Label, Href: m.Href})
	}
	for _, sub := range m.SubMenus {
		links = appendMenu(links, source, sub)
	}
	return links
}

// KeyForHref converts an href under basePath into a slug index key.
// Query strings and fragments are ignored. Returns false for hrefs
// outside basePath.
func KeyForHref(href, basePath string) (string, bool) {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	basePath = strings.TrimSuffix(basePath, "/")

	if href != basePath && !strings.HasPrefix(href, basePath+"/") {
		return "", false
	}

	key := strings.TrimPrefix(href, basePath)
	key = strings.Trim(key, "/")
	return key, true
}

// Check returns every link under basePath whose key is not in idx
func Check(links []Link, basePath string, idx slugindex.SlugIndex) []BrokenLink {
	var broken []BrokenLink
	for _, link := range links {
		key, ok := KeyForHref(link.Href, basePath)
		if !ok {
			continue
		}
		if _, found := idx.Lookup(key); !found {
			broken = append(broken, BrokenLink{Link: link, Key: key})
		}
	}
	return broken
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
