package content

// Document is one content page in the search index
type Document struct {
	ID          string   `json:"id"`    // Relative path, unique per file
	Key         string   `json:"key"`   // Public slug key ("" for the root page)
	Path        string   `json:"path"`  // Relative path under the content root
	Title       string   `json:"title"` // Front matter title, first heading, or file name
	Description string   `json:"description,omitempty"`
	Headings    []string `json:"headings,omitempty"`
	Content     string   `json:"content"`
	URL         string   `json:"url"`
	Keywords    []string `json:"keywords,omitempty"`
	TokenCount  int      `json:"token_count,omitempty"`
}

// frontMatter is the subset of page front matter the index cares about
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}
