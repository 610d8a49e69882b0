package slugindex

// Default locations used by the site build when no flags are given
const (
	// DefaultRoot is the documentation content folder
	DefaultRoot = "./src/content/docs"

	// DefaultOutput is the link map consumed by the docs page router
	DefaultOutput = "./src/nav/link.map.json"

	// ContentExt is stripped from the end of a relative path when deriving a key
	ContentExt = ".mdx"

	// IndexPage is the file stem that collapses onto its parent directory
	IndexPage = "index"

	// RootKey is the key of the root index page; routers map an empty slug onto it
	RootKey = ""

	// IndexFileMode is the permission set on the written link map
	IndexFileMode = 0644
)
