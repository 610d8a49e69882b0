package content

// Search document constants
const (
	// CharsPerToken is the approximation for token estimation
	CharsPerToken = 4

	// MaxKeywords caps the keywords extracted per document
	MaxKeywords = 10

	// KeywordPreviewChars is how much of the body feeds keyword extraction
	KeywordPreviewChars = 200

	// BatchSize is the number of documents submitted per bleve batch
	BatchSize = 100

	// DefaultBaseURL is the route prefix the docs pages are served under
	DefaultBaseURL = "/docs"

	// VersionFile sits next to the search index directory
	VersionFile = ".index_version"

	// SearchSchemaVersion increments when document extraction changes
	// v1: one document per page, front matter + goldmark text
	SearchSchemaVersion = 1
)
