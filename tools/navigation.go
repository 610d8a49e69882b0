package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mdxdocs/docs-indexer/internal/nav"
)

// CheckNavigationInput defines input for check_navigation tool
type CheckNavigationInput struct {
	BasePath string `json:"base_path,omitempty" jsonschema:"Route prefix of the docs pages (optional, defaults to the configured base URL)"`
}

// CheckNavigationOutput defines output for check_navigation tool
type CheckNavigationOutput struct {
	Checked int              `json:"checked"`
	Broken  []nav.BrokenLink `json:"broken"`
	Message string           `json:"message"`
}

// CheckNavigation reports navigation hrefs that do not resolve to a page
func CheckNavigation(ctx context.Context, req *mcp.CallToolRequest, input CheckNavigationInput) (*mcp.CallToolResult, CheckNavigationOutput, error) {
	cfg, err := nav.Load(settings.NavFile)
	if err != nil {
		return nil, CheckNavigationOutput{}, err
	}

	idx, err := loadSlugs()
	if err != nil {
		return nil, CheckNavigationOutput{}, fmt.Errorf("slug index unavailable: %w", err)
	}

	basePath := input.BasePath
	if basePath == "" {
		basePath = settings.BaseURL
	}

	checked := 0
	links := cfg.Links()
	for _, link := range links {
		if _, ok := nav.KeyForHref(link.Href, basePath); ok {
			checked++
		}
	}

	broken := nav.Check(links, basePath, idx)
	if broken == nil {
		broken = []nav.BrokenLink{}
	}

	output := CheckNavigationOutput{
		Checked: checked,
		Broken:  broken,
		Message: fmt.Sprintf("%d of %d navigation links under %s resolve", checked-len(broken), checked, basePath),
	}
	return nil, output, nil
}

// RegisterNavigationTools registers the navigation check tool
func RegisterNavigationTools(server *mcp.Server) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "check_navigation",
			Description: "Check that every docs link in the header navigation and sidebar menus resolves to a content page.",
		},
		CheckNavigation,
	)
}
