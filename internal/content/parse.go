package content

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/mdxdocs/docs-indexer/internal/slugindex"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Logger is the subset of *log.Logger used while building documents
type Logger = slugindex.Logger

// IsPage reports whether a content file is a markup page worth indexing
func IsPage(relativePath string) bool {
	switch path.Ext(relativePath) {
	case ".mdx", ".md":
		return true
	}
	return false
}

// ParseDocument reads one page and extracts its searchable text.
// Front matter that fails to parse is skipped, not indexed.
func ParseDocument(fsys fs.FS, file slugindex.ContentFile, key, baseURL string) (Document, error) {
	data, err := fs.ReadFile(fsys, file.RelativePath)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", file.RelativePath, err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		body = skipFrontMatter(data)
		fm = frontMatter{}
	}

	headings, plain := extractText(stripModuleLines(body))

	title := strings.TrimSpace(fm.Title)
	if title == "" && len(headings) > 0 {
		title = headings[0]
	}
	if title == "" {
		name := key
		if name == "" {
			name = file.RelativePath
		}
		title = HumanizeName(name)
	}

	doc := Document{
		ID:          file.RelativePath,
		Key:         key,
		Path:        file.RelativePath,
		Title:       title,
		Description: strings.TrimSpace(fm.Description),
		Headings:    headings,
		Content:     plain,
		URL:         PageURL(baseURL, key),
		TokenCount:  EstimateTokens(plain),
	}

	doc.Keywords = fm.Keywords
	if len(doc.Keywords) == 0 {
		doc.Keywords = ExtractKeywords(title, plain)
	}

	return doc, nil
}

// BuildDocuments parses every page that won its key in result.
// Unreadable pages are logged and skipped.
func BuildDocuments(fsys fs.FS, result slugindex.Result, baseURL string, logger Logger) []Document {
	docs := make([]Document, 0, len(result.Index))
	for _, key := range result.Index.Keys() {
		rel := result.Index[key]
		if !IsPage(rel) {
			continue
		}

		doc, err := ParseDocument(fsys, slugindex.ContentFile{RelativePath: rel}, key, baseURL)
		if err != nil {
			logger.Printf("Warning: skipping %s: %v", rel, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// skipFrontMatter drops a leading "---" delimited block
func skipFrontMatter(data []byte) []byte {
	const delim = "---"
	if !bytes.HasPrefix(data, []byte(delim+"\n")) {
		return data
	}
	rest := data[len(delim)+1:]
	for len(rest) > 0 {
		line, next, _ := bytes.Cut(rest, []byte("\n"))
		if string(bytes.TrimSpace(line)) == delim {
			return next
		}
		rest = next
	}
	return data
}

// stripModuleLines drops MDX import/export statements outside code fences
func stripModuleLines(body []byte) []byte {
	var out bytes.Buffer
	inFence := false
	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if !inFence && (strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "export ")) {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// extractText walks the markdown AST and returns heading texts and the
// plain text of the page, one block per line. Raw HTML/JSX is dropped.
func extractText(src []byte) ([]string, string) {
	root := markdown.Parser().Parse(text.NewReader(src))

	var headings []string
	var plain strings.Builder

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && plain.Len() > 0 {
				plain.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if h := inlineText(node, src); h != "" {
				headings = append(headings, h)
			}
		case *ast.Text:
			plain.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				plain.WriteByte(' ')
			}
		case *ast.String:
			plain.Write(node.Value)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				plain.Write(seg.Value(src))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return headings, collapseBlankLines(plain.String())
}

// inlineText concatenates the text segments below n
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
