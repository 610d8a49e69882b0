package content

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "as": true, "by": true, "is": true,
	"it": true, "be": true, "with": true, "from": true, "that": true,
	"this": true, "you": true, "your": true, "are": true, "can": true,
}

// EstimateTokens estimates the token count for a text string
func EstimateTokens(text string) int {
	return len(text) / CharsPerToken
}

// ExtractKeywords extracts key terms from title and the start of the content.
// Terms keep their first-seen order.
func ExtractKeywords(title, body string) []string {
	words := strings.Fields(strings.ToLower(title))

	preview := body
	if len(body) > KeywordPreviewChars {
		preview = body[:KeywordPreviewChars]
	}
	words = append(words, strings.Fields(strings.ToLower(preview))...)

	seen := make(map[string]bool)
	keywords := make([]string, 0, MaxKeywords)
	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
		})
		if len(word) <= 2 || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == MaxKeywords {
			break
		}
	}

	return keywords
}

// CreateAnchor creates a URL anchor from heading text
// Example: "Defining Routes" -> "defining-routes"
func CreateAnchor(text string) string {
	anchor := strings.ToLower(strings.TrimSpace(text))
	anchor = strings.ReplaceAll(anchor, " ", "-")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, anchor)
}

// HumanizeName turns a file or key segment into a title
// Example: "loading-ui_and-streaming" -> "Loading Ui And Streaming"
func HumanizeName(name string) string {
	name = path.Base(name)
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// PageURL builds the public URL of a key under baseURL
func PageURL(baseURL, key string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if key == "" {
		if baseURL == "" {
			return "/"
		}
		return baseURL
	}
	return baseURL + "/" + key
}
