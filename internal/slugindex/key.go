package slugindex

import (
	"regexp"
	"strings"
)

// orderPrefixRegex matches manual ordering prefixes such as "01-" or "7-".
// The match is unanchored, so digit-hyphen runs inside a name are removed too.
var orderPrefixRegex = regexp.MustCompile(`[0-9]{1,2}-`)

// DeriveKey turns a relative content path into its public key.
// Example: "guide/01-intro.mdx" -> "guide/intro", "guide/index.mdx" -> "guide"
func DeriveKey(relativePath string) string {
	key := strings.TrimSuffix(relativePath, ContentExt)

	if key == IndexPage {
		key = RootKey
	} else {
		key = strings.TrimSuffix(key, "/"+IndexPage)
	}

	return orderPrefixRegex.ReplaceAllString(key, "")
}

// Slug joins URL path segments into a lookup key.
// No segments means the root page.
func Slug(segments []string) string {
	if len(segments) == 0 {
		return RootKey
	}
	return strings.Join(segments, "/")
}
