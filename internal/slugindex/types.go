package slugindex

import "sort"

// ContentFile is one regular file found under the content root
type ContentFile struct {
	// RelativePath uses forward slashes and keeps the extension
	RelativePath string `json:"relative_path"`
}

// SlugIndex maps a public key to the relative path of its content file
type SlugIndex map[string]string

// Collision records a key that was claimed by more than one file.
// The winner is the file processed last in traversal order.
type Collision struct {
	Key    string `json:"key"`
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

// Result is the outcome of a single build pass
type Result struct {
	Files      []ContentFile
	Index      SlugIndex
	Collisions []Collision
}

// Keys returns the index keys in ascending order
func (idx SlugIndex) Keys() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the relative path stored under key
func (idx SlugIndex) Lookup(key string) (string, bool) {
	p, ok := idx[key]
	return p, ok
}
