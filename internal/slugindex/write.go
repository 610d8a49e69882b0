package slugindex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Marshal renders the index as 2-space indented JSON with sorted keys.
// HTML characters are kept literal so paths read the same as on disk.
func Marshal(idx SlugIndex) ([]byte, error) {
	if idx == nil {
		idx = SlugIndex{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]string(idx)); err != nil {
		return nil, fmt.Errorf("failed to encode slug index: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces the file at path with the rendered index.
// The data goes to a temp file in the same directory first and is renamed
// into place, so readers never observe a half-written index.
func Write(path string, idx SlugIndex) error {
	data, err := Marshal(idx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIndexWriteFailure, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory %s: %w", ErrIndexWriteFailure, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", ErrIndexWriteFailure, err)
	}
	tmpPath := tmp.Name()

	// Clean up the temp file on every failure path below
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to %s %s: %w", ErrIndexWriteFailure, step, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(IndexFileMode); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to rename temp file onto %s: %w", ErrIndexWriteFailure, path, err)
	}

	return nil
}
