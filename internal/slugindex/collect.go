package slugindex

import (
	"fmt"
	"io/fs"
	"path"
)

// Collect walks fsys depth-first and returns every regular file in listing order.
// Directories are descended into, anything else (symlinks, devices) is skipped.
func Collect(fsys fs.FS) ([]ContentFile, error) {
	var files []ContentFile
	if err := collectDir(fsys, ".", &files); err != nil {
		return nil, err
	}
	return files, nil
}

func collectDir(fsys fs.FS, dir string, files *[]ContentFile) error {
	// fs.ReadDir lists the whole directory sorted by name
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := path.Join(dir, entry.Name())

		switch {
		case entry.Type().IsRegular():
			*files = append(*files, ContentFile{RelativePath: name})
		case entry.IsDir():
			if err := collectDir(fsys, name, files); err != nil {
				return err
			}
		}
	}

	return nil
}

// Build derives a key for every file. Later files overwrite earlier ones
// that normalize to the same key; each overwrite is recorded in Collisions.
func Build(files []ContentFile) Result {
	index := make(SlugIndex, len(files))
	var collisions []Collision

	for _, file := range files {
		key := DeriveKey(file.RelativePath)
		if previous, ok := index[key]; ok {
			collisions = append(collisions, Collision{
				Key:    key,
				Winner: file.RelativePath,
				Loser:  previous,
			})
		}
		index[key] = file.RelativePath
	}

	return Result{
		Files:      files,
		Index:      index,
		Collisions: collisions,
	}
}
