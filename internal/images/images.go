// Package images resolves item/category image filenames to paths under a
// configured directory.
package images

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("image not found")

type Resolver struct {
	dir string
}

func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve returns the absolute path of name inside the images directory.
// Path separators in name are rejected so lookups cannot escape the
// directory. A missing or non-regular file returns ErrNotFound.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", ErrNotFound
	}

	path, err := filepath.Abs(filepath.Join(r.dir, name))
	if err != nil {
		return "", ErrNotFound
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrNotFound
	}
	return path, nil
}
