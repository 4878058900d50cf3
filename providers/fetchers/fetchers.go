/*
Package fetchers provides file fetching functions for dependency manifests.

Usage:

	fetcher := fetchers.NewDirFetcher("./project")
	b, err := fetcher.FileContent(ctx, "composer.lock")
*/
package fetchers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	pathpkg "path"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	ErrFileNotFound = errors.New("dependency file not found")
)

// FileFetcher interface defines fetchers methods.
type FileFetcher interface {
	FileContent(ctx context.Context, path string) ([]byte, error)
}

// ByteMapFetcher is used for storing file contents in memory (usefull for debugging/testing or for building custom repositories logic)
type ByteMapFetcher struct {
	Files map[string][]byte
}

// FileContent retrieves (if found) []byte contents from it's map using path argument as a key.
func (sf ByteMapFetcher) FileContent(ctx context.Context, path string) ([]byte, error) {
	v, ok := sf.Files[path]
	if !ok {
		return nil, ErrFileNotFound
	}
	return v, nil
}

// FsFetcher fetches files from an afero filesystem.
type FsFetcher struct {
	fs afero.Fs
}

// NewFsFetcher constructs FsFetcher reading from the given filesystem.
func NewFsFetcher(fsys afero.Fs) FileFetcher {
	return &FsFetcher{fs: fsys}
}

// NewDirFetcher constructs a fetcher restricted to the root directory on the local disk.
func NewDirFetcher(root string) FileFetcher {
	// BasePathFs matches resolved paths by prefix, which fails for roots like '.'
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &FsFetcher{fs: afero.NewBasePathFs(afero.NewOsFs(), root)}
}

// FileContent reads the file at path, relative to the fetcher root.
// Path must be a slash-separated relative path that stays below the root (e.g. './versions.yaml').
func (f FsFetcher) FileContent(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := pathpkg.Clean(path)
	if name == "." || !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid file path %q", path)
	}

	b, err := afero.ReadFile(f.fs, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("unable to read '%s' file: %w", path, err)
	}
	return b, nil
}
