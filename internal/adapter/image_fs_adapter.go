// Package adapter contains the infrastructure adapters the domain layer
// relies on: file system access, image codecs, renderers and stores.
package adapter

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	m "inspecto.dev/pkg/inspecto/internal/model"
)

// ImageFSAdapter abstracts the file system reads performed while scanning a
// corpus. It hides direct `os` access so the scanner can be tested against
// a fake tree.
type ImageFSAdapter interface {
	// Stat returns metadata for path.
	Stat(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory sorted by name.
	ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error)

	// Walk traverses root recursively in lexical order.
	Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error

	// Abs returns an absolute representation of path.
	Abs(ctx context.Context, path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain
// layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalImageFSAdapter implements ImageFSAdapter on the local disk.
type LocalImageFSAdapter struct{}

// NewLocalImageFSAdapter constructs a LocalImageFSAdapter.
func NewLocalImageFSAdapter() *LocalImageFSAdapter {
	return &LocalImageFSAdapter{}
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalImageFSAdapter) Stat(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists directory entries in lexical order.
func (a *LocalImageFSAdapter) ReadDir(_ context.Context, path m.Path) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// Walk iterates over every file and directory under root. It stops early
// when ctx is cancelled.
func (a *LocalImageFSAdapter) Walk(ctx context.Context, root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(path, info, err)
	})
}

// Abs returns the absolute form of path.
func (a *LocalImageFSAdapter) Abs(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalImageFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
