// Package domain implements the corpus scanner, the grid materializer and
// the workflows built on top of them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"inspecto.dev/pkg/inspecto/internal/adapter"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// DefaultSamplePrefix marks sample directories.
const DefaultSamplePrefix = "ED"

// DefaultScanExtensions lists the image suffixes indexed by the scanner.
var DefaultScanExtensions = []string{".jpg", ".jpeg", ".png"}

// ErrScanRootInvalid is wrapped by ScanError.
var ErrScanRootInvalid = errors.New("scan root is not a directory")

// ScanError reports a root path that cannot be scanned. No partial index is
// produced when it is returned.
type ScanError struct {
	Root m.Path
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Root, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ScanError) Unwrap() []error {
	return []error{ErrScanRootInvalid, e.Err}
}

// Scanner builds a CorpusIndex from a directory tree.
type Scanner interface {
	Scan(ctx context.Context, root m.Path) (m.CorpusIndex, error)
}

// ScanOption customises a Scanner.
type ScanOption func(*scanner)

// WithSamplePrefix overrides the case-insensitive sample directory prefix.
func WithSamplePrefix(prefix string) ScanOption {
	return func(s *scanner) {
		if strings.TrimSpace(prefix) != "" {
			s.prefix = strings.ToUpper(strings.TrimSpace(prefix))
		}
	}
}

// WithExtensions overrides the accepted image suffixes.
func WithExtensions(extensions ...string) ScanOption {
	return func(s *scanner) {
		if set := extensionSet(extensions); len(set) > 0 {
			s.extensions = set
		}
	}
}

type scanner struct {
	fs         adapter.ImageFSAdapter
	prefix     string
	extensions map[string]struct{}
}

// NewScanner constructs a Scanner reading through fs.
func NewScanner(fs adapter.ImageFSAdapter, opts ...ScanOption) Scanner {
	s := &scanner{
		fs:         fs,
		prefix:     DefaultSamplePrefix,
		extensions: extensionSet(DefaultScanExtensions),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type sampleDir struct {
	name m.Sample
	path m.Path
}

// Scan walks root from scratch and indexes every sample's images.
func (s *scanner) Scan(ctx context.Context, root m.Path) (m.CorpusIndex, error) {
	if err := s.validateRoot(ctx, root); err != nil {
		return m.CorpusIndex{}, err
	}

	absRoot, err := s.fs.Abs(ctx, root)
	if err != nil {
		return m.CorpusIndex{}, &ScanError{Root: root, Err: err}
	}

	dirs, err := s.discoverSamples(ctx, absRoot)
	if err != nil {
		return m.CorpusIndex{}, err
	}

	index := m.CorpusIndex{
		Root:    absRoot,
		Samples: make([]m.Sample, 0, len(dirs)),
		Refs:    map[m.Tag]map[m.Sample]m.Path{},
	}

	for _, dir := range dirs {
		index.Samples = append(index.Samples, dir.name)
	}

	for _, dir := range dirs {
		if err := s.indexSample(ctx, dir, index.Refs); err != nil {
			return m.CorpusIndex{}, err
		}
	}

	index.Tags = make([]m.Tag, 0, len(index.Refs))
	for tag := range index.Refs {
		index.Tags = append(index.Tags, tag)
	}

	sort.Slice(index.Tags, func(i, j int) bool { return index.Tags[i] < index.Tags[j] })

	slog.Info("Scanned corpus", "root", absRoot, "samples", len(index.Samples), "tags", len(index.Tags))

	return index, nil
}

func (s *scanner) validateRoot(ctx context.Context, root m.Path) error {
	if strings.TrimSpace(string(root)) == "" {
		return &ScanError{Root: root, Err: errors.New("empty path")}
	}

	info, err := s.fs.Stat(ctx, root)
	if err != nil {
		return &ScanError{Root: root, Err: err}
	}

	if !info.IsDir() {
		return &ScanError{Root: root, Err: errors.New("not a directory")}
	}

	return nil
}

// discoverSamples lists sample directories top-down: the matching children of
// a directory are recorded before any of them is descended into.
func (s *scanner) discoverSamples(ctx context.Context, root m.Path) ([]sampleDir, error) {
	var dirs []sampleDir

	var visit func(dir m.Path) error

	visit = func(dir m.Path) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := s.fs.ReadDir(ctx, dir)
		if err != nil {
			slog.Warn("Skipping unreadable directory", "path", dir, "error", err)
			return nil
		}

		var children []m.Path

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			child := s.fs.JoinPath(ctx, string(dir), entry.Name())
			children = append(children, child)

			if s.isSample(entry.Name()) {
				dirs = append(dirs, sampleDir{name: m.Sample(entry.Name()), path: child})
			}
		}

		for _, child := range children {
			if err := visit(child); err != nil {
				return err
			}
		}

		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}

	return dirs, nil
}

func (s *scanner) isSample(name string) bool {
	return strings.HasPrefix(strings.ToUpper(name), s.prefix)
}

func (s *scanner) indexSample(ctx context.Context, dir sampleDir, refs map[m.Tag]map[m.Sample]m.Path) error {
	err := s.fs.Walk(ctx, dir.path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			slog.Warn("Skipping unreadable path", "sample", dir.name, "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || !s.accepts(path) {
			return nil
		}

		tag := m.Tag(strings.ToLower(filepath.Base(path)))

		bySample, ok := refs[tag]
		if !ok {
			bySample = map[m.Sample]m.Path{}
			refs[tag] = bySample
		}

		if previous, dup := bySample[dir.name]; dup {
			slog.Debug("Duplicate tag in sample, keeping the later file", "tag", tag, "sample", dir.name, "previous", previous, "path", path)
		}

		bySample[dir.name] = m.Path(path)

		return nil
	})
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		slog.Warn("Sample walk stopped early", "sample", dir.name, "error", err)
	}

	return nil
}

func (s *scanner) accepts(path string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func extensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		set[ext] = struct{}{}
	}

	return set
}
