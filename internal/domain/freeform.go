package domain

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	m "inspecto.dev/pkg/inspecto/internal/model"
)

// DefaultFreeFormExtensions lists the suffixes accepted by the free-form grid.
var DefaultFreeFormExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// FreeFormGrid is an ordered, duplicate-free list of image paths that can be
// arranged into any number of columns. Layout changes never reorder it.
type FreeFormGrid struct {
	mu         sync.Mutex
	images     []m.Path
	extensions map[string]struct{}
}

// NewFreeFormGrid constructs an empty grid accepting extensions, or the
// defaults when none are given.
func NewFreeFormGrid(extensions ...string) *FreeFormGrid {
	set := extensionSet(extensions)
	if len(set) == 0 {
		set = extensionSet(DefaultFreeFormExtensions)
	}

	return &FreeFormGrid{extensions: set}
}

// Append adds path at the end and reports whether it was newly added.
// Duplicates and unsupported extensions are rejected.
func (g *FreeFormGrid) Append(path m.Path) bool {
	if _, ok := g.extensions[strings.ToLower(filepath.Ext(string(path)))]; !ok {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if slices.Contains(g.images, path) {
		return false
	}

	g.images = append(g.images, path)

	return true
}

// Clear removes every image.
func (g *FreeFormGrid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.images = nil
}

// Images returns a copy of the image sequence.
func (g *FreeFormGrid) Images() []m.Path {
	g.mu.Lock()
	defer g.mu.Unlock()

	return slices.Clone(g.images)
}

// Len returns the number of images.
func (g *FreeFormGrid) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.images)
}

// Layout assigns images to the first cells in row-major order. rows is a
// floor: the grid grows to ceil(len/columns) rows rather than dropping images.
func (g *FreeFormGrid) Layout(rows, columns int) (m.FreeFormLayout, error) {
	if rows < 1 || columns < 1 {
		return m.FreeFormLayout{}, fmt.Errorf("%w: rows and columns must be positive, got %dx%d", m.ErrInvalidLayout, rows, columns)
	}

	images := g.Images()
	effectiveRows := max(rows, rowsFor(len(images), columns))

	layout := m.FreeFormLayout{
		Rows:    effectiveRows,
		Columns: columns,
		Cells:   make([]m.FreeFormCell, 0, effectiveRows*columns),
	}

	for i := range effectiveRows * columns {
		cell := m.FreeFormCell{Index: i, Row: i / columns, Column: i % columns, Empty: true}
		if i < len(images) {
			cell.Path = images[i]
			cell.Empty = false
		}

		layout.Cells = append(layout.Cells, cell)
	}

	return layout, nil
}
