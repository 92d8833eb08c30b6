package model

import (
	"errors"
	"fmt"
	"image"
)

// PlaceholderHeight is the pixel height of cells that hold no image.
const PlaceholderHeight = 100

// ErrInvalidLayout is returned when layout parameters are not positive.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout holds the caller-supplied grid parameters.
type Layout struct {
	MaxColumns int
	ImageWidth int
}

// Validate checks that both parameters are positive.
func (l Layout) Validate() error {
	if l.MaxColumns < 1 {
		return fmt.Errorf("%w: max columns must be positive, got %d", ErrInvalidLayout, l.MaxColumns)
	}

	if l.ImageWidth < 1 {
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidLayout, l.ImageWidth)
	}

	return nil
}

// CellStatus classifies the content of a grid cell.
type CellStatus int

const (
	// CellPresent holds a decoded and scaled image.
	CellPresent CellStatus = iota
	// CellMissing marks a sample that has no file for the tag.
	CellMissing
	// CellDecodeFailed marks a file that could not be decoded.
	CellDecodeFailed
)

func (s CellStatus) String() string {
	switch s {
	case CellPresent:
		return "present"
	case CellMissing:
		return "no image for this sample"
	case CellDecodeFailed:
		return "decode failed"
	default:
		return "unknown"
	}
}

// Placeholder reports whether the cell renders without an image.
func (s CellStatus) Placeholder() bool {
	return s != CellPresent
}

// GridCell is one rendered slot bound to a (tag, sample) pair.
type GridCell struct {
	Tag    Tag
	Sample Sample
	Path   Path // empty for CellMissing
	Status CellStatus
	Image  image.Image // nil for placeholders
	Width  int
	Height int
	Row    int
	Column int
}

// TagBlock groups the cells of one tag in sample order.
type TagBlock struct {
	Tag     Tag
	Columns int
	Rows    int
	Cells   []GridCell
}

// Present returns the cells that hold an image.
func (b TagBlock) Present() []GridCell {
	cells := make([]GridCell, 0, len(b.Cells))

	for _, cell := range b.Cells {
		if cell.Status == CellPresent {
			cells = append(cells, cell)
		}
	}

	return cells
}
