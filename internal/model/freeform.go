package model

// FreeFormCell is one slot of the free-form grid.
type FreeFormCell struct {
	Index  int
	Row    int
	Column int
	Path   Path
	Empty  bool
}

// FreeFormLayout is the row-major arrangement of the free-form images.
// Rows may exceed the requested row count so that no image is dropped.
type FreeFormLayout struct {
	Rows    int
	Columns int
	Cells   []FreeFormCell
}

// Images returns the number of non-empty cells.
func (l FreeFormLayout) Images() int {
	n := 0

	for _, cell := range l.Cells {
		if !cell.Empty {
			n++
		}
	}

	return n
}
