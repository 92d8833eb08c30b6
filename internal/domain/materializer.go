package domain

import (
	"context"
	"log/slog"
	"math"

	"inspecto.dev/pkg/inspecto/internal/adapter"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// Materializer turns a CorpusIndex into renderable tag blocks. It keeps no
// state between calls: the same inputs always yield the same geometry and
// the same cell classification.
type Materializer interface {
	Materialize(ctx context.Context, index m.CorpusIndex, layout m.Layout) ([]m.TagBlock, error)
	MaterializeBlock(ctx context.Context, index m.CorpusIndex, tag m.Tag, layout m.Layout) m.TagBlock
}

type materializer struct {
	codec adapter.ImageCodecAdapter
}

// NewMaterializer constructs a Materializer decoding images through codec.
func NewMaterializer(codec adapter.ImageCodecAdapter) Materializer {
	return &materializer{codec: codec}
}

// Materialize builds one block per tag in index order.
func (mt *materializer) Materialize(ctx context.Context, index m.CorpusIndex, layout m.Layout) ([]m.TagBlock, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	blocks := make([]m.TagBlock, 0, len(index.Tags))

	for _, tag := range index.Tags {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		blocks = append(blocks, mt.MaterializeBlock(ctx, index, tag, layout))
	}

	return blocks, nil
}

// MaterializeBlock builds the cells of one tag across all samples. A decode
// failure only degrades its own cell. The layout is assumed valid.
func (mt *materializer) MaterializeBlock(ctx context.Context, index m.CorpusIndex, tag m.Tag, layout m.Layout) m.TagBlock {
	block := m.TagBlock{
		Tag:     tag,
		Columns: layout.MaxColumns,
		Rows:    rowsFor(len(index.Samples), layout.MaxColumns),
		Cells:   make([]m.GridCell, 0, len(index.Samples)),
	}

	for i, sample := range index.Samples {
		cell := mt.resolveCell(ctx, index, tag, sample, layout.ImageWidth)
		cell.Row = i / layout.MaxColumns
		cell.Column = i % layout.MaxColumns
		block.Cells = append(block.Cells, cell)
	}

	return block
}

func (mt *materializer) resolveCell(ctx context.Context, index m.CorpusIndex, tag m.Tag, sample m.Sample, width int) m.GridCell {
	cell := m.GridCell{
		Tag:    tag,
		Sample: sample,
		Status: m.CellMissing,
		Width:  width,
		Height: m.PlaceholderHeight,
	}

	path, ok := index.Lookup(tag, sample)
	if !ok {
		return cell
	}

	cell.Path = path

	img, err := mt.codec.Decode(ctx, string(path))
	if err != nil {
		slog.Warn("Failed to decode image", "tag", tag, "sample", sample, "path", path, "error", err)

		cell.Status = m.CellDecodeFailed

		return cell
	}

	bounds := img.Bounds()
	height := ScaledHeight(bounds.Dx(), bounds.Dy(), width)

	cell.Status = m.CellPresent
	cell.Height = height
	cell.Image = mt.codec.Resize(img, width, height)

	return cell
}

// ScaledHeight returns round(width * originalHeight / originalWidth), never
// less than one pixel.
func ScaledHeight(originalWidth, originalHeight, width int) int {
	if originalWidth <= 0 {
		return m.PlaceholderHeight
	}

	h := int(math.Round(float64(width) * float64(originalHeight) / float64(originalWidth)))

	return max(1, h)
}

func rowsFor(items, columns int) int {
	if columns < 1 || items == 0 {
		return 0
	}

	return (items + columns - 1) / columns
}
