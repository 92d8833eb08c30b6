package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"inspecto.dev/pkg/inspecto/internal/adapter"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// Slide geometry in inches.
const (
	SlideMargin        = 0.5
	SlidePadding       = 0.2
	SlideHeaderReserve = 0.7
	SlideHeaderGap     = 0.3
)

var (
	// ErrNotEntitled is returned when export runs without an active license.
	ErrNotEntitled = errors.New("feature requires entitlement")
	// ErrNothingToExport is returned for a corpus without tags.
	ErrNothingToExport = errors.New("no images to export")
)

// ExportArgs configures one deck export.
type ExportArgs struct {
	Output m.Path
	Layout m.Layout
}

// ExportResult summarises a finished or interrupted export.
type ExportResult struct {
	Output    m.Path
	Slides    int
	Cancelled bool
}

// Exporter writes one slide per tag of a loaded corpus.
type Exporter interface {
	Export(ctx context.Context, corpus m.Corpus, args ExportArgs, onSlide func(m.Progress)) (ExportResult, error)
}

type exporter struct {
	entitlements Entitlements
	writer       adapter.DeckWriter
}

// NewExporter constructs an Exporter gated by entitlements.
func NewExporter(entitlements Entitlements, writer adapter.DeckWriter) Exporter {
	return &exporter{entitlements: entitlements, writer: writer}
}

// Export builds the slides and writes them. Cancellation is checked once per
// tag; slides built before it are still written and the context error is
// returned, so the output must be treated as incomplete.
func (e *exporter) Export(ctx context.Context, corpus m.Corpus, args ExportArgs, onSlide func(m.Progress)) (ExportResult, error) {
	result := ExportResult{Output: args.Output}

	if !e.entitlements.IsEntitled(ctx) {
		return result, ErrNotEntitled
	}

	if len(corpus.Blocks) == 0 {
		return result, ErrNothingToExport
	}

	if err := args.Layout.Validate(); err != nil {
		return result, err
	}

	slides := make([]m.Slide, 0, len(corpus.Blocks))

	for i, block := range corpus.Blocks {
		if ctx.Err() != nil {
			result.Cancelled = true
			slog.Info("Export cancelled", "tag", block.Tag, "written", len(slides))

			break
		}

		slides = append(slides, BuildSlide(block, args.Layout.MaxColumns))

		if onSlide != nil {
			onSlide(m.Progress{Current: i + 1, Total: len(corpus.Blocks), Tag: block.Tag})
		}
	}

	result.Slides = len(slides)

	if err := e.writer.WriteDeck(context.WithoutCancel(ctx), args.Output, SlideMargin, slides); err != nil {
		return result, fmt.Errorf("export deck: %w", err)
	}

	if result.Cancelled {
		return result, fmt.Errorf("export cancelled: %w", ctx.Err())
	}

	return result, nil
}

// BuildSlide lays out the present images of block in a maxColumns grid. Cells
// without an image are skipped and do not take a slot.
func BuildSlide(block m.TagBlock, maxColumns int) m.Slide {
	slide := m.Slide{Tag: block.Tag, Header: "tag: " + string(block.Tag)}

	usableWidth := adapter.SlideWidth - 2*SlideMargin
	usableHeight := adapter.SlideHeight - 2*SlideMargin - SlideHeaderReserve
	slotWidth := (usableWidth - float64(maxColumns-1)*SlidePadding) / float64(maxColumns)

	rows := max(1, rowsFor(len(block.Cells), maxColumns))
	slotHeight := (usableHeight - float64(rows-1)*SlidePadding) / float64(rows)

	top := SlideMargin + adapter.HeaderBoxHeight + SlideHeaderGap
	col, row := 0, 0

	for _, cell := range block.Cells {
		if cell.Status != m.CellPresent || cell.Image == nil {
			continue
		}

		b := cell.Image.Bounds()
		ratio := float64(b.Dx()) / float64(b.Dy())

		width := slotWidth
		height := slotWidth / ratio

		if height > slotHeight {
			height = slotHeight
			width = slotHeight * ratio
		}

		x := SlideMargin + float64(col)*(slotWidth+SlidePadding)
		y := top + float64(row)*(slotHeight+SlidePadding)

		slide.Pictures = append(slide.Pictures, m.SlidePicture{
			Sample:   cell.Sample,
			Image:    cell.Image,
			X:        x,
			Y:        y,
			Width:    width,
			Height:   height,
			CaptionY: y + height,
		})

		col++
		if col >= maxColumns {
			col = 0
			row++
		}
	}

	return slide
}
