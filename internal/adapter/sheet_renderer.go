package adapter

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

const (
	sheetPadding      = 10
	sheetHeaderHeight = 30
	sheetCaptionSize  = 20
	emptyCellLabel    = "Drag image here"
)

var (
	sheetBackground   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	blockBackground   = color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
	headerBackground  = color.RGBA{R: 0xe0, G: 0xea, B: 0xff, A: 0xff}
	placeholderFill   = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	placeholderText   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	labelText         = color.RGBA{A: 0xff}
	captionBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// FreeFormRenderOptions controls how free-form images fill their cells.
type FreeFormRenderOptions struct {
	CellSize  int
	NoUpscale bool
}

// SheetRenderer composes grids into a single PNG contact sheet.
type SheetRenderer interface {
	// RenderBlocks draws every tag block one below the other.
	RenderBlocks(ctx context.Context, w io.Writer, blocks []m.TagBlock, layout m.Layout) error

	// RenderFreeForm decodes and draws the free-form grid.
	RenderFreeForm(ctx context.Context, w io.Writer, layout m.FreeFormLayout, opts FreeFormRenderOptions) error
}

// PNGSheetRenderer implements SheetRenderer with golang.org/x/image.
type PNGSheetRenderer struct {
	codec ImageCodecAdapter
}

// NewPNGSheetRenderer constructs a renderer that decodes and encodes through codec.
func NewPNGSheetRenderer(codec ImageCodecAdapter) *PNGSheetRenderer {
	return &PNGSheetRenderer{codec: codec}
}

// RenderBlocks writes a contact sheet of all tag blocks.
func (r *PNGSheetRenderer) RenderBlocks(ctx context.Context, w io.Writer, blocks []m.TagBlock, layout m.Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}

	if len(blocks) == 0 {
		return fmt.Errorf("no tag blocks to render")
	}

	width := sheetPadding + layout.MaxColumns*(layout.ImageWidth+sheetPadding)

	height := 0
	for _, block := range blocks {
		height += blockHeight(block)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(canvas, canvas.Bounds(), sheetBackground)

	top := 0

	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.drawBlock(canvas, block, layout, top, width)
		top += blockHeight(block)
	}

	return r.codec.EncodePNG(w, canvas)
}

func (r *PNGSheetRenderer) drawBlock(canvas *image.RGBA, block m.TagBlock, layout m.Layout, top, width int) {
	bh := blockHeight(block)
	fill(canvas, image.Rect(0, top, width, top+bh-sheetPadding), blockBackground)

	header := image.Rect(sheetPadding, top+sheetPadding, width-sheetPadding, top+sheetPadding+sheetHeaderHeight)
	fill(canvas, header, headerBackground)
	drawLabel(canvas, header.Min.X+5, header.Min.Y+20, "tag: "+string(block.Tag), labelText)

	heights := rowHeights(block)
	y := header.Max.Y + sheetPadding

	for row, rowHeight := range heights {
		for _, cell := range block.Cells {
			if cell.Row != row {
				continue
			}

			x := sheetPadding + cell.Column*(layout.ImageWidth+sheetPadding)
			r.drawCell(canvas, cell, x, y)
		}

		y += rowHeight + sheetCaptionSize + sheetPadding
	}
}

func (r *PNGSheetRenderer) drawCell(canvas *image.RGBA, cell m.GridCell, x, y int) {
	area := image.Rect(x, y, x+cell.Width, y+cell.Height)

	if cell.Status == m.CellPresent && cell.Image != nil {
		draw.Draw(canvas, area, cell.Image, cell.Image.Bounds().Min, draw.Over)
	} else {
		fill(canvas, area, placeholderFill)
		drawCentered(canvas, area, cell.Status.String(), placeholderText)
	}

	caption := image.Rect(x, area.Max.Y, x+cell.Width, area.Max.Y+sheetCaptionSize)
	fill(canvas, caption, captionBackground)
	drawCentered(canvas, caption, string(cell.Sample), labelText)
}

// RenderFreeForm writes the free-form grid as PNG.
func (r *PNGSheetRenderer) RenderFreeForm(ctx context.Context, w io.Writer, layout m.FreeFormLayout, opts FreeFormRenderOptions) error {
	if opts.CellSize < 1 {
		return fmt.Errorf("cell size must be positive, got %d", opts.CellSize)
	}

	if layout.Columns < 1 || layout.Rows < 1 {
		return fmt.Errorf("free-form layout must have at least one row and column")
	}

	step := opts.CellSize + sheetPadding
	canvas := image.NewRGBA(image.Rect(0, 0, sheetPadding+layout.Columns*step, sheetPadding+layout.Rows*step))
	fill(canvas, canvas.Bounds(), sheetBackground)

	for _, cell := range layout.Cells {
		if err := ctx.Err(); err != nil {
			return err
		}

		x := sheetPadding + cell.Column*step
		y := sheetPadding + cell.Row*step
		area := image.Rect(x, y, x+opts.CellSize, y+opts.CellSize)

		if cell.Empty {
			fill(canvas, area, placeholderFill)
			drawCentered(canvas, area, emptyCellLabel, placeholderText)

			continue
		}

		img, err := r.codec.Decode(ctx, string(cell.Path))
		if err != nil {
			slog.Warn("Failed to decode free-form image", "path", cell.Path, "error", err)
			fill(canvas, area, placeholderFill)
			drawCentered(canvas, area, m.CellDecodeFailed.String(), placeholderText)

			continue
		}

		scaled := r.fitCell(img, opts)
		b := scaled.Bounds()
		offset := image.Pt(x+(opts.CellSize-b.Dx())/2, y+(opts.CellSize-b.Dy())/2)
		draw.Draw(canvas, image.Rectangle{Min: offset, Max: offset.Add(b.Size())}, scaled, b.Min, draw.Over)
	}

	return r.codec.EncodePNG(w, canvas)
}

func (r *PNGSheetRenderer) fitCell(img image.Image, opts FreeFormRenderOptions) image.Image {
	if opts.NoUpscale {
		return r.codec.Thumbnail(img, opts.CellSize, opts.CellSize)
	}

	b := img.Bounds()
	scale := math.Min(float64(opts.CellSize)/float64(b.Dx()), float64(opts.CellSize)/float64(b.Dy()))
	width := max(1, int(math.Round(float64(b.Dx())*scale)))
	height := max(1, int(math.Round(float64(b.Dy())*scale)))

	return r.codec.Resize(img, width, height)
}

// blockHeight returns the vertical space one tag block occupies on the sheet,
// including the trailing gap.
func blockHeight(block m.TagBlock) int {
	h := sheetPadding + sheetHeaderHeight + sheetPadding

	for _, rowHeight := range rowHeights(block) {
		h += rowHeight + sheetCaptionSize + sheetPadding
	}

	return h + sheetPadding
}

func rowHeights(block m.TagBlock) []int {
	heights := make([]int, block.Rows)

	for _, cell := range block.Cells {
		if cell.Row < len(heights) && cell.Height > heights[cell.Row] {
			heights[cell.Row] = cell.Height
		}
	}

	return heights
}

func fill(dst *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawLabel(dst *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func drawCentered(dst *image.RGBA, area image.Rectangle, text string, c color.Color) {
	width := font.MeasureString(basicfont.Face7x13, text).Ceil()
	x := area.Min.X + (area.Dx()-width)/2
	y := area.Min.Y + (area.Dy()+basicfont.Face7x13.Ascent)/2

	drawLabel(dst, max(area.Min.X, x), y, text, c)
}
