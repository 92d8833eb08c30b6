package adapter

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

func solidFile(t *testing.T, path string, size int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.Set(x, y, color.RGBA{R: 250, A: 255})
		}
	}

	writeImageFile(t, path, img)
}

func decodeSheet(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()

	img, err := png.Decode(buf)
	require.NoError(t, err)

	return img
}

func TestPNGSheetRenderer_RenderBlocks(t *testing.T) {
	renderer := NewPNGSheetRenderer(NewLocalImageCodecAdapter())
	layout := m.Layout{MaxColumns: 2, ImageWidth: 30}

	blocks := []m.TagBlock{
		{
			Tag: "a.png", Columns: 2, Rows: 2,
			Cells: []m.GridCell{
				{Sample: "ED1", Status: m.CellPresent, Image: gradientImage(30, 15), Width: 30, Height: 15, Row: 0, Column: 0},
				{Sample: "ED2", Status: m.CellMissing, Width: 30, Height: m.PlaceholderHeight, Row: 0, Column: 1},
				{Sample: "ED3", Status: m.CellDecodeFailed, Width: 30, Height: m.PlaceholderHeight, Row: 1, Column: 0},
			},
		},
		{
			Tag: "b.png", Columns: 2, Rows: 1,
			Cells: []m.GridCell{
				{Sample: "ED1", Status: m.CellPresent, Image: gradientImage(30, 60), Width: 30, Height: 60, Row: 0, Column: 0},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderBlocks(context.Background(), &buf, blocks, layout))

	sheet := decodeSheet(t, &buf)
	assert.Equal(t, sheetPadding+2*(30+sheetPadding), sheet.Bounds().Dx())
	assert.Equal(t, blockHeight(blocks[0])+blockHeight(blocks[1]), sheet.Bounds().Dy())
}

func TestPNGSheetRenderer_RenderBlocks_Errors(t *testing.T) {
	renderer := NewPNGSheetRenderer(NewLocalImageCodecAdapter())

	var buf bytes.Buffer

	err := renderer.RenderBlocks(context.Background(), &buf, nil, m.Layout{MaxColumns: 2, ImageWidth: 30})
	require.Error(t, err)

	err = renderer.RenderBlocks(context.Background(), &buf, []m.TagBlock{{Tag: "a"}}, m.Layout{})
	require.ErrorIs(t, err, m.ErrInvalidLayout)
}

func TestRowHeights_UsesTallestCell(t *testing.T) {
	block := m.TagBlock{
		Rows: 2,
		Cells: []m.GridCell{
			{Row: 0, Height: 40},
			{Row: 0, Height: 90},
			{Row: 1, Height: m.PlaceholderHeight},
		},
	}

	assert.Equal(t, []int{90, m.PlaceholderHeight}, rowHeights(block))
}

func TestPNGSheetRenderer_RenderFreeForm(t *testing.T) {
	root := t.TempDir()
	small := filepath.Join(root, "small.png")
	solidFile(t, small, 4)

	layout := m.FreeFormLayout{
		Rows:    1,
		Columns: 3,
		Cells: []m.FreeFormCell{
			{Index: 0, Row: 0, Column: 0, Path: m.Path(small)},
			{Index: 1, Row: 0, Column: 1, Path: m.Path(filepath.Join(root, "missing.png"))},
			{Index: 2, Row: 0, Column: 2, Empty: true},
		},
	}

	renderer := NewPNGSheetRenderer(NewLocalImageCodecAdapter())
	cell := 50
	step := cell + sheetPadding

	t.Run("scales to fit", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.RenderFreeForm(context.Background(), &buf, layout, FreeFormRenderOptions{CellSize: cell}))

		sheet := decodeSheet(t, &buf)
		assert.Equal(t, sheetPadding+3*step, sheet.Bounds().Dx())
		assert.Equal(t, sheetPadding+step, sheet.Bounds().Dy())

		r, g, _, _ := sheet.At(sheetPadding+1, sheetPadding+1).RGBA()
		assert.Greater(t, r>>8, uint32(200), "upscaled image fills the cell")
		assert.Less(t, g>>8, uint32(60))

		assert.Equal(t, colorOf(placeholderFill), colorOf(sheet.At(sheetPadding+2*step+1, sheetPadding+1)))
		assert.Equal(t, colorOf(placeholderFill), colorOf(sheet.At(sheetPadding+step+1, sheetPadding+1)), "decode failure")
	})

	t.Run("never upscales", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderer.RenderFreeForm(context.Background(), &buf, layout, FreeFormRenderOptions{CellSize: cell, NoUpscale: true}))

		sheet := decodeSheet(t, &buf)
		assert.Equal(t, colorOf(sheetBackground), colorOf(sheet.At(sheetPadding+1, sheetPadding+1)))

		r, _, _, _ := sheet.At(sheetPadding+cell/2, sheetPadding+cell/2).RGBA()
		assert.Greater(t, r>>8, uint32(200), "small image stays centred")
	})

	t.Run("rejects bad size", func(t *testing.T) {
		var buf bytes.Buffer
		require.Error(t, renderer.RenderFreeForm(context.Background(), &buf, layout, FreeFormRenderOptions{CellSize: 0}))
		require.Error(t, renderer.RenderFreeForm(context.Background(), &buf, m.FreeFormLayout{}, FreeFormRenderOptions{CellSize: 10}))
	})
}

func colorOf(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
