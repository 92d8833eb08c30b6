package adapter

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func gradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / max(1, width)), G: uint8(y * 255 / max(1, height)), B: 128, A: 255})
		}
	}

	return img
}

func writeImageFile(t *testing.T, path string, img image.Image) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)

	defer f.Close()

	switch filepath.Ext(path) {
	case ".bmp":
		require.NoError(t, bmp.Encode(f, img))
	default:
		require.NoError(t, png.Encode(f, img))
	}
}
