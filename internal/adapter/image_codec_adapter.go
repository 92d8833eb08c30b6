package adapter

import (
	"bufio"
	"context"
	"fmt"
	"image"
	_ "image/gif" // register decoders for image.Decode
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageCodecAdapter decodes, scales and encodes raster images.
type ImageCodecAdapter interface {
	// Decode reads and decodes the image stored at path.
	Decode(ctx context.Context, path string) (image.Image, error)

	// Resize scales img to exactly width x height.
	Resize(img image.Image, width, height int) image.Image

	// Thumbnail shrinks img to fit within maxWidth x maxHeight keeping its
	// aspect ratio. Images that already fit are returned unchanged.
	Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image

	// EncodePNG writes img to w as PNG.
	EncodePNG(w io.Writer, img image.Image) error
}

// LocalImageCodecAdapter decodes files from disk and resamples with Lanczos3.
type LocalImageCodecAdapter struct {
	interp resize.InterpolationFunction
}

// NewLocalImageCodecAdapter constructs a LocalImageCodecAdapter.
func NewLocalImageCodecAdapter() *LocalImageCodecAdapter {
	return &LocalImageCodecAdapter{interp: resize.Lanczos3}
}

// Decode opens path and decodes it with any registered format.
func (a *LocalImageCodecAdapter) Decode(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the scanned corpus
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}

	return img, nil
}

// Resize scales img to the requested size.
func (a *LocalImageCodecAdapter) Resize(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, a.interp)
}

// Thumbnail shrinks img to fit the box and never enlarges it.
func (a *LocalImageCodecAdapter) Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, a.interp)
}

// EncodePNG writes img as PNG.
func (a *LocalImageCodecAdapter) EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
