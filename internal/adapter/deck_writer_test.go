package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

func testSlides() []m.Slide {
	return []m.Slide{
		{
			Tag:    "a.png",
			Header: "tag: a.png",
			Pictures: []m.SlidePicture{
				{Sample: "ED1", Image: gradientImage(40, 20), X: 0.5, Y: 1.2, Width: 4.4, Height: 2.2, CaptionY: 3.4},
				{Sample: "ED_é", Image: gradientImage(20, 20), X: 5.1, Y: 1.2, Width: 2.2, Height: 2.2, CaptionY: 3.4},
			},
		},
		{Tag: "b.png", Header: "tag: b.png"},
	}
}

func TestPDFDeckWriter_WriteDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pdf")

	err := NewPDFDeckWriter(NewLocalImageCodecAdapter()).WriteDeck(context.Background(), m.Path(path), 0.5, testSlides())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	pages := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	assert.Equal(t, 2, pages)
}

func TestPDFDeckWriter_WriteDeck_SkipsPicturesWithoutImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pdf")
	slides := []m.Slide{{
		Tag:      "a.png",
		Header:   "tag: a.png",
		Pictures: []m.SlidePicture{{Sample: "ED1", X: 0.5, Y: 1.2, Width: 1, Height: 1}},
	}}

	require.NoError(t, NewPDFDeckWriter(NewLocalImageCodecAdapter()).WriteDeck(context.Background(), m.Path(path), 0.5, slides))
	assert.FileExists(t, path)
}

func TestPDFDeckWriter_WriteDeck_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deck.pdf")

	err := NewPDFDeckWriter(NewLocalImageCodecAdapter()).WriteDeck(context.Background(), m.Path(path), 0.5, testSlides())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write deck")
}

func TestPDFDeckWriter_WriteDeck_IgnoresCancellation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pdf")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, NewPDFDeckWriter(NewLocalImageCodecAdapter()).WriteDeck(ctx, m.Path(path), 0.5, testSlides()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pages := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	assert.Equal(t, 2, pages)
}
