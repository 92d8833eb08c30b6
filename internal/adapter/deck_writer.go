package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// Page geometry of an exported slide, in inches.
const (
	SlideWidth  = 10.0
	SlideHeight = 7.5
)

// Header box styling, in inches and points.
const (
	HeaderBoxHeight  = 0.4
	CaptionHeight    = 0.3
	headerFontSize   = 16
	captionFontSize  = 10
	headerLineWidth  = 1.0 / 72.0
	headerTextIndent = 0.1
)

// DeckWriter persists a sequence of slides to a slide deck file.
type DeckWriter interface {
	// WriteDeck writes every slide to path, even when ctx is already
	// cancelled, so an interrupted export still leaves a readable deck. Any
	// failure is reported once, after all slides were laid out.
	WriteDeck(ctx context.Context, path m.Path, margin float64, slides []m.Slide) error
}

// PDFDeckWriter writes one landscape PDF page per slide.
type PDFDeckWriter struct {
	codec ImageCodecAdapter
}

// NewPDFDeckWriter constructs a PDFDeckWriter encoding pictures through codec.
func NewPDFDeckWriter(codec ImageCodecAdapter) *PDFDeckWriter {
	return &PDFDeckWriter{codec: codec}
}

// WriteDeck renders slides and saves the document at path.
func (d *PDFDeckWriter) WriteDeck(_ context.Context, path m.Path, margin float64, slides []m.Slide) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: SlideWidth, Ht: SlideHeight},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for i, slide := range slides {
		pdf.AddPage()
		d.writeHeader(pdf, translate, margin, slide.Header)

		for j, picture := range slide.Pictures {
			if err := d.writePicture(pdf, translate, fmt.Sprintf("slide%d-picture%d", i, j), picture); err != nil {
				slog.Warn("Failed to place picture", "tag", slide.Tag, "sample", picture.Sample, "error", err)
			}
		}
	}

	if err := pdf.OutputFileAndClose(string(path)); err != nil {
		return fmt.Errorf("write deck %s: %w", path, err)
	}

	return nil
}

func (d *PDFDeckWriter) writeHeader(pdf *fpdf.Fpdf, translate func(string) string, margin float64, header string) {
	width := SlideWidth - 2*margin

	pdf.SetFillColor(220, 220, 220)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(headerLineWidth)
	pdf.Rect(margin, margin, width, HeaderBoxHeight, "FD")

	pdf.SetFont("Helvetica", "", headerFontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(margin+headerTextIndent, margin)
	pdf.CellFormat(width-headerTextIndent, HeaderBoxHeight, translate(header), "", 0, "LM", false, 0, "")
}

func (d *PDFDeckWriter) writePicture(pdf *fpdf.Fpdf, translate func(string) string, name string, picture m.SlidePicture) error {
	if picture.Image == nil {
		return fmt.Errorf("picture has no image")
	}

	var buf bytes.Buffer
	if err := d.codec.EncodePNG(&buf, picture.Image); err != nil {
		return err
	}

	options := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, options, &buf)
	pdf.ImageOptions(name, picture.X, picture.Y, picture.Width, picture.Height, false, options, 0, "")

	pdf.SetFont("Helvetica", "", captionFontSize)
	pdf.SetXY(picture.X, picture.CaptionY)
	pdf.CellFormat(picture.Width, CaptionHeight, translate(string(picture.Sample)), "", 0, "CT", false, 0, "")

	return pdf.Error()
}
