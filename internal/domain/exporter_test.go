package domain_test

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "inspecto.dev/pkg/inspecto/internal/adapter/mocks"
	"inspecto.dev/pkg/inspecto/internal/domain"
	domainmocks "inspecto.dev/pkg/inspecto/internal/domain/mocks"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

func presentCell(sample m.Sample, width, height int) m.GridCell {
	return m.GridCell{
		Sample: sample,
		Status: m.CellPresent,
		Image:  image.NewRGBA(image.Rect(0, 0, width, height)),
		Width:  width,
		Height: height,
	}
}

func testCorpus(tags ...m.Tag) m.Corpus {
	corpus := m.Corpus{Layout: m.Layout{MaxColumns: 2, ImageWidth: 100}}

	for _, tag := range tags {
		corpus.Index.Tags = append(corpus.Index.Tags, tag)
		corpus.Blocks = append(corpus.Blocks, m.TagBlock{
			Tag:     tag,
			Columns: 2,
			Rows:    1,
			Cells:   []m.GridCell{presentCell("ED1", 100, 50), {Sample: "ED2", Status: m.CellMissing}},
		})
	}

	return corpus
}

func TestBuildSlide_Geometry(t *testing.T) {
	block := m.TagBlock{
		Tag: "a.png",
		Cells: []m.GridCell{
			presentCell("ED1", 100, 50),
			{Sample: "ED2", Status: m.CellMissing},
			presentCell("ED3", 50, 100),
			presentCell("ED4", 100, 100),
			{Sample: "ED5", Status: m.CellDecodeFailed, Path: "/x/a.png"},
		},
	}

	slide := domain.BuildSlide(block, 2)

	assert.Equal(t, m.Tag("a.png"), slide.Tag)
	assert.Equal(t, "tag: a.png", slide.Header)
	require.Len(t, slide.Pictures, 3)

	// 5 cells over 2 columns reserve 3 rows: slot 4.4 x 1.8.
	slotHeight := (5.8 - 2*0.2) / 3

	wide := slide.Pictures[0]
	assert.Equal(t, m.Sample("ED1"), wide.Sample)
	assert.InDelta(t, 0.5, wide.X, 1e-9)
	assert.InDelta(t, 1.2, wide.Y, 1e-9)
	assert.InDelta(t, 2*slotHeight, wide.Width, 1e-9)
	assert.InDelta(t, slotHeight, wide.Height, 1e-9)

	tall := slide.Pictures[1]
	assert.Equal(t, m.Sample("ED3"), tall.Sample, "missing cells do not take a slot")
	assert.InDelta(t, 0.5+4.4+0.2, tall.X, 1e-9)
	assert.InDelta(t, 1.2, tall.Y, 1e-9)
	assert.InDelta(t, slotHeight/2, tall.Width, 1e-9)
	assert.InDelta(t, slotHeight, tall.Height, 1e-9)

	square := slide.Pictures[2]
	assert.InDelta(t, 0.5, square.X, 1e-9)
	assert.InDelta(t, 1.2+slotHeight+0.2, square.Y, 1e-9)
	assert.InDelta(t, square.Y+square.Height, square.CaptionY, 1e-9)
}

func TestBuildSlide_PicturesFitSlots(t *testing.T) {
	block := m.TagBlock{Tag: "b.png"}
	for _, size := range [][2]int{{1000, 10}, {10, 1000}, {300, 200}, {7, 7}} {
		block.Cells = append(block.Cells, presentCell("ED", size[0], size[1]))
	}

	for columns := 1; columns <= 4; columns++ {
		slide := domain.BuildSlide(block, columns)

		for _, p := range slide.Pictures {
			assert.LessOrEqual(t, p.X+p.Width, 10.0-0.5+1e-9, "columns=%d", columns)
			assert.LessOrEqual(t, p.Y+p.Height, 7.5-0.5+1e-9, "columns=%d", columns)

			b := p.Image.Bounds()
			assert.InDelta(t, float64(b.Dx())/float64(b.Dy()), p.Width/p.Height, 1e-6)
		}
	}
}

func TestExporter_Export_RequiresEntitlement(t *testing.T) {
	ent := domainmocks.NewMockEntitlements(t)
	writer := adaptermocks.NewMockDeckWriter(t)

	ent.EXPECT().IsEntitled(mock.Anything).Return(false).Once()

	_, err := domain.NewExporter(ent, writer).
		Export(context.Background(), testCorpus("a.png"), domain.ExportArgs{Output: "deck.pdf", Layout: m.Layout{MaxColumns: 2, ImageWidth: 100}}, nil)

	require.ErrorIs(t, err, domain.ErrNotEntitled)
	assert.EqualError(t, err, "feature requires entitlement")
	writer.AssertNotCalled(t, "WriteDeck", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExporter_Export_EmptyCorpus(t *testing.T) {
	ent := domainmocks.NewMockEntitlements(t)
	writer := adaptermocks.NewMockDeckWriter(t)

	ent.EXPECT().IsEntitled(mock.Anything).Return(true).Once()

	_, err := domain.NewExporter(ent, writer).
		Export(context.Background(), m.Corpus{}, domain.ExportArgs{Output: "deck.pdf", Layout: m.Layout{MaxColumns: 2, ImageWidth: 100}}, nil)

	require.ErrorIs(t, err, domain.ErrNothingToExport)
}

func TestExporter_Export_OneSlidePerTag(t *testing.T) {
	ent := domainmocks.NewMockEntitlements(t)
	writer := adaptermocks.NewMockDeckWriter(t)
	corpus := testCorpus("a.png", "b.png", "c.png")

	ent.EXPECT().IsEntitled(mock.Anything).Return(true).Once()
	writer.EXPECT().WriteDeck(mock.Anything, m.Path("deck.pdf"), domain.SlideMargin, mock.MatchedBy(func(slides []m.Slide) bool {
		return len(slides) == 3 &&
			slides[0].Tag == "a.png" &&
			slides[2].Tag == "c.png" &&
			len(slides[1].Pictures) == 1
	})).Return(nil).Once()

	var progress []m.Progress

	result, err := domain.NewExporter(ent, writer).Export(context.Background(), corpus,
		domain.ExportArgs{Output: "deck.pdf", Layout: corpus.Layout},
		func(p m.Progress) { progress = append(progress, p) })

	require.NoError(t, err)
	assert.Equal(t, domain.ExportResult{Output: "deck.pdf", Slides: 3}, result)
	require.Len(t, progress, 3)
	assert.Equal(t, m.Progress{Current: 3, Total: 3, Tag: "c.png"}, progress[2])
}

func TestExporter_Export_CancelWritesPartialDeck(t *testing.T) {
	ent := domainmocks.NewMockEntitlements(t)
	writer := adaptermocks.NewMockDeckWriter(t)
	corpus := testCorpus("a.png", "b.png", "c.png")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ent.EXPECT().IsEntitled(mock.Anything).Return(true).Once()
	writer.EXPECT().WriteDeck(mock.Anything, m.Path("deck.pdf"), domain.SlideMargin, mock.MatchedBy(func(slides []m.Slide) bool {
		return len(slides) == 1 && slides[0].Tag == "a.png"
	})).RunAndReturn(func(ctx context.Context, _ m.Path, _ float64, _ []m.Slide) error {
		return ctx.Err()
	}).Once()

	result, err := domain.NewExporter(ent, writer).Export(ctx, corpus,
		domain.ExportArgs{Output: "deck.pdf", Layout: corpus.Layout},
		func(m.Progress) { cancel() })

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, result.Cancelled)
	assert.Equal(t, 1, result.Slides)
}

func TestExporter_Export_WriteFailure(t *testing.T) {
	ent := domainmocks.NewMockEntitlements(t)
	writer := adaptermocks.NewMockDeckWriter(t)
	boom := errors.New("read-only file system")

	ent.EXPECT().IsEntitled(mock.Anything).Return(true).Once()
	writer.EXPECT().WriteDeck(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(boom).Once()

	_, err := domain.NewExporter(ent, writer).Export(context.Background(), testCorpus("a.png"),
		domain.ExportArgs{Output: "deck.pdf", Layout: m.Layout{MaxColumns: 2, ImageWidth: 100}}, nil)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "export deck")
}
