package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func sampleCorpus() m.Corpus {
	return m.Corpus{
		Index:  m.CorpusIndex{Root: "/corpus", Samples: []m.Sample{"ED1", "ED2"}, Tags: []m.Tag{"a.png", "b.png"}},
		Layout: m.Layout{MaxColumns: 4, ImageWidth: 350},
		Blocks: []m.TagBlock{
			{Tag: "a.png", Rows: 1, Columns: 4, Cells: []m.GridCell{
				{Sample: "ED1", Status: m.CellPresent, Path: "/corpus/ED1/a.png", Width: 350, Height: 175},
				{Sample: "ED2", Status: m.CellDecodeFailed, Path: "/corpus/ED2/a.png", Width: 350, Height: 100, Column: 1},
			}},
			{Tag: "b.png", Rows: 1, Columns: 4, Cells: []m.GridCell{
				{Sample: "ED1", Status: m.CellMissing, Width: 350, Height: 100},
				{Sample: "ED2", Status: m.CellPresent, Path: "/corpus/ED2/b.png", Width: 350, Height: 80, Column: 1},
			}},
		},
	}
}

func TestSimpleUI_Lifecycle(t *testing.T) {
	ui, out := newTestSimpleUI()
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithScanMode()))
	ui.Wait(ctx)
	ui.Close(ctx)

	assert.Empty(t, out.String())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, ui.Start(cancelled), context.Canceled)
}

func TestSimpleUI_DisplayProgress(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayLoadStarted(context.Background(), "/corpus")
	ui.DisplayProgress(context.Background(), m.Progress{Current: 2, Total: 5, Tag: "b.png"})

	assert.Contains(t, out.String(), "Reading data and images from /corpus")
	assert.Contains(t, out.String(), "Reading tag: b.png (2/5)")
}

func TestSimpleUI_DisplayCorpus(t *testing.T) {
	ui, out := newTestSimpleUI()

	require.NoError(t, ui.DisplayCorpus(context.Background(), sampleCorpus(), nil))

	output := out.String()
	assert.Contains(t, output, "Samples (2): ED1, ED2")
	assert.Contains(t, output, "a.png")
	assert.Contains(t, output, "b.png")
	assert.Contains(t, strings.ToUpper(output), "TOTAL TAGS 2")
}

func TestSimpleUI_DisplayCorpus_Error(t *testing.T) {
	ui, out := newTestSimpleUI()
	loadErr := errors.New("scan /missing: not a directory")

	err := ui.DisplayCorpus(context.Background(), m.Corpus{}, loadErr)
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, out.String(), "load error: scan /missing: not a directory")
}

func TestStatBlock(t *testing.T) {
	stat := statBlock(sampleCorpus().Blocks[0])

	assert.Equal(t, blockStat{present: 1, failed: 1}, stat)
}

func TestSimpleUI_DisplayFreeForm(t *testing.T) {
	ui, out := newTestSimpleUI()
	layout := m.FreeFormLayout{
		Rows:    1,
		Columns: 2,
		Cells: []m.FreeFormCell{
			{Index: 0, Path: "/photos/one.png"},
			{Index: 1, Column: 1, Empty: true},
		},
	}

	require.NoError(t, ui.DisplayFreeForm(context.Background(), layout))

	output := out.String()
	assert.Contains(t, output, "one.png")
	assert.NotContains(t, output, "/photos/")
	assert.Contains(t, output, "1 image(s) in a 1x2 grid")
}

func TestSimpleUI_DisplayExport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ui, out := newTestSimpleUI()
		ui.DisplayExport(context.Background(), "deck.pdf", 3, nil)
		assert.Contains(t, out.String(), "3 slide(s) saved to deck.pdf")
	})

	t.Run("interrupted", func(t *testing.T) {
		ui, out := newTestSimpleUI()
		ui.DisplayExport(context.Background(), "deck.pdf", 1, context.Canceled)
		assert.Contains(t, out.String(), "export error: context canceled")
		assert.Contains(t, out.String(), "may be incomplete")
	})

	t.Run("refused", func(t *testing.T) {
		ui, out := newTestSimpleUI()
		ui.DisplayExport(context.Background(), "deck.pdf", 0, errors.New("feature requires entitlement"))
		assert.NotContains(t, out.String(), "incomplete")
	})
}

func TestSimpleUI_DisplayEntitlement(t *testing.T) {
	ui, out := newTestSimpleUI()

	ui.DisplayEntitlement(context.Background(), m.EntitlementStatus{Entitled: true, Fingerprint: "abc123"})
	ui.DisplayEntitlement(context.Background(), m.EntitlementStatus{Fingerprint: "abc123"})
	ui.DisplayMessage(context.Background(), "License %s", "activated")

	output := out.String()
	assert.Contains(t, output, "Status: Pro")
	assert.Contains(t, output, "Status: Free")
	assert.Contains(t, output, "HWID: abc123")
	assert.Contains(t, output, "License activated\n")
}

func TestNewUI_PicksImplementation(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
