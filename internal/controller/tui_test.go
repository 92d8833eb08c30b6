package controller

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

func update(t *testing.T, model tuiModel, msg tea.Msg) tuiModel {
	t.Helper()

	next, _ := model.Update(msg)

	updated, ok := next.(tuiModel)
	require.True(t, ok)

	return updated
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTUIModel_ProgressView(t *testing.T) {
	model := newTUIModel(ModeScan)
	model = update(t, model, loadStartedMsg{root: "/corpus"})

	view := model.View()
	assert.Contains(t, view, "Inspecto - visual comparison")
	assert.Contains(t, view, "Folder: /corpus")
	assert.Contains(t, view, "Reading data and images...")

	model = update(t, model, progressMsg{Current: 1, Total: 4, Tag: "a.png"})
	assert.Contains(t, model.View(), "Reading tag: a.png (1/4)")
}

func TestTUIModel_TagBrowserNavigation(t *testing.T) {
	model := newTUIModel(ModeScan)
	model = update(t, model, corpusMsg{corpus: sampleCorpus()})

	view := model.View()
	assert.Contains(t, view, "2 sample(s), 2 tag(s)")
	assert.Contains(t, view, "tag: a.png")
	assert.Contains(t, view, "decode failed")

	model = update(t, model, key("j"))
	assert.Equal(t, 1, model.selected)
	assert.Contains(t, model.View(), "tag: b.png")
	assert.Contains(t, model.View(), "no image for this sample")

	model = update(t, model, key("j"))
	assert.Equal(t, 1, model.selected, "stays on the last tag")

	model = update(t, model, key("g"))
	assert.Equal(t, 0, model.selected)

	model = update(t, model, key("G"))
	assert.Equal(t, 1, model.selected)

	model = update(t, model, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, model.selected)
}

func TestTUIModel_LoadError(t *testing.T) {
	model := newTUIModel(ModeScan)
	model = update(t, model, corpusMsg{err: assert.AnError})

	assert.Contains(t, model.View(), "Failure: "+assert.AnError.Error())
}

func TestTUIModel_EmptyCorpus(t *testing.T) {
	model := newTUIModel(ModeScan)
	model = update(t, model, corpusMsg{corpus: m.Corpus{Index: m.CorpusIndex{Root: "/empty"}}})

	assert.Contains(t, model.View(), "No images found")
}

func TestTUIModel_FreeForm(t *testing.T) {
	model := newTUIModel(ModeGrid)
	model = update(t, model, freeFormMsg{layout: m.FreeFormLayout{
		Rows:    1,
		Columns: 2,
		Cells:   []m.FreeFormCell{{Path: "/photos/one.png"}, {Index: 1, Column: 1, Empty: true}},
	}})

	view := model.View()
	assert.Contains(t, view, "1 image(s) in a 1x2 grid")
	assert.Contains(t, view, "one.png")
	assert.Contains(t, view, emptyCellText)
}

func TestTUIModel_Messages(t *testing.T) {
	model := newTUIModel(ModeExport)
	model = update(t, model, exportMsg{output: "deck.pdf", slides: 3})
	model = update(t, model, entitlementMsg{Entitled: true, Fingerprint: "abc"})
	model = update(t, model, textMsg("done"))

	view := model.View()
	assert.Contains(t, view, "3 slide(s) saved to deck.pdf")
	assert.Contains(t, view, "Status: Pro")
	assert.Contains(t, view, "HWID: abc")
	assert.Contains(t, view, "done")
}

func TestTUIModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{key("q"), tea.KeyMsg{Type: tea.KeyCtrlC}, tea.KeyMsg{Type: tea.KeyEsc}, closeMsg{}} {
		next, cmd := newTUIModel(ModeLicense).Update(msg)

		require.NotNil(t, cmd)
		assert.True(t, next.(tuiModel).quitting)
	}
}

func TestTUI_DisplayBeforeStartIsNoop(t *testing.T) {
	tui := NewTUI(nil)
	ctx := context.Background()

	tui.DisplayProgress(ctx, m.Progress{Current: 1, Total: 1})
	require.NoError(t, tui.DisplayFreeForm(ctx, m.FreeFormLayout{}))
	tui.Wait(ctx)
	tui.Close(ctx)
}

func TestTUIModel_CtrlCInterruptsExport(t *testing.T) {
	interrupts := 0
	model := newTUIModel(ModeExport)
	model.interrupt = func() { interrupts++ }

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model = next.(tuiModel)

	assert.Equal(t, 1, interrupts)
	assert.Nil(t, cmd, "stays up to show the partial export")
	assert.False(t, model.quitting)
	assert.Contains(t, model.View(), "Interrupted, stopping...")

	model = update(t, model, exportMsg{output: "deck.pdf", slides: 1, err: context.Canceled})

	next, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, next.(tuiModel).quitting)
	assert.Equal(t, 2, interrupts)
}

func TestTUIModel_CtrlCInterruptsLoading(t *testing.T) {
	interrupts := 0
	model := newTUIModel(ModeScan)
	model.interrupt = func() { interrupts++ }

	model = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, 1, interrupts)

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd, "a second Ctrl-C quits")
	assert.True(t, next.(tuiModel).quitting)
}

func TestTUI_StartWiresInterrupt(t *testing.T) {
	interrupted := false
	cfg := NewStartConfig(WithExportMode(), WithCancel(func() { interrupted = true }))

	assert.Equal(t, ModeExport, cfg.Mode())
	cfg.Interrupt()
	assert.True(t, interrupted)

	assert.NotPanics(t, func() { NewStartConfig().Interrupt() })
}

func TestTUIModel_JumpToTag(t *testing.T) {
	corpus := m.Corpus{Blocks: []m.TagBlock{{Tag: "back.png"}, {Tag: "front.jpg"}, {Tag: "side.jpg"}, {Tag: "top-side.jpg"}}}

	model := newTUIModel(ModeScan)
	model = update(t, model, corpusMsg{corpus: corpus})

	model = update(t, model, key("/"))
	require.True(t, model.searching)

	model = update(t, model, key("s"))
	assert.Equal(t, 2, model.selected)
	assert.Contains(t, model.View(), "jump to tag: /s")

	model = update(t, model, key("q"))
	assert.False(t, model.quitting, "q is part of the query while searching")
	assert.Equal(t, 2, model.selected, "no match keeps the selection")

	model = update(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	model = update(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	model = update(t, model, key("FR"))
	assert.Equal(t, 1, model.selected)

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, model.searching)
	assert.Equal(t, 1, model.selected)
}

func TestFindTag(t *testing.T) {
	blocks := []m.TagBlock{{Tag: "a-side.png"}, {Tag: "side.png"}}

	tests := []struct {
		query string
		want  int
	}{
		{"", -1},
		{"side", 1},
		{"-side", 0},
		{"none", -1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, findTag(blocks, tt.query))
		})
	}
}

func TestTUIModel_OpenSelectedBlock(t *testing.T) {
	var opened []m.Path

	model := newTUIModel(ModeScan)
	model.open = func(path m.Path) error {
		opened = append(opened, path)
		return nil
	}
	model = update(t, model, corpusMsg{corpus: sampleCorpus()})

	_, cmd := model.Update(key("o"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, textMsg("Opened 1 image(s) of a.png"), msg)
	require.Len(t, opened, 1)

	model.open = func(m.Path) error { return errors.New("no viewer") }
	_, cmd = model.Update(key("o"))
	require.NotNil(t, cmd)
	assert.Contains(t, string(cmd().(textMsg)), "no viewer")
}

func TestTUIModel_OpenWithoutOpener(t *testing.T) {
	model := newTUIModel(ModeScan)
	model = update(t, model, corpusMsg{corpus: sampleCorpus()})

	_, cmd := model.Update(key("o"))
	assert.Nil(t, cmd)
}

type fakeEditor struct {
	images  []m.Path
	cleared bool
}

func (f *fakeEditor) Layout(rows, columns int) (m.FreeFormLayout, error) {
	if rows < 1 || columns < 1 {
		return m.FreeFormLayout{}, errors.New("invalid layout")
	}

	rows = max(rows, (len(f.images)+columns-1)/columns)
	layout := m.FreeFormLayout{Rows: rows, Columns: columns}

	for i := 0; i < rows*columns; i++ {
		cell := m.FreeFormCell{Index: i, Row: i / columns, Column: i % columns, Empty: i >= len(f.images)}
		if !cell.Empty {
			cell.Path = f.images[i]
		}

		layout.Cells = append(layout.Cells, cell)
	}

	return layout, nil
}

func (f *fakeEditor) Clear() {
	f.images = nil
	f.cleared = true
}

func TestTUIModel_FreeFormRelayout(t *testing.T) {
	editor := &fakeEditor{images: []m.Path{"/p/1.png", "/p/2.png", "/p/3.png"}}
	initial, err := editor.Layout(1, 3)
	require.NoError(t, err)

	model := newTUIModel(ModeGrid)
	model.editor = editor
	model = update(t, model, freeFormMsg{layout: initial})

	model = update(t, model, key("-"))
	assert.Equal(t, 2, model.freeForm.Columns)
	assert.Equal(t, 2, model.freeForm.Rows, "rows grow so no image is dropped")
	assert.Equal(t, 3, model.freeForm.Images())

	model = update(t, model, key("+"))
	model = update(t, model, key("]"))
	assert.Equal(t, 3, model.freeForm.Columns)
	assert.Equal(t, 3, model.freeForm.Rows)

	model = update(t, model, key("["))
	assert.Equal(t, 2, model.freeForm.Rows)
	assert.Contains(t, model.View(), "3 image(s) in a 2x3 grid")

	model = update(t, model, key("x"))
	assert.True(t, editor.cleared)
	assert.Equal(t, 0, model.freeForm.Images())
	assert.Contains(t, model.View(), "0 image(s) in a 2x3 grid")
}

func TestTUIModel_FreeFormColumnsStayPositive(t *testing.T) {
	editor := &fakeEditor{}
	initial, err := editor.Layout(1, 1)
	require.NoError(t, err)

	model := newTUIModel(ModeGrid)
	model.editor = editor
	model = update(t, model, freeFormMsg{layout: initial})

	model = update(t, model, key("-"))
	model = update(t, model, key("["))
	assert.Equal(t, 1, model.freeForm.Columns)
	assert.Equal(t, 1, model.freeForm.Rows)
}
