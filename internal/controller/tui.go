package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2A82DA")).
			Padding(0, 2)
	tagStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ADD8E6"))
	selectedTagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ADD8E6"))
	dimStyle         = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	okStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true)
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const (
	appTitle        = "Inspecto - visual comparison"
	defaultBarWidth = 40
	// header, progress, spacing, detail borders and help.
	reservedLines = 10
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	mode    StartMode
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := NewStartConfig(options...)

	model := newTUIModel(cfg.mode)
	model.interrupt = cfg.Interrupt
	model.open = cfg.open
	model.editor = cfg.editor

	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = cfg.mode
	t.done = make(chan struct{})
	// The program outlives an interrupt so the outcome stays visible; Close ends it.
	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithContext(context.WithoutCancel(ctx)))

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("TUI program stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the program and waits for its final render.
func (t *TUI) Close(ctx context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Send(closeMsg{})

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Wait blocks until the user quits in interactive modes.
func (t *TUI) Wait(ctx context.Context) {
	program, done := t.current()
	if program == nil {
		return
	}

	t.mu.Lock()
	interactive := t.mode == ModeScan || t.mode == ModeGrid
	t.mu.Unlock()

	if !interactive {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayLoadStarted shows the scan root.
func (t *TUI) DisplayLoadStarted(_ context.Context, root m.Path) {
	t.send(loadStartedMsg{root: root})
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(_ context.Context, p m.Progress) {
	t.send(progressMsg(p))
}

// DisplayCorpus switches to the tag browser.
func (t *TUI) DisplayCorpus(ctx context.Context, corpus m.Corpus, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	t.send(corpusMsg{corpus: corpus, err: err})

	return err
}

// DisplayFreeForm shows the free-form grid.
func (t *TUI) DisplayFreeForm(ctx context.Context, layout m.FreeFormLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(freeFormMsg{layout: layout})

	return nil
}

// DisplayExport shows the export outcome.
func (t *TUI) DisplayExport(_ context.Context, output m.Path, slides int, err error) {
	t.send(exportMsg{output: output, slides: slides, err: err})
}

// DisplayEntitlement shows the license state.
func (t *TUI) DisplayEntitlement(_ context.Context, status m.EntitlementStatus) {
	t.send(entitlementMsg(status))
}

// DisplayMessage appends a line below the main view.
func (t *TUI) DisplayMessage(_ context.Context, format string, args ...any) {
	t.send(textMsg(fmt.Sprintf(format, args...)))
}

func (t *TUI) current() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	program, _ := t.current()
	if program == nil {
		return
	}

	program.Send(msg)
}

type (
	closeMsg       struct{}
	loadStartedMsg struct{ root m.Path }
	progressMsg    m.Progress
	corpusMsg      struct {
		corpus m.Corpus
		err    error
	}
	freeFormMsg struct{ layout m.FreeFormLayout }
	exportMsg   struct {
		output m.Path
		slides int
		err    error
	}
	entitlementMsg m.EntitlementStatus
	textMsg        string
)

// tuiModel is the Bubble Tea model shared by all modes.
type tuiModel struct {
	mode        StartMode
	bar         progress.Model
	root        m.Path
	current     m.Progress
	corpus      *m.Corpus
	loadErr     error
	freeForm    *m.FreeFormLayout
	selected    int
	height      int
	width       int
	messages    []string
	quitting    bool
	finished    bool
	interrupted bool
	searching   bool
	query       string
	interrupt   func()
	open        OpenFunc
	editor      FreeFormEditor
}

func newTUIModel(mode StartMode) tuiModel {
	return tuiModel{
		mode:      mode,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		interrupt: func() {},
	}
}

func (tm tuiModel) Init() tea.Cmd {
	return nil
}

func (tm tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.height = msg.Height
		tm.width = msg.Width

		return tm, nil
	case tea.KeyMsg:
		return tm.handleKeyPress(msg)
	case closeMsg:
		tm.quitting = true
		return tm, tea.Quit
	case loadStartedMsg:
		tm.root = msg.root
	case progressMsg:
		tm.current = m.Progress(msg)
	case corpusMsg:
		corpus := msg.corpus
		tm.corpus = &corpus
		tm.loadErr = msg.err
		tm.selected = 0
	case freeFormMsg:
		layout := msg.layout
		tm.freeForm = &layout
	case exportMsg:
		tm.finished = true
		tm.messages = append(tm.messages, formatExport(msg))
	case entitlementMsg:
		tm.messages = append(tm.messages, formatEntitlement(m.EntitlementStatus(msg)))
	case textMsg:
		tm.messages = append(tm.messages, string(msg))
	}

	return tm, nil
}

//nolint:exhaustive // We only handle specific navigation keys
func (tm tuiModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return tm.handleInterrupt()
	}

	if tm.searching {
		return tm.handleSearchKey(msg), nil
	}

	if msg.Type == tea.KeyEsc || msg.String() == "q" {
		tm.quitting = true
		return tm, tea.Quit
	}

	if tm.mode == ModeGrid {
		return tm.handleGridKey(msg), nil
	}

	tags := tm.tagCount()

	switch msg.String() {
	case "down", "j":
		if tm.selected < tags-1 {
			tm.selected++
		}
	case "up", "k":
		if tm.selected > 0 {
			tm.selected--
		}
	case "g", "home":
		tm.selected = 0
	case "G", "end":
		tm.selected = max(0, tags-1)
	case "d", "pgdown":
		tm.selected = min(max(0, tags-1), tm.selected+tm.tagsPerPage())
	case "u", "pgup":
		tm.selected = max(0, tm.selected-tm.tagsPerPage())
	case "/":
		if tags > 0 {
			tm.searching = true
			tm.query = ""
		}
	case "o":
		return tm, tm.openSelected()
	}

	return tm, nil
}

// handleInterrupt cancels the running operation. While it is still working
// the view stays up so the final outcome can be shown.
func (tm tuiModel) handleInterrupt() (tea.Model, tea.Cmd) {
	tm.interrupt()

	if tm.busy() && !tm.interrupted {
		tm.interrupted = true
		tm.messages = append(tm.messages, errorStyle.Render("Interrupted, stopping..."))

		return tm, nil
	}

	tm.quitting = true

	return tm, tea.Quit
}

func (tm tuiModel) busy() bool {
	switch tm.mode {
	case ModeExport:
		return !tm.finished
	case ModeScan:
		return tm.corpus == nil
	default:
		return false
	}
}

//nolint:exhaustive // Only editing keys end or change the query
func (tm tuiModel) handleSearchKey(msg tea.KeyMsg) tuiModel {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		tm.searching = false
		return tm
	case tea.KeyBackspace:
		runes := []rune(tm.query)
		if len(runes) > 0 {
			tm.query = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		tm.query += string(msg.Runes)
	default:
		return tm
	}

	if i := findTag(tm.corpus.Blocks, tm.query); i >= 0 {
		tm.selected = i
	}

	return tm
}

// findTag returns the first block whose tag starts with query, falling back
// to the first one containing it, or -1.
func findTag(blocks []m.TagBlock, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return -1
	}

	for i, block := range blocks {
		if strings.HasPrefix(string(block.Tag), query) {
			return i
		}
	}

	for i, block := range blocks {
		if strings.Contains(string(block.Tag), query) {
			return i
		}
	}

	return -1
}

func (tm tuiModel) openSelected() tea.Cmd {
	if tm.open == nil || tm.tagCount() == 0 {
		return nil
	}

	block := tm.corpus.Blocks[tm.selected]
	open := tm.open

	return func() tea.Msg {
		present := block.Present()
		if len(present) == 0 {
			return textMsg(fmt.Sprintf("No images to open for %s", block.Tag))
		}

		for _, cell := range present {
			if err := open(cell.Path); err != nil {
				return textMsg(errorStyle.Render(fmt.Sprintf("Unable to open %s: %v", cell.Path, err)))
			}
		}

		return textMsg(fmt.Sprintf("Opened %d image(s) of %s", len(present), block.Tag))
	}
}

func (tm tuiModel) handleGridKey(msg tea.KeyMsg) tuiModel {
	if tm.editor == nil || tm.freeForm == nil {
		return tm
	}

	rows, columns := tm.freeForm.Rows, tm.freeForm.Columns

	switch msg.String() {
	case "+", "=":
		columns++
	case "-":
		columns = max(1, columns-1)
	case "]":
		rows++
	case "[":
		rows = max(1, rows-1)
	case "x":
		tm.editor.Clear()
	default:
		return tm
	}

	layout, err := tm.editor.Layout(rows, columns)
	if err != nil {
		tm.messages = append(tm.messages, errorStyle.Render(err.Error()))
		return tm
	}

	tm.freeForm = &layout

	return tm
}

func (tm tuiModel) tagCount() int {
	if tm.corpus == nil {
		return 0
	}

	return len(tm.corpus.Blocks)
}

// tagsPerPage calculates how many tags fit next to the detail panel.
func (tm tuiModel) tagsPerPage() int {
	if tm.height == 0 {
		return 10
	}

	return max(1, tm.height-reservedLines)
}

func (tm tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n\n")

	switch {
	case tm.freeForm != nil:
		tm.renderFreeForm(&b)
	case tm.corpus != nil:
		tm.renderCorpus(&b)
	case tm.mode == ModeScan || tm.mode == ModeExport:
		tm.renderProgress(&b)
	}

	for _, line := range tm.messages {
		b.WriteString("  " + line + "\n")
	}

	if tm.searching {
		fmt.Fprintf(&b, "\n  jump to tag: /%s\n", tm.query)
	}

	if !tm.quitting && !tm.searching {
		switch {
		case tm.mode == ModeScan && tm.corpus != nil:
			b.WriteString(dimStyle.Render("\n  ↑/k: up | ↓/j: down | g: top | G: bottom | /: jump | o: open | q: quit"))
			b.WriteString("\n")
		case tm.mode == ModeGrid && tm.freeForm != nil:
			b.WriteString(dimStyle.Render("\n  +/-: columns | ]/[: rows | x: clear | q: quit"))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (tm tuiModel) renderProgress(b *strings.Builder) {
	if tm.root != "" {
		fmt.Fprintf(b, "  Folder: %s\n", tm.root)
	}

	if tm.current.Total == 0 {
		b.WriteString("  Reading data and images...\n\n")
		return
	}

	fmt.Fprintf(b, "  Reading tag: %s (%d/%d)\n", tm.current.Tag, tm.current.Current, tm.current.Total)
	b.WriteString("  " + tm.bar.ViewAs(tm.current.Percent()) + "\n\n")
}

func (tm tuiModel) renderCorpus(b *strings.Builder) {
	if tm.loadErr != nil {
		b.WriteString("  " + errorStyle.Render("Failure: "+tm.loadErr.Error()) + "\n\n")
		return
	}

	corpus := tm.corpus
	fmt.Fprintf(b, "  %d sample(s), %d tag(s) in %s\n\n", len(corpus.Index.Samples), len(corpus.Blocks), corpus.Index.Root)

	if len(corpus.Blocks) == 0 {
		b.WriteString("  📭 No images found\n")
		return
	}

	if tm.mode != ModeScan {
		return
	}

	list := tm.renderTagList()
	detail := panelStyle.Render(renderBlockDetail(corpus.Blocks[tm.selected]))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	b.WriteString("\n")
}

func (tm tuiModel) renderTagList() string {
	blocks := tm.corpus.Blocks
	perPage := tm.tagsPerPage()

	start := 0
	if tm.selected >= perPage {
		start = tm.selected - perPage + 1
	}

	end := min(len(blocks), start+perPage)

	var b strings.Builder

	for i := start; i < end; i++ {
		label := string(blocks[i].Tag)
		if i == tm.selected {
			b.WriteString("  " + selectedTagStyle.Render("▶ "+label) + "\n")
		} else {
			b.WriteString("    " + tagStyle.Render(label) + "\n")
		}
	}

	fmt.Fprintf(&b, "  %s", dimStyle.Render(fmt.Sprintf("%d/%d", tm.selected+1, len(blocks))))

	return b.String()
}

func renderBlockDetail(block m.TagBlock) string {
	var b strings.Builder

	fmt.Fprintf(&b, "tag: %s  (%d row(s) x %d column(s))\n", block.Tag, block.Rows, block.Columns)

	for _, cell := range block.Cells {
		switch cell.Status {
		case m.CellPresent:
			fmt.Fprintf(&b, "[%d,%d] %s %s %dx%d\n", cell.Row+1, cell.Column+1, okStyle.Render(string(cell.Sample)),
				filepath.Base(string(cell.Path)), cell.Width, cell.Height)
		default:
			fmt.Fprintf(&b, "[%d,%d] %s %s\n", cell.Row+1, cell.Column+1, string(cell.Sample),
				dimStyle.Render(cell.Status.String()))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (tm tuiModel) renderFreeForm(b *strings.Builder) {
	layout := tm.freeForm
	fmt.Fprintf(b, "  %d image(s) in a %dx%d grid\n\n", layout.Images(), layout.Rows, layout.Columns)

	rows := make([]string, 0, layout.Rows)
	line := make([]string, 0, layout.Columns)

	for _, cell := range layout.Cells {
		label := dimStyle.Render(emptyCellText)
		if !cell.Empty {
			label = filepath.Base(string(cell.Path))
		}

		line = append(line, panelStyle.Render(label))

		if len(line) == layout.Columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line = make([]string, 0, layout.Columns)
		}
	}

	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
}

func formatExport(msg exportMsg) string {
	if msg.err != nil {
		return errorStyle.Render(fmt.Sprintf("Export failed after %d slide(s): %v", msg.slides, msg.err))
	}

	return okStyle.Render(fmt.Sprintf("%d slide(s) saved to %s", msg.slides, msg.output))
}

func formatEntitlement(status m.EntitlementStatus) string {
	label := errorStyle.Render("Status: Free 🔒")
	if status.Entitled {
		label = okStyle.Render("Status: Pro ✅")
	}

	return label + "\n  HWID: " + status.Fingerprint
}
