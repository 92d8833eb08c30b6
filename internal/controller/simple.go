package controller

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayLoadStarted announces the scan root.
func (s *SimpleUI) DisplayLoadStarted(_ context.Context, root m.Path) {
	s.printf("Reading data and images from %s...\n", root)
}

// DisplayProgress prints one line per decoded tag.
func (s *SimpleUI) DisplayProgress(_ context.Context, progress m.Progress) {
	s.printf("Reading tag: %s (%d/%d)\n", progress.Tag, progress.Current, progress.Total)
}

// DisplayCorpus prints the per-tag summary table or the load error.
func (s *SimpleUI) DisplayCorpus(ctx context.Context, corpus m.Corpus, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("load error: %v\n", err)
		return err
	}

	s.printf("\nSamples (%d): %s\n", len(corpus.Index.Samples), joinSamples(corpus.Index.Samples))
	s.printf("\n%s", renderCorpusTable(corpus))

	return nil
}

func joinSamples(samples []m.Sample) string {
	var b bytes.Buffer

	for i, sample := range samples {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(string(sample))
	}

	return b.String()
}

type blockStat struct {
	present int
	missing int
	failed  int
}

func statBlock(block m.TagBlock) blockStat {
	var stat blockStat

	for _, cell := range block.Cells {
		switch cell.Status {
		case m.CellPresent:
			stat.present++
		case m.CellMissing:
			stat.missing++
		case m.CellDecodeFailed:
			stat.failed++
		}
	}

	return stat
}

func renderCorpusTable(corpus m.Corpus) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Tag", "Present", "Missing", "Failed", "Rows"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var total blockStat

	for _, block := range corpus.Blocks {
		stat := statBlock(block)
		total.present += stat.present
		total.missing += stat.missing
		total.failed += stat.failed

		table.Append([]string{
			string(block.Tag),
			fmt.Sprintf("%d", stat.present),
			fmt.Sprintf("%d", stat.missing),
			fmt.Sprintf("%d", stat.failed),
			fmt.Sprintf("%d", block.Rows),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Tags %d", len(corpus.Blocks)),
		fmt.Sprintf("%d", total.present),
		fmt.Sprintf("%d", total.missing),
		fmt.Sprintf("%d", total.failed),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayFreeForm prints the grid with one file name per cell.
func (s *SimpleUI) DisplayFreeForm(ctx context.Context, layout m.FreeFormLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderFreeFormTable(layout))
	s.printf("%d image(s) in a %dx%d grid\n", layout.Images(), layout.Rows, layout.Columns)

	return nil
}

func renderFreeFormTable(layout m.FreeFormLayout) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)

	header := make([]string, layout.Columns)
	for c := range header {
		header[c] = fmt.Sprintf("%d", c+1)
	}

	table.SetHeader(header)

	row := make([]string, 0, layout.Columns)

	for _, cell := range layout.Cells {
		label := emptyCellText
		if !cell.Empty {
			label = filepath.Base(string(cell.Path))
		}

		row = append(row, label)

		if len(row) == layout.Columns {
			table.Append(row)
			row = make([]string, 0, layout.Columns)
		}
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayExport reports the export outcome.
func (s *SimpleUI) DisplayExport(_ context.Context, output m.Path, slides int, err error) {
	if err != nil {
		s.printf("export error: %v\n", err)

		if slides > 0 {
			s.printf("%d slide(s) written to %s may be incomplete\n", slides, output)
		}

		return
	}

	s.printf("%d slide(s) saved to %s\n", slides, output)
}

// DisplayEntitlement prints the license status.
func (s *SimpleUI) DisplayEntitlement(_ context.Context, status m.EntitlementStatus) {
	s.printf("Status: %s\n", entitlementLabel(status))
	s.printf("HWID: %s\n", status.Fingerprint)
}

// DisplayMessage prints a free text line.
func (s *SimpleUI) DisplayMessage(_ context.Context, format string, args ...any) {
	s.printf(format+"\n", args...)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const emptyCellText = "-"

func entitlementLabel(status m.EntitlementStatus) string {
	if status.Entitled {
		return "Pro"
	}

	return "Free"
}
