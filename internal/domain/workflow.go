package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"inspecto.dev/pkg/inspecto/internal/adapter"
	"inspecto.dev/pkg/inspecto/internal/controller"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// ScanArgs contains the arguments for scanning and browsing a corpus.
type ScanArgs struct {
	Root     m.Path
	Layout   m.Layout
	Sheet    m.Path
	Manifest m.Path
}

// ExportCorpusArgs contains the arguments for exporting a corpus as a deck.
type ExportCorpusArgs struct {
	Root   m.Path
	Layout m.Layout
	Output m.Path
	// Open shows the deck in the system viewer once it is written.
	Open bool
}

// GridArgs contains the arguments for building a free-form grid.
type GridArgs struct {
	Images     []m.Path
	Rows       int
	Columns    int
	CellSize   int
	NoUpscale  bool
	Sheet      m.Path
	Extensions []string
}

// Workflow defines the user-facing operations of the tool.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Export(ctx context.Context, args ExportCorpusArgs) error
	Grid(ctx context.Context, args GridArgs) error
	Activate(ctx context.Context, key string) error
	Status(ctx context.Context) error
}

type workflow struct {
	adapter.SheetRenderer
	adapter.ManifestStore
	adapter.Opener
	controller.UI
	Loader
	Exporter
	Entitlements
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	renderer adapter.SheetRenderer,
	manifests adapter.ManifestStore,
	opener adapter.Opener,
	ui controller.UI,
	loader Loader,
	exporter Exporter,
	entitlements Entitlements,
) Workflow {
	return &workflow{
		SheetRenderer: renderer,
		ManifestStore: manifests,
		Opener:        opener,
		UI:            ui,
		Loader:        loader,
		Exporter:      exporter,
		Entitlements:  entitlements,
	}
}

// Scan loads the corpus under args.Root, shows it and writes the optional
// sheet and manifest.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	open := func(path m.Path) error {
		return w.Open(ctx, path)
	}

	if err := w.UI.Start(ctx, controller.WithScanMode(), controller.WithCancel(cancel), controller.WithOpener(open)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	corpus, err := w.load(ctx, args.Root, args.Layout)
	if displayErr := w.DisplayCorpus(ctx, corpus, err); displayErr != nil && err == nil {
		err = displayErr
	}

	if err != nil {
		w.Close(context.WithoutCancel(ctx))
		slog.Error("Failed to load corpus", "root", args.Root, "error", err)

		return fmt.Errorf("load corpus: %w", err)
	}

	if err := w.writeOutputs(ctx, corpus, args); err != nil {
		w.Close(ctx)
		return err
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) writeOutputs(ctx context.Context, corpus m.Corpus, args ScanArgs) error {
	if args.Sheet != "" {
		err := writeFile(args.Sheet, func(f *os.File) error {
			return w.RenderBlocks(ctx, f, corpus.Blocks, corpus.Layout)
		})
		if err != nil {
			return fmt.Errorf("render sheet: %w", err)
		}

		w.DisplayMessage(ctx, "Sheet saved to %s", args.Sheet)
	}

	if args.Manifest != "" {
		if err := w.SaveManifest(ctx, args.Manifest, corpus); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}

		w.DisplayMessage(ctx, "Manifest saved to %s", args.Manifest)
	}

	return nil
}

// Export checks the entitlement before loading so an unlicensed run fails fast.
func (w *workflow) Export(ctx context.Context, args ExportCorpusArgs) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.UI.Start(ctx, controller.WithExportMode(), controller.WithCancel(cancel)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(context.WithoutCancel(ctx))

	if !w.IsEntitled(ctx) {
		w.DisplayEntitlement(ctx, w.Entitlements.Status(ctx))
		return ErrNotEntitled
	}

	corpus, err := w.load(ctx, args.Root, args.Layout)
	if err != nil {
		slog.Error("Failed to load corpus", "root", args.Root, "error", err)
		w.DisplayExport(ctx, args.Output, 0, err)

		return fmt.Errorf("load corpus: %w", err)
	}

	result, err := w.Exporter.Export(ctx, corpus, ExportArgs{Output: args.Output, Layout: args.Layout}, func(p m.Progress) {
		w.DisplayProgress(ctx, p)
	})

	w.DisplayExport(context.WithoutCancel(ctx), result.Output, result.Slides, err)

	if err != nil {
		slog.Error("Export failed", "output", args.Output, "slides", result.Slides, "error", err)
		return err
	}

	slog.Info("Export finished", "output", result.Output, "slides", result.Slides)

	if args.Open {
		if err := w.Open(ctx, result.Output); err != nil {
			slog.Warn("Failed to open deck", "output", result.Output, "error", err)
			w.DisplayMessage(ctx, "Unable to open %s: %v", result.Output, err)
		}
	}

	return nil
}

// Grid lays out the given images and optionally renders them to a PNG.
func (w *workflow) Grid(ctx context.Context, args GridArgs) error {
	grid := NewFreeFormGrid(args.Extensions...)

	for _, path := range args.Images {
		if !grid.Append(path) {
			slog.Warn("Image rejected", "path", path)
		}
	}

	layout, err := grid.Layout(args.Rows, args.Columns)
	if err != nil {
		return fmt.Errorf("grid layout: %w", err)
	}

	rejected := len(args.Images) - grid.Len()

	// From here on the grid belongs to the UI, which may re-layout or clear it.
	if err := w.UI.Start(ctx, controller.WithGridMode(), controller.WithFreeFormEditor(grid)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayFreeForm(ctx, layout); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	if rejected > 0 {
		w.DisplayMessage(ctx, "%d file(s) skipped: unsupported or duplicate", rejected)
	}

	if args.Sheet != "" {
		opts := adapter.FreeFormRenderOptions{CellSize: args.CellSize, NoUpscale: args.NoUpscale}

		err := writeFile(args.Sheet, func(f *os.File) error {
			return w.RenderFreeForm(ctx, f, layout, opts)
		})
		if err != nil {
			w.Close(ctx)
			return fmt.Errorf("render grid: %w", err)
		}

		w.DisplayMessage(ctx, "Grid saved to %s", args.Sheet)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// Activate binds a license key to this machine.
func (w *workflow) Activate(ctx context.Context, key string) error {
	if err := w.UI.Start(ctx, controller.WithLicenseMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	if err := w.Entitlements.Activate(ctx, key); err != nil {
		w.DisplayMessage(ctx, "Activation failed: %v", err)
		return err
	}

	w.DisplayMessage(ctx, "License activated")
	w.DisplayEntitlement(ctx, w.Entitlements.Status(ctx))

	return nil
}

// Status shows the current entitlement.
func (w *workflow) Status(ctx context.Context) error {
	if err := w.UI.Start(ctx, controller.WithLicenseMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayEntitlement(ctx, w.Entitlements.Status(ctx))

	return nil
}

// load runs the loader and forwards its progress to the UI until the task ends.
func (w *workflow) load(ctx context.Context, root m.Path, layout m.Layout) (m.Corpus, error) {
	w.DisplayLoadStarted(ctx, root)

	task := w.Loader.Start(ctx, LoadArgs{Root: root, Layout: layout})

	var group errgroup.Group

	group.Go(func() error {
		for progress := range task.Progress() {
			w.DisplayProgress(ctx, progress)
		}

		return nil
	})

	// The forwarder owns the progress stream; Wait only runs once it is closed.
	if err := group.Wait(); err != nil {
		return m.Corpus{}, err
	}

	corpus, err := task.Wait()

	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		slog.Warn("Scan root rejected", "root", scanErr.Root, "error", scanErr.Err)
	}

	return corpus, err
}

func writeFile(path m.Path, write func(f *os.File) error) error {
	f, err := os.Create(string(path))
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
