// Package controller provides the terminal front ends that display scan
// progress, comparison grids and export results.
package controller

import (
	"context"

	m "inspecto.dev/pkg/inspecto/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeScan StartMode = iota
	ModeExport
	ModeGrid
	ModeLicense
)

// OpenFunc hands a file to the system viewer.
type OpenFunc func(path m.Path) error

// FreeFormEditor rebuilds the free-form grid while it is on screen.
type FreeFormEditor interface {
	Layout(rows, columns int) (m.FreeFormLayout, error)
	Clear()
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	cancel context.CancelFunc
	open   OpenFunc
	editor FreeFormEditor
}

// WithScanMode sets the UI to browse a scanned corpus.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithExportMode sets the UI to report export progress.
func WithExportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeExport
	}
}

// WithGridMode sets the UI to show a free-form grid.
func WithGridMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGrid
	}
}

// WithLicenseMode sets the UI to report license state.
func WithLicenseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeLicense
	}
}

// WithCancel gives the UI a way to interrupt the running operation. An
// interactive terminal receives Ctrl-C as a key press instead of a signal.
func WithCancel(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.cancel = cancel
	}
}

// WithOpener lets the UI open images in the system viewer.
func WithOpener(open OpenFunc) StartOption {
	return func(c *StartConfig) {
		c.open = open
	}
}

// WithFreeFormEditor lets the UI change the free-form rows and columns.
func WithFreeFormEditor(editor FreeFormEditor) StartOption {
	return func(c *StartConfig) {
		c.editor = editor
	}
}

// NewStartConfig applies options over the defaults.
func NewStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeScan}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// Editor returns the free-form editor, if one was registered.
func (c StartConfig) Editor() FreeFormEditor {
	return c.editor
}

// Interrupt cancels the running operation, if one was registered.
func (c StartConfig) Interrupt() {
	if c.cancel != nil {
		c.cancel()
	}
}

// UI is the projection of the model the workflows report to.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayLoadStarted(ctx context.Context, root m.Path)
	DisplayProgress(ctx context.Context, progress m.Progress)
	DisplayCorpus(ctx context.Context, corpus m.Corpus, err error) error
	DisplayFreeForm(ctx context.Context, layout m.FreeFormLayout) error
	DisplayExport(ctx context.Context, output m.Path, slides int, err error)
	DisplayEntitlement(ctx context.Context, status m.EntitlementStatus)
	DisplayMessage(ctx context.Context, format string, args ...any)
}
