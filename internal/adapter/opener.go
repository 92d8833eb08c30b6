package adapter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	m "inspecto.dev/pkg/inspecto/internal/model"
)

// Opener hands a file to the desktop's default application.
type Opener interface {
	Open(ctx context.Context, path m.Path) error
}

// CommandRunner runs an external command to completion.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// SystemOpener opens files with the platform's open command.
type SystemOpener struct {
	goos string
	run  CommandRunner
}

// NewSystemOpener constructs an Opener for the running platform.
func NewSystemOpener() *SystemOpener {
	return NewSystemOpenerFor(runtime.GOOS, runCommand)
}

// NewSystemOpenerFor constructs an Opener for goos that launches commands with run.
func NewSystemOpenerFor(goos string, run CommandRunner) *SystemOpener {
	return &SystemOpener{goos: goos, run: run}
}

// Open checks that path is a regular file and launches the viewer for it.
func (o *SystemOpener) Open(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean := filepath.Clean(string(path))

	info, err := os.Stat(clean)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("open %s: not a regular file", path)
	}

	name, args := openCommand(o.goos, clean)
	if err := o.run(ctx, name, args...); err != nil {
		return fmt.Errorf("open %s with %s: %w", path, name, err)
	}

	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
