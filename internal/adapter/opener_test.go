package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

type recordedCommand struct {
	name string
	args []string
}

func recordingOpener(goos string, err error) (*SystemOpener, *[]recordedCommand) {
	var calls []recordedCommand

	opener := NewSystemOpenerFor(goos, func(_ context.Context, name string, args ...string) error {
		calls = append(calls, recordedCommand{name: name, args: args})
		return err
	})

	return opener, &calls
}

func TestSystemOpener_Open_DispatchesPerPlatform(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.png")
	writeImageFile(t, path, gradientImage(4, 4))

	tests := []struct {
		goos string
		want recordedCommand
	}{
		{"linux", recordedCommand{"xdg-open", []string{path}}},
		{"freebsd", recordedCommand{"xdg-open", []string{path}}},
		{"darwin", recordedCommand{"open", []string{path}}},
		{"windows", recordedCommand{"cmd", []string{"/c", "start", "", path}}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			opener, calls := recordingOpener(tt.goos, nil)

			require.NoError(t, opener.Open(context.Background(), m.Path(path)))
			require.Len(t, *calls, 1)
			assert.Equal(t, tt.want, (*calls)[0])
		})
	}
}

func TestSystemOpener_Open_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "side.png")
	writeImageFile(t, file, gradientImage(4, 4))

	t.Run("missing file", func(t *testing.T) {
		opener, calls := recordingOpener("linux", nil)

		err := opener.Open(context.Background(), m.Path(filepath.Join(dir, "nope.png")))
		require.Error(t, err)
		assert.Empty(t, *calls)
	})

	t.Run("directory", func(t *testing.T) {
		opener, calls := recordingOpener("linux", nil)

		err := opener.Open(context.Background(), m.Path(dir))
		require.ErrorContains(t, err, "not a regular file")
		assert.Empty(t, *calls)
	})

	t.Run("viewer fails", func(t *testing.T) {
		boom := errors.New("exit status 3")
		opener, _ := recordingOpener("linux", boom)

		err := opener.Open(context.Background(), m.Path(file))
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "xdg-open")
	})

	t.Run("cancelled", func(t *testing.T) {
		opener, calls := recordingOpener("linux", nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, opener.Open(ctx, m.Path(file)), context.Canceled)
		assert.Empty(t, *calls)
	})
}
