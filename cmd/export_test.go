package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"inspecto.dev/pkg/inspecto/internal/domain"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

func TestExportCmd_DefaultFile(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().
		Export(mock.Anything, domain.ExportCorpusArgs{
			Root:   m.Path("corpus"),
			Layout: m.Layout{MaxColumns: defaultMaxColumns, ImageWidth: defaultImageWidth},
			Output: m.Path(defaultDeckFile),
		}).
		Return(nil).
		Once()

	_, err := executeCommand(t, newExportCmd(), "export", "corpus")
	require.NoError(t, err)
}

func TestExportCmd_FileFlag(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().
		Export(mock.Anything, mock.MatchedBy(func(args domain.ExportCorpusArgs) bool {
			return args.Output == m.Path("decks/review.pdf") && args.Root == m.Path("corpus")
		})).
		Return(nil).
		Once()

	_, err := executeCommand(t, newExportCmd(), "export", "corpus", "-f", "decks/review.pdf")
	require.NoError(t, err)
}

func TestExportCmd_NotEntitled(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().
		Export(mock.Anything, mock.Anything).
		Return(domain.ErrNotEntitled).
		Once()

	_, err := executeCommand(t, newExportCmd(), "export", "corpus")
	require.ErrorIs(t, err, domain.ErrNotEntitled)
}

func TestExportCmd_OpenFlag(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().
		Export(mock.Anything, mock.MatchedBy(func(args domain.ExportCorpusArgs) bool {
			return args.Open && args.Output == m.Path(defaultDeckFile)
		})).
		Return(nil).
		Once()

	_, err := executeCommand(t, newExportCmd(), "export", "corpus", "--open")
	require.NoError(t, err)
}
