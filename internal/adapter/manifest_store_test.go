package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

func TestYAMLManifestStore_SaveManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "manifest.yaml")

	corpus := m.Corpus{
		Index:  m.CorpusIndex{Root: "/corpus", Samples: []m.Sample{"ED1", "ED2"}},
		Layout: m.Layout{MaxColumns: 4, ImageWidth: 350},
		Blocks: []m.TagBlock{{
			Tag:  "a.png",
			Rows: 1,
			Cells: []m.GridCell{
				{Sample: "ED1", Status: m.CellPresent, Path: "/corpus/ED1/a.png", Width: 350, Height: 175},
				{Sample: "ED2", Status: m.CellMissing, Width: 350, Height: m.PlaceholderHeight, Column: 1},
			},
		}},
	}

	require.NoError(t, NewYAMLManifestStore().SaveManifest(context.Background(), m.Path(path), corpus))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc manifest
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "/corpus", doc.Root)
	assert.Equal(t, 4, doc.MaxColumns)
	assert.Equal(t, []string{"ED1", "ED2"}, doc.Samples)
	require.Len(t, doc.Tags, 1)
	require.Len(t, doc.Tags[0].Cells, 2)
	assert.Equal(t, "present", doc.Tags[0].Cells[0].Status)
	assert.Equal(t, 175, doc.Tags[0].Cells[0].Height)
	assert.Equal(t, "no image for this sample", doc.Tags[0].Cells[1].Status)
	assert.Empty(t, doc.Tags[0].Cells[1].Path)
	assert.NotContains(t, string(data), "path: \"\"")
}

func TestYAMLManifestStore_SaveManifest_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewYAMLManifestStore().SaveManifest(ctx, m.Path(filepath.Join(t.TempDir(), "m.yaml")), m.Corpus{})
	require.ErrorIs(t, err, context.Canceled)
}
