package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// ManifestStore writes a text description of a materialized corpus.
type ManifestStore interface {
	SaveManifest(ctx context.Context, path m.Path, corpus m.Corpus) error
}

type manifest struct {
	Root       string          `yaml:"root"`
	MaxColumns int             `yaml:"max_columns"`
	ImageWidth int             `yaml:"image_width"`
	Samples    []string        `yaml:"samples"`
	Tags       []manifestBlock `yaml:"tags"`
}

type manifestBlock struct {
	Tag   string         `yaml:"tag"`
	Rows  int            `yaml:"rows"`
	Cells []manifestCell `yaml:"cells"`
}

type manifestCell struct {
	Sample string `yaml:"sample"`
	Status string `yaml:"status"`
	Path   string `yaml:"path,omitempty"`
	Row    int    `yaml:"row"`
	Column int    `yaml:"column"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// YAMLManifestStore implements ManifestStore with gopkg.in/yaml.v3.
type YAMLManifestStore struct{}

// NewYAMLManifestStore constructs a YAMLManifestStore.
func NewYAMLManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// SaveManifest writes corpus to path as YAML.
func (s *YAMLManifestStore) SaveManifest(ctx context.Context, path m.Path, corpus m.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := manifest{
		Root:       string(corpus.Index.Root),
		MaxColumns: corpus.Layout.MaxColumns,
		ImageWidth: corpus.Layout.ImageWidth,
		Samples:    make([]string, 0, len(corpus.Index.Samples)),
		Tags:       make([]manifestBlock, 0, len(corpus.Blocks)),
	}

	for _, sample := range corpus.Index.Samples {
		doc.Samples = append(doc.Samples, string(sample))
	}

	for _, block := range corpus.Blocks {
		mb := manifestBlock{Tag: string(block.Tag), Rows: block.Rows}

		for _, cell := range block.Cells {
			mb.Cells = append(mb.Cells, manifestCell{
				Sample: string(cell.Sample),
				Status: cell.Status.String(),
				Path:   string(cell.Path),
				Row:    cell.Row,
				Column: cell.Column,
				Width:  cell.Width,
				Height: cell.Height,
			})
		}

		doc.Tags = append(doc.Tags, mb)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create manifest folder: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
