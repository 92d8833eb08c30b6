package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	m "inspecto.dev/pkg/inspecto/internal/model"
)

// LoadArgs describes one scan-and-load request.
type LoadArgs struct {
	Root   m.Path
	Layout m.Layout
}

// Loader runs the scan and the image decoding on a single background worker.
type Loader interface {
	Start(ctx context.Context, args LoadArgs) *LoadTask
}

// LoadTask is a running scan-and-load. Progress is reported once per tag
// after all its images are decoded; the channel closes when the worker ends.
type LoadTask struct {
	progress chan m.Progress
	group    *errgroup.Group
	corpus   m.Corpus
}

// Progress returns the progress stream of the task.
func (t *LoadTask) Progress() <-chan m.Progress {
	return t.progress
}

// Wait discards progress not yet received and returns the terminal result.
func (t *LoadTask) Wait() (m.Corpus, error) {
	for range t.progress {
	}

	if err := t.group.Wait(); err != nil {
		return m.Corpus{}, err
	}

	return t.corpus, nil
}

type loader struct {
	scanner      Scanner
	materializer Materializer
}

// NewLoader constructs a Loader from its scanner and materializer.
func NewLoader(scanner Scanner, materializer Materializer) Loader {
	return &loader{scanner: scanner, materializer: materializer}
}

// Start launches the worker and returns immediately.
func (l *loader) Start(ctx context.Context, args LoadArgs) *LoadTask {
	task := &LoadTask{
		progress: make(chan m.Progress, 1),
		group:    &errgroup.Group{},
	}

	task.group.Go(func() error {
		defer close(task.progress)

		corpus, err := l.run(ctx, args, task.progress)
		if err != nil {
			return err
		}

		task.corpus = corpus

		return nil
	})

	return task
}

func (l *loader) run(ctx context.Context, args LoadArgs, progress chan<- m.Progress) (m.Corpus, error) {
	if err := args.Layout.Validate(); err != nil {
		return m.Corpus{}, err
	}

	index, err := l.scanner.Scan(ctx, args.Root)
	if err != nil {
		return m.Corpus{}, err
	}

	corpus := m.Corpus{
		Index:  index,
		Layout: args.Layout,
		Blocks: make([]m.TagBlock, 0, len(index.Tags)),
	}

	total := len(index.Tags)

	for i, tag := range index.Tags {
		if err := ctx.Err(); err != nil {
			return m.Corpus{}, fmt.Errorf("load interrupted: %w", err)
		}

		corpus.Blocks = append(corpus.Blocks, l.materializer.MaterializeBlock(ctx, index, tag, args.Layout))

		select {
		case <-ctx.Done():
			return m.Corpus{}, fmt.Errorf("load interrupted: %w", ctx.Err())
		case progress <- m.Progress{Current: i + 1, Total: total, Tag: tag}:
		}

		slog.Debug("Loaded tag", "tag", tag, "current", i+1, "total", total)
	}

	return corpus, nil
}
