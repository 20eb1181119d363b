package bsmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/internal/logging"
	"github.com/reoring/bsmap/schema"
)

// Marshal serializes d: compose the document, strip defaults, check its
// shape, then encode. A strict check failure aborts with Issues.
func Marshal(d beatmap.Difficulty, opt SaveOptions) ([]byte, error) {
	if d == nil {
		return nil, ErrNilDifficulty
	}
	doc := d.ToObject()
	if opt.optimize() {
		d.Table().Optimize(doc)
	}
	if opt.check() {
		if _, err := schema.Check(doc, d.Table(), "difficulty", d.Version(), opt.throwError()); err != nil {
			return nil, err
		}
	}
	data, err := encode(doc, opt.Format)
	if err != nil {
		return nil, fmt.Errorf("encode difficulty: %w", err)
	}
	return data, nil
}

// Save writes d to Directory/FilePath, falling back to the global directory
// and the difficulty's file name.
func Save(ctx context.Context, d beatmap.Difficulty, opt SaveOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Marshal(d, opt)
	if err != nil {
		return err
	}
	path := opt.path(d)
	logging.Tag("save", "difficulty").Info().Str("path", path).Msg("writing difficulty")
	if err := getFileSystem().WriteFile(path, data); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// SaveAsync runs Save on its own goroutine. The channel receives exactly one
// value, nil on success.
func SaveAsync(ctx context.Context, d beatmap.Difficulty, opt SaveOptions) <-chan error {
	ch := make(chan error, 1)
	go func() { ch <- Save(ctx, d, opt) }()
	return ch
}

// SaveList writes every difficulty under its own file name. FilePath is
// ignored. Every difficulty is attempted; the failures are joined.
func SaveList(ctx context.Context, ds []beatmap.Difficulty, opt SaveOptions) error {
	logging.Tag("save", "difficultyList").Info().Int("count", len(ds)).Msg("saving difficulty list")
	opt.FilePath = ""
	var errs []error
	for _, d := range ds {
		if err := Save(ctx, d, opt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
