package bsmap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/reoring/bsmap/beatmap"
	v2 "github.com/reoring/bsmap/beatmap/v2"
	v3 "github.com/reoring/bsmap/beatmap/v3"
	"github.com/reoring/bsmap/internal/logging"
	"github.com/reoring/bsmap/patch"
	"github.com/reoring/bsmap/schema"
)

var (
	// ErrUnknownVersion reports a document whose schema family cannot be
	// determined or is not supported.
	ErrUnknownVersion = errors.New("bsmap: unknown schema version")
	ErrNilDifficulty  = errors.New("bsmap: nil difficulty")
	ErrInvalidJSON    = errors.New("bsmap: invalid JSON document")
)

// Family reports the schema family of a raw document from its version tag
// without decoding it.
func Family(data []byte) (beatmap.Family, string, error) {
	if !gjson.ValidBytes(data) {
		return 0, "", ErrInvalidJSON
	}
	res := gjson.GetManyBytes(data, "version", "_version")
	switch {
	case res[0].Type == gjson.String:
		if schema.MajorVersion(res[0].Str) == 3 {
			return beatmap.FamilyV3, res[0].Str, nil
		}
		return 0, res[0].Str, fmt.Errorf("%w: %q", ErrUnknownVersion, res[0].Str)
	case res[1].Type == gjson.String:
		if schema.MajorVersion(res[1].Str) == 2 {
			return beatmap.FamilyV2, res[1].Str, nil
		}
		return 0, res[1].Str, fmt.Errorf("%w: %q", ErrUnknownVersion, res[1].Str)
	}
	return 0, "", ErrUnknownVersion
}

// stamp writes the default version tag into an untagged document. Legacy
// 2.0.0 files were written without "_version".
func stamp(data []byte, hint beatmap.Family) ([]byte, beatmap.Family, string, error) {
	fam := hint
	if fam == 0 {
		switch {
		case gjson.GetBytes(data, "_notes").Exists():
			fam = beatmap.FamilyV2
		case gjson.GetBytes(data, "colorNotes").Exists():
			fam = beatmap.FamilyV3
		default:
			return nil, 0, "", ErrUnknownVersion
		}
	}
	key, version := "_version", v2.DefaultVersion
	if fam == beatmap.FamilyV3 {
		key, version = "version", v3.DefaultVersion
	}
	out, err := sjson.SetBytes(data, key, version)
	if err != nil {
		return nil, 0, "", fmt.Errorf("stamp version: %w", err)
	}
	logging.Tag("load", "difficulty").Warn().Str("version", version).Msg("missing version tag, assuming default")
	return out, fam, version, nil
}

// Parse decodes a difficulty document of either schema family.
func Parse(ctx context.Context, data []byte, opt LoadOptions) (beatmap.Difficulty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fam, version, err := Family(data)
	if errors.Is(err, ErrUnknownVersion) && version == "" {
		data, fam, version, err = stamp(data, opt.Family)
	}
	if err != nil {
		return nil, err
	}

	if opt.check() {
		if err := checkDuplicates(data, opt.throwError()); err != nil {
			return nil, err
		}
	}
	var doc map[string]any
	if err := getJSONDriver().Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode difficulty: %w", err)
	}
	table, build := v2.DifficultyTable, func(p beatmap.Partial) beatmap.Difficulty { return v2.NewDifficulty(p) }
	if fam == beatmap.FamilyV3 {
		table, build = v3.DifficultyTable, func(p beatmap.Partial) beatmap.Difficulty { return v3.NewDifficulty(p) }
	}
	if opt.check() {
		if _, err := schema.Check(doc, table, "difficulty", version, opt.throwError()); err != nil {
			return nil, err
		}
	}
	d := build(doc)
	if opt.Correct {
		patch.Correct(d)
	}
	return d, nil
}

func checkDuplicates(data []byte, strict bool) error {
	iss, err := schema.DuplicateKeys(data)
	if err != nil || len(iss) == 0 {
		return err
	}
	if strict {
		return iss
	}
	log := logging.Tag("load", "duplicateKeys")
	for _, it := range iss {
		log.Warn().Str("path", it.Path).Msg(it.Message)
	}
	return nil
}

// Load reads and parses a difficulty file relative to the load directory.
// The difficulty keeps the base name of path as its file name.
func Load(ctx context.Context, path string, opt LoadOptions) (beatmap.Difficulty, error) {
	full := filepath.Join(resolveDirectory(opt.Directory), path)
	logging.Tag("load", "difficulty").Info().Str("path", full).Msg("loading difficulty")
	data, err := getFileSystem().ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", full, err)
	}
	d, err := Parse(ctx, data, opt)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", full, err)
	}
	d.SetFileName(filepath.Base(path))
	return d, nil
}

// LoadResult is delivered by LoadAsync.
type LoadResult struct {
	Difficulty beatmap.Difficulty
	Err        error
}

// LoadAsync runs Load on its own goroutine. The channel receives exactly one
// result.
func LoadAsync(ctx context.Context, path string, opt LoadOptions) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		d, err := Load(ctx, path, opt)
		ch <- LoadResult{Difficulty: d, Err: err}
	}()
	return ch
}
