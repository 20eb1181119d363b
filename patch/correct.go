// Package patch holds in-place repairs applied to a difficulty before it is
// written.
package patch

import (
	"fmt"

	"github.com/reoring/bsmap/beatmap"
	"github.com/reoring/bsmap/i18n"
	"github.com/reoring/bsmap/internal/logging"
	"github.com/reoring/bsmap/schema"
)

// Correct sanitizes every field of every entity against its table: floats
// must be finite, ints are rounded and checked against their allowed values,
// and mistyped values fall back to their defaults. Each correction is logged
// and the corrections are returned in walk order.
func Correct(d beatmap.Difficulty) []schema.Correction {
	log := logging.Tag("patch", "dataCorrection", "difficulty", d.Family().String())
	log.Info().Msg("verifying and correcting data types")

	var fixed []schema.Correction
	report := func(c schema.Correction) {
		msg := i18n.T(schema.CodeCorrected, map[string]string{"old": fmt.Sprint(c.Old), "new": fmt.Sprint(c.New)})
		log.Info().Str("path", c.Path).Str("code", schema.CodeCorrected).Msg(msg)
		fixed = append(fixed, c)
	}
	d.Walk(func(at schema.PathRef, e beatmap.Entity) {
		e.Table().Correct(e.Record(), at, report)
	})
	if len(fixed) > 0 {
		log.Warn().Int("count", len(fixed)).Msg("difficulty contained malformed values")
	}
	return fixed
}
