// Package timing converts between beats and seconds, honoring BPM changes.
package timing

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reoring/bsmap/beatmap"
)

// ErrInvalidBPM is returned for a non-positive base tempo.
var ErrInvalidBPM = errors.New("timing: bpm must be positive")

// Change is a tempo change at a beat.
type Change struct {
	Time float64
	BPM  float64
}

// BPM maps beat times to real time for a base tempo and its changes.
type BPM struct {
	base    float64
	changes []Change
}

// New validates the base tempo and keeps the valid changes, sorted by beat.
func New(base float64, changes ...Change) (*BPM, error) {
	if base <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBPM, base)
	}
	kept := make([]Change, 0, len(changes))
	for _, c := range changes {
		if c.BPM > 0 && c.Time >= 0 {
			kept = append(kept, c)
		}
	}
	slices.SortStableFunc(kept, func(a, b Change) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	return &BPM{base: base, changes: kept}, nil
}

// FromDifficulty uses the difficulty's BPM events as tempo changes.
func FromDifficulty(base float64, d beatmap.Difficulty) (*BPM, error) {
	evs := d.BPMEvents()
	changes := make([]Change, 0, len(evs))
	for _, e := range evs {
		if e.IsValid() {
			changes = append(changes, Change{Time: e.Time(), BPM: e.BPM()})
		}
	}
	return New(base, changes...)
}

func (b *BPM) Base() float64     { return b.base }
func (b *BPM) Changes() []Change { return slices.Clone(b.changes) }

// segment is a stretch of constant tempo starting at a beat.
type segment struct {
	beat, bpm float64
}

func (b *BPM) segments(withChanges bool) []segment {
	segs := []segment{{0, b.base}}
	if !withChanges {
		return segs
	}
	for _, c := range b.changes {
		if c.Time == segs[len(segs)-1].beat {
			segs[len(segs)-1].bpm = c.BPM
			continue
		}
		segs = append(segs, segment{c.Time, c.BPM})
	}
	return segs
}

// ToRealTime converts a beat time to seconds.
func (b *BPM) ToRealTime(beats float64, withChanges bool) float64 {
	if beats <= 0 {
		return beats * 60 / b.base
	}
	segs := b.segments(withChanges)
	seconds := 0.0
	for i, s := range segs {
		end := beats
		if i+1 < len(segs) && segs[i+1].beat < beats {
			end = segs[i+1].beat
		}
		seconds += (end - s.beat) * 60 / s.bpm
		if end == beats {
			break
		}
	}
	return seconds
}

// ToBeatTime converts seconds to a beat time.
func (b *BPM) ToBeatTime(seconds float64, withChanges bool) float64 {
	if seconds <= 0 {
		return seconds * b.base / 60
	}
	segs := b.segments(withChanges)
	elapsed := 0.0
	for i, s := range segs {
		if i+1 < len(segs) {
			span := (segs[i+1].beat - s.beat) * 60 / s.bpm
			if elapsed+span < seconds {
				elapsed += span
				continue
			}
		}
		return s.beat + (seconds-elapsed)*s.bpm/60
	}
	return 0
}
