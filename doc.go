// Package bsmap reads, repairs, compacts, validates and writes rhythm-game
// difficulty files in both the legacy 2.x and the current 3.x schema.
//
// Design policy:
//   - Keep only load/save entry points in the root package; entity wrappers
//     live under beatmap/, field tables under schema/, transforms under
//     patch/ and convert/.
//   - One field table per entity kind drives fill-on-read, strip-on-write,
//     correction and shape validation.
//   - Malformed values are repaired, never fatal; shape violations fail a
//     save unless DataCheck.ThrowError is disabled.
//
// Typical usage:
//
//	d, err := bsmap.Load(ctx, "ExpertPlusStandard.dat", bsmap.LoadOptions{})
//	for _, n := range d.ColorNotes() {
//		n.Mirror(true)
//	}
//	err = bsmap.Save(ctx, d, bsmap.SaveOptions{Format: 2})
package bsmap
