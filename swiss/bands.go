/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Band classifies a qualification outlook into one of 5 ordered severity
// tiers. Both estimator variants (Day 2 and Top 8) derive their display
// status from the same type so the two can't drift apart.
type Band int

const (
	BandSafe Band = iota
	BandLikely
	BandPossible
	BandUnlikely
	BandEliminated
)

// Label returns the user-facing name for the band.
func (b Band) Label() string {
	switch b {
	case BandSafe:
		return "Safe"
	case BandLikely:
		return "Likely"
	case BandPossible:
		return "Possible"
	case BandUnlikely:
		return "Unlikely"
	case BandEliminated:
		return "Eliminated"
	}
	return "?"
}

// Style returns a presentation style tag for the band. Consumers map these
// onto whatever color scheme their surface supports.
func (b Band) Style() string {
	switch b {
	case BandSafe:
		return "green"
	case BandLikely:
		return "lime"
	case BandPossible:
		return "yellow"
	case BandUnlikely:
		return "orange"
	case BandEliminated:
		return "red"
	}
	return "gray"
}

func (b Band) String() string {
	return b.Label()
}

// diffBand maps an inclusive floor on a points diff to a value. Tables are
// ordered by descending floor; lookupDiff returns the first matching value
// or the fallback when the diff is below every floor.
type diffBand struct {
	min   int
	value int
}

func lookupDiff(diff int, table []diffBand, fallback int) int {
	for _, b := range table {
		if diff >= b.min {
			return b.value
		}
	}
	return fallback
}

// BandForProbability buckets a 0-100 qualification probability into a Band.
func BandForProbability(prob int) Band {
	switch {
	case prob >= 90:
		return BandSafe
	case prob >= 60:
		return BandLikely
	case prob >= 25:
		return BandPossible
	case prob >= 1:
		return BandUnlikely
	}
	return BandEliminated
}
