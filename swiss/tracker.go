/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"strings"
)

// RoundTracker holds the ordered per-round results for an in-progress
// tournament. It is the only mutable state in the system and is owned by
// the presentation layer; the estimators only ever see value snapshots via
// Results(). The tracker enforces that played rounds form a contiguous
// prefix: results are entered in order and clearing a round clears
// everything after it.
type RoundTracker struct {
	results []RoundResult
}

// NewRoundTracker returns a tracker for an event of totalRounds rounds,
// all initially unplayed.
func NewRoundTracker(totalRounds int) *RoundTracker {
	if totalRounds < 0 {
		totalRounds = 0
	}
	return &RoundTracker{results: make([]RoundResult, totalRounds)}
}

// TotalRounds returns the number of rounds the tracker was created for.
func (t *RoundTracker) TotalRounds() int {
	return len(t.results)
}

// RoundsPlayed returns the length of the played prefix.
func (t *RoundTracker) RoundsPlayed() int {
	for i, res := range t.results {
		if res == RoundUnplayed {
			return i
		}
	}
	return len(t.results)
}

// SetResult records the outcome of round (1-based). All earlier rounds must
// already have results; use ClearFrom to unwind.
func (t *RoundTracker) SetResult(round int, res RoundResult) error {
	if round < 1 || round > len(t.results) {
		return fmt.Errorf("round %d out of range 1-%d", round, len(t.results))
	}
	if res == RoundUnplayed {
		return fmt.Errorf("round %d: cannot set an unplayed result; use ClearFrom", round)
	}
	if round > t.RoundsPlayed()+1 {
		return fmt.Errorf("round %d: rounds must be entered in order (next is round %d)",
			round, t.RoundsPlayed()+1)
	}
	t.results[round-1] = res
	return nil
}

// ClearFrom clears round (1-based) and every round after it, preserving the
// contiguous played-prefix invariant. Out-of-range rounds are a no-op.
func (t *RoundTracker) ClearFrom(round int) {
	if round < 1 {
		round = 1
	}
	for i := round - 1; i < len(t.results); i++ {
		t.results[i] = RoundUnplayed
	}
}

// Results returns a snapshot copy of the round sequence, safe to hand to
// the estimators.
func (t *RoundTracker) Results() []RoundResult {
	out := make([]RoundResult, len(t.results))
	copy(out, t.results)
	return out
}

// Record projects the played prefix into a Record.
func (t *RoundTracker) Record() Record {
	var rec Record
	for _, res := range t.results {
		switch res {
		case RoundWin:
			rec.Wins++
		case RoundLoss:
			rec.Losses++
		case RoundDraw:
			rec.Draws++
		}
	}
	return rec
}

// ParseResults builds a tracker from a compact result string such as
// "WWLDW", case-insensitive. The string may be shorter than totalRounds;
// the rest stays unplayed. Trailing '-' placeholders for unplayed rounds
// are accepted, but a played result after one is rejected since that would
// leave a gap.
func ParseResults(s string, totalRounds int) (*RoundTracker, error) {
	t := NewRoundTracker(totalRounds)

	if len(s) > totalRounds {
		return nil, fmt.Errorf("%d results given for a %d round event",
			len(s), totalRounds)
	}

	round := 1
	sawUnplayed := false
	for _, c := range strings.ToUpper(s) {
		var res RoundResult
		switch c {
		case 'W':
			res = RoundWin
		case 'L':
			res = RoundLoss
		case 'D':
			res = RoundDraw
		case '-':
			sawUnplayed = true
			round++
			continue
		default:
			return nil, fmt.Errorf("round %d: unrecognized result %q (want W, L, D, or -)",
				round, string(c))
		}
		if sawUnplayed {
			return nil, fmt.Errorf("round %d: result follows an unplayed round",
				round)
		}
		if err := t.SetResult(round, res); err != nil {
			return nil, err
		}
		round++
	}

	return t, nil
}
