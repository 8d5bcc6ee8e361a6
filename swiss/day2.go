/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// Day 2 of a two-day Swiss event is gated by a fixed match-point threshold
// after the day-1 rounds. Unlike the Top 8 estimator there is no tiebreaker
// component: a player at or above the threshold is simply in.

// day2BandTable buckets diff = points - threshold into the shared 5-tier
// Band. A player within one win of the cut is "Possible", within two is
// "Unlikely", and more than two wins short is out of realistic range.
var day2BandTable = []diffBand{
	{min: 3, value: int(BandSafe)},
	{min: 0, value: int(BandLikely)},
	{min: -3, value: int(BandPossible)},
	{min: -6, value: int(BandUnlikely)},
}

// Day2Band classifies a point total against the Day 2 threshold.
func Day2Band(points int, threshold int) Band {
	return Band(lookupDiff(points-threshold, day2BandTable,
		int(BandEliminated)))
}

// Day2VerdictKind enumerates the terminal states of the Day 2 verdict
// state machine, in evaluation priority order.
type Day2VerdictKind int

const (
	Day2AlreadyQualified Day2VerdictKind = iota
	Day2Eliminated
	Day2DrawOutSuffices
	Day2OneWinSecures
	Day2NeedWins
	Day2MustWinAll
)

func (k Day2VerdictKind) String() string {
	switch k {
	case Day2AlreadyQualified:
		return "already_qualified"
	case Day2Eliminated:
		return "eliminated"
	case Day2DrawOutSuffices:
		return "draw_out_suffices"
	case Day2OneWinSecures:
		return "one_win_secures"
	case Day2NeedWins:
		return "need_wins"
	case Day2MustWinAll:
		return "must_win_all"
	}
	return "?"
}

// Day2Verdict is the strategic recommendation for a Day 2 chase, plus the
// parameters its rendered message is built from.
type Day2Verdict struct {
	Kind        Day2VerdictKind
	MinWins     int
	CanLoseRest bool
	Points      int
	Threshold   int
	Remaining   int
}

// DeriveDay2Verdict evaluates the Day 2 state machine for the given current
// record. The priority order is load-bearing: already-qualified must win
// over everything, and mathematical elimination must be ruled out before
// the draw-out and minimum-wins cases are considered.
func DeriveDay2Verdict(rec Record, totalRounds int, threshold int) Day2Verdict {
	points := rec.Points()
	remaining := totalRounds - rec.RoundsPlayed()

	v := Day2Verdict{
		Points:    points,
		Threshold: threshold,
		Remaining: remaining,
	}

	if points >= threshold {
		v.Kind = Day2AlreadyQualified
		return v
	}
	if points+remaining*PointsPerWin < threshold {
		v.Kind = Day2Eliminated
		return v
	}
	if points+remaining*PointsPerDraw >= threshold {
		v.Kind = Day2DrawOutSuffices
		return v
	}

	// Elimination was ruled out above, so some w in [0, remaining] always
	// clears the bar.
	minWins := 0
	for w := 0; w <= remaining; w++ {
		if points+w*PointsPerWin+(remaining-w)*PointsPerDraw >= threshold {
			minWins = w
			break
		}
	}
	v.MinWins = minWins
	v.CanLoseRest = points+minWins*PointsPerWin >= threshold

	switch {
	case minWins == 1 && v.CanLoseRest:
		v.Kind = Day2OneWinSecures
	case minWins == v.Remaining:
		v.Kind = Day2MustWinAll
	default:
		v.Kind = Day2NeedWins
	}

	return v
}

// Message renders the verdict as a recommendation string.
func (v Day2Verdict) Message() string {
	switch v.Kind {
	case Day2AlreadyQualified:
		return fmt.Sprintf("Locked for Day 2 at %d points (threshold %d).",
			v.Points, v.Threshold)
	case Day2Eliminated:
		return fmt.Sprintf(
			"Eliminated from Day 2: even winning out reaches only %d of the %d points needed.",
			v.Points+v.Remaining*PointsPerWin, v.Threshold)
	case Day2DrawOutSuffices:
		return fmt.Sprintf(
			"Drawing all %d remaining rounds still reaches %d points; Day 2 is yours to lose.",
			v.Remaining, v.Points+v.Remaining*PointsPerDraw)
	case Day2OneWinSecures:
		return "One more win locks Day 2; the remaining rounds are free."
	case Day2MustWinAll:
		return fmt.Sprintf("Must win all %d remaining rounds to reach Day 2.",
			v.Remaining)
	case Day2NeedWins:
		if v.CanLoseRest {
			return fmt.Sprintf(
				"Need at least %d more wins; the other %d rounds can even be lost.",
				v.MinWins, v.Remaining-v.MinWins)
		}
		return fmt.Sprintf(
			"Need at least %d more wins and can afford to draw, not lose, the other %d rounds.",
			v.MinWins, v.Remaining-v.MinWins)
	}
	return "?"
}
