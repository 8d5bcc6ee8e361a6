/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Top 8 estimation heuristic. The threshold table and probability bands
// approximate observed Swiss cut behavior by tournament size; they are
// deliberately simple and deterministic rather than a pairing simulation.

// Top8Config fixes the tournament parameters for one calculation. Immutable
// once constructed; TotalRounds is derived from the player count.
type Top8Config struct {
	NumPlayers  int
	TotalRounds int
}

// NewTop8Config derives the round count for an event with numPlayers
// entrants.
func NewTop8Config(numPlayers int) Top8Config {
	return Top8Config{
		NumPlayers:  numPlayers,
		TotalRounds: RoundsForPlayers(numPlayers),
	}
}

// ThresholdPoints returns the approximate match-point total historically
// needed to finish in the Top 8 for this tournament size. Events of 8 or
// fewer players cut everyone to the playoff; their threshold is 0.
func (cfg Top8Config) ThresholdPoints() int {
	switch {
	case cfg.NumPlayers <= 8:
		return 0
	case cfg.NumPlayers <= 16:
		return 9
	case cfg.NumPlayers <= 32:
		return 12
	case cfg.NumPlayers <= 64:
		return 15
	case cfg.NumPlayers <= 128:
		return 16
	case cfg.NumPlayers <= 256:
		return 18
	case cfg.NumPlayers <= 512:
		return 21
	case cfg.NumPlayers <= 1024:
		return 24
	}
	return (cfg.TotalRounds - 2) * PointsPerWin
}

// top8ProbTable maps diff = points - threshold to a probability in [0,100].
var top8ProbTable = []diffBand{
	{min: 6, value: 100},
	{min: 3, value: 98},
	{min: 1, value: 92},
	{min: 0, value: 75},
	{min: -1, value: 50},
	{min: -2, value: 25},
	{min: -3, value: 10},
	{min: -4, value: 3},
	{min: -5, value: 1},
}

// Probability estimates the chance (0-100) that rec finishes in the Top 8,
// without tiebreaker information.
func (cfg Top8Config) Probability(rec Record) int {
	return cfg.ProbabilityOMW(rec, OMWEstimate{})
}

// ProbabilityOMW estimates the chance (0-100) that rec finishes in the
// Top 8, folding in an opponent-match-win estimate when one is available.
// The tiebreaker adjustment only applies in the diff range [-2, 0]: away
// from the cutoff, tiebreakers don't decide anything and even an extreme
// OMW estimate is ignored.
func (cfg Top8Config) ProbabilityOMW(rec Record, omw OMWEstimate) int {
	if cfg.NumPlayers <= 8 {
		return 100
	}

	diff := rec.Points() - cfg.ThresholdPoints()
	prob := lookupDiff(diff, top8ProbTable, 0)

	if omw.Valid && diff >= -2 && diff <= 0 {
		prob += omwAdjustment(diff, omw.Value)
		if prob < 0 {
			prob = 0
		} else if prob > 100 {
			prob = 100
		}
	}

	return prob
}

// omwAdjustment returns the additive probability adjustment for a player
// sitting at diff in {0, -1, -2} with the given OMW estimate. Strong
// tiebreakers help most exactly at the cutoff; weak ones hurt more than
// strong ones help.
func omwAdjustment(diff int, omw float64) int {
	idx := -diff // 0, 1, or 2

	switch {
	case omw > 0.55:
		return [3]int{10, 10, 5}[idx]
	case omw > 0.50:
		return [3]int{5, 4, 2}[idx]
	case omw < 0.40:
		return [3]int{-15, -10, -8}[idx]
	case omw < 0.45:
		return [3]int{-8, -5, -3}[idx]
	}
	return 0
}
