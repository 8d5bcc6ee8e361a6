/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// OMW% (opponent match-win percentage) is the primary Swiss tiebreaker.
// Computing it for real requires the actual opponents' results, which this
// system deliberately does not have; EstimateOMW instead infers a plausible
// value from the order of the player's own results. Swiss pairing matches
// players on equal scores, so each result carries information about how
// strong that round's bracket was.

// RoundResult is one round's outcome in a player's tracked sequence.
type RoundResult int

const (
	RoundUnplayed RoundResult = iota
	RoundWin
	RoundLoss
	RoundDraw
)

func (r RoundResult) String() string {
	switch r {
	case RoundWin:
		return "W"
	case RoundLoss:
		return "L"
	case RoundDraw:
		return "D"
	case RoundUnplayed:
		return "-"
	}
	return "?"
}

// OMWEstimate is an estimated opponent match-win percentage. Valid is false
// when no rounds have been played and no estimate exists.
type OMWEstimate struct {
	Value float64
	Valid bool
}

// omwFloor is the rules-mandated floor applied to each opponent's match-win
// percentage when computing the real tiebreaker; the estimate honors it too.
const omwFloor = 0.33

// EstimateOMW walks the round results in order, modeling the strength of
// the pairing bracket the player sat in before each round, and averages the
// implied per-opponent match-win estimates.
//
// A win implies the opponent was slightly weaker than the bracket, a loss
// slightly stronger, a draw dead on. Wins push the player into stronger
// brackets for later rounds and losses into weaker ones, so the same
// win/loss counts in a different order yield a different estimate: an early
// loss is charged against a weaker presumed bracket than a late one.
// Draws leave the bracket walk untouched, and unplayed rounds are skipped
// without advancing it.
func EstimateOMW(results []RoundResult, totalRounds int) OMWEstimate {
	cumWins := 0
	cumLosses := 0
	sum := 0.0
	played := 0

	for _, res := range results {
		if res == RoundUnplayed {
			continue
		}

		bracket := 0.5 +
			float64(cumWins-cumLosses)/(2.0*float64(totalRounds))

		var est float64
		switch res {
		case RoundWin:
			est = bracket - 0.04
			cumWins++
		case RoundLoss:
			est = bracket + 0.04
			cumLosses++
		case RoundDraw:
			est = bracket
		}

		if est < omwFloor {
			est = omwFloor
		} else if est > 1.0 {
			est = 1.0
		}

		sum += est
		played++
	}

	if played == 0 {
		return OMWEstimate{}
	}

	return OMWEstimate{Value: sum / float64(played), Valid: true}
}
