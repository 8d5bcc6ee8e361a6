/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// Top8VerdictKind enumerates the strategy recommendations for an
// in-progress Top 8 chase, in evaluation priority order.
type Top8VerdictKind int

const (
	Top8SafeToDraw Top8VerdictKind = iota
	Top8LikelySafe
	Top8NeedWins
	Top8LongShot
	Top8MustWinOut
)

func (k Top8VerdictKind) String() string {
	switch k {
	case Top8SafeToDraw:
		return "safe_to_draw"
	case Top8LikelySafe:
		return "likely_safe"
	case Top8NeedWins:
		return "need_wins"
	case Top8LongShot:
		return "long_shot"
	case Top8MustWinOut:
		return "must_win_out"
	}
	return "?"
}

// Top8Verdict is the derived strategy recommendation plus the probabilities
// it was derived from.
type Top8Verdict struct {
	Kind        Top8VerdictKind
	MinWins     int
	DrawAllProb int
	WinAllProb  int
	Remaining   int
}

// minWinsTargetProb is the probability a scenario must reach before its win
// count is considered "enough".
const minWinsTargetProb = 75

// DeriveTop8Verdict searches the remaining-round scenario space for the
// cheapest path to a comfortable Top 8 probability. All probabilities are
// computed with the same OMW estimate so the verdict is internally
// consistent.
func DeriveTop8Verdict(rec Record, cfg Top8Config, omw OMWEstimate) Top8Verdict {
	remaining := cfg.TotalRounds - rec.RoundsPlayed()

	v := Top8Verdict{Remaining: remaining}
	v.DrawAllProb = cfg.ProbabilityOMW(
		Scenario{ExtraDraws: remaining}.Apply(rec), omw)
	v.WinAllProb = cfg.ProbabilityOMW(
		Scenario{ExtraWins: remaining}.Apply(rec), omw)

	v.MinWins = -1
	for w := 0; w <= remaining; w++ {
		s := Scenario{ExtraWins: w, ExtraDraws: remaining - w}
		if cfg.ProbabilityOMW(s.Apply(rec), omw) >= minWinsTargetProb {
			v.MinWins = w
			break
		}
	}

	switch {
	case v.DrawAllProb >= 90:
		v.Kind = Top8SafeToDraw
	case v.DrawAllProb >= 60:
		v.Kind = Top8LikelySafe
	case v.MinWins > 0 && v.MinWins <= remaining:
		v.Kind = Top8NeedWins
	case v.WinAllProb < 25:
		v.Kind = Top8LongShot
	default:
		v.Kind = Top8MustWinOut
	}

	return v
}

// Message renders the verdict as a recommendation string.
func (v Top8Verdict) Message() string {
	switch v.Kind {
	case Top8SafeToDraw:
		return fmt.Sprintf(
			"Safe to draw out: intentional draws the rest of the way still leave a %d%% shot.",
			v.DrawAllProb)
	case Top8LikelySafe:
		return fmt.Sprintf(
			"Probably safe to draw (%d%%), but winning instead removes the tiebreaker risk.",
			v.DrawAllProb)
	case Top8NeedWins:
		return fmt.Sprintf(
			"Must win at least %d of the remaining %d rounds; draws can cover the rest.",
			v.MinWins, v.Remaining)
	case Top8LongShot:
		return fmt.Sprintf(
			"Long shot: even winning out only reaches %d%%. Play for it, but it likely comes down to tiebreakers.",
			v.WinAllProb)
	case Top8MustWinOut:
		return "Must keep winning; drawing any remaining round is unsafe."
	}
	return "?"
}
