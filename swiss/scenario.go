/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Scenario is one hypothetical assignment of win/loss/draw outcomes to a
// player's not-yet-played rounds. ExtraWins+ExtraLosses+ExtraDraws always
// equals the remaining round count the scenario was enumerated for.
type Scenario struct {
	ExtraWins   int
	ExtraLosses int
	ExtraDraws  int
}

// Apply returns the record resulting from rec after playing out s.
func (s Scenario) Apply(rec Record) Record {
	return Record{
		Wins:   rec.Wins + s.ExtraWins,
		Losses: rec.Losses + s.ExtraLosses,
		Draws:  rec.Draws + s.ExtraDraws,
	}
}

// EnumerateScenarios produces every reachable (wins, losses, draws)
// combination for the given number of remaining rounds. The ordering is a
// contract relied on by the table renderers: wins-heavy scenarios first,
// and within equal wins, draws-heavy before losses-heavy. The result has
// exactly (remaining+1)(remaining+2)/2 entries.
func EnumerateScenarios(remaining int) []Scenario {
	if remaining < 0 {
		return nil
	}
	out := make([]Scenario, 0, (remaining+1)*(remaining+2)/2)
	for w := remaining; w >= 0; w-- {
		for d := remaining - w; d >= 0; d-- {
			out = append(out, Scenario{
				ExtraWins:   w,
				ExtraLosses: remaining - w - d,
				ExtraDraws:  d,
			})
		}
	}
	return out
}
