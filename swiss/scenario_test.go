/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package swiss

import "testing"

func TestEnumerateScenariosCountAndSum(t *testing.T) {
	for remaining := 0; remaining <= 12; remaining++ {
		scenarios := EnumerateScenarios(remaining)

		wantLen := (remaining + 1) * (remaining + 2) / 2
		if len(scenarios) != wantLen {
			t.Fatalf("remaining=%d: got %d scenarios; want %d", remaining,
				len(scenarios), wantLen)
		}

		seen := make(map[Scenario]bool)
		for _, s := range scenarios {
			if s.ExtraWins < 0 || s.ExtraLosses < 0 || s.ExtraDraws < 0 {
				t.Fatalf("remaining=%d: negative component in %+v", remaining, s)
			}
			if s.ExtraWins+s.ExtraLosses+s.ExtraDraws != remaining {
				t.Fatalf("remaining=%d: components of %+v don't sum to %d",
					remaining, s, remaining)
			}
			if seen[s] {
				t.Fatalf("remaining=%d: duplicate scenario %+v", remaining, s)
			}
			seen[s] = true
		}
	}
}

// Wins-heavy scenarios come first, and within equal wins, draws-heavy
// before losses-heavy. The renderers rely on this ordering.
func TestEnumerateScenariosOrdering(t *testing.T) {
	want := []Scenario{
		{ExtraWins: 2, ExtraLosses: 0, ExtraDraws: 0},
		{ExtraWins: 1, ExtraLosses: 0, ExtraDraws: 1},
		{ExtraWins: 1, ExtraLosses: 1, ExtraDraws: 0},
		{ExtraWins: 0, ExtraLosses: 0, ExtraDraws: 2},
		{ExtraWins: 0, ExtraLosses: 1, ExtraDraws: 1},
		{ExtraWins: 0, ExtraLosses: 2, ExtraDraws: 0},
	}
	got := EnumerateScenarios(2)
	if len(got) != len(want) {
		t.Fatalf("got %d scenarios; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scenario %d = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestEnumerateScenariosNegative(t *testing.T) {
	if got := EnumerateScenarios(-1); got != nil {
		t.Errorf("EnumerateScenarios(-1) = %v; want nil", got)
	}
}

func TestScenarioApply(t *testing.T) {
	rec := Record{Wins: 3, Losses: 1, Draws: 0}
	s := Scenario{ExtraWins: 1, ExtraLosses: 0, ExtraDraws: 2}
	got := s.Apply(rec)
	want := Record{Wins: 4, Losses: 1, Draws: 2}
	if got != want {
		t.Errorf("Apply = %+v; want %+v", got, want)
	}
}
