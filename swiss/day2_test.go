/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package swiss

import "testing"

func TestDay2Band(t *testing.T) {
	const threshold = 19
	cases := []struct {
		points int
		want   Band
	}{
		{25, BandSafe},       // diff +6
		{22, BandSafe},       // diff +3
		{21, BandLikely},     // diff +2
		{19, BandLikely},     // diff 0, exactly at threshold
		{18, BandPossible},   // diff -1
		{16, BandPossible},   // diff -3
		{15, BandUnlikely},   // diff -4
		{13, BandUnlikely},   // diff -6
		{12, BandEliminated}, // diff -7
		{0, BandEliminated},
	}
	for _, c := range cases {
		if got := Day2Band(c.points, threshold); got != c.want {
			t.Errorf("Day2Band(%d, %d) = %v; want %v", c.points, threshold,
				got, c.want)
		}
	}
}

func TestDeriveDay2Verdict(t *testing.T) {
	cases := []struct {
		name            string
		rec             Record
		totalRounds     int
		threshold       int
		wantKind        Day2VerdictKind
		wantMinWins     int
		wantCanLoseRest bool
	}{
		{
			name:        "already qualified",
			rec:         Record{Wins: 7, Losses: 1, Draws: 0},
			totalRounds: 9, threshold: 19,
			wantKind: Day2AlreadyQualified,
		},
		{
			name:        "already qualified with zero remaining",
			rec:         Record{Wins: 7, Losses: 2, Draws: 0},
			totalRounds: 9, threshold: 19,
			wantKind: Day2AlreadyQualified,
		},
		{
			name:        "mathematically eliminated",
			rec:         Record{Wins: 1, Losses: 6, Draws: 0},
			totalRounds: 9, threshold: 19,
			wantKind: Day2Eliminated,
		},
		{
			name:        "drawing out suffices",
			rec:         Record{Wins: 6, Losses: 1, Draws: 0},
			totalRounds: 9, threshold: 19,
			wantKind: Day2DrawOutSuffices,
		},
		{
			// 15 pts, 3 remaining: one win plus two draws reaches 20,
			// but 15+3=18 falls short, so losses are not affordable.
			name:        "need one win but cannot lose rest",
			rec:         Record{Wins: 5, Losses: 1, Draws: 0},
			totalRounds: 9, threshold: 19,
			wantKind: Day2NeedWins, wantMinWins: 1, wantCanLoseRest: false,
		},
		{
			// 16 pts, 2 remaining: 16+3=19 clears the bar outright.
			name:        "one more win secures it",
			rec:         Record{Wins: 5, Losses: 2, Draws: 1},
			totalRounds: 10, threshold: 19,
			wantKind: Day2OneWinSecures, wantMinWins: 1, wantCanLoseRest: true,
		},
		{
			// 13 pts, 2 remaining: 19 is only reachable by winning both.
			name:        "must win all remaining",
			rec:         Record{Wins: 4, Losses: 2, Draws: 1},
			totalRounds: 9, threshold: 19,
			wantKind: Day2MustWinAll, wantMinWins: 2, wantCanLoseRest: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := DeriveDay2Verdict(c.rec, c.totalRounds, c.threshold)
			if v.Kind != c.wantKind {
				t.Fatalf("Kind = %v; want %v", v.Kind, c.wantKind)
			}
			if v.Kind != Day2NeedWins && v.Kind != Day2OneWinSecures &&
				v.Kind != Day2MustWinAll {
				return
			}
			if v.MinWins != c.wantMinWins {
				t.Errorf("MinWins = %d; want %d", v.MinWins, c.wantMinWins)
			}
			if v.CanLoseRest != c.wantCanLoseRest {
				t.Errorf("CanLoseRest = %v; want %v", v.CanLoseRest,
					c.wantCanLoseRest)
			}
		})
	}
}

// Elimination must short-circuit before the draw-out and min-wins cases.
func TestDeriveDay2VerdictPriority(t *testing.T) {
	rec := Record{Wins: 0, Losses: 6, Draws: 0}
	v := DeriveDay2Verdict(rec, 9, 19)
	if v.Kind != Day2Eliminated {
		t.Fatalf("Kind = %v; want Day2Eliminated", v.Kind)
	}
}

// Re-running with identical inputs must yield an identical verdict.
func TestDeriveDay2VerdictIdempotent(t *testing.T) {
	rec := Record{Wins: 5, Losses: 1, Draws: 0}
	v1 := DeriveDay2Verdict(rec, 9, 19)
	v2 := DeriveDay2Verdict(rec, 9, 19)
	if v1 != v2 {
		t.Fatalf("verdicts differ: %+v vs %+v", v1, v2)
	}
	if v1.Message() != v2.Message() {
		t.Fatalf("messages differ: %q vs %q", v1.Message(), v2.Message())
	}
}
