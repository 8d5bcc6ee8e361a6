/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package swiss

import "testing"

func TestRoundTrackerSetAndRecord(t *testing.T) {
	tr := NewRoundTracker(5)
	if tr.TotalRounds() != 5 {
		t.Fatalf("TotalRounds = %d; want 5", tr.TotalRounds())
	}

	if err := tr.SetResult(1, RoundWin); err != nil {
		t.Fatalf("SetResult(1): %v", err)
	}
	if err := tr.SetResult(2, RoundDraw); err != nil {
		t.Fatalf("SetResult(2): %v", err)
	}
	if err := tr.SetResult(3, RoundLoss); err != nil {
		t.Fatalf("SetResult(3): %v", err)
	}

	rec := tr.Record()
	want := Record{Wins: 1, Losses: 1, Draws: 1}
	if rec != want {
		t.Fatalf("Record = %+v; want %+v", rec, want)
	}
	if tr.RoundsPlayed() != 3 {
		t.Fatalf("RoundsPlayed = %d; want 3", tr.RoundsPlayed())
	}

	// amending an already-played round is allowed
	if err := tr.SetResult(2, RoundWin); err != nil {
		t.Fatalf("SetResult(2) amend: %v", err)
	}
	if got := tr.Record().Wins; got != 2 {
		t.Fatalf("Wins after amend = %d; want 2", got)
	}
}

func TestRoundTrackerNoGaps(t *testing.T) {
	tr := NewRoundTracker(5)
	if err := tr.SetResult(1, RoundWin); err != nil {
		t.Fatalf("SetResult(1): %v", err)
	}
	if err := tr.SetResult(3, RoundWin); err == nil {
		t.Fatal("expected error setting round 3 before round 2")
	}
	if err := tr.SetResult(0, RoundWin); err == nil {
		t.Fatal("expected error for round 0")
	}
	if err := tr.SetResult(6, RoundWin); err == nil {
		t.Fatal("expected error for round beyond the event")
	}
	if err := tr.SetResult(2, RoundUnplayed); err == nil {
		t.Fatal("expected error setting an unplayed result directly")
	}
}

func TestRoundTrackerClearFrom(t *testing.T) {
	tr := NewRoundTracker(5)
	for r := 1; r <= 4; r++ {
		if err := tr.SetResult(r, RoundWin); err != nil {
			t.Fatalf("SetResult(%d): %v", r, err)
		}
	}

	tr.ClearFrom(3)
	if got := tr.RoundsPlayed(); got != 2 {
		t.Fatalf("RoundsPlayed after ClearFrom(3) = %d; want 2", got)
	}
	results := tr.Results()
	for i := 2; i < len(results); i++ {
		if results[i] != RoundUnplayed {
			t.Errorf("round %d not cleared: %v", i+1, results[i])
		}
	}

	// results must remain a contiguous prefix: round 4 needs 3 again
	if err := tr.SetResult(4, RoundWin); err == nil {
		t.Fatal("expected error setting round 4 after clearing round 3")
	}
	if err := tr.SetResult(3, RoundLoss); err != nil {
		t.Fatalf("SetResult(3) after clear: %v", err)
	}
}

func TestRoundTrackerResultsSnapshot(t *testing.T) {
	tr := NewRoundTracker(3)
	if err := tr.SetResult(1, RoundWin); err != nil {
		t.Fatalf("SetResult(1): %v", err)
	}

	snap := tr.Results()
	snap[0] = RoundLoss
	if tr.Results()[0] != RoundWin {
		t.Fatal("mutating the snapshot changed the tracker")
	}
}

func TestParseResults(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		rounds  int
		wantErr bool
		want    Record
	}{
		{"basic", "WWLD", 5, false, Record{Wins: 2, Losses: 1, Draws: 1}},
		{"lowercase", "wld", 5, false, Record{Wins: 1, Losses: 1, Draws: 1}},
		{"empty", "", 5, false, Record{}},
		{"trailing unplayed", "WW-", 3, false, Record{Wins: 2}},
		{"too long", "WWWWWW", 5, true, Record{}},
		{"bad rune", "WXL", 5, true, Record{}},
		{"gap", "W-L", 5, true, Record{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr, err := ParseResults(c.in, c.rounds)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseResults(%q) expected error", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResults(%q): %v", c.in, err)
			}
			if got := tr.Record(); got != c.want {
				t.Fatalf("Record = %+v; want %+v", got, c.want)
			}
		})
	}
}
