/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package swiss

import (
	"strings"
	"testing"
)

func TestDeriveTop8Verdict(t *testing.T) {
	cfg := NewTop8Config(32) // 5 rounds, 12 point threshold

	cases := []struct {
		name        string
		rec         Record
		wantKind    Top8VerdictKind
		wantMinWins int
	}{
		{
			// 4-0, 1 round left: drawing reaches 13 pts, diff +1, 92%
			name: "safe to draw out",
			rec:  Record{Wins: 4, Losses: 0, Draws: 0},
			wantKind: Top8SafeToDraw, wantMinWins: 0,
		},
		{
			// 3-0, 2 rounds left: drawing out gives 11 pts (50%), one win
			// reaches 13 pts (92%)
			name: "need one win",
			rec:  Record{Wins: 3, Losses: 0, Draws: 0},
			wantKind: Top8NeedWins, wantMinWins: 1,
		},
		{
			// 0-3, 2 rounds left: winning out tops out at 6 pts, 0%
			name: "long shot",
			rec:  Record{Wins: 0, Losses: 3, Draws: 0},
			wantKind: Top8LongShot, wantMinWins: -1,
		},
		{
			// 2-1-1, 1 round left: a win reaches 10 pts (25%), never 75
			name: "must win out",
			rec:  Record{Wins: 2, Losses: 1, Draws: 1},
			wantKind: Top8MustWinOut, wantMinWins: -1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := DeriveTop8Verdict(c.rec, cfg, OMWEstimate{})
			if v.Kind != c.wantKind {
				t.Fatalf("Kind = %v; want %v (verdict %+v)", v.Kind,
					c.wantKind, v)
			}
			if v.MinWins != c.wantMinWins {
				t.Errorf("MinWins = %d; want %d", v.MinWins, c.wantMinWins)
			}
			if v.Message() == "" {
				t.Error("empty verdict message")
			}
		})
	}
}

// A strong OMW estimate can flip a borderline verdict; the same estimate
// must feed every probability in the verdict.
func TestDeriveTop8VerdictUsesOMW(t *testing.T) {
	cfg := NewTop8Config(32)
	// 4-1, 0 rounds left: 12 pts, diff 0. Base 75, strong OMW 85, bad OMW 60.
	rec := Record{Wins: 4, Losses: 1, Draws: 0}

	base := DeriveTop8Verdict(rec, cfg, OMWEstimate{})
	strong := DeriveTop8Verdict(rec, cfg, OMWEstimate{Value: 0.60, Valid: true})
	bad := DeriveTop8Verdict(rec, cfg, OMWEstimate{Value: 0.35, Valid: true})

	if base.DrawAllProb != 75 || strong.DrawAllProb != 85 ||
		bad.DrawAllProb != 60 {
		t.Fatalf("DrawAllProb base/strong/bad = %d/%d/%d; want 75/85/60",
			base.DrawAllProb, strong.DrawAllProb, bad.DrawAllProb)
	}
	if base.Kind != Top8LikelySafe {
		t.Errorf("base Kind = %v; want Top8LikelySafe", base.Kind)
	}
	if bad.Kind != Top8LikelySafe {
		t.Errorf("bad Kind = %v; want Top8LikelySafe", bad.Kind)
	}
}

func TestTop8VerdictMessages(t *testing.T) {
	v := Top8Verdict{Kind: Top8NeedWins, MinWins: 2, Remaining: 3}
	if msg := v.Message(); !strings.Contains(msg, "2") ||
		!strings.Contains(msg, "3") {
		t.Errorf("NeedWins message missing counts: %q", msg)
	}
}
