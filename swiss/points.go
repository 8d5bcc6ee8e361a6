/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"math/bits"
)

// Match points per the MTG tournament rules: 3 for a win, 1 for a draw,
// 0 for a loss.
const (
	PointsPerWin  = 3
	PointsPerDraw = 1
)

// Record is a player's win/loss/draw line at some point in a Swiss event.
// Records are value types; every calculation recomputes from scratch.
type Record struct {
	Wins   int
	Losses int
	Draws  int
}

// Points returns the match points earned by rec.
func (rec Record) Points() int {
	return MatchPoints(rec.Wins, rec.Draws)
}

// RoundsPlayed returns the number of completed rounds in rec.
func (rec Record) RoundsPlayed() int {
	return rec.Wins + rec.Losses + rec.Draws
}

func (rec Record) String() string {
	return fmt.Sprintf("%d-%d-%d", rec.Wins, rec.Losses, rec.Draws)
}

// MatchPoints computes match points from wins and draws. Callers are
// responsible for supplying non-negative inputs.
func MatchPoints(wins int, draws int) int {
	return wins*PointsPerWin + draws*PointsPerDraw
}

// RoundsForPlayers returns the conventional Swiss round count for an event
// with numPlayers entrants: ceil(log2(numPlayers)), or 0 when there aren't
// enough players to pair a single round.
//
// Computed via bit length rather than math.Log2 so exact powers of two
// (512, 1024, ...) can't round up from float error.
func RoundsForPlayers(numPlayers int) int {
	if numPlayers < 2 {
		return 0
	}
	rounds := bits.Len(uint(numPlayers - 1))
	return rounds
}
