/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"strings"

	"github.com/mikeb26/mtgswiss-cutbot/internal"
)

const probBarWidth = 10

// BuildTop8Output formats the current-record summary, the full
// remaining-round scenario table, and the strategy verdict into aligned
// string output.
func BuildTop8Output(rec Record, cfg Top8Config, omw OMWEstimate) string {
	var sb strings.Builder

	prob := cfg.ProbabilityOMW(rec, omw)
	remaining := cfg.TotalRounds - rec.RoundsPlayed()

	sb.WriteString(fmt.Sprintf("%d players, %d rounds, ~%d points for Top 8\n",
		cfg.NumPlayers, cfg.TotalRounds, cfg.ThresholdPoints()))
	sb.WriteString(fmt.Sprintf("Current record %v (%d pts)", rec, rec.Points()))
	if omw.Valid {
		sb.WriteString(fmt.Sprintf(", est. OMW %v",
			internal.FormatOMW(omw.Value)))
	}
	sb.WriteString(fmt.Sprintf(": %d%% %v  %v\n\n", prob,
		internal.PercentBar(prob, probBarWidth), BandForProbability(prob)))

	if remaining > 0 {
		sb.WriteString(fmt.Sprintf("Remaining %d rounds:\n", remaining))
		sb.WriteString(buildTop8ScenarioTable(rec, cfg, omw, remaining))
		sb.WriteString("\n")
	}

	sb.WriteString(DeriveTop8Verdict(rec, cfg, omw).Message())
	sb.WriteString("\n")

	return sb.String()
}

// BuildAllRecordsOutput formats the probability of every possible final
// record for the whole tournament, before any rounds have been played.
func BuildAllRecordsOutput(cfg Top8Config) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%d players, %d rounds, ~%d points for Top 8\n\n",
		cfg.NumPlayers, cfg.TotalRounds, cfg.ThresholdPoints()))
	sb.WriteString(buildTop8ScenarioTable(Record{}, cfg, OMWEstimate{},
		cfg.TotalRounds))

	return sb.String()
}

// buildTop8ScenarioTable renders one row per scenario over the given number
// of rounds, applied on top of rec.
func buildTop8ScenarioTable(rec Record, cfg Top8Config, omw OMWEstimate,
	rounds int) string {

	type row struct{ record, pts, prob, outlook string }
	var rows []row
	for _, s := range EnumerateScenarios(rounds) {
		final := s.Apply(rec)
		p := cfg.ProbabilityOMW(final, omw)
		rows = append(rows, row{
			record:  final.String(),
			pts:     fmt.Sprintf("%d", final.Points()),
			prob:    fmt.Sprintf("%3d%% %v", p, internal.PercentBar(p, probBarWidth)),
			outlook: BandForProbability(p).Label(),
		})
	}

	// Compute column widths
	maxR, maxP, maxPr := len("Record"), len("Pts"), len("Top 8")
	for _, r := range rows {
		if l := len(r.record); l > maxR {
			maxR = l
		}
		if l := len(r.pts); l > maxP {
			maxP = l
		}
		if l := len(r.prob); l > maxPr {
			maxPr = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxR, "Record",
		maxP, "Pts", maxPr, "Top 8", "Outlook"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxR, r.record,
			maxP, r.pts, maxPr, r.prob, r.outlook))
	}

	return sb.String()
}

// BuildDay2Output formats the Day 2 scenario table and verdict into aligned
// string output.
func BuildDay2Output(rec Record, totalRounds int, threshold int) string {
	var sb strings.Builder

	points := rec.Points()
	remaining := totalRounds - rec.RoundsPlayed()

	sb.WriteString(fmt.Sprintf("%d rounds, %d points for Day 2\n", totalRounds,
		threshold))
	sb.WriteString(fmt.Sprintf("Current record %v (%d pts, %v vs threshold): %v\n\n",
		rec, points, internal.FormatSigned(points-threshold),
		Day2Band(points, threshold)))

	if remaining > 0 {
		type row struct{ record, pts, status string }
		var rows []row
		for _, s := range EnumerateScenarios(remaining) {
			final := s.Apply(rec)
			status := Day2Band(final.Points(), threshold).Label()
			if final.Points() == threshold {
				status += " (exactly at threshold)"
			}
			rows = append(rows, row{
				record: final.String(),
				pts:    fmt.Sprintf("%d", final.Points()),
				status: status,
			})
		}

		// Compute column widths
		maxR, maxP := len("Record"), len("Pts")
		for _, r := range rows {
			if l := len(r.record); l > maxR {
				maxR = l
			}
			if l := len(r.pts); l > maxP {
				maxP = l
			}
		}

		sb.WriteString(fmt.Sprintf("Remaining %d rounds:\n", remaining))
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s\n", maxR, "Record", maxP,
			"Pts", "Status"))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s\n", maxR, r.record,
				maxP, r.pts, r.status))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(DeriveDay2Verdict(rec, totalRounds, threshold).Message())
	sb.WriteString("\n")

	return sb.String()
}

// BuildTrackerOutput formats a round-by-round report for an in-progress
// tournament: each played round's result, the OMW estimate inferred from
// the sequence, and the resulting summary and verdict.
func BuildTrackerOutput(t *RoundTracker, cfg Top8Config) string {
	var sb strings.Builder

	results := t.Results()
	omw := EstimateOMW(results, cfg.TotalRounds)

	sb.WriteString("Round results:\n")
	for i, res := range results {
		sb.WriteString(fmt.Sprintf("  R%-2d %v\n", i+1, res))
	}
	sb.WriteString("\n")

	if omw.Valid {
		sb.WriteString(fmt.Sprintf("Estimated OMW: %v\n\n",
			internal.FormatOMW(omw.Value)))
	}

	sb.WriteString(BuildTop8Output(t.Record(), cfg, omw))

	return sb.String()
}
