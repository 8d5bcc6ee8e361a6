/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mikeb26/mtgswiss-cutbot/internal"
	"github.com/mikeb26/mtgswiss-cutbot/swiss"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":    handleHelp,
	"version": handleVersion,
	"top8":    handleTop8,
	"day2":    handleDay2,
	"track":   handleTrack,
	"records": handleRecords,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleVersion(ctx context.Context, args []string) {
	fmt.Printf("swisscut %v\n", internal.Version)
}

// recordFlags registers the shared wins/losses/draws flags on fs.
func recordFlags(fs *flag.FlagSet) (wins, losses, draws *int) {
	wins = fs.Int("wins", 0, "Match wins so far")
	losses = fs.Int("losses", 0, "Match losses so far")
	draws = fs.Int("draws", 0, "Match draws so far")
	return
}

func parseRecord(fs *flag.FlagSet, wins, losses, draws *int) swiss.Record {
	if *wins < 0 || *losses < 0 || *draws < 0 {
		fmt.Fprintln(os.Stderr, "Record values cannot be negative.")
		fs.Usage()
		os.Exit(1)
	}
	return swiss.Record{Wins: *wins, Losses: *losses, Draws: *draws}
}

func handleTop8(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("top8", flag.ExitOnError)
	players := fs.Int("players", 0, "Number of players in the event")
	wins, losses, draws := recordFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *players < 2 {
		fmt.Fprintln(os.Stderr, "Please provide --players (at least 2).")
		fs.Usage()
		os.Exit(1)
	}

	rec := parseRecord(fs, wins, losses, draws)
	cfg := swiss.NewTop8Config(*players)
	if rec.RoundsPlayed() > cfg.TotalRounds {
		log.Fatalf("A %d player event only has %d rounds; record %v has %d.",
			*players, cfg.TotalRounds, rec, rec.RoundsPlayed())
	}

	fmt.Print(swiss.BuildTop8Output(rec, cfg, swiss.OMWEstimate{}))
}

func handleDay2(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("day2", flag.ExitOnError)
	rounds := fs.Int("rounds", 0, "Number of day-1 rounds")
	threshold := fs.Int("threshold", 0, "Match points needed for Day 2")
	wins, losses, draws := recordFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *rounds < 1 {
		fmt.Fprintln(os.Stderr, "Please provide --rounds (at least 1).")
		fs.Usage()
		os.Exit(1)
	}
	if *threshold < 1 {
		fmt.Fprintln(os.Stderr, "Please provide --threshold (at least 1).")
		fs.Usage()
		os.Exit(1)
	}

	rec := parseRecord(fs, wins, losses, draws)
	if rec.RoundsPlayed() > *rounds {
		log.Fatalf("Record %v has %d rounds but the event only has %d.",
			rec, rec.RoundsPlayed(), *rounds)
	}

	fmt.Print(swiss.BuildDay2Output(rec, *rounds, *threshold))
}

func handleTrack(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("track", flag.ExitOnError)
	players := fs.Int("players", 0, "Number of players in the event")
	results := fs.String("results", "", "Results so far in order, e.g. WWLDW")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *players < 2 {
		fmt.Fprintln(os.Stderr, "Please provide --players (at least 2).")
		fs.Usage()
		os.Exit(1)
	}
	if *results == "" {
		fmt.Fprintln(os.Stderr, "Please provide --results, e.g. WWLDW.")
		fs.Usage()
		os.Exit(1)
	}

	cfg := swiss.NewTop8Config(*players)
	tracker, err := swiss.ParseResults(*results, cfg.TotalRounds)
	if err != nil {
		log.Fatalf("Invalid results %q: %v", *results, err)
	}

	fmt.Print(swiss.BuildTrackerOutput(tracker, cfg))
}

func handleRecords(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("records", flag.ExitOnError)
	players := fs.Int("players", 0, "Number of players in the event")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *players < 2 {
		fmt.Fprintln(os.Stderr, "Please provide --players (at least 2).")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Print(swiss.BuildAllRecordsOutput(swiss.NewTop8Config(*players)))
}
