/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/mtgswiss-cutbot/swiss"
)

type SwissSubCommand string

const (
	SwissAboutCmd   SwissSubCommand = "about"
	SwissHelpCmd    SwissSubCommand = "help"
	SwissTop8Cmd    SwissSubCommand = "top8"
	SwissDay2Cmd    SwissSubCommand = "day2"
	SwissTrackCmd   SwissSubCommand = "track"
	SwissRecordsCmd SwissSubCommand = "records"
)

var swissSubCmdHdlrs = map[SwissSubCommand]CmdHandler{
	SwissAboutCmd:   swissAboutCmdHandler,
	SwissHelpCmd:    swissHelpCmdHandler,
	SwissTop8Cmd:    swissTop8CmdHandler,
	SwissDay2Cmd:    swissDay2CmdHandler,
	SwissTrackCmd:   swissTrackCmdHandler,
	SwissRecordsCmd: swissRecordsCmdHandler,
}

func swissCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := swissHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := swissSubCmdHdlrs[SwissSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func swissAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func swissHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

// subCmdOpts collects the options of the invoked subcommand into a map.
// Missing options simply have no entry.
func subCmdOpts(
	inter *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {

	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return opts
	}
	for _, opt := range data.Options[0].Options {
		opts[opt.Name] = opt
	}
	return opts
}

func optInt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption,
	name string, def int64) int64 {

	if opt, ok := opts[name]; ok {
		return opt.IntValue()
	}
	return def
}

// recordFromOpts reads the wins/losses/draws options, all defaulting to 0.
func recordFromOpts(
	opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (swiss.Record, error) {

	rec := swiss.Record{
		Wins:   int(optInt(opts, "wins", 0)),
		Losses: int(optInt(opts, "losses", 0)),
		Draws:  int(optInt(opts, "draws", 0)),
	}
	if rec.Wins < 0 || rec.Losses < 0 || rec.Draws < 0 {
		return rec, fmt.Errorf("wins, losses, and draws cannot be negative")
	}
	return rec, nil
}

func swissTop8CmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	opts := subCmdOpts(inter)
	broadcast := false
	if opt, ok := opts["broadcast"]; ok {
		broadcast = opt.BoolValue()
	}

	players := int(optInt(opts, "players", 0))
	if players < 2 {
		resp.Data.Content = "Please provide the number of players (at least 2)."
		log.Printf("discordbot.top8: %v", resp.Data.Content)
		return resp
	}

	rec, err := recordFromOpts(opts)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Invalid record: %v", err)
		log.Printf("discordbot.top8: %v", resp.Data.Content)
		return resp
	}

	cfg := swiss.NewTop8Config(players)
	if rec.RoundsPlayed() > cfg.TotalRounds {
		resp.Data.Content = fmt.Sprintf(
			"A %d player event only has %d rounds; record %v has %d.",
			players, cfg.TotalRounds, rec, rec.RoundsPlayed())
		log.Printf("discordbot.top8: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(swiss.BuildTop8Output(rec, cfg, swiss.OMWEstimate{})))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func swissDay2CmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	opts := subCmdOpts(inter)
	broadcast := false
	if opt, ok := opts["broadcast"]; ok {
		broadcast = opt.BoolValue()
	}

	rounds := int(optInt(opts, "rounds", 0))
	threshold := int(optInt(opts, "threshold", 0))
	if rounds < 1 || threshold < 1 {
		resp.Data.Content = "Please provide the number of day-1 rounds and the Day 2 point threshold."
		log.Printf("discordbot.day2: %v", resp.Data.Content)
		return resp
	}

	rec, err := recordFromOpts(opts)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Invalid record: %v", err)
		log.Printf("discordbot.day2: %v", resp.Data.Content)
		return resp
	}
	if rec.RoundsPlayed() > rounds {
		resp.Data.Content = fmt.Sprintf(
			"Record %v has %d rounds but the event only has %d.",
			rec, rec.RoundsPlayed(), rounds)
		log.Printf("discordbot.day2: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(swiss.BuildDay2Output(rec, rounds, threshold)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// swissTrackCmdHandler handles /swiss track, which infers both the record
// and an OMW estimate from a compact round-by-round result string.
func swissTrackCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	opts := subCmdOpts(inter)
	broadcast := false
	if opt, ok := opts["broadcast"]; ok {
		broadcast = opt.BoolValue()
	}

	players := int(optInt(opts, "players", 0))
	if players < 2 {
		resp.Data.Content = "Please provide the number of players (at least 2)."
		log.Printf("discordbot.track: %v", resp.Data.Content)
		return resp
	}

	resultsStr := ""
	if opt, ok := opts["results"]; ok {
		resultsStr = opt.StringValue()
	}
	if resultsStr == "" {
		resp.Data.Content = "Please provide your results so far, e.g. WWLDW."
		log.Printf("discordbot.track: %v", resp.Data.Content)
		return resp
	}

	cfg := swiss.NewTop8Config(players)
	tracker, err := swiss.ParseResults(resultsStr, cfg.TotalRounds)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Invalid results %q: %v", resultsStr,
			err)
		log.Printf("discordbot.track: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(swiss.BuildTrackerOutput(tracker, cfg)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// swissRecordsCmdHandler handles /swiss records, which shows the outlook for
// every possible final record of an event before it starts.
func swissRecordsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	opts := subCmdOpts(inter)
	broadcast := false
	if opt, ok := opts["broadcast"]; ok {
		broadcast = opt.BoolValue()
	}

	players := int(optInt(opts, "players", 0))
	if players < 2 {
		resp.Data.Content = "Please provide the number of players (at least 2)."
		log.Printf("discordbot.records: %v", resp.Data.Content)
		return resp
	}

	cfg := swiss.NewTop8Config(players)

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(swiss.BuildAllRecordsOutput(cfg)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
