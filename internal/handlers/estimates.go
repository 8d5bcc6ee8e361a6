/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package handlers

import (
	"net/http"

	"github.com/mikeb26/mtgswiss-cutbot/swiss"
)

type recordJSON struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
	Points int `json:"points"`
}

type scenarioJSON struct {
	Record      recordJSON `json:"record"`
	Probability *int       `json:"probability,omitempty"`
	Band        string     `json:"band"`
}

type top8Response struct {
	NumPlayers  int            `json:"numPlayers"`
	TotalRounds int            `json:"totalRounds"`
	Threshold   int            `json:"thresholdPoints"`
	Record      recordJSON     `json:"record"`
	OMW         *float64       `json:"omwEstimate,omitempty"`
	Probability int            `json:"probability"`
	Band        string         `json:"band"`
	Style       string         `json:"style"`
	Verdict     verdictJSON    `json:"verdict"`
	Scenarios   []scenarioJSON `json:"scenarios"`
}

type verdictJSON struct {
	Kind        string `json:"kind"`
	MinWins     int    `json:"minWins,omitempty"`
	CanLoseRest bool   `json:"canLoseRest,omitempty"`
	DrawAllProb int    `json:"drawAllProb,omitempty"`
	WinAllProb  int    `json:"winAllProb,omitempty"`
	Message     string `json:"message"`
}

func toRecordJSON(rec swiss.Record) recordJSON {
	return recordJSON{
		Wins:   rec.Wins,
		Losses: rec.Losses,
		Draws:  rec.Draws,
		Points: rec.Points(),
	}
}

// parseRecord pulls and validates wins/losses/draws query parameters.
func (h *Handler) parseRecord(w http.ResponseWriter,
	r *http.Request) (swiss.Record, bool) {

	var rec swiss.Record
	var err error
	if rec.Wins, err = intQueryDefault(r, "wins", 0); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return rec, false
	}
	if rec.Losses, err = intQueryDefault(r, "losses", 0); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return rec, false
	}
	if rec.Draws, err = intQueryDefault(r, "draws", 0); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return rec, false
	}
	if rec.Wins < 0 || rec.Losses < 0 || rec.Draws < 0 {
		h.errorResponse(w, http.StatusBadRequest,
			"wins, losses, and draws must be non-negative")
		return rec, false
	}
	return rec, true
}

// GetTop8 handles GET /api/v1/top8?players=N&wins=W&losses=L&draws=D with
// an optional results=WWLD sequence used for the OMW estimate.
func (h *Handler) GetTop8(w http.ResponseWriter, r *http.Request) {
	players, err := intQuery(r, "players")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if players < 8 || players > h.limits.MaxPlayers {
		h.errorResponse(w, http.StatusBadRequest,
			"players must be between 8 and the configured maximum")
		return
	}

	rec, ok := h.parseRecord(w, r)
	if !ok {
		return
	}

	cfg := swiss.NewTop8Config(players)
	if rec.RoundsPlayed() > cfg.TotalRounds {
		h.errorResponse(w, http.StatusBadRequest,
			"record has more rounds than the event")
		return
	}

	omw := swiss.OMWEstimate{}
	if resultsStr := r.URL.Query().Get("results"); resultsStr != "" {
		tracker, err := swiss.ParseResults(resultsStr, cfg.TotalRounds)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		if tracker.Record() != rec {
			h.errorResponse(w, http.StatusBadRequest,
				"results sequence does not match the supplied record")
			return
		}
		omw = swiss.EstimateOMW(tracker.Results(), cfg.TotalRounds)
	}

	prob := cfg.ProbabilityOMW(rec, omw)
	band := swiss.BandForProbability(prob)
	verdict := swiss.DeriveTop8Verdict(rec, cfg, omw)

	resp := top8Response{
		NumPlayers:  cfg.NumPlayers,
		TotalRounds: cfg.TotalRounds,
		Threshold:   cfg.ThresholdPoints(),
		Record:      toRecordJSON(rec),
		Probability: prob,
		Band:        band.Label(),
		Style:       band.Style(),
		Verdict: verdictJSON{
			Kind:        verdict.Kind.String(),
			MinWins:     verdict.MinWins,
			DrawAllProb: verdict.DrawAllProb,
			WinAllProb:  verdict.WinAllProb,
			Message:     verdict.Message(),
		},
	}
	if omw.Valid {
		resp.OMW = &omw.Value
	}

	remaining := cfg.TotalRounds - rec.RoundsPlayed()
	for _, s := range swiss.EnumerateScenarios(remaining) {
		final := s.Apply(rec)
		p := cfg.ProbabilityOMW(final, omw)
		resp.Scenarios = append(resp.Scenarios, scenarioJSON{
			Record:      toRecordJSON(final),
			Probability: &p,
			Band:        swiss.BandForProbability(p).Label(),
		})
	}

	h.jsonResponse(w, http.StatusOK, resp)
}

type day2Response struct {
	TotalRounds int            `json:"totalRounds"`
	Threshold   int            `json:"thresholdPoints"`
	Record      recordJSON     `json:"record"`
	Band        string         `json:"band"`
	Style       string         `json:"style"`
	Verdict     verdictJSON    `json:"verdict"`
	Scenarios   []scenarioJSON `json:"scenarios"`
}

// GetDay2 handles GET /api/v1/day2?rounds=R&threshold=T&wins=W&losses=L&draws=D.
func (h *Handler) GetDay2(w http.ResponseWriter, r *http.Request) {
	rounds, err := intQuery(r, "rounds")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if rounds < 1 || rounds > h.limits.MaxRounds {
		h.errorResponse(w, http.StatusBadRequest,
			"rounds must be between 1 and the configured maximum")
		return
	}
	threshold, err := intQuery(r, "threshold")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if threshold < 1 {
		h.errorResponse(w, http.StatusBadRequest, "threshold must be positive")
		return
	}

	rec, ok := h.parseRecord(w, r)
	if !ok {
		return
	}
	if rec.RoundsPlayed() > rounds {
		h.errorResponse(w, http.StatusBadRequest,
			"record has more rounds than the event")
		return
	}

	band := swiss.Day2Band(rec.Points(), threshold)
	verdict := swiss.DeriveDay2Verdict(rec, rounds, threshold)

	resp := day2Response{
		TotalRounds: rounds,
		Threshold:   threshold,
		Record:      toRecordJSON(rec),
		Band:        band.Label(),
		Style:       band.Style(),
		Verdict: verdictJSON{
			Kind:        verdict.Kind.String(),
			MinWins:     verdict.MinWins,
			CanLoseRest: verdict.CanLoseRest,
			Message:     verdict.Message(),
		},
	}

	for _, s := range swiss.EnumerateScenarios(rounds - rec.RoundsPlayed()) {
		final := s.Apply(rec)
		resp.Scenarios = append(resp.Scenarios, scenarioJSON{
			Record: toRecordJSON(final),
			Band:   swiss.Day2Band(final.Points(), threshold).Label(),
		})
	}

	h.jsonResponse(w, http.StatusOK, resp)
}

type scenariosResponse struct {
	Remaining int              `json:"remaining"`
	Count     int              `json:"count"`
	Scenarios []swiss.Scenario `json:"scenarios"`
}

// GetScenarios handles GET /api/v1/scenarios?remaining=N.
func (h *Handler) GetScenarios(w http.ResponseWriter, r *http.Request) {
	remaining, err := intQuery(r, "remaining")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if remaining < 0 || remaining > h.limits.MaxRounds {
		h.errorResponse(w, http.StatusBadRequest,
			"remaining must be between 0 and the configured maximum")
		return
	}

	scenarios := swiss.EnumerateScenarios(remaining)
	h.jsonResponse(w, http.StatusOK, scenariosResponse{
		Remaining: remaining,
		Count:     len(scenarios),
		Scenarios: scenarios,
	})
}

type omwResponse struct {
	TotalRounds int      `json:"totalRounds"`
	Results     string   `json:"results"`
	OMW         *float64 `json:"omwEstimate"`
}

// GetOMW handles GET /api/v1/omw?rounds=R&results=WWLD.
func (h *Handler) GetOMW(w http.ResponseWriter, r *http.Request) {
	rounds, err := intQuery(r, "rounds")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if rounds < 1 || rounds > h.limits.MaxRounds {
		h.errorResponse(w, http.StatusBadRequest,
			"rounds must be between 1 and the configured maximum")
		return
	}

	resultsStr := r.URL.Query().Get("results")
	tracker, err := swiss.ParseResults(resultsStr, rounds)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := omwResponse{
		TotalRounds: rounds,
		Results:     resultsStr,
	}
	if omw := swiss.EstimateOMW(tracker.Results(), rounds); omw.Valid {
		resp.OMW = &omw.Value
	}

	h.jsonResponse(w, http.StatusOK, resp)
}
