/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mikeb26/mtgswiss-cutbot/internal/config"
)

type Config struct {
	Logger *zap.Logger
	Limits config.LimitsConfig
}

// Handler serves the estimator over HTTP. The estimators themselves are
// total functions; all input validation happens here, before they are
// invoked.
type Handler struct {
	logger *zap.SugaredLogger
	limits config.LimitsConfig
}

func New(cfg Config) *Handler {
	return &Handler{
		logger: cfg.Logger.Sugar(),
		limits: cfg.Limits,
	}
}

// Routes returns the router for all estimator endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/top8", h.GetTop8)
		r.Get("/day2", h.GetDay2)
		r.Get("/scenarios", h.GetScenarios)
		r.Get("/omw", h.GetOMW)
	})

	return r
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int,
	body interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Errorw("failed to encode response", "error", err)
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int,
	msg string) {

	h.jsonResponse(w, status, map[string]string{"error": msg})
}

// intQuery parses a required integer query parameter.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an integer", name)
	}
	return v, nil
}

// intQueryDefault parses an optional integer query parameter.
func intQueryDefault(r *http.Request, name string, def int) (int, error) {
	if r.URL.Query().Get(name) == "" {
		return def, nil
	}
	return intQuery(r, name)
}
