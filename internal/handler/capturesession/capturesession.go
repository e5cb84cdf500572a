// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package capturesession exposes the server-side capture session for
// deployments with a configured capture device.
package capturesession

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/app"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/capture"
)

func NewHandler(a *app.App, facing capture.Facing) *Handler {
	if facing == "" {
		facing = capture.FacingEnvironment
	}
	return &Handler{
		app:    a,
		facing: facing,
	}
}

type Handler struct {
	app    *app.App
	facing capture.Facing
}

// StateResponse reports the capture session state after an operation.
type StateResponse struct {
	State string `json:"state"`
}

// AnalyzeResponse returns the merged ingredient text after analysis.
type AnalyzeResponse struct {
	Ingredients string `json:"ingredients"`
	State       string `json:"state"`
}

// Start acquires the device stream and begins previewing.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.app.StartCapture(ctx, h.facing); err != nil {
		switch {
		case errors.Is(err, capture.ErrBusy):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, capture.ErrDeviceUnavailable):
			// Recoverable - the user keeps typing ingredients instead.
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		default:
			slog.ErrorContext(ctx, "capturesession: starting capture", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeState(w, r, h.app.CaptureState())
}

// Analyze freezes a frame, extracts ingredients and merges them into the
// session's ingredient text. The session ends idle either way.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	merged, err := h.app.AnalyzeCapture(ctx)
	if err != nil {
		if errors.Is(err, capture.ErrNotPreviewing) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		slog.ErrorContext(ctx, "capturesession: analyzing capture", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AnalyzeResponse{
		Ingredients: merged,
		State:       h.app.CaptureState().String(),
	}); err != nil {
		slog.ErrorContext(ctx, "capturesession: writing response", "error", err)
	}
}

// Cancel aborts the capture session.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.app.CancelCapture()
	writeState(w, r, h.app.CaptureState())
}

func writeState(w http.ResponseWriter, r *http.Request, state capture.State) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(StateResponse{State: state.String()}); err != nil {
		slog.ErrorContext(r.Context(), "capturesession: writing response", "error", err)
	}
}
