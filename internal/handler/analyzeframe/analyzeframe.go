// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package analyzeframe

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/app"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/util"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/vision"
)

// Request carries one captured still frame as an image data URL, as frozen
// by the client's camera preview, along with the ingredient text as currently
// typed by the user.
type Request struct {
	// Ingredients is the user's ingredient text; detected ingredients are
	// merged into it. The client owns the field between captures.
	Ingredients string `json:"ingredients"`

	FrameDataURL string `json:"frameDataUrl"`
}

// Response returns the session's ingredient text with the detected
// ingredients merged in.
type Response struct {
	Ingredients string `json:"ingredients"`
}

func NewHandler(a *app.App) *Handler {
	return &Handler{
		app: a,
	}
}

type Handler struct {
	app *app.App
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	data, mimeType, err := util.DecodeDataURL(req.FrameDataURL)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.app.SetIngredients(req.Ingredients)

	ctx := r.Context()
	merged, err := h.app.AnalyzeFrame(ctx, gateway.Image{
		Data:     data,
		MIMEType: mimeType,
	})
	if err != nil {
		// Analysis failures are recoverable - the existing ingredient text is
		// untouched and the client may retry with a new frame.
		if errors.Is(err, vision.ErrNoIngredients) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		slog.ErrorContext(ctx, "analyzeframe: analysis failed", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Response{Ingredients: merged}); err != nil {
		slog.ErrorContext(ctx, "analyzeframe: writing response", "error", err)
	}
}
