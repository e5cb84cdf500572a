// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package generaterecipe

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/app"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/synth"
)

// Request is the body of a generation request. When Variation is set, the
// stored ingredient set and preference from the original generation are used
// and Ingredients/Preference are ignored.
type Request struct {
	Ingredients string            `json:"ingredients"`
	Preference  recipe.Preference `json:"preference"`
	Variation   bool              `json:"variation"`
}

// Response carries the generated recipe and whether another variation may
// still be requested.
type Response struct {
	Recipe            *recipe.Recipe `json:"recipe"`
	CanRequestAnother bool           `json:"canRequestAnother"`
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

	ctx := r.Context()
	var (
		res *recipe.Recipe
		err error
	)
	if req.Variation {
		res, err = h.app.GenerateVariation(ctx)
	} else {
		res, err = h.app.Generate(ctx, req.Ingredients, req.Preference)
	}
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, synth.ErrNoIngredients), errors.Is(err, app.ErrUnknownPreference):
			status = http.StatusBadRequest
		case errors.Is(err, app.ErrGenerationInFlight):
			status = http.StatusConflict
		case errors.Is(err, app.ErrVariationLimit), errors.Is(err, app.ErrNoRecipe):
			status = http.StatusUnprocessableEntity
		}
		if status == http.StatusBadGateway {
			slog.ErrorContext(ctx, "generaterecipe: generation failed", "error", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Response{
		Recipe:            res,
		CanRequestAnother: h.app.CanRequestVariation(),
	}); err != nil {
		slog.ErrorContext(ctx, "generaterecipe: writing response", "error", err)
	}
}
