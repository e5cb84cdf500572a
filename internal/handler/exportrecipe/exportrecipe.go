// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package exportrecipe

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/app"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
)

func NewHandler(a *app.App) *Handler {
	return &Handler{
		app: a,
	}
}

type Handler struct {
	app *app.App
}

// ServeHTTP renders a recipe as portable text for clipboard, share and print
// consumers. A recipe may be provided in the body; with an empty body the
// current recipe of the session is exported.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading request body", http.StatusBadRequest)
		return
	}

	var text string
	if len(body) > 0 {
		var rec recipe.Recipe
		if err := json.Unmarshal(body, &rec); err != nil {
			http.Error(w, "invalid recipe", http.StatusBadRequest)
			return
		}
		if !rec.Valid() {
			http.Error(w, "invalid recipe", http.StatusBadRequest)
			return
		}
		text = recipe.FormatText(&rec)
	} else {
		text, err = h.app.ExportText()
		if err != nil {
			if errors.Is(err, app.ErrNoRecipe) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			slog.ErrorContext(r.Context(), "exportrecipe: exporting recipe", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, text); err != nil {
		slog.ErrorContext(r.Context(), "exportrecipe: writing response", "error", err)
	}
}
