// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package resetsession

import (
	"net/http"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/app"
)

func NewHandler(a *app.App) *Handler {
	return &Handler{
		app: a,
	}
}

type Handler struct {
	app *app.App
}

// ServeHTTP clears the session: ingredient text, preference, current recipe
// and the variation counter. Any capture in flight is canceled and the
// device stream released.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.app.Reset()
	w.WriteHeader(http.StatusNoContent)
}
