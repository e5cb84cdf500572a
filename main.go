// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/curioswitch/go-curiostack/server"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/app"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/capture"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/capture/localdevice"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/config"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	geminigw "github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway/gemini"
	openaigw "github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway/openai"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/handler/analyzeframe"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/handler/capturesession"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/handler/exportrecipe"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/handler/generaterecipe"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/handler/resetsession"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	var gw gateway.Generator
	switch conf.Model.Backend {
	case "openai":
		oai := openai.NewClient()
		gw = openaigw.NewClient(&oai, openaigw.Models{
			Text:  conf.Model.OpenAI.Text,
			Image: conf.Model.OpenAI.Image,
		})
	default:
		genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("main: creating genai client: %w", err)
		}
		gw = geminigw.NewClient(genAI, geminigw.Models{
			Text:   conf.Model.Text,
			Image:  conf.Model.Image,
			Vision: conf.Model.Vision,
		})
	}

	var device capture.Device
	if conf.Capture.Frames != "" {
		device = localdevice.New(conf.Capture.Frames)
	}

	a := app.New(gw, device, conf.Generation.Variations)

	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)

	mux.Method(http.MethodPost, "/api/recipes/generate", generaterecipe.NewHandler(a))
	mux.Method(http.MethodPost, "/api/ingredients/analyze", analyzeframe.NewHandler(a))
	mux.Method(http.MethodPost, "/api/recipes/export", exportrecipe.NewHandler(a))
	mux.Method(http.MethodPost, "/api/session/reset", resetsession.NewHandler(a))

	cs := capturesession.NewHandler(a, capture.Facing(conf.Capture.Facing))
	mux.Post("/api/capture/start", cs.Start)
	mux.Post("/api/capture/analyze", cs.Analyze)
	mux.Post("/api/capture/cancel", cs.Cancel)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
