// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package synth builds a single recipe from an ingredient list by sequencing
// the structured text call and the best-effort illustration call.
package synth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/prompts"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/util"
)

// illustrationAspectRatio is the aspect ratio requested for recipe images.
const illustrationAspectRatio = "1:1"

// ErrNoIngredients is returned when the ingredient text is blank after
// trimming.
var ErrNoIngredients = errors.New("synth: no ingredients provided")

// NewSynthesizer returns a Synthesizer using the given gateway.
func NewSynthesizer(gw gateway.Generator) *Synthesizer {
	return &Synthesizer{
		gw: gw,
	}
}

// Synthesizer generates recipes through the model gateway.
type Synthesizer struct {
	gw gateway.Generator
}

// Generate runs one generation cycle: structured recipe generation followed
// by the illustration call. The illustration is best-effort - any failure is
// logged and the recipe is returned without an image. The recipe is built
// atomically from the structured response; a parse or validation failure is
// terminal for the cycle and no partial recipe is returned.
func (s *Synthesizer) Generate(ctx context.Context, req recipe.GenerationRequest) (*recipe.Recipe, error) {
	ingredients := strings.TrimSpace(req.IngredientsText)
	if ingredients == "" {
		return nil, ErrNoIngredients
	}

	raw, err := s.gw.GenerateStructured(ctx, ingredients, prompts.GenerateRecipe(req.Preference, req.IsVariation), recipe.ContentSchema)
	if err != nil {
		return nil, fmt.Errorf("synth: generating recipe: %w", err)
	}
	var r recipe.Recipe
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("synth: unmarshalling recipe: %w", err)
	}
	if !r.Valid() {
		return nil, fmt.Errorf("synth: %w: missing required recipe fields", gateway.ErrInvalidResponse)
	}

	// The illustration prompt depends on the recipe name, so the image call
	// only starts after the structured call completed.
	r.ImageURL = s.illustrate(ctx, r.Name)

	return &r, nil
}

// illustrate requests an image for the named dish and returns it as a data
// URL, or "" when the model declines or the call fails.
func (s *Synthesizer) illustrate(ctx context.Context, name string) string {
	img, err := s.gw.GenerateImage(ctx, prompts.RecipeImage(name), illustrationAspectRatio)
	if err != nil {
		slog.WarnContext(ctx, "synth: generating recipe image", "recipe", name, "error", err)
		return ""
	}
	if img == nil {
		return ""
	}
	data, err := util.JPEGBytes(img.Data, img.MIMEType)
	if err != nil {
		slog.WarnContext(ctx, "synth: normalizing recipe image", "recipe", name, "error", err)
		return ""
	}
	return util.DataURL(data, "image/jpeg")
}
