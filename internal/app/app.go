// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package app orchestrates the generation pipeline: ingredient capture and
// extraction, recipe synthesis, variation bookkeeping and export. It owns the
// working state for one user session and enforces the single-flight rules.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/capture"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/synth"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/variation"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/vision"
)

// Sentinel errors at the orchestration boundary.
var (
	// ErrGenerationInFlight rejects a generation while one is running.
	ErrGenerationInFlight = errors.New("app: generation already in flight")
	// ErrVariationLimit rejects a variation once the bound is reached.
	ErrVariationLimit = errors.New("app: variation limit reached")
	// ErrNoRecipe is returned when no recipe has been generated yet.
	ErrNoRecipe = errors.New("app: no recipe generated yet")
	// ErrUnknownPreference rejects a preference outside the known set.
	ErrUnknownPreference = errors.New("app: unknown preference")
)

// New returns an App using the given gateway and capture device. The device
// may be nil when no camera capability is configured; capture operations then
// fail with capture.ErrDeviceUnavailable. maxVariations bounds variation
// requests per recipe thread.
func New(gw gateway.Generator, device capture.Device, maxVariations int) *App {
	if device == nil {
		device = unavailableDevice{}
	}
	return &App{
		synth:      synth.NewSynthesizer(gw),
		extractor:  vision.NewExtractor(gw),
		session:    capture.NewSession(device),
		variations: variation.NewController(maxVariations),
		generating: semaphore.NewWeighted(1),
	}
}

// App is the orchestration engine for one user session.
type App struct {
	synth      *synth.Synthesizer
	extractor  *vision.Extractor
	session    *capture.Session
	variations *variation.Controller

	// generating enforces the one-generation-cycle-in-flight rule.
	generating *semaphore.Weighted

	mu          sync.Mutex
	ingredients string
	preference  recipe.Preference
	current     *recipe.Recipe
}

// Generate starts a fresh recipe thread for the given ingredient text and
// preference. The variation counter resets, and on success the new recipe
// replaces the current one. A second concurrent call is rejected with
// ErrGenerationInFlight rather than interleaved.
func (a *App) Generate(ctx context.Context, ingredientsText string, preference recipe.Preference) (*recipe.Recipe, error) {
	if !recipe.KnownPreference(preference) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreference, preference)
	}
	if !a.generating.TryAcquire(1) {
		return nil, ErrGenerationInFlight
	}
	defer a.generating.Release(1)

	a.variations.Reset()

	r, err := a.synth.Generate(ctx, recipe.GenerationRequest{
		IngredientsText: ingredientsText,
		Preference:      preference,
	})
	if err != nil {
		// The prior recipe, if any, stays displayed.
		return nil, err
	}

	a.mu.Lock()
	a.ingredients = strings.TrimSpace(ingredientsText)
	a.preference = preference
	a.current = r
	a.mu.Unlock()
	return r, nil
}

// GenerateVariation generates an alternative recipe for the current
// ingredient set and preference. The bound is checked before any model call;
// a failed generation does not consume a variation slot.
func (a *App) GenerateVariation(ctx context.Context) (*recipe.Recipe, error) {
	if !a.generating.TryAcquire(1) {
		return nil, ErrGenerationInFlight
	}
	defer a.generating.Release(1)

	a.mu.Lock()
	ingredients := a.ingredients
	preference := a.preference
	current := a.current
	a.mu.Unlock()
	if current == nil {
		return nil, ErrNoRecipe
	}
	if !a.variations.CanRequest() {
		return nil, ErrVariationLimit
	}

	r, err := a.synth.Generate(ctx, recipe.GenerationRequest{
		IngredientsText: ingredients,
		Preference:      preference,
		IsVariation:     true,
	})
	if err != nil {
		return nil, err
	}
	a.variations.Record()

	a.mu.Lock()
	a.current = r
	a.mu.Unlock()
	return r, nil
}

// CanRequestVariation reports whether another variation may be requested.
func (a *App) CanRequestVariation() bool {
	a.mu.Lock()
	hasRecipe := a.current != nil
	a.mu.Unlock()
	return hasRecipe && a.variations.CanRequest()
}

// StartCapture begins a capture session on the configured device.
func (a *App) StartCapture(ctx context.Context, facing capture.Facing) error {
	return a.session.Start(ctx, facing)
}

// AnalyzeCapture freezes a frame from the active capture session, extracts
// ingredients from it and merges them into the session's ingredient text.
// The session always ends idle with the stream released; on failure the
// ingredient text is untouched.
func (a *App) AnalyzeCapture(ctx context.Context) (string, error) {
	detected, err := a.session.Capture(ctx, func(ctx context.Context, frame capture.Frame) (string, error) {
		return a.extractor.Extract(ctx, gateway.Image{
			Data:     frame.Data,
			MIMEType: frame.MIMEType,
		})
	})
	if err != nil {
		return "", err
	}
	return a.mergeIngredients(detected), nil
}

// CancelCapture aborts the capture session, releasing the device stream if
// one is held.
func (a *App) CancelCapture() {
	a.session.Cancel()
}

// CaptureState returns the capture session state.
func (a *App) CaptureState() capture.State {
	return a.session.State()
}

// AnalyzeFrame extracts ingredients from an externally captured frame, such
// as one uploaded by a browser client, and merges them into the session's
// ingredient text.
func (a *App) AnalyzeFrame(ctx context.Context, frame gateway.Image) (string, error) {
	detected, err := a.extractor.Extract(ctx, frame)
	if err != nil {
		return "", err
	}
	return a.mergeIngredients(detected), nil
}

func (a *App) mergeIngredients(detected string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ingredients = vision.Merge(a.ingredients, detected)
	return a.ingredients
}

// SetIngredients replaces the session's ingredient text, for example when
// the user edits the field directly.
func (a *App) SetIngredients(text string) {
	a.mu.Lock()
	a.ingredients = strings.TrimSpace(text)
	a.mu.Unlock()
}

// Ingredients returns the session's current ingredient text.
func (a *App) Ingredients() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ingredients
}

// CurrentRecipe returns the most recently generated recipe, or nil.
func (a *App) CurrentRecipe() *recipe.Recipe {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// ExportText renders the current recipe as portable text for clipboard and
// share consumers.
func (a *App) ExportText() (string, error) {
	a.mu.Lock()
	current := a.current
	a.mu.Unlock()
	if current == nil {
		return "", ErrNoRecipe
	}
	return recipe.FormatText(current), nil
}

// Reset clears the session entirely: ingredient text, preference, current
// recipe and the variation counter. Any capture in flight is canceled.
func (a *App) Reset() {
	a.session.Cancel()
	a.variations.Reset()
	a.mu.Lock()
	a.ingredients = ""
	a.preference = recipe.PreferenceNone
	a.current = nil
	a.mu.Unlock()
}

// unavailableDevice is the device used when no camera capability is
// configured.
type unavailableDevice struct{}

func (unavailableDevice) Acquire(context.Context, capture.Facing) (capture.Stream, error) {
	return nil, errors.New("no capture device configured")
}
