// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package synth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
)

const validRecipeJSON = `{
	"name": "Fried Rice",
	"ingredients": ["rice", "egg"],
	"instructions": ["Heat oil", "Fry egg", "Mix rice"],
	"totalTime": "15 min"
}`

type fakeGateway struct {
	structured    []byte
	structuredErr error
	image         *gateway.Image
	imageErr      error

	calls       []string
	imagePrompt string
}

func (f *fakeGateway) GenerateStructured(_ context.Context, _ string, _ string, _ *genai.Schema) ([]byte, error) {
	f.calls = append(f.calls, "structured")
	return f.structured, f.structuredErr
}

func (f *fakeGateway) GenerateImage(_ context.Context, prompt string, _ string) (*gateway.Image, error) {
	f.calls = append(f.calls, "image")
	f.imagePrompt = prompt
	return f.image, f.imageErr
}

func (f *fakeGateway) DescribeImage(context.Context, gateway.Image, string) (string, error) {
	panic("not used")
}

func TestGenerate(t *testing.T) {
	gw := &fakeGateway{
		structured: []byte(validRecipeJSON),
		image:      &gateway.Image{Data: []byte("jpeg-bytes"), MIMEType: "image/jpeg"},
	}
	s := NewSynthesizer(gw)

	r, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "rice, egg"})
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice", r.Name)
	assert.Equal(t, []string{"rice", "egg"}, r.Ingredients)
	assert.True(t, strings.HasPrefix(r.ImageURL, "data:image/jpeg;base64,"), "image url: %q", r.ImageURL)

	// The image call depends on the recipe name, so it must come second.
	assert.Equal(t, []string{"structured", "image"}, gw.calls)
	assert.Contains(t, gw.imagePrompt, "Fried Rice")
}

func TestGenerateBlankIngredients(t *testing.T) {
	gw := &fakeGateway{}
	s := NewSynthesizer(gw)

	_, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "  \n "})
	assert.ErrorIs(t, err, ErrNoIngredients)
	assert.Empty(t, gw.calls)
}

func TestGenerateStructuredFailure(t *testing.T) {
	gw := &fakeGateway{structuredErr: errors.New("model down")}
	s := NewSynthesizer(gw)

	_, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "rice"})
	require.Error(t, err)
	// No illustration attempt without a recipe.
	assert.Equal(t, []string{"structured"}, gw.calls)
}

func TestGenerateUnparseableResponse(t *testing.T) {
	gw := &fakeGateway{structured: []byte("not json")}
	s := NewSynthesizer(gw)

	_, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "rice"})
	require.Error(t, err)
	assert.Equal(t, []string{"structured"}, gw.calls)
}

func TestGenerateMissingRequiredFields(t *testing.T) {
	gw := &fakeGateway{structured: []byte(`{"name": "Fried Rice"}`)}
	s := NewSynthesizer(gw)

	_, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "rice"})
	assert.ErrorIs(t, err, gateway.ErrInvalidResponse)
}

func TestGenerateIllustrationFailure(t *testing.T) {
	gw := &fakeGateway{
		structured: []byte(validRecipeJSON),
		imageErr:   errors.New("image model down"),
	}
	s := NewSynthesizer(gw)

	r, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "rice, egg"})
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice", r.Name)
	assert.Empty(t, r.ImageURL)
}

func TestGenerateIllustrationDeclined(t *testing.T) {
	gw := &fakeGateway{structured: []byte(validRecipeJSON)}
	s := NewSynthesizer(gw)

	r, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "rice, egg"})
	require.NoError(t, err)
	assert.Empty(t, r.ImageURL)
}

func TestGenerateBadImageBytes(t *testing.T) {
	gw := &fakeGateway{
		structured: []byte(validRecipeJSON),
		image:      &gateway.Image{Data: []byte("not a png"), MIMEType: "image/png"},
	}
	s := NewSynthesizer(gw)

	r, err := s.Generate(context.Background(), recipe.GenerationRequest{IngredientsText: "rice, egg"})
	require.NoError(t, err)
	assert.Empty(t, r.ImageURL)
}
