// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package exportrecipe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/app"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
)

type fakeGateway struct {
	structured []byte
}

func (f *fakeGateway) GenerateStructured(context.Context, string, string, *genai.Schema) ([]byte, error) {
	return f.structured, nil
}

func (f *fakeGateway) GenerateImage(context.Context, string, string) (*gateway.Image, error) {
	return nil, nil
}

func (f *fakeGateway) DescribeImage(context.Context, gateway.Image, string) (string, error) {
	panic("not used")
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/export", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestExportFromBody(t *testing.T) {
	a := app.New(&fakeGateway{}, nil, 3)
	w := post(t, NewHandler(a), `{
		"name": "Fried Rice",
		"ingredients": ["rice", "egg"],
		"instructions": ["Heat oil", "Fry egg"],
		"totalTime": "15 min",
		"tip": "Use day-old rice"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))

	text := w.Body.String()
	assert.True(t, strings.HasPrefix(text, "Fried Rice\n"), "text: %q", text)
	assert.Contains(t, text, "Total time: 15 min")
	assert.Contains(t, text, "- rice")
	assert.Contains(t, text, "2. Fry egg")
	assert.Contains(t, text, "Tip: Use day-old rice")
}

func TestExportCurrentRecipe(t *testing.T) {
	a := app.New(&fakeGateway{structured: []byte(`{
		"name": "Fried Rice",
		"ingredients": ["rice", "egg"],
		"instructions": ["Heat oil"],
		"totalTime": "15 min"
	}`)}, nil, 3)
	_, err := a.Generate(context.Background(), "rice, egg", recipe.PreferenceNone)
	require.NoError(t, err)

	w := post(t, NewHandler(a), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fried Rice")
}

func TestExportNoRecipe(t *testing.T) {
	a := app.New(&fakeGateway{}, nil, 3)
	w := post(t, NewHandler(a), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportInvalidBody(t *testing.T) {
	a := app.New(&fakeGateway{}, nil, 3)

	w := post(t, NewHandler(a), "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Parseable but incomplete recipes are rejected too.
	w = post(t, NewHandler(a), `{"name": "Fried Rice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
