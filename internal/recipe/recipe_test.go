// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name   string
		recipe Recipe
		want   bool
	}{
		{
			name: "complete",
			recipe: Recipe{
				Name:         "Fried Rice",
				TotalTime:    "15 min",
				Ingredients:  []string{"rice"},
				Instructions: []string{"Fry"},
			},
			want: true,
		},
		{
			name: "no tip is still valid",
			recipe: Recipe{
				Name:         "Fried Rice",
				TotalTime:    "15 min",
				Ingredients:  []string{"rice"},
				Instructions: []string{"Fry"},
				Tip:          "",
			},
			want: true,
		},
		{
			name: "missing name",
			recipe: Recipe{
				TotalTime:    "15 min",
				Ingredients:  []string{"rice"},
				Instructions: []string{"Fry"},
			},
			want: false,
		},
		{
			name: "missing total time",
			recipe: Recipe{
				Name:         "Fried Rice",
				Ingredients:  []string{"rice"},
				Instructions: []string{"Fry"},
			},
			want: false,
		},
		{
			name: "empty ingredients",
			recipe: Recipe{
				Name:         "Fried Rice",
				TotalTime:    "15 min",
				Instructions: []string{"Fry"},
			},
			want: false,
		},
		{
			name: "empty instructions",
			recipe: Recipe{
				Name:        "Fried Rice",
				TotalTime:   "15 min",
				Ingredients: []string{"rice"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.recipe.Valid())
		})
	}
}

func TestKnownPreference(t *testing.T) {
	assert.True(t, KnownPreference(PreferenceNone))
	assert.True(t, KnownPreference(PreferenceQuick))
	assert.True(t, KnownPreference(PreferenceVegetarian))
	assert.False(t, KnownPreference("spicy"))
}

func TestContentSchemaRequiredFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"name", "ingredients", "instructions", "totalTime"}, ContentSchema.Required)
	assert.Contains(t, ContentSchema.Properties, "tip")
	assert.NotContains(t, ContentSchema.Required, "tip")
}
