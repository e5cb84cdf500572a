// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipe

import (
	"google.golang.org/genai"
)

// Preference is a dietary or style preference applied to a generation.
type Preference string

const (
	// PreferenceNone means no preference was selected.
	PreferenceNone Preference = ""
	// PreferenceQuick asks for a dish ready in as little time as possible.
	PreferenceQuick Preference = "quick"
	// PreferenceVegetarian asks for a dish with no meat or fish.
	PreferenceVegetarian Preference = "vegetarian"
	// PreferenceLight asks for a light, low-fat dish.
	PreferenceLight Preference = "light"
	// PreferenceComfort asks for a hearty, homestyle dish.
	PreferenceComfort Preference = "comfort"
)

// KnownPreferences are the preferences accepted by the API.
var KnownPreferences = []Preference{
	PreferenceQuick,
	PreferenceVegetarian,
	PreferenceLight,
	PreferenceComfort,
}

// KnownPreference reports whether p is empty or one of KnownPreferences.
func KnownPreference(p Preference) bool {
	if p == PreferenceNone {
		return true
	}
	for _, known := range KnownPreferences {
		if p == known {
			return true
		}
	}
	return false
}

// Recipe is a single generated cooking result. A recipe is immutable once
// constructed - requesting another idea builds a new Recipe rather than
// mutating fields in place.
type Recipe struct {
	// Name is the name of the dish.
	Name string `json:"name"`

	// Ingredients are the ingredients used by the recipe, in generation order.
	Ingredients []string `json:"ingredients"`

	// Instructions are the preparation steps, in order. Step order is
	// semantically meaningful and must be preserved.
	Instructions []string `json:"instructions"`

	// TotalTime is the total preparation time as free-form text.
	TotalTime string `json:"totalTime"`

	// Tip is an optional chef's tip for the recipe.
	Tip string `json:"tip,omitempty"`

	// ImageURL is an optional data URI with an illustrative image of the dish.
	// It is attached best-effort after generation and may remain empty.
	ImageURL string `json:"imageUrl,omitempty"`
}

// Valid reports whether the recipe satisfies the structured-output contract:
// name and total time present, ingredients and instructions non-empty.
func (r *Recipe) Valid() bool {
	return r.Name != "" && r.TotalTime != "" && len(r.Ingredients) > 0 && len(r.Instructions) > 0
}

// GenerationRequest describes one recipe generation cycle. It is ephemeral
// and never persisted.
type GenerationRequest struct {
	// IngredientsText is the raw ingredient list as entered or captured.
	IngredientsText string

	// Preference is the selected preference, or PreferenceNone.
	Preference Preference

	// IsVariation alters the prompt to demand a different cooking technique
	// from prior suggestions. It is a flag, not a reference to the prior
	// recipe.
	IsVariation bool
}

// ContentSchema constrains structured recipe generation. Name, ingredients,
// instructions and total time are required; the tip is optional.
var ContentSchema = &genai.Schema{
	Type:        "object",
	Description: "A single cookable recipe.",
	Required:    []string{"name", "ingredients", "instructions", "totalTime"},
	Properties: map[string]*genai.Schema{
		"name": {
			Type:        "string",
			Description: "The name of the dish.",
		},
		"ingredients": {
			Type:        "array",
			Description: "The ingredients used by the recipe, with quantities.",
			Items: &genai.Schema{
				Type:        "string",
				Description: "A single ingredient with its quantity.",
			},
		},
		"instructions": {
			Type:        "array",
			Description: "The preparation steps, in order.",
			Items: &genai.Schema{
				Type:        "string",
				Description: "A single preparation step.",
			},
		},
		"totalTime": {
			Type:        "string",
			Description: "The total preparation time, for example '15 min'.",
		},
		"tip": {
			Type:        "string",
			Description: "An optional chef's tip for the recipe.",
		},
	},
}
