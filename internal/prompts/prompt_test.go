// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
)

func TestGenerateRecipe(t *testing.T) {
	prompt := GenerateRecipe(recipe.PreferenceVegetarian, false)
	assert.Contains(t, prompt, "vegetarian")
	assert.Contains(t, prompt, "exactly one recipe")
	assert.Contains(t, prompt, "Salt, water and oil")
	assert.NotContains(t, prompt, "cooking technique")
}

func TestGenerateRecipeNoPreference(t *testing.T) {
	// Absence is the literal "none", never an empty slot the model could
	// read as ambiguous.
	prompt := GenerateRecipe(recipe.PreferenceNone, false)
	assert.Contains(t, prompt, `preference for the dish is: none`)
}

func TestGenerateRecipeVariation(t *testing.T) {
	prompt := GenerateRecipe(recipe.PreferenceNone, true)
	assert.Contains(t, prompt, "Change the\ncooking technique")
	assert.Contains(t, prompt, "different idea")
}

func TestRecipeImage(t *testing.T) {
	prompt := RecipeImage("Fried Rice")
	assert.Contains(t, prompt, `"Fried Rice"`)
	assert.Contains(t, prompt, "food-photography")
}

func TestExtractIngredients(t *testing.T) {
	prompt := ExtractIngredients()
	assert.Contains(t, prompt, "comma-separated")
	assert.Contains(t, prompt, "NONE")
}
