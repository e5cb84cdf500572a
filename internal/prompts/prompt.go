// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package prompts

import (
	"fmt"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/recipe"
)

// GenerateRecipe returns the system instruction for structured recipe
// generation. The preference is embedded verbatim; absence is expressed as
// the literal "none" so the model does not treat omission as ambiguous.
// When variation is set, the instruction additionally demands a different
// cooking technique from any prior suggestion.
func GenerateRecipe(preference recipe.Preference, variation bool) string {
	pref := "none"
	if preference != recipe.PreferenceNone {
		pref = string(preference)
	}
	prompt := fmt.Sprintf(generateRecipe, pref)
	if variation {
		prompt += generateRecipeVariation
	}
	return prompt
}

const generateRecipe = `You help users cook with the ingredients they already have at home. The user will provide
the list of ingredients available to them. Generate a recipe for them following these rules:

- Use only the listed ingredients. Salt, water and oil may be assumed as implicit extras.
- Produce exactly one recipe per request.
- Keep the preparation simple, homestyle and quick.
- The user's preference for the dish is: %s. Respect it when it is not "none".

Generate the recipe content in the language of the user's ingredient list.
`

const generateRecipeVariation = `
The user has already seen a recipe for these ingredients and wants a different idea. Change the
cooking technique from any prior suggestion (for example baked instead of fried). Do not offer a
superficially reworded version of the same dish.
`

// RecipeImage returns the prompt for the best-effort illustration call,
// interpolating only the recipe name.
func RecipeImage(name string) string {
	return fmt.Sprintf(recipeImage, name)
}

const recipeImage = `Generate a photo of the finished dish "%s". The image must be in a plain, minimalist
food-photography style with good lighting, on a neutral background, with no text. If you cannot generate
an appropriate image, do not return an image.
`

// ExtractIngredients returns the fixed vision instruction that constrains the
// model to a short flat ingredient list.
func ExtractIngredients() string {
	return extractIngredients
}

const extractIngredients = `List the food ingredients visible in this photo. Respond with only a short,
comma-separated list of ingredient names, with no narrative text, no numbering and no quantities.
If no food is visible, respond with "NONE". Do not respond with a list in this case.
`
