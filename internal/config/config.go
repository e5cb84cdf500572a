// Copyright (c) Choko (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Model struct {
	// Backend selects the generative model provider, "gemini" or "openai".
	Backend string `koanf:"backend"`

	// Text is the model for structured recipe generation.
	Text string `koanf:"text"`

	// Image is the model for illustration generation.
	Image string `koanf:"image"`

	// Vision is the model for ingredient extraction from frames.
	Vision string `koanf:"vision"`

	// OpenAI are the model names used when the backend is "openai".
	OpenAI OpenAIModels `koanf:"openai"`
}

type OpenAIModels struct {
	// Text is the model for structured recipe generation and vision.
	Text string `koanf:"text"`

	// Image is the model for illustration generation.
	Image string `koanf:"image"`
}

type Generation struct {
	// Variations is the maximum number of variation requests per recipe
	// thread, so at most Variations+1 recipes are generated per ingredient
	// set.
	Variations int `koanf:"variations"`
}

type Capture struct {
	// Frames is a directory of image files served as a development camera.
	// Empty disables the server-side capture device.
	Frames string `koanf:"frames"`

	// Facing is the facing-preference hint, "environment" or "user".
	Facing string `koanf:"facing"`
}

type Config struct {
	config.Common

	// Model is the configuration for the generative model gateway.
	Model Model `koanf:"model"`

	// Generation is the configuration for generation bookkeeping.
	Generation Generation `koanf:"generation"`

	// Capture is the configuration for the capture device.
	Capture Capture `koanf:"capture"`
}
