// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package vision extracts ingredient names from captured still frames.
package vision

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/prompts"
)

// ErrNoIngredients indicates the model found no food in the frame.
var ErrNoIngredients = errors.New("vision: no ingredients detected")

// NewExtractor returns an Extractor using the given gateway.
func NewExtractor(gw gateway.Generator) *Extractor {
	return &Extractor{
		gw: gw,
	}
}

// Extractor turns a captured frame into a short flat ingredient list.
type Extractor struct {
	gw gateway.Generator
}

// Extract invokes the model in vision mode on a compressed still frame and
// returns a comma-joined list of detected ingredient names.
func (e *Extractor) Extract(ctx context.Context, frame gateway.Image) (string, error) {
	text, err := e.gw.DescribeImage(ctx, frame, prompts.ExtractIngredients())
	if err != nil {
		return "", fmt.Errorf("vision: analyzing frame: %w", err)
	}
	list := cleanList(text)
	if list == "" {
		return "", ErrNoIngredients
	}
	return list, nil
}

// Merge appends a detected ingredient list to the user's existing ingredient
// text after a comma-and-space separator, or replaces it when empty. Repeated
// detections across captures are preserved verbatim - no deduplication.
func Merge(existing, detected string) string {
	if existing == "" {
		return detected
	}
	if detected == "" {
		return existing
	}
	return existing + ", " + detected
}

// cleanList normalizes a vision response into a flat comma-separated list.
// The instruction constrains the model to a bare list, but responses still
// occasionally arrive with newlines, bullets or a trailing period.
func cleanList(text string) string {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "NONE") {
		return ""
	}
	var items []string
	for _, line := range strings.Split(text, "\n") {
		for _, item := range strings.Split(line, ",") {
			item = strings.TrimSpace(item)
			item = strings.TrimPrefix(item, "- ")
			item = strings.TrimPrefix(item, "* ")
			item = strings.TrimSuffix(item, ".")
			// Narrative preamble such as "Here are the ingredients:".
			if item == "" || strings.HasSuffix(item, ":") {
				continue
			}
			items = append(items, item)
		}
	}
	return strings.Join(items, ", ")
}
