// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package gemini implements the model gateway on the Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
)

// Models are the Gemini model names used for each gateway operation.
type Models struct {
	// Text is the model for structured text generation.
	Text string
	// Image is the model for image generation.
	Image string
	// Vision is the model for image understanding.
	Vision string
}

// NewClient returns a gateway backed by the Gemini API.
func NewClient(genAI *genai.Client, models Models) *Client {
	return &Client{
		genAI:  genAI,
		models: models,
	}
}

// Client is a model gateway backed by the Gemini API.
type Client struct {
	genAI  *genai.Client
	models Models
}

var _ gateway.Generator = (*Client)(nil)

func (c *Client) GenerateStructured(ctx context.Context, prompt string, systemInstruction string, schema *genai.Schema) ([]byte, error) {
	res, err := c.genAI.Models.GenerateContent(ctx, c.models.Text, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	})
	if err != nil {
		return nil, &gateway.ModelError{Op: "generate structured text", Err: err}
	}
	text := res.Text()
	if text == "" {
		return nil, &gateway.ModelError{Op: "generate structured text", Err: fmt.Errorf("%w: no text content", gateway.ErrInvalidResponse)}
	}
	return []byte(text), nil
}

func (c *Client) GenerateImage(ctx context.Context, prompt string, aspectRatio string) (*gateway.Image, error) {
	res, err := c.genAI.Models.GenerateContent(ctx, c.models.Image, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: aspectRatio,
		},
	})
	if err != nil {
		return nil, &gateway.ModelError{Op: "generate image", Err: err}
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil, nil
	}
	for _, part := range res.Candidates[0].Content.Parts {
		if b := part.InlineData; b != nil && len(b.Data) > 0 {
			return &gateway.Image{
				Data:     b.Data,
				MIMEType: b.MIMEType,
			}, nil
		}
	}
	// The model declined to return an image part.
	return nil, nil
}

func (c *Client) DescribeImage(ctx context.Context, img gateway.Image, instruction string) (string, error) {
	res, err := c.genAI.Models.GenerateContent(ctx, c.models.Vision, []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						MIMEType: img.MIMEType,
						Data:     img.Data,
					},
				},
				{
					Text: instruction,
				},
			},
		},
	}, nil)
	if err != nil {
		return "", &gateway.ModelError{Op: "describe image", Err: err}
	}
	text := res.Text()
	if text == "" {
		return "", &gateway.ModelError{Op: "describe image", Err: fmt.Errorf("%w: no text content", gateway.ErrInvalidResponse)}
	}
	return text, nil
}
