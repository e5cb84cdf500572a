// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package openai implements the model gateway on the OpenAI API.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
	"google.golang.org/genai"

	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/gateway"
	"github.com/janesantanaia-oss/O-Que-Tem-A/internal/util"
)

// Models are the OpenAI model names used for each gateway operation.
type Models struct {
	// Text is the model for structured text generation and vision requests.
	Text string
	// Image is the model for image generation.
	Image string
}

// NewClient returns a gateway backed by the OpenAI API.
func NewClient(oai *openai.Client, models Models) *Client {
	return &Client{
		oai:    oai,
		models: models,
	}
}

// Client is a model gateway backed by the OpenAI API.
type Client struct {
	oai    *openai.Client
	models Models
}

var _ gateway.Generator = (*Client)(nil)

func (c *Client) GenerateStructured(ctx context.Context, prompt string, systemInstruction string, schema *genai.Schema) ([]byte, error) {
	res, err := c.oai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.models.Text),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "response",
					Description: openai.String(schema.Description),
					Schema:      schemaValue(schema),
				},
			},
		},
	})
	if err != nil {
		return nil, &gateway.ModelError{Op: "generate structured text", Err: err}
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return nil, &gateway.ModelError{Op: "generate structured text", Err: fmt.Errorf("%w: no text content", gateway.ErrInvalidResponse)}
	}
	return []byte(res.Choices[0].Message.Content), nil
}

func (c *Client) GenerateImage(ctx context.Context, prompt string, aspectRatio string) (*gateway.Image, error) {
	res, err := c.oai.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:  openai.ImageModel(c.models.Image),
		Prompt: prompt,
		Size:   imageSize(aspectRatio),
	})
	if err != nil {
		return nil, &gateway.ModelError{Op: "generate image", Err: err}
	}
	if len(res.Data) == 0 || res.Data[0].B64JSON == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(res.Data[0].B64JSON)
	if err != nil {
		return nil, &gateway.ModelError{Op: "generate image", Err: fmt.Errorf("%w: decoding image payload: %w", gateway.ErrInvalidResponse, err)}
	}
	return &gateway.Image{
		Data:     data,
		MIMEType: "image/png",
	}, nil
}

func (c *Client) DescribeImage(ctx context.Context, img gateway.Image, instruction string) (string, error) {
	res, err := c.oai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.models.Text),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(instruction),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: util.DataURL(img.Data, img.MIMEType),
				}),
			}),
		},
	})
	if err != nil {
		return "", &gateway.ModelError{Op: "describe image", Err: err}
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return "", &gateway.ModelError{Op: "describe image", Err: fmt.Errorf("%w: no text content", gateway.ErrInvalidResponse)}
	}
	return res.Choices[0].Message.Content, nil
}

// imageSize maps an aspect ratio hint to the closest size supported by the
// images API.
func imageSize(aspectRatio string) openai.ImageGenerateParamsSize {
	switch aspectRatio {
	case "16:9", "3:2":
		return openai.ImageGenerateParamsSize1536x1024
	case "9:16", "2:3":
		return openai.ImageGenerateParamsSize1024x1536
	default:
		return openai.ImageGenerateParamsSize1024x1024
	}
}

// schemaValue converts a genai schema to the plain JSON-schema map the OpenAI
// API expects. Only the subset used by this service is handled: objects,
// arrays and strings with descriptions and required fields.
func schemaValue(s *genai.Schema) map[string]any {
	m := map[string]any{
		"type": strings.ToLower(string(s.Type)),
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = schemaValue(prop)
		}
		m["properties"] = props
		m["additionalProperties"] = false
	}
	if s.Items != nil {
		m["items"] = schemaValue(s.Items)
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	return m
}
