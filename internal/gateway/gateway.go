// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package gateway defines the typed boundary to the generative model service.
// Implementations live in subpackages, one per provider. The gateway performs
// no retries - failures surface once and retries, if any, are the caller's
// responsibility.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Image is an inline image payload returned by or sent to the model.
type Image struct {
	// Data is the compressed image bytes.
	Data []byte
	// MIMEType is the MIME type of Data, for example "image/jpeg".
	MIMEType string
}

// Generator is the capability surface of the generative model.
type Generator interface {
	// GenerateStructured generates a JSON value constrained by schema. A
	// transport failure or a successful response with unusable content is a
	// *ModelError - callers must not attempt partial recovery.
	GenerateStructured(ctx context.Context, prompt string, systemInstruction string, schema *genai.Schema) ([]byte, error)

	// GenerateImage generates an image for prompt with the given aspect ratio
	// hint, for example "1:1". A nil Image with nil error means the model
	// declined - an explicit optional result, not an error.
	GenerateImage(ctx context.Context, prompt string, aspectRatio string) (*Image, error)

	// DescribeImage invokes the model in vision mode on img with a fixed
	// instruction and returns the raw text response.
	DescribeImage(ctx context.Context, img Image, instruction string) (string, error)
}

// ErrInvalidResponse indicates the model returned a response that could not
// be used, such as empty content or content failing schema validation.
var ErrInvalidResponse = errors.New("invalid model response")

// ModelError wraps a failure from the generative model service.
type ModelError struct {
	// Op is the operation that failed, for example "generate structured text".
	Op string
	// Err is the underlying error.
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}
