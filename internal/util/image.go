package util

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"strings"
)

// DataURL converts image bytes to an embeddable base64 data URL.
func DataURL(b []byte, mimeType string) string {
	if len(b) > 0 {
		return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(b)
	}
	return ""
}

// DecodeDataURL parses an image data URL into its bytes and MIME type.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, "", fmt.Errorf("util: invalid data URL %q", dataURL)
	}
	ct, contents, ok := strings.Cut(rest, ";")
	if !ok {
		return nil, "", fmt.Errorf("util: invalid data URL %q", dataURL)
	}
	if !strings.HasPrefix(ct, "image/") {
		return nil, "", fmt.Errorf("util: only image data URLs supported, got %q", ct)
	}
	b64, ok := strings.CutPrefix(contents, "base64,")
	if !ok {
		return nil, "", fmt.Errorf("util: only base64 data URLs supported, got %q", dataURL)
	}
	b, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", fmt.Errorf("util: decoding base64 data URL: %w", err)
	}
	return b, ct, nil
}

// JPEGBytes normalizes an image blob returned by the model to JPEG. PNG data
// is re-encoded; JPEG data is passed through unchanged.
func JPEGBytes(data []byte, mimeType string) ([]byte, error) {
	switch mimeType {
	case "image/jpeg":
		return data, nil
	case "image/png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("util: decoding png image: %w", err)
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("util: encoding png to jpeg: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("util: unsupported mime type %s", mimeType)
	}
}
