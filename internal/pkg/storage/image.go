package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

const maxImageBytes = 10 << 20 // 10 MB

// allowed image formats for face uploads, as registered decoder names
var allowedImageFormats = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// SniffImage reads an uploaded image, verifies it decodes as JPEG, PNG or
// WebP, and returns the raw bytes with the detected content type. Detection
// goes by content, not by file extension or the client-sent Content-Type.
func SniffImage(r io.Reader) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unrecognized image format: %w", err)
	}

	contentType, ok := allowedImageFormats[format]
	if !ok {
		return nil, "", fmt.Errorf("unsupported image format: %s", format)
	}

	return data, contentType, nil
}
