package storage

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestSniffImage_PNG(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)

	data, contentType, err := SniffImage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, raw, data)
}

func TestSniffImage_RejectsNonImage(t *testing.T) {
	_, _, err := SniffImage(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}

func TestSniffImage_RejectsEmpty(t *testing.T) {
	_, _, err := SniffImage(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestSniffImage_RejectsOversized(t *testing.T) {
	big := make([]byte, maxImageBytes+1)
	_, _, err := SniffImage(bytes.NewReader(big))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}
