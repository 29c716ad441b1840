package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = "00020101021126360014br.gov.bcb.pix0114+5592999999999520400005303986540590.095802BR5919CONVENCAO AMAZONICA6006MANAUS62070503***6304"

func TestGenerator_PNG(t *testing.T) {
	data, err := NewGenerator().PNG(samplePayload, 0)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "expected png signature")

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestGenerator_PNGEmpty(t *testing.T) {
	_, err := NewGenerator().PNG("", 300)
	assert.Error(t, err)
}
