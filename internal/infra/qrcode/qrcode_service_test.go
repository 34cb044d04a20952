package qrcode

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateProductQR(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(256, "M", "https://shop.example.com/")

	png, err := svc.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	t.Parallel()

	// Unknown correction level and non-positive size fall back to defaults.
	svc := NewQRCodeService(0, "X", "https://shop.example.com")

	png, err := svc.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
