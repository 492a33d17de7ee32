package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageDeTest(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dimensions(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestCompressImage_ReduitLesGrandesImages(t *testing.T) {
	data := imageDeTest(t, 2400, 1200)

	out, err := CompressImage(data, 1200)
	require.NoError(t, err)

	w, h := dimensions(t, out)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 600, h)
}

func TestCompressImage_Portrait(t *testing.T) {
	data := imageDeTest(t, 600, 2400)

	out, err := CompressImage(data, 1200)
	require.NoError(t, err)

	w, h := dimensions(t, out)
	assert.Equal(t, 300, w)
	assert.Equal(t, 1200, h)
}

func TestCompressImage_PetiteImageNonAgrandie(t *testing.T) {
	data := imageDeTest(t, 200, 100)

	out, err := CompressImage(data, 1200)
	require.NoError(t, err)

	w, h := dimensions(t, out)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
}

func TestCompressImage_DonneesInvalides(t *testing.T) {
	_, err := CompressImage([]byte("pas une image"), 1200)
	assert.Error(t, err)
}

func TestCompressImage_DimensionInvalide(t *testing.T) {
	data := imageDeTest(t, 100, 100)
	_, err := CompressImage(data, 0)
	assert.Error(t, err)
}
