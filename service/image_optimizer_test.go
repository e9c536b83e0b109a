package service_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewgram/service"
)

// pngFixture builds an in-memory PNG of the given size.
func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestFitImage_ScalesDown(t *testing.T) {
	out, err := service.FitImage(pngFixture(t, 2000, 1000), 1000, 1000)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 500, h)
}

func TestFitImage_WithinBoundsKeepsSize(t *testing.T) {
	out, err := service.FitImage(pngFixture(t, 400, 300), 1000, 1000)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestThumbnail_MaxDimension(t *testing.T) {
	out, err := service.Thumbnail(pngFixture(t, 1080, 1350))
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.LessOrEqual(t, w, 300)
	assert.LessOrEqual(t, h, 300)
}

func TestFitImage_InvalidData(t *testing.T) {
	_, err := service.FitImage([]byte("not an image"), 100, 100)
	assert.Error(t, err)
}
