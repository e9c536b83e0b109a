package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Thumbnail max dimension for library previews
	maxSizeThumb = 300
)

// FitImage scales a captured image down to fit within the target
// dimensions, preserving aspect ratio. Images already within bounds are
// returned re-encoded but unscaled.
func FitImage(imageData []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	fitted := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	return encodePNG(fitted)
}

// Thumbnail produces a small preview of a rendered card for the library
// listing.
func Thumbnail(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Fit(img, maxSizeThumb, maxSizeThumb, imaging.Lanczos)
	return encodePNG(thumb)
}

// encodePNG encodes an image as PNG bytes.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}
