package compile

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// AssetRef is the result of resolving a boat image or logo reference.
// URL is either an inline data URI (local assets, embedded so the headless
// renderer needs no filesystem or network access) or an external URL passed
// through unchanged.
type AssetRef struct {
	Available bool   `json:"available"`
	URL       string `json:"url"`
}

// boatImageFiles maps boat class codes to silhouette files in the boat
// asset directory. Codes without a row resolve to Available=false.
var boatImageFiles = map[string]string{
	"8+": "eight.svg",
	"4+": "four_coxed.svg",
	"4-": "four.svg",
	"4x": "quad.svg",
	"2+": "pair_coxed.svg",
	"2-": "pair.svg",
	"2x": "double.svg",
	"1x": "single.svg",
}

// AssetResolver resolves boat class codes and logo references to embeddable
// images. All failures degrade to AssetRef{Available: false}; the resolver
// never returns an error to the caller.
type AssetResolver struct {
	boatDir string
	logoDir string
}

// NewAssetResolver creates an AssetResolver reading boat silhouettes and
// managed logos from the given directories.
func NewAssetResolver(boatDir, logoDir string) *AssetResolver {
	return &AssetResolver{boatDir: boatDir, logoDir: logoDir}
}

// ResolveBoatImage resolves a boat class code to an inline data URI.
// Unknown codes and missing or unreadable files yield Available=false.
func (r *AssetResolver) ResolveBoatImage(boatClassCode string) AssetRef {
	filename, exists := boatImageFiles[boatClassCode]
	if !exists {
		return AssetRef{}
	}

	path := filepath.Join(r.boatDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Boat image not available for %s: %v", boatClassCode, err)
		return AssetRef{}
	}

	return AssetRef{Available: true, URL: dataURI(data, boatImageMIME(filename))}
}

// ResolveLogo resolves a logo reference. Managed (relative) paths are read
// from the logo directory and embedded as a data URI; absolute http(s) URLs
// pass through unchanged. The renderer may or may not be able to fetch
// them, which is an accepted risk for externally hosted logos.
func (r *AssetResolver) ResolveLogo(logoRef string) AssetRef {
	logoRef = strings.TrimSpace(logoRef)
	if logoRef == "" {
		return AssetRef{}
	}

	if strings.HasPrefix(logoRef, "http://") || strings.HasPrefix(logoRef, "https://") {
		return AssetRef{Available: true, URL: logoRef}
	}

	path := filepath.Join(r.logoDir, filepath.Base(logoRef))
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  Logo not available for %s: %v", logoRef, err)
		return AssetRef{}
	}

	return AssetRef{Available: true, URL: dataURI(data, logoMIME(path))}
}

// dataURI builds an inline data URI from raw image bytes.
func dataURI(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// boatImageMIME derives the MIME type for a boat silhouette file.
func boatImageMIME(filename string) string {
	if filepath.Ext(filename) == ".svg" {
		return "image/svg+xml"
	}
	return "image/png"
}

// logoMIME derives the MIME type for a managed logo file, defaulting to PNG.
func logoMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
