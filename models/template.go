package models

import "errors"

// ErrTemplateNotFound is returned by the template repository when the
// requested template does not exist in the library directory.
var ErrTemplateNotFound = errors.New("template not found")

// Template is one visual layout style: raw HTML/CSS markup with
// {{PLACEHOLDER}} tokens plus its manifest metadata.
type Template struct {
	Name   string
	Markup string
	Meta   TemplateMeta
}

// TemplateMeta is the manifest that ships alongside a template's markup
// file. It configures the boat image, the output dimensions, and the
// default colors the template was authored against.
type TemplateMeta struct {
	BoatImage      BoatImageConfig `yaml:"boatImage"`
	Dimensions     Dimensions      `yaml:"dimensions"`
	PrimaryColor   string          `yaml:"primaryColor"`
	SecondaryColor string          `yaml:"secondaryColor"`
}

// BoatImageConfig controls whether and how the boat silhouette is placed
// into the compiled markup.
type BoatImageConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Position string  `yaml:"position"` // top-left, top-right, bottom-left, bottom-right, center, background
	Size     string  `yaml:"size"`     // small, medium, large, full
	Opacity  float64 `yaml:"opacity"`  // 0 means unset, renderer default applies
	Style    string  `yaml:"style"`    // extra inline CSS appended to the img tag
}

// Dimensions is the target pixel size of the rendered image.
type Dimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WidthOr returns the configured width or fallback if unset.
func (d Dimensions) WidthOr(fallback int) int {
	if d.Width > 0 {
		return d.Width
	}
	return fallback
}

// HeightOr returns the configured height or fallback if unset.
func (d Dimensions) HeightOr(fallback int) int {
	if d.Height > 0 {
		return d.Height
	}
	return fallback
}
