package utils

import (
	"strconv"
	"strings"
)

// NormalizeHex normalizes a 6-digit hex color to "#rrggbb" lowercase form.
// Input may omit the leading '#'. Values that are not 6 hex digits are
// returned trimmed but otherwise unchanged.
func NormalizeHex(color string) string {
	trimmed := strings.TrimSpace(color)
	candidate := strings.TrimPrefix(trimmed, "#")
	if len(candidate) != 6 {
		return trimmed
	}
	if _, err := strconv.ParseUint(candidate, 16, 32); err != nil {
		return trimmed
	}
	return "#" + strings.ToLower(candidate)
}

// HexToRGB parses a "#rrggbb" color into its channel values.
// Returns ok=false for anything that is not a 6-digit hex color.
func HexToRGB(color string) (r, g, b int, ok bool) {
	candidate := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(candidate) != 6 {
		return 0, 0, 0, false
	}
	value, err := strconv.ParseUint(candidate, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(value >> 16), int(value >> 8 & 0xff), int(value & 0xff), true
}
