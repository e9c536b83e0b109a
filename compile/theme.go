package compile

import (
	"fmt"
	"strings"

	"crewgram/models"
	"crewgram/utils"
)

// Color re-theming is a literal rewrite-table pass, not a CSS parser.
// The stock templates are authored against one fixed palette (emerald
// greens with a fuchsia accent), so every color they can contain is known
// up front. Four ordered tables rewrite whole gradient declarations, bare
// hex tokens, rgba border forms, and SVG fill attributes; anything that
// does not match is left untouched and the pass never fails.
//
// New templates extend the tables, not the code.

// themeRule is one literal pattern and its scheme-parameterized rewrite.
type themeRule struct {
	pattern string
	replace func(scheme models.ColorScheme) string
}

// gradientRules rewrite the authored gradient declarations wholesale so
// the stop structure survives re-theming.
var gradientRules = []themeRule{
	{
		pattern: "linear-gradient(135deg, #059669 0%, #10b981 50%, #d946ef 100%)",
		replace: func(s models.ColorScheme) string {
			return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 50%%, %s 100%%)",
				s.PrimaryColor, s.SecondaryColor, s.SecondaryColor)
		},
	},
	{
		pattern: "linear-gradient(180deg, #047857 0%, #059669 100%)",
		replace: func(s models.ColorScheme) string {
			return fmt.Sprintf("linear-gradient(180deg, %s 0%%, %s 100%%)",
				s.PrimaryColor, s.SecondaryColor)
		},
	},
	{
		pattern: "radial-gradient(circle at top right, #10b981 0%, #047857 70%)",
		replace: func(s models.ColorScheme) string {
			return fmt.Sprintf("radial-gradient(circle at top right, %s 0%%, %s 70%%)",
				s.SecondaryColor, s.PrimaryColor)
		},
	},
}

// hexRules map each bare palette color to primary or secondary.
var hexRules = []themeRule{
	{pattern: "#059669", replace: func(s models.ColorScheme) string { return s.PrimaryColor }},
	{pattern: "#047857", replace: func(s models.ColorScheme) string { return s.PrimaryColor }},
	{pattern: "#10b981", replace: func(s models.ColorScheme) string { return s.SecondaryColor }},
	{pattern: "#34d399", replace: func(s models.ColorScheme) string { return s.SecondaryColor }},
	{pattern: "#d946ef", replace: func(s models.ColorScheme) string { return s.SecondaryColor }},
}

// borderRules rewrite the rgba() forms the templates use for borders and
// translucent fills, which the bare hex pass cannot reach.
var borderRules = []themeRule{
	{
		pattern: "rgba(5, 150, 105,",
		replace: func(s models.ColorScheme) string { return rgbaPrefix(s.PrimaryColor, "rgba(5, 150, 105,") },
	},
	{
		pattern: "rgba(16, 185, 129,",
		replace: func(s models.ColorScheme) string { return rgbaPrefix(s.SecondaryColor, "rgba(16, 185, 129,") },
	},
	{
		pattern: "border-bottom: 3px solid #065f46",
		replace: func(s models.ColorScheme) string { return "border-bottom: 3px solid " + s.PrimaryColor },
	},
}

// svgFillRules rewrite fill attributes inside inline SVG silhouettes.
var svgFillRules = []themeRule{
	{pattern: `fill="#064e3b"`, replace: func(s models.ColorScheme) string { return `fill="` + s.PrimaryColor + `"` }},
	{pattern: `fill="#6ee7b7"`, replace: func(s models.ColorScheme) string { return `fill="` + s.SecondaryColor + `"` }},
}

// ApplyTheme rewrites the template's default palette to the given scheme.
// Tables are applied in order: gradients, bare hex, borders, SVG fills,
// then the hover snippet is appended before the stylesheet close.
// Unmatched patterns are left unchanged; ApplyTheme never fails.
func ApplyTheme(markup string, scheme models.ColorScheme) string {
	scheme.PrimaryColor = utils.NormalizeHex(scheme.PrimaryColor)
	scheme.SecondaryColor = utils.NormalizeHex(scheme.SecondaryColor)

	for _, table := range [][]themeRule{gradientRules, hexRules, borderRules, svgFillRules} {
		for _, rule := range table {
			markup = strings.ReplaceAll(markup, rule.pattern, rule.replace(scheme))
		}
	}

	return appendHoverEffect(markup, scheme)
}

// appendHoverEffect inserts the crew-row hover snippet, tinted with the
// primary color, before the first closing style tag. Markup without a
// stylesheet passes through unchanged.
func appendHoverEffect(markup string, scheme models.ColorScheme) string {
	if scheme.PrimaryColor == "" {
		return markup
	}
	idx := strings.Index(markup, "</style>")
	if idx < 0 {
		return markup
	}
	tint := scheme.PrimaryColor
	if prefix := rgbaPrefix(scheme.PrimaryColor, ""); prefix != "" {
		tint = prefix + " 0.15)"
	}
	snippet := fmt.Sprintf(
		"\n.crew-row:hover { background: %s; box-shadow: 0 0 0 2px %s; }\n",
		tint, scheme.PrimaryColor,
	)
	return markup[:idx] + snippet + markup[idx:]
}

// rgbaPrefix converts a hex color to an "rgba(r, g, b," prefix, keeping
// whatever alpha follows in the original declaration. Falls back to the
// original pattern if the hex color does not parse.
func rgbaPrefix(hexColor, fallback string) string {
	r, g, b, ok := utils.HexToRGB(hexColor)
	if !ok {
		return fallback
	}
	return fmt.Sprintf("rgba(%d, %d, %d,", r, g, b)
}
