package compile

import (
	"fmt"
	"strings"

	"crewgram/models"
)

// Compiler turns a roster plus a template into a fully resolved, themed,
// self-contained HTML document. Compilation is a pure function of its
// inputs: identical inputs yield byte-identical output.
type Compiler struct {
	assets *AssetResolver
}

// NewCompiler creates a Compiler resolving assets through the given resolver.
func NewCompiler(assets *AssetResolver) *Compiler {
	return &Compiler{assets: assets}
}

// Placeholder markup used when the boat silhouette cannot be resolved.
const boatImagePlaceholder = `<div class="boat-image-placeholder">[Boat image unavailable]</div>`

// Category line defaults, joined with " | " between category and event.
const (
	defaultCategory   = "Open"
	defaultEvent      = "Club"
	categorySeparator = " | "
)

// boatSizeCSS maps the manifest size enum to layout CSS, keyed by the
// boat-size-* class the compiler stamps onto the img tag.
var boatSizeCSS = map[string]string{
	"small":  ".boat-size-small { width: 30%; }",
	"medium": ".boat-size-medium { width: 50%; }",
	"large":  ".boat-size-large { width: 75%; }",
	"full":   ".boat-size-full { width: 100%; }",
}

// boatPositionCSS maps the manifest position enum to placement CSS.
var boatPositionCSS = map[string]string{
	"top-left":     ".boat-pos-top-left { position: absolute; top: 4%; left: 4%; }",
	"top-right":    ".boat-pos-top-right { position: absolute; top: 4%; right: 4%; }",
	"bottom-left":  ".boat-pos-bottom-left { position: absolute; bottom: 4%; left: 4%; }",
	"bottom-right": ".boat-pos-bottom-right { position: absolute; bottom: 4%; right: 4%; }",
	"center":       ".boat-pos-center { position: absolute; top: 50%; left: 50%; transform: translate(-50%, -50%); }",
	"background":   ".boat-pos-background { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: contain; z-index: 0; }",
}

// Compile resolves a roster against a template: assets are embedded, seats
// assigned, placeholders expanded, the boat image and club logo spliced in,
// and the club colors applied over the template's default palette.
//
// Compilation fails only for genuinely invalid input (unknown boat class);
// missing optional assets degrade per the resolver rules.
func (c *Compiler) Compile(roster models.Roster, club models.Club, tmpl models.Template) (string, error) {
	boatImage := c.assets.ResolveBoatImage(roster.BoatClassCode)

	logo := AssetRef{}
	if club.LogoURL != "" {
		logo = c.assets.ResolveLogo(club.LogoURL)
	}

	seats, err := AssignSeats(roster.BoatClassCode, roster.CrewNames, roster.CoxswainName)
	if err != nil {
		return "", fmt.Errorf("compile template %q: %w", tmpl.Name, err)
	}

	markup := Render(tmpl.Markup, buildContext(roster, club, logo, seats))
	markup = c.applyBoatImage(markup, tmpl.Meta.BoatImage, boatImage)
	markup = ConditionalBlock(markup, "clubLogo", logo.Available)
	markup = ApplyTheme(markup, colorScheme(club, tmpl.Meta))

	return markup, nil
}

// buildContext assembles the placeholder context. Scalars are published
// under both the legacy upper-snake names and the camel-case names, and
// the crew list under both block namespaces with their respective
// orderings (legacy: rowing order, cox first; new: boat diagram order).
func buildContext(roster models.Roster, club models.Club, logo AssetRef, seats []SeatAssignment) TemplateData {
	clubName := club.Name
	if clubName == "" {
		clubName = roster.ClubName
	}

	// Compile has already validated the code via AssignSeats.
	boatClassName := ""
	if class, err := models.LookupBoatClass(roster.BoatClassCode); err == nil {
		boatClassName = class.Name
	}

	data := TemplateData{
		legacyCrewBlock: RowingOrder(seats),
		crewBlock:       seats,
	}

	scalars := map[string]string{
		"CLUB_NAME":       clubName,
		"RACE_NAME":       roster.RaceName,
		"BOAT_NAME":       roster.BoatName,
		"COACH_NAME":      roster.CoachName,
		"CREW_NAME":       roster.Name,
		"CATEGORY":        categoryLine(roster),
		"BOAT_CLASS":      roster.BoatClassCode,
		"BOAT_CLASS_NAME": boatClassName,
		"CLUB_LOGO_URL":   logo.URL,
	}
	camel := map[string]string{
		"CLUB_NAME":       "ClubName",
		"RACE_NAME":       "RaceName",
		"BOAT_NAME":       "BoatName",
		"COACH_NAME":      "CoachName",
		"CREW_NAME":       "CrewName",
		"CATEGORY":        "Category",
		"BOAT_CLASS":      "BoatClass",
		"BOAT_CLASS_NAME": "BoatClassName",
		"CLUB_LOGO_URL":   "ClubLogoUrl",
	}
	for key, value := range scalars {
		data[key] = value
		data[camel[key]] = value
	}

	return data
}

// categoryLine joins roster category, competition label, and boat class
// code into the card's category string, e.g. "M1 Senior Men | Open Club 8+".
// Missing parts default to "Open" and "Club".
func categoryLine(roster models.Roster) string {
	category := strings.TrimSpace(roster.Category)
	if category == "" {
		category = defaultCategory
	}
	event := strings.TrimSpace(roster.Event)
	if event == "" {
		event = defaultEvent
	}
	return category + categorySeparator + event + " " + roster.BoatClassCode
}

// applyBoatImage handles the boat silhouette step. With the feature
// disabled in the manifest both the placeholder token and the conditional
// block are stripped outright. Otherwise an img fragment (or the
// unavailable placeholder) is spliced in, the availability conditional is
// processed, and the size/position layout CSS is injected.
func (c *Compiler) applyBoatImage(markup string, cfg models.BoatImageConfig, boatImage AssetRef) string {
	if !cfg.Enabled {
		markup = strings.ReplaceAll(markup, "{{BOAT_IMAGE}}", "")
		return RemoveBlock(markup, "boatImage")
	}

	markup = strings.ReplaceAll(markup, "{{BOAT_IMAGE}}", boatImageFragment(cfg, boatImage))
	markup = ConditionalBlock(markup, "boatImage", boatImage.Available)
	return injectBoatLayoutCSS(markup, cfg)
}

// boatImageFragment builds the img markup for an available silhouette, or
// the documented placeholder text when the asset could not be resolved.
func boatImageFragment(cfg models.BoatImageConfig, boatImage AssetRef) string {
	if !boatImage.Available {
		return boatImagePlaceholder
	}

	size := cfg.Size
	if _, exists := boatSizeCSS[size]; !exists {
		size = "medium"
	}
	position := cfg.Position
	if _, exists := boatPositionCSS[position]; !exists {
		position = "center"
	}

	var style strings.Builder
	if cfg.Opacity > 0 {
		fmt.Fprintf(&style, "opacity: %g;", cfg.Opacity)
	}
	if cfg.Style != "" {
		style.WriteString(cfg.Style)
	}

	fragment := fmt.Sprintf(`<img src="%s" alt="Boat" class="boat-image boat-size-%s boat-pos-%s"`,
		boatImage.URL, size, position)
	if style.Len() > 0 {
		fragment += fmt.Sprintf(` style="%s"`, style.String())
	}
	return fragment + "/>"
}

// injectBoatLayoutCSS appends the size and position classes before the
// stylesheet close tag, creating a stylesheet before the head close when
// the template has none.
func injectBoatLayoutCSS(markup string, cfg models.BoatImageConfig) string {
	var rules []string
	if rule, exists := boatSizeCSS[cfg.Size]; exists {
		rules = append(rules, rule)
	} else {
		rules = append(rules, boatSizeCSS["medium"])
	}
	if rule, exists := boatPositionCSS[cfg.Position]; exists {
		rules = append(rules, rule)
	} else {
		rules = append(rules, boatPositionCSS["center"])
	}
	css := "\n" + strings.Join(rules, "\n") + "\n"

	if idx := strings.Index(markup, "</style>"); idx >= 0 {
		return markup[:idx] + css + markup[idx:]
	}
	if idx := strings.Index(markup, "</head>"); idx >= 0 {
		return markup[:idx] + "<style>" + css + "</style>" + markup[idx:]
	}
	return markup
}

// colorScheme picks the club preset when set, falling back to the colors
// the template manifest was authored with.
func colorScheme(club models.Club, meta models.TemplateMeta) models.ColorScheme {
	scheme := club.Scheme()
	if scheme.PrimaryColor == "" {
		scheme.PrimaryColor = meta.PrimaryColor
	}
	if scheme.SecondaryColor == "" {
		scheme.SecondaryColor = meta.SecondaryColor
	}
	return scheme
}
