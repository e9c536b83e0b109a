package compile

import (
	"fmt"
	"sort"
	"strings"
)

// TemplateData is the compilation context handed to Render: placeholder
// names mapped to scalar values (string or number), booleans for
// conditional blocks, or []SeatAssignment for the crew member blocks.
// Built fresh per compile call, never persisted.
type TemplateData map[string]any

// Legacy and new crew block names. Both namespaces are processed on every
// render so old and new templates keep working against the same engine.
const (
	legacyCrewBlock = "CREW_MEMBERS"
	crewBlock       = "crewMembers"
)

// Cox rows in the legacy crew block swap the neutral row chrome for a
// rose tint. Literal substitutions against the authored template CSS.
const (
	neutralRowBackground = "background: rgba(255, 255, 255, 0.1)"
	coxRowBackground     = "background: rgba(244, 63, 94, 0.25)"
	neutralRowBorder     = "border: 1px solid rgba(255, 255, 255, 0.2)"
	coxRowBorder         = "border: 1px solid rgba(244, 63, 94, 0.5)"
)

// Render resolves every placeholder in markup against data: scalar
// substitution first, then repeated crew blocks, then conditional blocks.
// Missing markers never fail; each step degrades to a no-op.
//
// Keys are processed in sorted order. Scalar values are free text and may
// themselves contain marker-shaped content, so a fixed order keeps the
// output byte-identical across calls with identical inputs.
func Render(markup string, data TemplateData) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch v := data[key].(type) {
		case string:
			markup = SubstituteScalar(markup, key, v)
		case int:
			markup = SubstituteScalar(markup, key, fmt.Sprintf("%d", v))
		case float64:
			markup = SubstituteScalar(markup, key, fmt.Sprintf("%g", v))
		}
	}

	for _, key := range keys {
		members, ok := data[key].([]SeatAssignment)
		if !ok {
			continue
		}
		if key == legacyCrewBlock {
			markup = expandLegacyCrew(markup, members)
		} else {
			markup = expandCrew(markup, key, members)
		}
	}

	for _, key := range keys {
		if flag, ok := data[key].(bool); ok {
			markup = ConditionalBlock(markup, key, flag)
		}
	}

	return markup
}

// SubstituteScalar replaces every occurrence of {{KEY}} and of the
// first-letter-lowered {{kEY-variant}} with value. Marker names are
// case-sensitive; only those two exact spellings are touched.
func SubstituteScalar(markup, key, value string) string {
	markup = strings.ReplaceAll(markup, "{{"+key+"}}", value)
	if lowered := lowerFirst(key); lowered != key {
		markup = strings.ReplaceAll(markup, "{{"+lowered+"}}", value)
	}
	return markup
}

// ExpandBlock locates the first {{#name}}...{{/name}} pair, renders the
// inner fragment once per item via renderItem, and splices the
// concatenation back in place of the whole block. Only the first marker
// pair is processed; nested or repeated blocks of the same name are not
// supported. Missing markers return markup unchanged.
func ExpandBlock(markup, name string, count int, renderItem func(inner string, i int) string) string {
	start, innerStart, innerEnd, end, ok := findBlock(markup, name)
	if !ok {
		return markup
	}

	inner := markup[innerStart:innerEnd]
	var expanded strings.Builder
	for i := 0; i < count; i++ {
		expanded.WriteString(renderItem(inner, i))
	}

	return markup[:start] + expanded.String() + markup[end:]
}

// ConditionalBlock keeps the inner fragment of {{#name}}...{{/name}}
// verbatim when include is true, otherwise removes the whole block,
// markers and all. Missing markers return markup unchanged.
func ConditionalBlock(markup, name string, include bool) string {
	start, innerStart, innerEnd, end, ok := findBlock(markup, name)
	if !ok {
		return markup
	}
	if include {
		return markup[:start] + markup[innerStart:innerEnd] + markup[end:]
	}
	return markup[:start] + markup[end:]
}

// RemoveBlock strips {{#name}}...{{/name}} entirely regardless of any
// data flag. Used when a feature is administratively disabled.
func RemoveBlock(markup, name string) string {
	return ConditionalBlock(markup, name, false)
}

// expandLegacyCrew renders the upper-case crew block. Item placeholders
// are {{POSITION}} and {{NAME}}; rows whose position label contains "cox"
// get the rose-tinted row chrome.
func expandLegacyCrew(markup string, members []SeatAssignment) string {
	return ExpandBlock(markup, legacyCrewBlock, len(members), func(inner string, i int) string {
		member := members[i]
		row := strings.ReplaceAll(inner, "{{POSITION}}", member.Label)
		row = strings.ReplaceAll(row, "{{NAME}}", member.Name)
		if strings.Contains(strings.ToLower(member.Label), "cox") {
			row = strings.ReplaceAll(row, neutralRowBackground, coxRowBackground)
			row = strings.ReplaceAll(row, neutralRowBorder, coxRowBorder)
		}
		return row
	})
}

// expandCrew renders a lower-case crew block with per-member fields.
func expandCrew(markup, name string, members []SeatAssignment) string {
	return ExpandBlock(markup, name, len(members), func(inner string, i int) string {
		member := members[i]
		row := strings.ReplaceAll(inner, "{{name}}", member.Name)
		row = strings.ReplaceAll(row, "{{label}}", member.Label)
		row = strings.ReplaceAll(row, "{{badge}}", member.Badge)
		row = strings.ReplaceAll(row, "{{style}}", member.Style)
		return row
	})
}

// findBlock returns the boundaries of the first {{#name}}...{{/name}}
// pair: block start, inner fragment bounds, and block end.
func findBlock(markup, name string) (start, innerStart, innerEnd, end int, ok bool) {
	startMarker := "{{#" + name + "}}"
	endMarker := "{{/" + name + "}}"

	start = strings.Index(markup, startMarker)
	if start < 0 {
		return 0, 0, 0, 0, false
	}
	innerStart = start + len(startMarker)

	rel := strings.Index(markup[innerStart:], endMarker)
	if rel < 0 {
		return 0, 0, 0, 0, false
	}
	innerEnd = innerStart + rel
	end = innerEnd + len(endMarker)
	return start, innerStart, innerEnd, end, true
}

// lowerFirst lowers the first byte of an ASCII placeholder name.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0]+'a'-'A') + s[1:]
	}
	return s
}
