package label

import "strings"

// =============================================================================
// Template Resolver
//
// A template arranges the measurement ($M), component ($C), and species ($S)
// fragments into a LaTeX body. Most measurements use the default positional
// template; a few carry their own arrangement.
// =============================================================================

// defaultTemplate is the positional fallback: measurement with the component
// and species in the subscript.
const defaultTemplate = `{$M}_{{$C};{$S}}`

// measurementTemplates maps measurement codes to their templates.
// Only measurements whose label shape deviates from the default appear here.
var measurementTemplates = map[string]string{
	"n":      `$M_{$S}`,
	"rho":    `$M_{$S}`,
	"ca":     `{$M}_{$S}`,
	"cs":     `{$M}_{$S}`,
	"cfast":  `{$M}_{$S}`,
	"caani":  `{$M}^{($C)}_{$S}`,
	"nu":     `{$M}_{$S}`,
	"ra":     `{$M}_{$S}`,
	"sigmac": `{$M}_{$S}`,
	"sigmar": `{$M}_{$S}`,
	"beta":   `{$M}_{{$C};{$S}}`,
	"qhat":   `{$M}_{{$C};{$S}}`,
}

// resolveTemplate selects the template for a measurement code, falling back
// to the default positional template.
func resolveTemplate(measurement string, ov Overrides) string {
	if tpl, ok := ov.Templates[measurement]; ok {
		return tpl
	}
	if tpl, ok := measurementTemplates[measurement]; ok {
		return tpl
	}
	return defaultTemplate
}

// expandTemplate substitutes the three fragments into a template. The
// placeholder grammar is a closed set ($M, $C, $S); anything else in the
// template is literal LaTeX.
func expandTemplate(tpl, m, c, s string) string {
	r := strings.NewReplacer("$M", m, "$C", c, "$S", s)
	return cleanEmptyGroups(r.Replace(tpl))
}

// emptyGroupPatterns are the exact artifacts an empty fragment can leave
// behind, in removal order. The list is declarative: cleanEmptyGroups applies
// it repeatedly until a fixpoint, so nested leftovers ("{};{}" collapsing to
// "{;}" and onward) are also removed.
var emptyGroupPatterns = []struct{ old, new string }{
	{`\;()`, ``},
	{`\;{}`, ``},
	{`()`, ``},
	{`{}`, ``},
	{`;}`, `}`},
	{`,}`, `}`},
	{`{;`, `{`},
	{`{,`, `{`},
	{`^_`, `_`},
}

// cleanEmptyGroups removes empty-group artifacts from a rendered body.
// Trailing separators left at the very end of the body (a dangling subscript
// from an all-empty group) are stripped last.
func cleanEmptyGroups(s string) string {
	for {
		prev := s
		for _, p := range emptyGroupPatterns {
			s = strings.ReplaceAll(s, p.old, p.new)
		}
		if s == prev {
			break
		}
	}
	s = strings.TrimSuffix(s, "_")
	s = strings.TrimSuffix(s, "^")
	return s
}
