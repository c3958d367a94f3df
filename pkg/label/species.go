package label

import (
	"maps"
	"slices"
	"strings"

	"github.com/heliolabs/texlabel/pkg/observability"
)

// =============================================================================
// Species Substitution Engine
//
// A species code may be a "+"-joined composition of atomic species codes,
// e.g. "p1", "a+p1", "3He". Each token is rewritten to its LaTeX fragment
// using longest-match-first, non-overlapping scanning so that "p1" is matched
// before the bare "p" prefix is considered. Unmatched fragments pass through
// unchanged.
// =============================================================================

// speciesTeX maps species codes to LaTeX fragments.
var speciesTeX = map[string]string{
	"a":   `\alpha`,
	"a1":  `\alpha_1`,
	"a2":  `\alpha_2`,
	"e":   `e^-`,
	"p":   `p`,
	"p1":  `p_1`,
	"p2":  `p_2`,
	"he":  `\mathrm{He}`,
	"He":  `\mathrm{He}`,
	"o":   `\mathrm{O}`,
	"O":   `\mathrm{O}`,
	"fe":  `\mathrm{Fe}`,
	"Fe":  `\mathrm{Fe}`,
	"c":   `\mathrm{C}`,
	"C":   `\mathrm{C}`,
	"ne":  `\mathrm{Ne}`,
	"Ne":  `\mathrm{Ne}`,
	"mg":  `\mathrm{Mg}`,
	"Mg":  `\mathrm{Mg}`,
	"si":  `\mathrm{Si}`,
	"Si":  `\mathrm{Si}`,
	"h":   `\mathrm{H}`,
	"H":   `\mathrm{H}`,
	"all": `\mathrm{all}`,
}

// speciesKeysByLength holds the dictionary keys sorted longest first, ties
// broken lexicographically for deterministic scanning.
var speciesKeysByLength = sortKeysByLength(speciesTeX)

func sortKeysByLength(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	slices.SortStableFunc(keys, func(a, b string) int {
		return len(b) - len(a)
	})
	return keys
}

// SubstituteSpecies rewrites a species composition into its LaTeX form.
// It returns the rendered string, preserving "+" separators, and the number
// of species tokens in the composition. An empty input yields ("", 0).
//
//	SubstituteSpecies("a+p1") // => (`\alpha+p_1`, 2)
func SubstituteSpecies(code string) (string, int) {
	return substituteSpecies(code, Overrides{})
}

func substituteSpecies(code string, ov Overrides) (string, int) {
	if code == "" {
		return "", 0
	}

	tokens := strings.Split(code, "+")
	rendered := make([]string, 0, len(tokens))
	count := 0
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		count++
		rendered = append(rendered, renderSpeciesToken(tok, ov))
	}
	return strings.Join(rendered, "+"), count
}

// renderSpeciesToken rewrites a single atomic species token.
//
// Resolution order:
//  1. Exact dictionary hit (overrides first).
//  2. Isotope form: a leading digit run becomes a superscript and the
//     remainder is looked up as a symbol ("3He" -> ^{3}\mathrm{He}).
//  3. Longest-match-first scan; unmatched bytes pass through unchanged.
func renderSpeciesToken(tok string, ov Overrides) string {
	if frag, ok := ov.Species[tok]; ok {
		return frag
	}
	if frag, ok := speciesTeX[tok]; ok {
		return frag
	}

	if prefix, rest := splitIsotope(tok); prefix != "" && rest != "" {
		if frag, ok := ov.Species[rest]; ok {
			return `^{` + prefix + `}` + frag
		}
		if frag, ok := speciesTeX[rest]; ok {
			return `^{` + prefix + `}` + frag
		}
	}

	observability.Render().OnLookupMiss("species", tok)
	return scanSpecies(tok, ov)
}

// splitIsotope splits a leading digit run off a token. Tokens that are all
// digits are not isotopes; they return an empty rest.
func splitIsotope(tok string) (digits, rest string) {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	return tok[:i], tok[i:]
}

// scanSpecies performs the longest-match-first, non-overlapping scan over a
// token with no whole-token dictionary hit. A multi-character code is always
// consumed before any of its prefixes, so a registered code can never be
// split into a dangling unmatched character.
func scanSpecies(tok string, ov Overrides) string {
	keys := speciesKeysByLength
	if len(ov.Species) > 0 {
		merged := maps.Clone(speciesTeX)
		maps.Copy(merged, ov.Species)
		keys = sortKeysByLength(merged)
	}

	var b strings.Builder
	for i := 0; i < len(tok); {
		matched := false
		for _, k := range keys {
			if strings.HasPrefix(tok[i:], k) {
				if frag, ok := ov.Species[k]; ok {
					b.WriteString(frag)
				} else {
					b.WriteString(speciesTeX[k])
				}
				i += len(k)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(tok[i])
			i++
		}
	}
	return b.String()
}
