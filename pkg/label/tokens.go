package label

import (
	"slices"

	"github.com/heliolabs/texlabel/pkg/observability"
)

// =============================================================================
// Token Dictionaries
//
// Static, read-only maps from canonical short codes to LaTeX fragments.
// Initialized at package load and never mutated afterwards; safe for
// unsynchronized concurrent reads. Lookups are total: unknown codes pass
// through verbatim (units fall back to UnitsUnknown).
// =============================================================================

// measurementTeX maps measurement codes to LaTeX fragments.
var measurementTeX = map[string]string{
	"b":      `B`,
	"beta":   `\beta`,
	"ca":     `C_{A}`,
	"caani":  `C_{A}`,
	"cfast":  `C_{F}`,
	"cs":     `C_{s}`,
	"dv":     `\Delta v`,
	"e":      `E`,
	"n":      `n`,
	"nu":     `\nu`,
	"phi":    `\phi`,
	"q":      `q`,
	"qhat":   `\hat{q}`,
	"r":      `r`,
	"ra":     `r_{A}`,
	"rho":    `\rho`,
	"sigmac": `\sigma_{c}`,
	"sigmar": `\sigma_{r}`,
	"T":      `T`,
	"theta":  `\theta`,
	"v":      `v`,
	"w":      `w`,
	"zm":     `Z^{-}`,
	"zp":     `Z^{+}`,
}

// componentTeX maps vector/spatial component codes to LaTeX fragments.
// The scalar pseudo-component renders as nothing at all.
var componentTeX = map[string]string{
	"x":      `X`,
	"y":      `Y`,
	"z":      `Z`,
	"r":      `R`,
	"t":      `T`,
	"n":      `N`,
	"per":    `\perp`,
	"par":    `\parallel`,
	"theta":  `\theta`,
	"phi":    `\phi`,
	"lat":    `\theta`,
	"lon":    `\phi`,
	"mag":    `\mathrm{mag}`,
	"scalar": ``,
}

// unitsTeX maps measurement codes to LaTeX units fragments. Keyed by the
// un-suffixed measurement code: the uncertainty of a quantity carries the
// quantity's own units.
var unitsTeX = map[string]string{
	"b":      `\mathrm{nT}`,
	"beta":   UnitsDimensionless,
	"ca":     `\mathrm{km \; s^{-1}}`,
	"caani":  `\mathrm{km \; s^{-1}}`,
	"cfast":  `\mathrm{km \; s^{-1}}`,
	"cs":     `\mathrm{km \; s^{-1}}`,
	"dv":     `\mathrm{km \; s^{-1}}`,
	"e":      `\mathrm{mV \; m^{-1}}`,
	"n":      `\mathrm{cm}^{-3}`,
	"nu":     `\mathrm{Hz}`,
	"phi":    `\mathrm{deg}`,
	"q":      `\mathrm{mW \; m^{-2}}`,
	"qhat":   UnitsDimensionless,
	"r":      `\mathrm{R_{\odot}}`,
	"ra":     UnitsDimensionless,
	"rho":    `\mathrm{amu \; cm^{-3}}`,
	"sigmac": UnitsDimensionless,
	"sigmar": UnitsDimensionless,
	"T":      `\mathrm{K}`,
	"theta":  `\mathrm{deg}`,
	"v":      `\mathrm{km \; s^{-1}}`,
	"w":      `\mathrm{km \; s^{-1}}`,
	"zm":     `\mathrm{km \; s^{-1}}`,
	"zp":     `\mathrm{km \; s^{-1}}`,
}

// =============================================================================
// Lookup - Total Functions Over the Dictionaries
// =============================================================================

// lookup resolves code against an override table and a built-in table.
// Unknown codes pass through verbatim. The passthrough is intentional:
// label generation must stay robust for measurement codes introduced
// elsewhere in the library before they are catalogued here.
func lookup(kind string, builtin, override map[string]string, code string) string {
	if v, ok := override[code]; ok {
		return v
	}
	if v, ok := builtin[code]; ok {
		return v
	}
	if code != "" {
		observability.Render().OnLookupMiss(kind, code)
	}
	return code
}

// lookupUnits resolves the units for a measurement code. Unknown
// measurements resolve to the UnitsUnknown sentinel, never a silent blank.
func lookupUnits(override map[string]string, code string) string {
	if v, ok := override[code]; ok {
		return v
	}
	if v, ok := unitsTeX[code]; ok {
		return v
	}
	observability.Render().OnLookupMiss("units", code)
	return UnitsUnknown
}

// =============================================================================
// Catalog - Read-Only Views for the CLI and Preview Server
// =============================================================================

// CatalogEntry is one (code, fragment) pair from a token dictionary.
type CatalogEntry struct {
	Code string `json:"code"`
	TeX  string `json:"tex"`
}

// catalogOf returns the entries of a dictionary sorted by code.
func catalogOf(table map[string]string) []CatalogEntry {
	codes := make([]string, 0, len(table))
	for k := range table {
		codes = append(codes, k)
	}
	slices.Sort(codes)
	out := make([]CatalogEntry, 0, len(codes))
	for _, code := range codes {
		out = append(out, CatalogEntry{Code: code, TeX: table[code]})
	}
	return out
}

// Measurements returns the built-in measurement dictionary, sorted by code.
func Measurements() []CatalogEntry { return catalogOf(measurementTeX) }

// Components returns the built-in component dictionary, sorted by code.
func Components() []CatalogEntry { return catalogOf(componentTeX) }

// Units returns the built-in units dictionary, sorted by code.
func Units() []CatalogEntry { return catalogOf(unitsTeX) }

// Species returns the built-in species dictionary, sorted by code.
func Species() []CatalogEntry { return catalogOf(speciesTeX) }

// Templates returns the built-in template dictionary, sorted by code.
func Templates() []CatalogEntry { return catalogOf(measurementTemplates) }
