package label

import (
	"strings"

	"github.com/heliolabs/texlabel/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// errSuffix marks a measurement as the uncertainty of a quantity rather than
// the quantity itself. It is stripped before dictionary lookup and triggers
// the \sigma(...) wrapper around the rendered label.
const errSuffix = "_err"

// UnitsDimensionless is the units fragment for dimensionless quantities,
// same-unit ratios, and axis-normalized labels.
const UnitsDimensionless = `\#`

// UnitsUnknown is the sentinel returned for measurements with no catalogued
// units. It is deliberately visible in rendered output: a silent blank would
// hide the missing catalogue entry.
const UnitsUnknown = `\mathrm{?}`

// PathSeparatorToken replaces forward slashes inside path fields so a
// measurement such as "1/n" cannot introduce a spurious directory level.
const PathSeparatorToken = "-OV-"

// =============================================================================
// MCS - Quantity Key
// =============================================================================

// MCS identifies one physical quantity axis by (Measurement, Component,
// Species). Component and Species may be empty, meaning "not applicable":
// a scalar magnetic-field magnitude has no species, a number density has no
// component.
//
// MCS is a value type; copying it is cheap and it is never mutated by the
// engine.
type MCS struct {
	Measurement string
	Component   string
	Species     string
}

// ParseMCS parses a comma-separated "m,c,s" key into an MCS triple.
// Exactly three fields are required; empty fields are allowed ("b,x," is the
// x-component of the magnetic field, no species).
func ParseMCS(s string) (MCS, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return MCS{}, errors.New(errors.ErrCodeInvalidTriple, "expected m,c,s with exactly 3 fields, got %q (%d fields)", s, len(parts))
	}
	return NewMCS(parts[0], parts[1], parts[2])
}

// NewMCS builds an MCS triple from its three fields, validating each one.
func NewMCS(m, c, s string) (MCS, error) {
	m, c, s = strings.TrimSpace(m), strings.TrimSpace(c), strings.TrimSpace(s)
	if m == "" {
		return MCS{}, errors.New(errors.ErrCodeInvalidTriple, "measurement cannot be empty")
	}
	if err := errors.ValidateField("measurement", m); err != nil {
		return MCS{}, err
	}
	if err := errors.ValidateField("component", c); err != nil {
		return MCS{}, err
	}
	if err := errors.ValidateField("species", s); err != nil {
		return MCS{}, err
	}
	return MCS{Measurement: m, Component: c, Species: s}, nil
}

// String returns the canonical "m,c,s" form of the triple.
func (m MCS) String() string {
	return m.Measurement + "," + m.Component + "," + m.Species
}

// IsError reports whether the measurement carries the "_err" suffix.
func (m MCS) IsError() bool {
	return strings.HasSuffix(m.Measurement, errSuffix)
}

// base returns the triple with the "_err" suffix stripped from the
// measurement, plus the is-error flag.
func (m MCS) base() (MCS, bool) {
	if !m.IsError() {
		return m, false
	}
	stripped := m
	stripped.Measurement = strings.TrimSuffix(m.Measurement, errSuffix)
	return stripped, true
}

// =============================================================================
// Axnorm - Axis Normalization Mode
// =============================================================================

// Axnorm selects an axis-normalization mode. A normalized label renders with
// a normalization prefix and dimensionless units.
type Axnorm string

// Axis-normalization modes.
const (
	AxnormNone    Axnorm = ""
	AxnormColumn  Axnorm = "c"
	AxnormRow     Axnorm = "r"
	AxnormTotal   Axnorm = "t"
	AxnormDensity Axnorm = "d"
)

// axnormPrefixes maps each mode to the text prefixed to normalized labels.
var axnormPrefixes = map[Axnorm]string{
	AxnormColumn:  "Col.",
	AxnormRow:     "Row",
	AxnormTotal:   "Total",
	AxnormDensity: "Density",
}

// ParseAxnorm validates and normalizes an axis-normalization flag.
// Matching is case-insensitive; the empty string means "no normalization".
// An unregistered value is a configuration error.
func ParseAxnorm(s string) (Axnorm, error) {
	if err := errors.ValidateAxnorm(s); err != nil {
		return AxnormNone, err
	}
	return Axnorm(strings.ToLower(s)), nil
}

// Prefix returns the human-readable normalization prefix ("Col.", "Row",
// "Total", "Density"), or the empty string for AxnormNone.
func (a Axnorm) Prefix() string {
	return axnormPrefixes[a]
}

// =============================================================================
// Overrides - Per-Label Dictionary Extensions
// =============================================================================

// Overrides supplies extra dictionary entries consulted before the built-in
// tables. The built-in tables themselves are never mutated; an Overrides
// value is carried by the Label that was built with it.
//
// Overrides must not be mutated after being passed to Build or SetOverrides.
type Overrides struct {
	Measurements map[string]string // measurement code -> TeX fragment
	Components   map[string]string // component code -> TeX fragment
	Species      map[string]string // species code -> TeX fragment
	Units        map[string]string // measurement code -> units fragment
	Templates    map[string]string // measurement code -> template
}

// IsZero reports whether no override table is populated.
func (o Overrides) IsZero() bool {
	return len(o.Measurements) == 0 && len(o.Components) == 0 &&
		len(o.Species) == 0 && len(o.Units) == 0 && len(o.Templates) == 0
}
