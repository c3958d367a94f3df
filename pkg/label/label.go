package label

import (
	"hash/fnv"
	"path"
	"strings"
	"time"

	"github.com/heliolabs/texlabel/pkg/errors"
	"github.com/heliolabs/texlabel/pkg/observability"
)

// =============================================================================
// Label - The Builder
// =============================================================================

// Label compiles one MCS triple — or a pair rendered as a ratio — into
// coordinated LaTeX, units, and path representations.
//
// Every mutator re-renders the whole label, so the derived state returned by
// Tex, Units, Path, and WithUnits is always consistent with the current
// inputs. A Label owns no external resources.
type Label struct {
	mcs0            MCS
	mcs1            *MCS
	axnorm          Axnorm
	newLineForUnits bool
	description     string
	overrides       Overrides

	// Derived on every render.
	tex       string
	units     string
	path      string
	withUnits string
}

// Options configures a Label at construction time.
type Options struct {
	// Per is the optional denominator triple. When set, the label renders
	// as the ratio primary/Per.
	Per *MCS

	// Axnorm is the axis-normalization flag: "c", "r", "t", "d", or empty.
	// Case-insensitive. An unregistered value fails construction.
	Axnorm string

	// NewLineForUnits places the bracketed units on their own line instead
	// of inline after the label body.
	NewLineForUnits bool

	// Description is free text prefixed above the rendered label.
	// Empty suppresses the prefix.
	Description string

	// Overrides supplies extra dictionary entries for this label.
	Overrides Overrides
}

// Build constructs a Label from a primary triple and options. Invalid
// options — an unregistered axnorm value, a triple with an empty
// measurement — fail here, never at render time.
func Build(primary MCS, opts Options) (*Label, error) {
	axnorm, err := ParseAxnorm(opts.Axnorm)
	if err != nil {
		return nil, err
	}
	if err := validateTriple(primary); err != nil {
		return nil, err
	}
	if opts.Per != nil {
		if err := validateTriple(*opts.Per); err != nil {
			return nil, err
		}
	}

	l := &Label{
		mcs0:            primary,
		mcs1:            copyMCS(opts.Per),
		axnorm:          axnorm,
		newLineForUnits: opts.NewLineForUnits,
		description:     opts.Description,
		overrides:       opts.Overrides,
	}
	l.render()
	return l, nil
}

// New constructs a Label for a single triple with default options.
// It fails only if the triple is malformed.
func New(primary MCS) (*Label, error) {
	return Build(primary, Options{})
}

// NewRatio constructs a Label rendering numerator/denominator.
func NewRatio(numerator, denominator MCS) (*Label, error) {
	return Build(numerator, Options{Per: &denominator})
}

func validateTriple(m MCS) error {
	if m.Measurement == "" {
		return errors.New(errors.ErrCodeInvalidTriple, "measurement cannot be empty in %q", m.String())
	}
	return nil
}

func copyMCS(m *MCS) *MCS {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// =============================================================================
// Mutators - Each One Re-Renders in Full
// =============================================================================

// SetMCS replaces the label's triples. Pass nil per for a plain label.
func (l *Label) SetMCS(primary MCS, per *MCS) error {
	if err := validateTriple(primary); err != nil {
		return err
	}
	if per != nil {
		if err := validateTriple(*per); err != nil {
			return err
		}
	}
	l.mcs0 = primary
	l.mcs1 = copyMCS(per)
	l.render()
	return nil
}

// SetAxnorm replaces the axis-normalization flag, re-validating it.
func (l *Label) SetAxnorm(v string) error {
	axnorm, err := ParseAxnorm(v)
	if err != nil {
		return err
	}
	l.axnorm = axnorm
	l.render()
	return nil
}

// SetNewLineForUnits controls whether units render on their own line.
func (l *Label) SetNewLineForUnits(v bool) {
	l.newLineForUnits = v
	l.render()
}

// SetDescription replaces the free-text prefix. Empty removes it.
func (l *Label) SetDescription(s string) {
	l.description = s
	l.render()
}

// SetOverrides replaces the label's dictionary extensions.
func (l *Label) SetOverrides(ov Overrides) {
	l.overrides = ov
	l.render()
}

// =============================================================================
// Derived State
// =============================================================================

// Tex returns the LaTeX body without units or description.
func (l *Label) Tex() string { return l.tex }

// Units returns the LaTeX units fragment.
func (l *Label) Units() string { return l.units }

// Path returns the filesystem-safe path fragment. Ratio labels join the two
// tokens with the reserved separator: "v_x_p-OV-n_p".
func (l *Label) Path() string { return l.path }

// WithUnits returns the display form: the body with bracketed units, wrapped
// in math-mode delimiters, with the description prefix when one is set.
func (l *Label) WithUnits() string { return l.withUnits }

// Description returns the free-text prefix, or empty when none is set.
func (l *Label) Description() string { return l.description }

// Axnorm returns the current axis-normalization mode.
func (l *Label) Axnorm() Axnorm { return l.axnorm }

// MCS returns the primary triple and the denominator (nil for plain labels).
func (l *Label) MCS() (MCS, *MCS) { return l.mcs0, copyMCS(l.mcs1) }

// String returns WithUnits; a Label prints as its display form.
func (l *Label) String() string { return l.withUnits }

// =============================================================================
// Comparison - Defined on Rendered Output
//
// Two labels are equal iff their display forms are equal: distinct internal
// states can legitimately render identically (e.g. trailing-empty fields).
// Ordering is lexicographic over the display form, for deterministic sorting
// of label collections, not a physical ordering.
// =============================================================================

// Equal reports whether both labels render to the same display form.
func (l *Label) Equal(other *Label) bool {
	if other == nil {
		return false
	}
	return l.withUnits == other.withUnits
}

// Compare orders labels lexicographically by display form.
func (l *Label) Compare(other *Label) int {
	return strings.Compare(l.withUnits, other.withUnits)
}

// Less reports whether l orders before other.
func (l *Label) Less(other *Label) bool { return l.Compare(other) < 0 }

// Hash returns a hash consistent with Equal.
func (l *Label) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(l.withUnits))
	return h.Sum64()
}

// =============================================================================
// Rendering
// =============================================================================

// render recomputes all derived state from the current inputs. It is a pure
// function of (mcs0, mcs1, axnorm, newLineForUnits, description, overrides);
// mutators call it unconditionally so no stale state is ever observable.
func (l *Label) render() {
	start := time.Now()

	tex, units, pathTok := renderOne(l.mcs0, l.overrides)
	if l.mcs1 != nil {
		tex1, units1, pathTok1 := renderOne(*l.mcs1, l.overrides)
		tex = tex + "/" + tex1
		if units == units1 {
			units = UnitsDimensionless
		} else {
			units = units + "/" + units1
		}
		// Join hierarchically, then sanitize: the join slash itself becomes
		// the reserved separator so a ratio stays a single path component.
		pathTok = strings.ReplaceAll(path.Join(pathTok, pathTok1), "/", PathSeparatorToken)
	}

	if l.axnorm != AxnormNone {
		tex = `\mathrm{` + l.axnorm.Prefix() + ` \; Norm} \; ` + tex
		units = UnitsDimensionless
	}

	l.tex = tex
	l.units = units
	l.path = pathTok
	l.withUnits = l.composeWithUnits(tex, units)

	observability.Render().OnRender(l.path, l.mcs1 != nil, time.Since(start))
}

// composeWithUnits joins the body and units into the display form and applies
// the description prefix.
func (l *Label) composeWithUnits(tex, units string) string {
	var rendered string
	if l.newLineForUnits {
		rendered = "$" + tex + "$\n$[" + units + "]$"
	} else {
		rendered = "$" + tex + ` \; [` + units + "]$"
	}
	if l.description != "" {
		rendered = l.description + "\n" + rendered
	}
	return rendered
}

// renderOne compiles a single triple into its body, units, and path token.
func renderOne(m MCS, ov Overrides) (tex, units, pathTok string) {
	base, isErr := m.base()

	mFrag := lookup("measurement", measurementTeX, ov.Measurements, base.Measurement)
	cFrag := lookup("component", componentTeX, ov.Components, base.Component)
	sFrag, _ := substituteSpecies(base.Species, ov)

	tex = expandTemplate(resolveTemplate(base.Measurement, ov), mFrag, cFrag, sFrag)
	if isErr {
		tex = `\sigma(` + tex + `)`
	}

	units = lookupUnits(ov.Units, base.Measurement)
	pathTok = encodePathToken(m)
	return tex, units, pathTok
}
