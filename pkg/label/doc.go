// Package label compiles structured physical-quantity keys into LaTeX labels.
//
// A quantity is identified by an MCS triple: (Measurement, Component,
// Species), e.g. ("v", "x", "p") for the x-component of the proton bulk
// velocity. The package maps a triple — or a pair of triples rendered as a
// ratio — into three coordinated representations:
//
//   - Tex: a LaTeX fragment for axis and colorbar text
//   - Units: a LaTeX units fragment matching the measurement
//   - Path: a filesystem-safe token for saved-figure naming
//
// # Architecture
//
// The compiler is a pipeline of small, static stages:
//
//   - Token dictionaries: read-only maps from short codes to LaTeX fragments
//     for measurements, vector components, and physical units
//   - Species substitution: longest-match-first rewriting of species
//     compositions such as "a+p1"
//   - Template resolution: per-measurement placeholder templates ($M, $C, $S)
//     with a default positional fallback
//   - Cleanup: removal of empty-group artifacts left by absent fields
//
// All dictionary lookups are total: unknown codes pass through verbatim
// (units fall back to an explicit sentinel) so that label generation stays
// robust for quantities that have not been catalogued yet.
//
// # Core Types
//
//   - [MCS]: the (measurement, component, species) key
//   - [Label]: the builder holding one or two triples plus render options
//   - [Axnorm]: axis-normalization mode (column/row/total/density)
//   - [Overrides]: immutable per-label dictionary extensions
//
// # Usage
//
//	l, err := label.Build(label.MCS{Measurement: "v", Component: "x", Species: "p"}, label.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(l.Tex())       // {v}_{{X};{p}}
//	fmt.Println(l.Units())     // \mathrm{km \; s^{-1}}
//	fmt.Println(l.Path())      // v_x_p
//	fmt.Println(l.WithUnits()) // ${v}_{{X};{p}} \; [\mathrm{km \; s^{-1}}]$
//
// Ratios divide one quantity by another and collapse identical units to the
// dimensionless symbol:
//
//	l, _ := label.Build(vxp, label.Options{Per: &nP})
//	fmt.Println(l.Tex())   // {v}_{{X};{p}}/n_{p}
//	fmt.Println(l.Path())  // v_x_p-OV-n_p
//
// An "_err" suffix on a measurement marks the uncertainty of the quantity
// rather than the quantity itself and wraps the rendered label in \sigma(...).
//
// # Concurrency
//
// The token dictionaries are initialized at package load and never mutated;
// they are safe for unsynchronized concurrent reads. A Label instance is not
// safe for concurrent mutation; every Set* call re-renders the whole label,
// so no stale derived state is ever observable between calls.
package label
