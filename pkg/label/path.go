package label

import "strings"

// =============================================================================
// Path Encoder
//
// Derives a filesystem-safe token from an MCS triple, independent of the
// LaTeX rendering. Used as a path fragment for saved-figure naming.
// =============================================================================

// pathStripper removes characters that have no place in a path token.
var pathStripper = strings.NewReplacer(".", "", ",", "")

// encodePathToken joins the non-empty fields of a triple with underscores and
// sanitizes the result: periods and commas are stripped, forward slashes are
// replaced with PathSeparatorToken so a quotient measurement cannot introduce
// a spurious directory level.
//
// The measurement keeps its "_err" suffix here: the uncertainty of a quantity
// is a distinct quantity and must not collide with its base label on disk.
func encodePathToken(m MCS) string {
	parts := make([]string, 0, 3)
	for _, f := range []string{m.Measurement, m.Component, m.Species} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	tok := pathStripper.Replace(strings.Join(parts, "_"))
	return strings.ReplaceAll(tok, "/", PathSeparatorToken)
}
