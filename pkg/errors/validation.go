package errors

import (
	"strings"
	"unicode"
)

// axnormValues are the accepted axis-normalization modes: column, row,
// total, and density.
const axnormValues = "crtd"

// ValidateAxnorm validates an axis-normalization flag. The empty string is
// accepted and means "no normalization". Validation is case-insensitive; the
// caller is expected to lowercase the value before storing it.
func ValidateAxnorm(v string) error {
	if v == "" {
		return nil
	}
	if len(v) != 1 {
		return New(ErrCodeInvalidAxnorm, "axnorm must be a single character, got %q", v)
	}
	if !strings.Contains(axnormValues, strings.ToLower(v)) {
		return New(ErrCodeInvalidAxnorm, "axnorm must be one of c, r, t, d, got %q", v)
	}
	return nil
}

// ValidateField validates a single measurement/component/species code.
// Codes are caller-supplied short strings; the rules are intentionally
// conservative and reject anything that could corrupt a rendered label or a
// derived filesystem path.
//
//   - No control characters
//   - No whitespace
//   - No path traversal sequences (.., backslash)
//   - Maximum length of 64 characters
//
// Empty strings are accepted: an empty component or species means "not
// applicable".
func ValidateField(name, value string) error {
	if value == "" {
		return nil
	}

	if len(value) > 64 {
		return New(ErrCodeInvalidTriple, "%s code too long (max 64 characters)", name)
	}

	for _, r := range value {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidTriple, "%s code %q contains whitespace or control characters", name, value)
		}
	}

	for _, pattern := range []string{"..", "\\"} {
		if strings.Contains(value, pattern) {
			return New(ErrCodeInvalidTriple, "%s code %q contains invalid sequence %q", name, value, pattern)
		}
	}

	return nil
}
