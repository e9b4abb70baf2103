package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// chartIDRegex matches identifiers safe to embed in URLs and file names.
var chartIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateChartID validates a chart identifier for safety and correctness.
// Chart IDs travel in URL paths and cache file names, so the rules are
// intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidChart, "chart id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidChart, "chart id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "chart id contains invalid control characters")
		}
	}

	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidChart, "invalid chart id: %q", id)
	}

	return nil
}

// ValidateShapeID validates a shape identifier. Shape IDs are referenced
// by connector bindings and rendered into SVG element IDs, so they follow
// the same character rules as chart IDs.
func ValidateShapeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidShape, "shape id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidShape, "shape id too long (max 128 characters)")
	}

	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidShape, "invalid shape id: %q", id)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It prevents null bytes and control characters but allows absolute
// paths, since the CLI legitimately writes wherever the user points it.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateChartName validates a chart's display name. Names are free-form
// but bounded, and must not contain control characters.
func ValidateChartName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "chart name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "chart name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "chart name contains invalid control characters")
		}
	}

	return nil
}
