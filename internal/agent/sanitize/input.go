// Package sanitize normalizes user-provided text before it reaches the catalog or a prompt.
package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Input normalizes Unicode to NFC and trims surrounding whitespace.
// Hangul typed on macOS arrives decomposed (NFD) and would otherwise miss table lookups.
func Input(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
