// Package ansi composes and strips ANSI SGR escape sequences.
package ansi

import (
	"regexp"
	"strings"
)

const (
	// CSI introduces a control sequence.
	CSI = "\x1b["
	// Reset clears every active graphic rendition.
	Reset = "\x1b[0m"
)

// Matches a CSI sequence: ESC '[' parameter bytes (0x30-0x3F),
// intermediate bytes (0x20-0x2F), one final byte (0x40-0x7E).
var escapePattern = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

// Wrap surrounds text with an SGR sequence built from the given attribute
// codes and a trailing reset. The parameter list is emitted even when no
// codes are requested, and the reset is unconditional so padding appended
// afterwards is never colorized.
func Wrap(codes []string, text string) string {
	return CSI + strings.Join(codes, ";") + "m" + text + Reset
}

// Strip removes every escape sequence from s, leaving the remaining
// characters untouched and in their original order.
func Strip(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

// VisibleLength counts the characters of s that a terminal would render.
func VisibleLength(s string) int {
	return len([]rune(Strip(s)))
}
