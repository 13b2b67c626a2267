// Package style holds the attribute code tables consulted by the formatter:
// fixed foreground and background color maps and the plugin-extensible
// style registry.
package style

import (
	"sort"

	tomatoerrors "github.com/LuizRaizen/tomato/pkg/errors"
)

// Attribute kinds reported in AttributeError diagnostics.
const (
	KindStyle  = "style"
	KindColor  = "color"
	KindMarkup = "markup"
)

// Foreground codes from the ANSI color table: 30-37 normal, 90-97 bright.
var colorCodes = map[string]string{
	"black":          "30",
	"red":            "31",
	"green":          "32",
	"yellow":         "33",
	"blue":           "34",
	"magenta":        "35",
	"cyan":           "36",
	"white":          "37",
	"bright_black":   "90",
	"bright_red":     "91",
	"bright_green":   "92",
	"bright_yellow":  "93",
	"bright_blue":    "94",
	"bright_magenta": "95",
	"bright_cyan":    "96",
	"bright_white":   "97",
}

// Background codes: 40-47 normal, 100-107 bright.
var markupCodes = map[string]string{
	"black":          "40",
	"red":            "41",
	"green":          "42",
	"yellow":         "43",
	"blue":           "44",
	"magenta":        "45",
	"cyan":           "46",
	"white":          "47",
	"bright_black":   "100",
	"bright_red":     "101",
	"bright_green":   "102",
	"bright_yellow":  "103",
	"bright_blue":    "104",
	"bright_magenta": "105",
	"bright_cyan":    "106",
	"bright_white":   "107",
}

// Color resolves a foreground color name to its attribute code. An empty
// name means no color was requested and resolves to an empty code; an
// unknown name is an error, never a silent fallback.
func Color(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	code, ok := colorCodes[name]
	if !ok {
		return "", tomatoerrors.NewAttributeError(KindColor, name, ColorNames())
	}
	return code, nil
}

// Markup resolves a background color name to its attribute code.
func Markup(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	code, ok := markupCodes[name]
	if !ok {
		return "", tomatoerrors.NewAttributeError(KindMarkup, name, MarkupNames())
	}
	return code, nil
}

// ColorNames returns every valid foreground color name, sorted.
func ColorNames() []string {
	return sortedKeys(colorCodes)
}

// MarkupNames returns every valid background color name, sorted.
func MarkupNames() []string {
	return sortedKeys(markupCodes)
}

func sortedKeys(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
