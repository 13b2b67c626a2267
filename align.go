package tomato

import (
	"strings"

	"github.com/LuizRaizen/tomato/internal/ansi"
	tomatoerrors "github.com/LuizRaizen/tomato/pkg/errors"
)

// Alignment positions text within the terminal width. The zero value
// leaves the text unpadded.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

var validAlignments = []string{string(AlignLeft), string(AlignCenter), string(AlignRight)}

// align pads text to the terminal width. The width is re-read on every
// call since the terminal can be resized between calls. Padding is
// computed from the visible length, with escape sequences stripped from a
// measuring copy only; the returned string keeps its escapes.
//
// Quirks carried over from the reference behavior: surrounding whitespace
// of the escaped string is trimmed first, center pads the left edge only,
// and text wider than the terminal is never truncated.
func (f *Formatter) align(text string, mode Alignment) (string, error) {
	if mode == "" {
		return text, nil
	}

	width, err := f.width()
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(text)
	visible := ansi.VisibleLength(trimmed)

	switch mode {
	case AlignRight:
		return strings.Repeat(" ", clamp(width-visible)) + trimmed, nil
	case AlignCenter:
		return strings.Repeat(" ", clamp((width-visible)/2)) + trimmed, nil
	case AlignLeft:
		return trimmed + strings.Repeat(" ", clamp(width-visible)), nil
	default:
		return "", tomatoerrors.NewAlignmentError(string(mode), validAlignments)
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
