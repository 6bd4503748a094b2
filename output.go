package yves

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const outputEllipsis = "…"

// Emit writes already rendered text to o.Stream, prefixed with the styled
// label and wrapped in the global style.
//
// When MaxLength is set and HTML is off, text is cut once MaxLength visible
// cells have been written and ends with an ellipsis. Escape sequences are
// parsed in full and never counted.
func Emit(text, label string, o Options) error {
	if o.Stream == nil {
		return ErrNoStream
	}
	if o.MaxLength >= 0 && !o.HTML {
		text = truncateVisible(text, o.MaxLength)
	}

	var b strings.Builder
	if label != "" {
		b.WriteString(stylize(label, RoleLabel, &o))
		b.WriteString(": ")
	}
	b.WriteString(stylize(text, RoleAll, &o))
	if o.Colors && !o.HTML {
		b.WriteString(resetSequence)
	}
	b.WriteString("\n")

	_, err := io.WriteString(o.Stream, b.String())
	return err
}

func truncateVisible(text string, max int) string {
	if ansi.StringWidth(text) <= max {
		return text
	}
	if max <= 0 {
		return outputEllipsis
	}
	return ansi.Truncate(text, max, outputEllipsis)
}
