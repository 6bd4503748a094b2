package yves

import (
	"github.com/muesli/termenv"
)

const defaultForeground = "39"

// resetSequence ends every style, including the global one.
var resetSequence = termenv.CSI + termenv.ResetSeq + "m"

// foregroundReset ends a colour span and returns to the terminal default.
var foregroundReset = termenv.CSI + defaultForeground + "m"

type ansiCode struct {
	start string
	end   string
}

var ansiCodes = map[string]ansiCode{
	"bold":      {termenv.BoldSeq, "22"},
	"italic":    {termenv.ItalicSeq, "23"},
	"underline": {termenv.UnderlineSeq, "24"},
	"inverse":   {termenv.ReverseSeq, "27"},
	"black":     {termenv.ANSIBlack.Sequence(false), defaultForeground},
	"red":       {termenv.ANSIRed.Sequence(false), defaultForeground},
	"green":     {termenv.ANSIGreen.Sequence(false), defaultForeground},
	"yellow":    {termenv.ANSIYellow.Sequence(false), defaultForeground},
	"blue":      {termenv.ANSIBlue.Sequence(false), defaultForeground},
	"magenta":   {termenv.ANSIMagenta.Sequence(false), defaultForeground},
	"cyan":      {termenv.ANSICyan.Sequence(false), defaultForeground},
	"white":     {termenv.ANSIWhite.Sequence(false), defaultForeground},
	"grey":      {termenv.ANSIBrightBlack.Sequence(false), defaultForeground},
	"gray":      {termenv.ANSIBrightBlack.Sequence(false), defaultForeground},
}

var cssProperties = map[string]string{
	"bold":      "font-weight:bold",
	"italic":    "font-style:italic",
	"underline": "text-decoration:underline",
}

// Stylize applies the style configured for role to text. It returns text
// unchanged when styling is disabled, the role has no style, or the style
// name is unknown.
func Stylize(text string, role Role, o Options) string {
	return stylize(text, role, &o)
}

func stylize(text string, role Role, o *Options) string {
	if o.Styles == nil {
		return text
	}
	name, ok := o.Styles[role]
	if !ok || name == "" {
		return text
	}
	switch {
	case o.HTML:
		return htmlSpan(text, name)
	case o.Colors:
		return ansiSpan(text, name, o.Styles[RoleAll])
	default:
		return text
	}
}

// ansiSpan wraps text in the start and end codes of name. Colour spans end
// by restoring the global style when that style is itself a colour, so an
// overall tint survives nested spans.
func ansiSpan(text, name, global string) string {
	c, ok := ansiCodes[name]
	if !ok {
		return text
	}
	end := c.end
	if end == defaultForeground {
		if g, ok := ansiCodes[global]; ok && g.end == defaultForeground {
			end = g.start
		}
	}
	return termenv.CSI + c.start + "m" + text + termenv.CSI + end + "m"
}

func htmlSpan(text, name string) string {
	prop, ok := cssProperties[name]
	if !ok {
		prop = "color:" + name
	}
	return `<span style="` + prop + `">` + text + `</span>`
}
