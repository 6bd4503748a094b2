package yves

import (
	"os"
	"strings"
)

// DebugEnv lists the enabled debuggers: names separated by commas or
// spaces, "*" for all, and "-name" to exclude one.
const DebugEnv = "YVES_DEBUG"

// Debugger returns a function that inspects values to standard error under
// the label name. It is a no-op unless name is enabled in [DebugEnv].
func Debugger(name string, opts ...Option) func(v any) {
	if !debugEnabled(name, os.Getenv(DebugEnv)) {
		return func(any) {}
	}
	in := New(append([]Option{WithStream(os.Stderr)}, opts...)...)
	return func(v any) {
		_, _ = in.Inspect(v, name)
	}
}

func debugEnabled(name, list string) bool {
	enabled := false
	for _, tok := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' }) {
		switch {
		case tok == "-"+name:
			return false
		case tok == "*", tok == name:
			enabled = true
		case strings.HasSuffix(tok, "*") && !strings.HasPrefix(tok, "-") && strings.HasPrefix(name, strings.TrimSuffix(tok, "*")):
			enabled = true
		}
	}
	return enabled
}
