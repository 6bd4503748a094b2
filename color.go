package yves

import (
	"os"
	"regexp"
	"runtime"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	colorOnce    sync.Once
	colorSupport bool

	colorTermPattern = regexp.MustCompile(`(?i)^screen|^xterm|^vt100|color|ansi|cygwin|linux`)
)

// SupportsColors reports whether standard output accepts ANSI colours. The
// environment is queried once per process.
func SupportsColors() bool {
	colorOnce.Do(func() {
		fd := os.Stdout.Fd()
		tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		colorSupport = detectColors(tty, os.LookupEnv, runtime.GOOS, termenv.ColorProfile)
	})
	return colorSupport
}

func detectColors(tty bool, lookup func(string) (string, bool), goos string, profile func() termenv.Profile) bool {
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		return false
	}
	if !tty {
		return false
	}
	if goos == "windows" {
		return true
	}
	if _, ok := lookup("COLORTERM"); ok {
		return true
	}
	term, _ := lookup("TERM")
	if term == "dumb" {
		return false
	}
	if colorTermPattern.MatchString(term) {
		return true
	}
	return profile() != termenv.Ascii
}
