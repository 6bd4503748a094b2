package yves

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher selects object keys by literal name or by pattern.
type Matcher struct {
	literal string
	re      *regexp.Regexp
}

// Key matches a key by exact name.
func Key(name string) Matcher {
	return Matcher{literal: name}
}

// Pattern matches any key the expression finds a match in.
func Pattern(re *regexp.Regexp) Matcher {
	return Matcher{re: re}
}

// ParseMatcher parses "/expr/" as a [Pattern] and anything else as a [Key].
func ParseMatcher(s string) (Matcher, error) {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		re, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return Matcher{}, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, s, err)
		}
		return Pattern(re), nil
	}
	return Key(s), nil
}

// ParseMatchers parses every entry with [ParseMatcher].
func ParseMatchers(list []string) ([]Matcher, error) {
	out := make([]Matcher, 0, len(list))
	for _, s := range list {
		m, err := ParseMatcher(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Match reports whether key is selected.
func (m Matcher) Match(key string) bool {
	if m.re != nil {
		return m.re.MatchString(key)
	}
	return m.literal == key
}

// String returns the matcher in the form accepted by [ParseMatcher].
func (m Matcher) String() string {
	if m.re != nil {
		return "/" + m.re.String() + "/"
	}
	return m.literal
}

func matchAny(ms []Matcher, key string) bool {
	for _, m := range ms {
		if m.Match(key) {
			return true
		}
	}
	return false
}
