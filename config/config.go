// Package config loads yves options from files, the environment and
// explicit overrides, layered in that order.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bjaus/yves"
	"github.com/bjaus/yves/internal/logging"
)

// ErrInvalidConfig is returned when a config source cannot be loaded or
// holds an invalid value.
var ErrInvalidConfig = errors.New("invalid config")

const (
	// EnvPrefix marks environment variables read as config, e.g.
	// YVES_MAX_STRING_LENGTH=40 or YVES_STYLES__KEY=underline.
	EnvPrefix = "YVES_"

	// DefaultFile is searched for in the XDG config directories when no
	// path is given.
	DefaultFile = "yves/config.yaml"
)

// Keys recognised in every config layer.
const (
	KeyStyles          = "styles"
	KeyPretty          = "pretty"
	KeyIndent          = "indent"
	KeyHideFunctions   = "hide_functions"
	KeyShowHidden      = "show_hidden"
	KeySortKeys        = "sort_keys"
	KeyMaxLength       = "max_length"
	KeyColors          = "colors"
	KeyHTML            = "html"
	KeyJSON            = "json"
	KeyEscape          = "escape"
	KeyFunctions       = "functions"
	KeySingleLineMax   = "single_line_max"
	KeyMaxStringLength = "max_string_length"
	KeyMaxArrayLength  = "max_array_length"
	KeyMaxObjectKeys   = "max_object_keys"
	KeyInclude         = "include"
	KeyExclude         = "exclude"
	KeyObfuscate       = "obfuscate"
	KeyHTMLQuotes      = "html_quotes"
)

var boolKeys = []struct {
	key string
	opt func(bool) yves.Option
}{
	{KeyPretty, yves.WithPretty},
	{KeyHideFunctions, yves.WithHideFunctions},
	{KeyShowHidden, yves.WithShowHidden},
	{KeySortKeys, yves.WithSortKeys},
	{KeyColors, yves.WithColors},
	{KeyHTML, yves.WithHTML},
	{KeyJSON, yves.WithJSON},
	{KeyEscape, yves.WithEscape},
	{KeyFunctions, yves.WithFunctions},
}

var intKeys = []struct {
	key string
	opt func(int) yves.Option
}{
	{KeyIndent, yves.WithIndent},
	{KeyMaxLength, yves.WithMaxLength},
	{KeySingleLineMax, yves.WithSingleLineMax},
	{KeyMaxStringLength, yves.WithMaxStringLength},
	{KeyMaxArrayLength, yves.WithMaxArrayLength},
	{KeyMaxObjectKeys, yves.WithMaxObjectKeys},
}

var matcherKeys = []struct {
	key string
	opt func(...yves.Matcher) yves.Option
}{
	{KeyInclude, yves.WithInclude},
	{KeyExclude, yves.WithExclude},
	{KeyObfuscate, yves.WithObfuscate},
}

var htmlQuotes = map[string]yves.HTMLQuotes{
	"none":   yves.QuoteNone,
	"double": yves.QuoteDouble,
	"both":   yves.QuoteBoth,
}

// Load layers the config file at path (or the XDG default when path is
// empty), the YVES_ environment and overrides, and returns the options they
// describe. Only keys that are present produce options.
func Load(path string, overrides map[string]any) ([]yves.Option, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if path == "" {
		if found, err := xdg.SearchConfigFile(DefaultFile); err == nil {
			path = found
		}
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("%w: failed to load %s: %v", ErrInvalidConfig, path, err)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to load environment: %v", ErrInvalidConfig, err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("%w: failed to load overrides: %v", ErrInvalidConfig, err)
		}
	}

	logger.Trace().Strs("keys", k.Keys()).Msg("Config keys")
	return Options(k)
}

// Options converts the recognised keys of k into options.
func Options(k *koanf.Koanf) ([]yves.Option, error) {
	var opts []yves.Option

	if k.Exists(KeyStyles) {
		opt, err := stylesOption(k.Get(KeyStyles))
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	for _, b := range boolKeys {
		if k.Exists(b.key) {
			opts = append(opts, b.opt(k.Bool(b.key)))
		}
	}
	for _, n := range intKeys {
		if k.Exists(n.key) {
			opts = append(opts, n.opt(k.Int(n.key)))
		}
	}
	for _, m := range matcherKeys {
		if !k.Exists(m.key) {
			continue
		}
		matchers, err := yves.ParseMatchers(stringList(k.Get(m.key)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, m.key, err)
		}
		opts = append(opts, m.opt(matchers...))
	}
	if k.Exists(KeyHTMLQuotes) {
		q, ok := htmlQuotes[strings.ToLower(k.String(KeyHTMLQuotes))]
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q", ErrInvalidConfig, KeyHTMLQuotes, k.String(KeyHTMLQuotes))
		}
		opts = append(opts, yves.WithHTMLQuotes(q))
	}
	return opts, nil
}

// stylesOption accepts a role map, or false to disable styling.
func stylesOption(v any) (yves.Option, error) {
	switch s := v.(type) {
	case bool:
		if !s {
			return yves.WithoutStyles(), nil
		}
		return yves.WithStyles(nil), nil
	case string:
		on, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q", ErrInvalidConfig, KeyStyles, s)
		}
		return stylesOption(on)
	case map[string]any:
		styles := make(yves.Styles, len(s))
		for role, name := range s {
			styles[yves.Role(role)] = fmt.Sprint(name)
		}
		return yves.WithStyles(styles), nil
	default:
		return nil, fmt.Errorf("%w: %s: unexpected %T", ErrInvalidConfig, KeyStyles, v)
	}
}

func stringList(v any) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, s := range l {
			out = append(out, fmt.Sprint(s))
		}
		return out
	case string:
		var out []string
		for _, s := range strings.Split(l, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported config file %q", ErrInvalidConfig, path)
	}
}

// envKey maps YVES_MAX_LENGTH to max_length and YVES_STYLES__KEY to
// styles.key.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
