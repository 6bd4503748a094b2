// Package cli implements the yves command.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/yves"
	"github.com/bjaus/yves/config"
	"github.com/bjaus/yves/internal/input"
	"github.com/bjaus/yves/internal/logging"
)

type flags struct {
	verbosity int
	cfgFile   string
	format    string
	label     string
}

// boolFlags map a flag to the config key it sets and the value it sets it to.
var boolFlags = []struct {
	name, key, usage string
	value            bool
}{
	{"no-pretty", config.KeyPretty, "Render everything on one line", false},
	{"hide-functions", config.KeyHideFunctions, "Skip keys holding functions", true},
	{"show-hidden", config.KeyShowHidden, "Show unexported struct fields", true},
	{"sort-keys", config.KeySortKeys, "Sort struct fields by name", true},
	{"color", config.KeyColors, "Force ANSI colours", true},
	{"no-color", config.KeyColors, "Disable ANSI colours", false},
	{"no-styles", config.KeyStyles, "Disable all styling", false},
	{"html", config.KeyHTML, "Style with HTML spans", true},
	{"json", config.KeyJSON, "Render JSON-compatible output", true},
	{"no-escape", config.KeyEscape, "Leave control characters unescaped", false},
	{"functions", config.KeyFunctions, "Render function names and signatures", true},
}

var intFlags = []struct {
	name, key, usage string
}{
	{"indent", config.KeyIndent, "Spaces per nesting level"},
	{"max-length", config.KeyMaxLength, "Truncate output after this many visible cells"},
	{"single-line-max", config.KeySingleLineMax, "Most keys an object may have on one line"},
	{"max-string-length", config.KeyMaxStringLength, "Truncate strings longer than this"},
	{"max-array-length", config.KeyMaxArrayLength, "Render at most this many array elements"},
	{"max-object-keys", config.KeyMaxObjectKeys, "Render at most this many object keys"},
}

var listFlags = []struct {
	name, key, usage string
}{
	{"include", config.KeyInclude, "Only show these top-level keys (name or /regexp/)"},
	{"exclude", config.KeyExclude, "Hide these top-level keys (name or /regexp/)"},
	{"obfuscate", config.KeyObfuscate, "Mask the values of these top-level keys (name or /regexp/)"},
}

// NewRootCmd builds the yves command tree.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "yves [file...]",
		Short: "Inspect structured documents as readable, coloured values",
		Long: `yves decodes JSON, JSONL, YAML, TOML, XML, CSV or TSV documents and prints
each one as an inspected value. With no files, standard input is read.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(f.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.CountVarP(&f.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&f.cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/"+config.DefaultFile+")")
	addOptionFlags(pf)

	fl := cmd.Flags()
	fl.StringVarP(&f.format, "format", "f", "", "Input format; detected from the file extension by default")
	fl.StringVarP(&f.label, "label", "l", "", "Label printed before each value (default: the file name)")

	cmd.AddCommand(newStylesCmd(f))
	initTemplateFormatting()
	cmd.SetUsageTemplate(usageTemplate)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func addOptionFlags(fs *pflag.FlagSet) {
	for _, b := range boolFlags {
		fs.Bool(b.name, false, b.usage)
	}
	for _, n := range intFlags {
		fs.Int(n.name, 0, n.usage)
	}
	for _, l := range listFlags {
		fs.StringSlice(l.name, nil, l.usage)
	}
	fs.String("html-quotes", "double", "Quotes encoded in HTML mode: none, double or both")
}

// overrides collects the flags the user set as config keys.
func overrides(fs *pflag.FlagSet) (map[string]any, error) {
	out := map[string]any{}
	for _, b := range boolFlags {
		if fs.Changed(b.name) {
			on, err := fs.GetBool(b.name)
			if err != nil {
				return nil, err
			}
			if on {
				out[b.key] = b.value
			}
		}
	}
	for _, n := range intFlags {
		if fs.Changed(n.name) {
			v, err := fs.GetInt(n.name)
			if err != nil {
				return nil, err
			}
			out[n.key] = v
		}
	}
	for _, l := range listFlags {
		if fs.Changed(l.name) {
			v, err := fs.GetStringSlice(l.name)
			if err != nil {
				return nil, err
			}
			out[l.key] = v
		}
	}
	if fs.Changed("html-quotes") {
		v, err := fs.GetString("html-quotes")
		if err != nil {
			return nil, err
		}
		out[config.KeyHTMLQuotes] = v
	}
	return out, nil
}

func loadOptions(cmd *cobra.Command, f *flags) ([]yves.Option, error) {
	ov, err := overrides(cmd.Flags())
	if err != nil {
		return nil, err
	}
	opts, err := config.Load(f.cfgFile, ov)
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	opts, err := loadOptions(cmd, f)
	if err != nil {
		return err
	}
	in := yves.New(append(opts, yves.WithStream(cmd.OutOrStdout()))...)

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, src := range args {
		if err := inspectSource(cmd, in, f, src); err != nil {
			return err
		}
	}
	return nil
}

func inspectSource(cmd *cobra.Command, in *yves.Inspector, f *flags, src string) error {
	logger := logging.GetLogger("cli")

	format, err := sourceFormat(f.format, src)
	if err != nil {
		return err
	}

	var r io.Reader
	if src == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", src, err)
		}
		defer file.Close()
		r = file
	}

	docs, err := input.Decode(r, format)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	logger.Debug().Str("source", src).Str("format", format.String()).Int("documents", len(docs)).Msg("Decoded input")

	label := f.label
	if label == "" && src != "-" {
		label = filepath.Base(src)
	}
	return in.InspectSeq(slices.Values(docs), label)
}

func sourceFormat(flag, src string) (input.Format, error) {
	if flag != "" {
		return input.ParseFormat(flag)
	}
	if src == "-" {
		return input.JSON, nil
	}
	return input.FormatFromPath(src)
}
