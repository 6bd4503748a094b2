package yves

import (
	"io"
	"slices"
	"sync"
)

// Role is a semantic category of rendered text used to select a style.
type Role string

const (
	RoleAll     Role = "all"     // Overall style applied to everything
	RoleLabel   Role = "label"   // Inspection labels, like 'array' in `array: [1, 2, 3]`
	RoleOther   Role = "other"   // Values without a literal representation, such as functions
	RoleKey     Role = "key"     // The keys in object literals, like 'a' in `{a: 1}`
	RoleSpecial Role = "special" // null, undefined, back-references
	RoleString  Role = "string"
	RoleNumber  Role = "number"
	RoleBool    Role = "bool"
	RoleRegexp  Role = "regexp"
	RoleDate    Role = "date"
)

var roles = []Role{
	RoleAll, RoleLabel, RoleOther, RoleKey, RoleSpecial,
	RoleString, RoleNumber, RoleBool, RoleRegexp, RoleDate,
}

// Roles returns every role in display order.
func Roles() []Role {
	return slices.Clone(roles)
}

// Styles maps a role to a style name such as "bold" or "cyan".
// Unknown style names render unstyled.
type Styles map[Role]string

// HTMLQuotes selects which quote characters are entity-encoded in HTML mode.
type HTMLQuotes int

const (
	QuoteDouble HTMLQuotes = iota // " only
	QuoteNone                     // no quotes
	QuoteBoth                     // " and '
)

// Unlimited disables a length or count limit.
const Unlimited = -1

// Options is a configuration snapshot for one render call.
//
// A nil Styles map disables styling entirely. Limits use [Unlimited] (or any
// negative number) to mean no limit.
type Options struct {
	Styles        Styles
	Pretty        bool // Indent object literals
	Indent        int
	HideFunctions bool
	ShowHidden    bool
	SortKeys      bool
	Stream        io.Writer
	MaxLength     int // Truncate emitted output after this many visible cells
	Colors        bool
	HTML          bool
	JSON          bool
	Escape        bool
	Functions     bool // Render function source instead of a token
	SingleLineMax int

	MaxStringLength int
	MaxArrayLength  int
	MaxObjectKeys   int

	Include   []Matcher
	Exclude   []Matcher
	Obfuscate []Matcher

	HTMLQuotes HTMLQuotes
}

// Option mutates an [Options] snapshot.
type Option func(*Options)

func builtinDefaults() Options {
	return Options{
		Styles: Styles{
			RoleAll:     "cyan",
			RoleLabel:   "underline",
			RoleOther:   "inverse",
			RoleKey:     "bold",
			RoleSpecial: "grey",
			RoleString:  "green",
			RoleNumber:  "magenta",
			RoleBool:    "blue",
			RoleRegexp:  "green",
		},
		Pretty:          true,
		Indent:          4,
		MaxLength:       Unlimited,
		Colors:          SupportsColors(),
		Escape:          true,
		SingleLineMax:   2,
		MaxStringLength: Unlimited,
		MaxArrayLength:  Unlimited,
		MaxObjectKeys:   Unlimited,
	}
}

var (
	defaultsMu sync.RWMutex
	defaults   = builtinDefaults()
)

// Defaults returns a copy of the process-wide default options.
func Defaults() Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults.clone()
}

// SetDefaults applies opts to the process-wide defaults.
func SetDefaults(opts ...Option) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	for _, opt := range opts {
		opt(&defaults)
	}
}

// ResetDefaults restores the built-in defaults.
func ResetDefaults() {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = builtinDefaults()
}

// Resolve merges opts over the process-wide defaults. The defaults
// themselves are never modified.
func Resolve(opts ...Option) Options {
	o := Defaults()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Indent < 0 {
		o.Indent = 0
	}
	return o
}

func (o Options) clone() Options {
	if o.Styles != nil {
		s := make(Styles, len(o.Styles))
		for k, v := range o.Styles {
			s[k] = v
		}
		o.Styles = s
	}
	o.Include = slices.Clone(o.Include)
	o.Exclude = slices.Clone(o.Exclude)
	o.Obfuscate = slices.Clone(o.Obfuscate)
	return o
}

// WithStyles merges s into the current styles role by role. An empty style
// name removes the role. Styling is re-enabled if it was disabled.
func WithStyles(s Styles) Option {
	return func(o *Options) {
		if o.Styles == nil {
			o.Styles = make(Styles, len(s))
		}
		for role, name := range s {
			if name == "" {
				delete(o.Styles, role)
				continue
			}
			o.Styles[role] = name
		}
	}
}

// WithStyle sets the style for a single role.
func WithStyle(role Role, name string) Option {
	return WithStyles(Styles{role: name})
}

// WithoutStyles disables all styling.
func WithoutStyles() Option {
	return func(o *Options) { o.Styles = nil }
}

func WithPretty(b bool) Option        { return func(o *Options) { o.Pretty = b } }
func WithIndent(n int) Option         { return func(o *Options) { o.Indent = n } }
func WithHideFunctions(b bool) Option { return func(o *Options) { o.HideFunctions = b } }
func WithShowHidden(b bool) Option    { return func(o *Options) { o.ShowHidden = b } }
func WithSortKeys(b bool) Option      { return func(o *Options) { o.SortKeys = b } }
func WithStream(w io.Writer) Option   { return func(o *Options) { o.Stream = w } }
func WithMaxLength(n int) Option      { return func(o *Options) { o.MaxLength = n } }
func WithColors(b bool) Option        { return func(o *Options) { o.Colors = b } }
func WithHTML(b bool) Option          { return func(o *Options) { o.HTML = b } }
func WithJSON(b bool) Option          { return func(o *Options) { o.JSON = b } }
func WithEscape(b bool) Option        { return func(o *Options) { o.Escape = b } }
func WithFunctions(b bool) Option     { return func(o *Options) { o.Functions = b } }
func WithSingleLineMax(n int) Option  { return func(o *Options) { o.SingleLineMax = n } }

// WithMaxStringLength truncates rendered strings longer than n characters,
// quotes and escapes included.
func WithMaxStringLength(n int) Option { return func(o *Options) { o.MaxStringLength = n } }

// WithMaxArrayLength renders at most n elements of any array.
func WithMaxArrayLength(n int) Option { return func(o *Options) { o.MaxArrayLength = n } }

// WithMaxObjectKeys renders at most n keys of any object, counted after
// filtering.
func WithMaxObjectKeys(n int) Option { return func(o *Options) { o.MaxObjectKeys = n } }

// WithInclude keeps only matching top-level keys. It replaces any include
// list set by the defaults or an inspector; see [AddInclude].
func WithInclude(m ...Matcher) Option {
	return func(o *Options) { o.Include = slices.Clone(m) }
}

// WithExclude drops matching top-level keys, replacing earlier lists.
func WithExclude(m ...Matcher) Option {
	return func(o *Options) { o.Exclude = slices.Clone(m) }
}

// WithObfuscate masks the values of matching top-level keys, replacing
// earlier lists.
func WithObfuscate(m ...Matcher) Option {
	return func(o *Options) { o.Obfuscate = slices.Clone(m) }
}

// AddInclude extends the include list instead of replacing it.
func AddInclude(m ...Matcher) Option {
	return func(o *Options) { o.Include = append(slices.Clone(o.Include), m...) }
}

func AddExclude(m ...Matcher) Option {
	return func(o *Options) { o.Exclude = append(slices.Clone(o.Exclude), m...) }
}

func AddObfuscate(m ...Matcher) Option {
	return func(o *Options) { o.Obfuscate = append(slices.Clone(o.Obfuscate), m...) }
}

func WithHTMLQuotes(q HTMLQuotes) Option { return func(o *Options) { o.HTMLQuotes = q } }
