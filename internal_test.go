package yves

import (
	"math"
	"reflect"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitPath(t *testing.T) {
	t.Parallel()
	a := map[string]int{"a": 1}
	b := []int{1, 2}

	idA, ok := identityOf(reflect.ValueOf(a))
	require.True(t, ok)
	idB, ok := identityOf(reflect.ValueOf(b))
	require.True(t, ok)

	var p visitPath
	require.True(t, p.enter(idA))
	require.True(t, p.enter(idB))
	assert.False(t, p.enter(idA))
	assert.Equal(t, "...", p.backref(idA))
	assert.Equal(t, "..", p.backref(idB))

	p.leave()
	assert.Equal(t, -1, p.index(idB))
	assert.True(t, p.enter(idB))
}

func TestIdentityOf(t *testing.T) {
	t.Parallel()
	s := []int{1, 2, 3}
	tests := map[string]struct {
		value any
		ok    bool
	}{
		"map":          {value: map[string]int{}, ok: true},
		"pointer":      {value: &struct{}{}, ok: true},
		"slice":        {value: s, ok: true},
		"empty slice":  {value: []int{}, ok: false},
		"nil map":      {value: map[string]int(nil), ok: false},
		"struct value": {value: struct{ A int }{}, ok: false},
		"array value":  {value: [1]int{}, ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, ok := identityOf(reflect.ValueOf(tt.value))
			assert.Equal(t, tt.ok, ok)
		})
	}

	// A prefix of a slice shares its address but not its identity.
	whole, _ := identityOf(reflect.ValueOf(s))
	prefix, _ := identityOf(reflect.ValueOf(s[:2]))
	assert.NotEqual(t, whole, prefix)
}

func TestDetectColors(t *testing.T) {
	t.Parallel()
	ascii := func() termenv.Profile { return termenv.Ascii }
	ansi := func() termenv.Profile { return termenv.ANSI }
	tests := map[string]struct {
		tty     bool
		env     map[string]string
		goos    string
		profile func() termenv.Profile
		want    bool
	}{
		"no color":     {tty: true, env: map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"}, want: false},
		"not a tty":    {tty: false, env: map[string]string{"COLORTERM": "truecolor"}, want: false},
		"windows":      {tty: true, goos: "windows", want: true},
		"colorterm":    {tty: true, env: map[string]string{"COLORTERM": "", "TERM": "dumb"}, want: true},
		"dumb":         {tty: true, env: map[string]string{"TERM": "dumb"}, profile: ansi, want: false},
		"xterm":        {tty: true, env: map[string]string{"TERM": "xterm-256color"}, want: true},
		"screen":       {tty: true, env: map[string]string{"TERM": "screen"}, want: true},
		"linux":        {tty: true, env: map[string]string{"TERM": "linux"}, want: true},
		"unknown term": {tty: true, env: map[string]string{"TERM": "foo"}, want: false},
		"profile":      {tty: true, env: map[string]string{"TERM": "foo"}, profile: ansi, want: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			lookup := func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			}
			goos := tt.goos
			if goos == "" {
				goos = "linux"
			}
			profile := tt.profile
			if profile == nil {
				profile = ascii
			}
			assert.Equal(t, tt.want, detectColors(tt.tty, lookup, goos, profile))
		})
	}
}

func TestDebugEnabled(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		name string
		env  string
		want bool
	}{
		"empty":         {name: "worker", env: "", want: false},
		"exact":         {name: "worker", env: "worker", want: true},
		"other":         {name: "worker", env: "server", want: false},
		"list":          {name: "worker", env: "server,worker", want: true},
		"spaces":        {name: "worker", env: "server worker", want: true},
		"all":           {name: "worker", env: "*", want: true},
		"prefix":        {name: "app:worker", env: "app:*", want: true},
		"prefix miss":   {name: "db:worker", env: "app:*", want: false},
		"excluded":      {name: "worker", env: "*,-worker", want: false},
		"exclude first": {name: "worker", env: "-worker,*", want: false},
		"exclude other": {name: "worker", env: "*,-server", want: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, debugEnabled(tt.name, tt.env))
		})
	}
}

func TestEscapeControls(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		json bool
		want string
	}{
		"newline":      {in: "a\nb", want: `a\nb`},
		"tab":          {in: "a\tb", want: `a\tb`},
		"bell":         {in: "\a", want: `\x07`},
		"bell json":    {in: "\a", json: true, want: `\u0007`},
		"escape char":  {in: "\x1b[0m", want: `\x1b[0m`},
		"unicode":      {in: "héllo", want: "héllo"},
		"carriage ret": {in: "\r", json: true, want: `\u000d`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, escapeControls(tt.in, tt.json))
		})
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		max  int
		want string
	}{
		"unlimited":  {in: "abcdef", max: -1, want: "abcdef"},
		"fits":       {in: "abcdef", max: 6, want: "abcdef"},
		"cut":        {in: "abcdef", max: 5, want: "ab..."},
		"tiny":       {in: "abcdef", max: 3, want: "..."},
		"zero":       {in: "abcdef", max: 0, want: "..."},
		"wide runes": {in: "日本語日本語", max: 6, want: "日本語日本語"},
		"wide cut":   {in: "日本語日本語", max: 5, want: "日本..."},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateString(tt.in, tt.max))
		})
	}
}

func TestTruncateVisible(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", truncateVisible("abc", 3))
	assert.Equal(t, "…", truncateVisible("abc", 0))
	assert.Equal(t, "ab…", truncateVisible("abcd", 3))
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   float64
		want string
	}{
		"zero":      {in: 0, want: "0"},
		"integral":  {in: 42, want: "42"},
		"fraction":  {in: 0.5, want: "0.5"},
		"tiny":      {in: 1e-7, want: "1e-7"},
		"tiny neg":  {in: -1.5e-7, want: "-1.5e-7"},
		"exp 100":   {in: 1e100, want: "1e+100"},
		"small":     {in: 0.000001, want: "0.000001"},
		"huge":      {in: 1e21, want: "1e+21"},
		"big":       {in: 1e20, want: "100000000000000000000"},
		"nan":       {in: math.NaN(), want: "NaN"},
		"inf":       {in: math.Inf(1), want: "Infinity"},
		"minus inf": {in: math.Inf(-1), want: "-Infinity"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatFloat(tt.in, 64))
		})
	}
}

func TestClassifyUnwraps(t *testing.T) {
	t.Parallel()
	var iface any = []int{1}
	p := &iface
	assert.Equal(t, KindArray, classify(reflect.ValueOf(p)))
	assert.Equal(t, KindNull, classify(reflect.Value{}))
	assert.Equal(t, KindNull, classify(reflect.ValueOf((*int)(nil))))
}

func TestDerefStopsOnPointerLoop(t *testing.T) {
	t.Parallel()
	self := new(any)
	*self = self
	got := deref(reflect.ValueOf(self))
	require.Equal(t, reflect.Pointer, got.Kind())
	assert.Equal(t, reflect.ValueOf(self).Pointer(), got.Pointer())
	assert.Equal(t, KindOther, classify(reflect.ValueOf(self)))

	n := 3
	box := any(&n)
	assert.Equal(t, reflect.Int, deref(reflect.ValueOf(&box)).Kind())
}

func TestMembers(t *testing.T) {
	t.Parallel()
	type mixed struct {
		A int
		b int
		C int `yves:"-"`
	}
	v := reflect.ValueOf(mixed{})
	assert.Equal(t, 1, members(v, false))
	assert.Equal(t, 2, members(v, true))
	assert.Equal(t, 2, members(reflect.ValueOf([]int{1, 2}), false))
	assert.Equal(t, 1, members(reflect.ValueOf(map[int]int{1: 1}), false))
}

func TestStructFieldsCached(t *testing.T) {
	t.Parallel()
	type pair struct {
		Left  int `yves:"l"`
		Right int
	}
	typ := reflect.TypeFor[pair]()
	first := structFields(typ, false)
	second := structFields(typ, false)
	assert.Equal(t, first, second)
	assert.Equal(t, []field{{name: "l", index: 0}, {name: "Right", index: 1}}, first)
}
