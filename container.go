package yves

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

const (
	truncatedMarker  = "<<truncated>>"
	obfuscatedMarker = "<<obfuscated>>"
)

var reservedWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`abstract else instanceof switch boolean enum int
		synchronized break export interface this byte extends long throw case false
		native throws catch final new transient char finally null true class float
		package try const for private typeof continue function protected var
		debugger goto public void default if return volatile delete implements short
		while do import static with double in super`) {
		reservedWords[w] = true
	}
}

type entry struct {
	key   string
	value reflect.Value
}

// array renders a slice or array at the given nesting depth.
func (r *renderer) array(v reflect.Value, depth int) string {
	o := r.opts
	n := v.Len()
	pretty := o.Pretty && (n > 4 || r.hasNonEmptyContainer(v))

	limit := n
	if o.MaxArrayLength >= 0 && o.MaxArrayLength < n {
		limit = o.MaxArrayLength
	}
	out := make([]string, 0, limit+1)
	for i := range limit {
		out = append(out, r.value(v.Index(i), depth))
	}
	if limit < n {
		out = append(out, truncatedMarker)
	}
	return r.layout("[", "]", out, pretty, depth)
}

func (r *renderer) hasNonEmptyContainer(v reflect.Value) bool {
	for i := range v.Len() {
		el := v.Index(i)
		switch classify(el) {
		case KindArray, KindObject:
			if members(el, r.opts.ShowHidden) > 0 {
				return true
			}
		}
	}
	return false
}

// object renders a map or struct at the given nesting depth. Key filters
// apply to the top level only.
func (r *renderer) object(v reflect.Value, depth int) string {
	o := r.opts
	entries := r.entries(v)
	pretty := o.Pretty && (len(entries) > o.SingleLineMax || hasContainer(entries))

	kept := make([]entry, 0, len(entries))
	for _, e := range entries {
		if depth == 1 && len(o.Include) > 0 && !matchAny(o.Include, e.key) {
			continue
		}
		if depth == 1 && matchAny(o.Exclude, e.key) {
			continue
		}
		if o.HideFunctions && classify(e.value) == KindFunction {
			continue
		}
		kept = append(kept, e)
	}

	limit := len(kept)
	if o.MaxObjectKeys >= 0 && o.MaxObjectKeys < limit {
		limit = o.MaxObjectKeys
	}
	out := make([]string, 0, limit+1)
	for _, e := range kept[:limit] {
		var val string
		if depth == 1 && matchAny(o.Obfuscate, e.key) {
			val = stylize(obfuscatedMarker, RoleSpecial, o)
		} else {
			val = r.value(e.value, depth)
		}
		out = append(out, r.key(e.key)+": "+val)
	}
	if limit < len(kept) {
		out = append(out, stylize(truncatedMarker, RoleKey, o))
	}
	return r.layout("{", "}", out, pretty, depth)
}

func hasContainer(entries []entry) bool {
	for _, e := range entries {
		switch classify(e.value) {
		case KindArray, KindObject:
			return true
		}
	}
	return false
}

var jsonEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// key renders an object key. JSON keys are always quoted and escaped so
// the output parses; in HTML mode key text is entity-encoded.
func (r *renderer) key(k string) string {
	o := r.opts
	if o.JSON {
		k = escapeControls(jsonEscaper.Replace(k), true)
	}
	if o.HTML {
		k = escapeHTML(k, o.HTMLQuotes)
	}
	switch {
	case o.JSON:
		return `"` + stylize(k, RoleKey, o) + `"`
	case reservedWords[k]:
		k = "'" + k + "'"
	}
	return stylize(k, RoleKey, o)
}

// layout joins rendered members on one line or, when pretty, one per line
// indented by depth levels.
func (r *renderer) layout(open, close string, out []string, pretty bool, depth int) string {
	if len(out) == 0 {
		return open + close
	}
	if !pretty {
		return open + " " + strings.Join(out, ", ") + " " + close
	}
	ws := "\n" + strings.Repeat(" ", depth*r.opts.Indent)
	end := "\n" + strings.Repeat(" ", (depth-1)*r.opts.Indent)
	return open + ws + strings.Join(out, ","+ws) + end + close
}

// entries enumerates the keys of a map or struct. Map keys are always
// sorted since map order is random; struct fields keep declaration order
// unless SortKeys is set.
func (r *renderer) entries(v reflect.Value) []entry {
	switch v.Kind() {
	case reflect.Map:
		out := make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out = append(out, entry{key: keyText(iter.Key()), value: iter.Value()})
		}
		slices.SortFunc(out, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
		return out
	case reflect.Struct:
		v = addressable(v)
		fields := structFields(v.Type(), r.opts.ShowHidden)
		out := make([]entry, 0, len(fields))
		for _, f := range fields {
			out = append(out, entry{key: f.name, value: v.Field(f.index)})
		}
		if r.opts.SortKeys {
			slices.SortStableFunc(out, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
		}
		return out
	}
	return nil
}

// keyText renders a map key without quotes or styles.
func keyText(k reflect.Value) string {
	k = deref(k)
	switch classify(k) {
	case KindString:
		return k.String()
	case KindNumber:
		return formatNumber(k)
	case KindBool:
		if k.Bool() {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	}
	if ek, ok := exposed(k); ok {
		return fmt.Sprint(ek.Interface())
	}
	return k.Type().String()
}

type field struct {
	name  string
	index int
}

type fieldsKey struct {
	typ        reflect.Type
	showHidden bool
}

var fieldCache sync.Map // fieldsKey -> []field

// structFields lists the renderable fields of t. Unexported fields are
// hidden unless showHidden is set; a `yves:"-"` tag always hides a field and
// `yves:"name"` renames it.
func structFields(t reflect.Type, showHidden bool) []field {
	key := fieldsKey{typ: t, showHidden: showHidden}
	if cached, ok := fieldCache.Load(key); ok {
		return cached.([]field)
	}
	fields := make([]field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() && !showHidden {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("yves"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, field{name: name, index: i})
	}
	fieldCache.Store(key, fields)
	return fields
}
