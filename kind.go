package yves

import (
	"encoding/json"
	"reflect"
	"regexp"
	"slices"
	"time"
	"unsafe"
)

// Kind is the rendering classification of a value.
type Kind int

const (
	KindNull Kind = iota
	KindUndefined
	KindString
	KindNumber
	KindBool
	KindFunction
	KindRegexp
	KindDate
	KindBuffer
	KindArray
	KindObject
	KindOther
)

var kindNames = [...]string{
	KindNull:      "null",
	KindUndefined: "undefined",
	KindString:    "string",
	KindNumber:    "number",
	KindBool:      "boolean",
	KindFunction:  "function",
	KindRegexp:    "regexp",
	KindDate:      "date",
	KindBuffer:    "buffer",
	KindArray:     "array",
	KindObject:    "object",
	KindOther:     "other",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// UndefinedValue is the type of [Undefined].
type UndefinedValue struct{}

// Undefined renders as `undefined`, distinct from nil which renders as `null`.
var Undefined = UndefinedValue{}

var (
	undefinedType = reflect.TypeFor[UndefinedValue]()
	regexpType    = reflect.TypeFor[regexp.Regexp]()
	timeType      = reflect.TypeFor[time.Time]()
	numberType    = reflect.TypeFor[json.Number]()
	rawType       = reflect.TypeFor[json.RawMessage]()
)

// KindOf classifies v.
func KindOf(v any) Kind {
	return classify(reflect.ValueOf(v))
}

// classify unwraps interfaces and pointers, so boxed values classify like
// the value they box. A pointer chain that loops back on itself is
// KindOther.
func classify(v reflect.Value) Kind {
	v = deref(v)
	if !v.IsValid() {
		return KindNull
	}
	switch v.Type() {
	case undefinedType:
		return KindUndefined
	case regexpType:
		return KindRegexp
	case timeType:
		return KindDate
	case numberType:
		return KindNumber
	case rawType:
		return KindBuffer
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return KindNull
		}
		return KindOther
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.Func:
		if v.IsNil() {
			return KindNull
		}
		return KindFunction
	case reflect.Slice:
		if v.IsNil() {
			return KindNull
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return KindBuffer
		}
		return KindArray
	case reflect.Array:
		return KindArray
	case reflect.Map:
		if v.IsNil() {
			return KindNull
		}
		return KindObject
	case reflect.Struct:
		return KindObject
	default:
		return KindOther
	}
}

// deref follows pointers and interfaces down to the boxed value. On a
// pointer loop it stops at the first pointer seen twice.
func deref(v reflect.Value) reflect.Value {
	var seen pointerChain
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() {
		if seen.revisit(v) {
			return v
		}
		v = v.Elem()
	}
	return v
}

// pointerChain records the pointers passed while unwrapping one value.
type pointerChain []identity

// revisit records v when it is a pointer and reports whether it was
// already recorded.
func (c *pointerChain) revisit(v reflect.Value) bool {
	if v.Kind() != reflect.Pointer {
		return false
	}
	id := identity{typ: v.Type(), ptr: v.Pointer()}
	if slices.Contains(*c, id) {
		return true
	}
	*c = append(*c, id)
	return false
}

// exposed returns an interfaceable view of v. Values read through unexported
// struct fields are only reachable when addressable.
func exposed(v reflect.Value) (reflect.Value, bool) {
	if v.CanInterface() {
		return v, true
	}
	if v.CanAddr() {
		return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), true
	}
	return v, false
}

// addressable copies a struct into addressable storage so the fields it
// holds, unexported ones included, can be exposed.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() || !v.CanInterface() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// members counts the entries a container would render before filtering.
func members(v reflect.Value, showHidden bool) int {
	v = deref(v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len()
	case reflect.Struct:
		return len(structFields(v.Type(), showHidden))
	}
	return 0
}
