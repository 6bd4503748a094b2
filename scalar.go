package yves

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	ellipsis = "..."

	// dateLayout is the UTC calendar form, e.g. "Tue, 10 Nov 2009 23:00:00 GMT".
	dateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// scalar renders a non-container value of the given kind.
func (r *renderer) scalar(v reflect.Value, kind Kind) string {
	o := r.opts
	switch kind {
	case KindString:
		return stylize(formatString(v.String(), o), RoleString, o)
	case KindNumber:
		return stylize(formatNumber(v), RoleNumber, o)
	case KindBool:
		return stylize(strconv.FormatBool(v.Bool()), RoleBool, o)
	case KindNull:
		return stylize("null", RoleSpecial, o)
	case KindUndefined:
		return stylize("undefined", RoleSpecial, o)
	case KindRegexp:
		return stylize("/"+regexpSource(v)+"/", RoleRegexp, o)
	case KindDate:
		return stylize(formatDate(v), RoleDate, o)
	case KindFunction:
		return stylize(r.function(v), RoleOther, o)
	case KindBuffer:
		return stylize("Buffer", RoleOther, o)
	default:
		if v.Kind() == reflect.Pointer {
			// deref stopped on a pointer loop
			return stylize("..", RoleSpecial, o)
		}
		return stylize("["+v.Type().String()+"]", RoleOther, o)
	}
}

// formatString quotes, escapes and truncates s.
func formatString(s string, o *Options) string {
	var quoted string
	switch {
	case o.JSON:
		quoted = `"` + jsonEscaper.Replace(s) + `"`
	case !strings.Contains(s, "'"):
		quoted = "'" + s + "'"
	default:
		quoted = `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}

	result := quoted
	if o.Escape {
		result = escapeControls(result, o.JSON)
		if o.HTML {
			result = escapeHTML(result, o.HTMLQuotes)
		}
	}
	return truncateString(result, o.MaxStringLength)
}

// escapeControls writes newline and tab as two-character escapes and other
// C0 control characters as hex (or \u in JSON mode).
func escapeControls(s string, json bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 && json:
			fmt.Fprintf(&b, `\u%04x`, c)
		case c < 0x20:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// truncateString cuts s to max characters, the "..." tail included.
// Characters are runes, not terminal cells.
func truncateString(s string, max int) string {
	if max < 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis
	}
	return string([]rune(s)[:max-len(ellipsis)]) + ellipsis
}

func formatNumber(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits())
	default:
		// json.Number
		return v.String()
	}
}

// formatFloat prints the shortest representation, switching to exponent
// form outside [1e-6, 1e21) with an unpadded exponent, as JavaScript does.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		// 1e-07 -> 1e-7
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bits), "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func formatDate(v reflect.Value) string {
	if ev, ok := exposed(v); ok {
		if t, ok := ev.Interface().(time.Time); ok {
			return t.UTC().Format(dateLayout)
		}
	}
	return "Invalid Date"
}

func regexpSource(v reflect.Value) string {
	ev, ok := exposed(v)
	if !ok {
		return ""
	}
	if ev.CanAddr() {
		if re, ok := ev.Addr().Interface().(*regexp.Regexp); ok {
			return re.String()
		}
	}
	if re, ok := ev.Interface().(regexp.Regexp); ok {
		return re.String()
	}
	return ""
}

// function renders a func value. Only emitted output names functions;
// returned strings use a bracketed token.
func (r *renderer) function(v reflect.Value) string {
	if r.opts.Stream == nil {
		return "[Function]"
	}
	if !r.opts.Functions {
		return "Function"
	}
	return functionSource(v)
}

// functionSource is the closest Go has to a function's source text: its
// qualified name and signature.
func functionSource(v reflect.Value) string {
	sig := strings.TrimPrefix(v.Type().String(), "func")
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		return "func " + fn.Name() + sig
	}
	return "func" + sig
}
