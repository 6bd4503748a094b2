package yves

import (
	"errors"
	"os"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoStream       = errors.New("no output stream configured")
	ErrInvalidPattern = errors.New("invalid key pattern")
)

// Formatter is an escape hatch checked per value. If FormatValue returns
// ok, text is used verbatim. Otherwise the value falls through to default
// rendering. Implementations may call [Render] themselves.
type Formatter interface {
	FormatValue(o Options) (text string, ok bool)
}

// renderer walks one value. Each top-level call gets its own renderer, so
// visit paths are never shared between calls.
type renderer struct {
	opts *Options
	path visitPath
}

// Render converts v to text using the defaults merged with opts.
//
// Render never writes. When no Stream is configured the result ends with a
// colour reset if colours are on; with a Stream it is the body [Inspect]
// would emit.
func Render(v any, opts ...Option) string {
	o := Resolve(opts...)
	return render(v, &o)
}

// Inspect renders v and, when a Stream is configured, emits it there with
// label. The rendered body is returned either way.
func Inspect(v any, label string, opts ...Option) (string, error) {
	o := Resolve(opts...)
	out := render(v, &o)
	if o.Stream == nil {
		return out, nil
	}
	return out, Emit(out, label, o)
}

// Print inspects v to standard output.
func Print(v any, label string, opts ...Option) error {
	_, err := Inspect(v, label, append(opts, WithStream(os.Stdout))...)
	return err
}

func render(v any, o *Options) string {
	r := &renderer{opts: o}
	out := r.value(reflect.ValueOf(v), 0)
	if o.Stream == nil && o.Styles != nil && o.Colors && !o.HTML {
		out += foregroundReset
	}
	return out
}

// value dispatches v by kind. depth is the nesting level of the enclosing
// container, 0 at the top.
func (r *renderer) value(v reflect.Value, depth int) string {
	if s, ok := r.custom(v); ok {
		return s
	}
	kind := classify(v)
	if kind != KindArray && kind != KindObject {
		return r.scalar(deref(v), kind)
	}
	if id, ok := identityOf(v); ok {
		if !r.path.enter(id) {
			return stylize(r.path.backref(id), RoleSpecial, r.opts)
		}
		defer r.path.leave()
	}
	target := deref(v)
	if kind == KindArray {
		return r.array(target, depth+1)
	}
	return r.object(target, depth+1)
}

func (r *renderer) custom(v reflect.Value) (string, bool) {
	var seen pointerChain
	for v.IsValid() {
		if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
			return "", false
		}
		if seen.revisit(v) {
			return "", false
		}
		if v.CanInterface() {
			if f, ok := v.Interface().(Formatter); ok {
				return f.FormatValue(r.opts.clone())
			}
			if v.Kind() != reflect.Pointer && v.CanAddr() {
				if f, ok := v.Addr().Interface().(Formatter); ok {
					return f.FormatValue(r.opts.clone())
				}
			}
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			return "", false
		}
		v = v.Elem()
	}
	return "", false
}
