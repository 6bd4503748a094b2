package yves

import (
	"slices"
)

// Inspector renders values with a fixed set of baseline options.
//
//	inspect := yves.New(yves.WithStyles(yves.Styles{yves.RoleAll: "magenta"}))
//	inspect.Inspect(something, "something")
type Inspector struct {
	opts []Option
}

// New returns an Inspector with opts applied over the defaults on every call.
func New(opts ...Option) *Inspector {
	return &Inspector{opts: slices.Clone(opts)}
}

// Options resolves the inspector's options merged with per-call overrides.
func (in *Inspector) Options(opts ...Option) Options {
	return Resolve(append(slices.Clone(in.opts), opts...)...)
}

// Inspect renders v with the inspector's options and per-call overrides.
// With a Stream the result is emitted with label; without one in HTML mode
// the result is wrapped in a <pre> fragment.
func (in *Inspector) Inspect(v any, label string, opts ...Option) (string, error) {
	o := in.Options(opts...)
	out := render(v, &o)
	if o.Stream != nil {
		return out, Emit(out, label, o)
	}
	if o.HTML {
		out = wrapPre(out, &o)
	}
	return out, nil
}

// Render is Inspect without a label, for string mode use.
func (in *Inspector) Render(v any, opts ...Option) string {
	out, _ := in.Inspect(v, "", append(opts, WithStream(nil))...)
	return out
}
