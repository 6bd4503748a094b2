package yves

import (
	"iter"
)

// InspectSeq inspects every value produced by seq with the same label,
// emitting each as it arrives. A Stream must be configured. Iteration stops
// at the first write error.
func (in *Inspector) InspectSeq(seq iter.Seq[any], label string, opts ...Option) error {
	o := in.Options(opts...)
	if o.Stream == nil {
		return ErrNoStream
	}
	var streamErr error
	seq(func(v any) bool {
		if err := Emit(render(v, &o), label, o); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// InspectChan drains ch through [Inspector.InspectSeq]. It returns once ch
// is closed or a write fails; values left in ch after a failure are not read.
func InspectChan[T any](in *Inspector, ch <-chan T, label string, opts ...Option) error {
	drain := func(yield func(any) bool) {
		for v := range ch {
			if !yield(v) {
				break
			}
		}
	}
	return in.InspectSeq(drain, label, opts...)
}
