// Package yves renders arbitrary Go values as human-readable, optionally
// coloured or HTML-styled text.
//
// The central entry points are [Render], which returns a string, and
// [Inspect], which also emits the result to a configured stream with a
// label:
//
//	fmt.Println(yves.Render(v))
//	yves.Inspect(v, "config", yves.WithStream(os.Stderr))
//
// # Values
//
// Scalars render as literals: strings are quoted ('x', or "x" when the
// string holds a single quote or JSON mode is on), numbers and booleans in
// their plain form, nil as null, [Undefined] as undefined, regular
// expressions as /source/, times as a UTC date, []byte as Buffer and
// functions as [Function] (or Function, or their name and signature, when
// emitting). Pointers and interfaces render as the value they hold.
//
// Slices and arrays render as [a, b], maps and structs as {key: value}.
// Struct fields are listed in declaration order; unexported fields are only
// shown with [WithShowHidden]. A `yves:"-"` tag hides a field and
// `yves:"name"` renames it. Map keys are always sorted.
//
// A container that contains itself renders a run of dots where the cycle
// closes; the run is longer the further away the ancestor is. A pointer
// that leads back to itself renders as "..". Values that
// are merely shared render in full each time.
//
// Types implementing [Formatter] take over their own rendering.
//
// # Options
//
// Options are functional: each call merges its [Option] values over the
// process-wide defaults (see [Defaults] and [SetDefaults]). Styles merge
// role by role; [WithoutStyles] turns styling off altogether.
//
//   - Layout: [WithPretty], [WithIndent], [WithSingleLineMax]
//   - Keys: [WithSortKeys], [WithShowHidden], [WithHideFunctions]
//   - Truncation: [WithMaxStringLength], [WithMaxArrayLength],
//     [WithMaxObjectKeys], [WithMaxLength]
//   - Filtering (top level only): [WithInclude], [WithExclude],
//     [WithObfuscate], taking [Key] and [Pattern] matchers. Like every
//     option but styles, these replace an earlier list; [AddInclude],
//     [AddExclude] and [AddObfuscate] extend it instead
//   - Output: [WithColors], [WithHTML], [WithJSON], [WithEscape],
//     [WithFunctions], [WithStream]
//
// # Inspectors
//
// [New] returns an [Inspector] with baseline options. In HTML mode without
// a stream it wraps its output in a <pre> fragment. [Inspector.InspectSeq]
// and [InspectChan] stream many values through one inspector.
//
// # Errors
//
// Rendering never fails. Writing can:
//
//   - [ErrNoStream]: emitting without a configured stream
//   - [ErrInvalidPattern]: a "/expr/" matcher that does not compile
package yves
