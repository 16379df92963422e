package resolve

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RouteMeta identifies the route being dispatched.
// Both fields are only used in diagnostics and error text.
type RouteMeta struct {
	Name    string
	Pattern string
}

// Options configures a single resolution.
type Options struct {
	// Suffix is appended to every candidate name, e.g. "Action".
	Suffix string
	// DefaultAction is the fallback name before Suffix is applied.
	DefaultAction string
	// NoDefault disables the fallback; an unmatched route then fails.
	NoDefault bool
}

// Result is the outcome of a successful resolution.
type Result struct {
	// Action is the full action name, suffix included.
	Action string
	// Args holds the leftover segments followed by the coerced extra values.
	Args Args
	// Prefix is the number of segments consumed by the action name.
	// It is 0 when the default action was chosen.
	Prefix int
	// Tried lists every direct candidate tested, longest first.
	Tried []string
	// Fallback is set when the default action was chosen.
	Fallback bool
}

// Resolve finds the longest segment prefix whose camel-joined name (plus
// opts.Suffix) satisfies has, and builds the argument list from the segments
// that were not consumed followed by extra.
//
// Example: segments ["bundle", "edit", "nuff"] with extra ["10"] and suffix
// "Action" tries "bundleEditNuffAction" then "bundleEditAction"; when the
// latter exists the result is bundleEditAction("nuff", 10).
func Resolve(meta RouteMeta, segments []string, extra []Value, has func(string) bool, opts Options) (Result, error) {
	coerced := make(Args, len(extra))
	for i, v := range extra {
		coerced[i] = Coerce(v)
	}

	tried := make([]string, 0, len(segments))
	k := len(segments)
	for ; k > 0; k-- {
		name := CamelJoin(segments[:k]) + opts.Suffix
		tried = append(tried, name)
		if has(name) {
			break
		}
	}

	res := Result{Tried: tried, Prefix: k}
	if k > 0 {
		res.Action = tried[len(tried)-1]
	}

	if res.Action == "" || !has(res.Action) {
		if opts.NoDefault {
			return Result{}, &NoActionError{Route: meta, Tried: tried}
		}
		name := opts.DefaultAction + opts.Suffix
		if !has(name) {
			return Result{}, &NoActionError{Route: meta, Tried: append(tried, name), Default: name}
		}
		res.Action = name
		res.Prefix = 0
		res.Fallback = true
	}

	res.Args = make(Args, 0, len(segments)-res.Prefix+len(coerced))
	for _, seg := range segments[res.Prefix:] {
		res.Args = append(res.Args, Text(seg))
	}
	res.Args = append(res.Args, coerced...)
	return res, nil
}

// Candidates returns the names Resolve tests for segments, in search order.
func Candidates(segments []string, suffix string) []string {
	names := make([]string, 0, len(segments))
	for k := len(segments); k > 0; k-- {
		names = append(names, CamelJoin(segments[:k])+suffix)
	}
	return names
}

// CamelJoin concatenates segments, upper-casing the first rune of every
// segment after the first. The first segment is used as given.
func CamelJoin(segments []string) string {
	if len(segments) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(segments[0])
	for _, seg := range segments[1:] {
		r, size := utf8.DecodeRuneInString(seg)
		if size == 0 {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(seg[size:])
	}
	return sb.String()
}
