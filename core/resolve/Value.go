package resolve

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tells which field of a Value is populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Value is a positional argument handed to an action.
// The zero Value is Null.
type Value struct {
	kind  Kind
	num   float64
	text  string
	other any
}

// Null returns the null value.
func Null() Value { return Value{} }

// Number wraps a numeric argument.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text wraps a string argument verbatim. No coercion is applied.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Other wraps a caller value that is neither numeric nor a string.
func Other(v any) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindOther, other: v}
}

// Coerce converts a raw caller-supplied argument into a Value.
// nil becomes Null, Go numbers become Number, strings that read as a numeric
// literal become Number and every other value is kept as it is.
func Coerce(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		if t.kind == KindText {
			return Coerce(t.text)
		}
		return t
	case string:
		if f, ok := ParseNumber(t); ok {
			return Number(f)
		}
		return Text(t)
	case []byte:
		return Coerce(string(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case float32:
		return Number(float64(t))
	case float64:
		return Number(t)
	default:
		return Other(v)
	}
}

// ParseNumber reports whether s is a numeric literal and returns its value.
// Surrounding whitespace is ignored. At least one digit is required, so the
// empty string is not a number. Hex literals take no sign, "_" separators
// are refused and NaN is never produced.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	// strconv takes "_" digit separators; a numeric literal does not
	if s == "" || !strings.ContainsAny(s, "0123456789") || strings.ContainsRune(s, '_') {
		return 0, false
	}

	signed := s[0] == '+' || s[0] == '-'
	unsigned := s
	if signed {
		unsigned = s[1:]
	}
	if len(unsigned) >= 2 && (unsigned[:2] == "0x" || unsigned[:2] == "0X") {
		// Hex is unsigned only
		if signed || len(unsigned) == 2 {
			return 0, false
		}
		n, err := strconv.ParseUint(unsigned[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsText() bool   { return v.kind == KindText }

// Float returns the numeric value, if any.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Int returns the numeric value when it is integral and fits in an int64.
func (v Value) Int() (int64, bool) {
	if v.kind != KindNumber || v.num != math.Trunc(v.num) ||
		v.num < math.MinInt64 || v.num > math.MaxInt64 {
		return 0, false
	}
	return int64(v.num), true
}

// Text returns the string carried by a Text value, or "" otherwise.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// Interface returns the natural Go value: nil, float64, string or the
// original caller value.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindOther:
		return v.other
	default:
		return nil
	}
}

// String formats the value the way it appears in diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return strconv.Quote(v.text)
	case KindOther:
		return fmt.Sprintf("%v", v.other)
	default:
		return "null"
	}
}

// Args is the ordered argument list passed to an action.
type Args []Value

// Len returns the number of arguments.
func (a Args) Len() int { return len(a) }

// At returns the i-th argument, or Null when out of range.
func (a Args) At(i int) Value {
	if i < 0 || i >= len(a) {
		return Null()
	}
	return a[i]
}

// Strings renders every argument with Value.String.
func (a Args) Strings() []string {
	out := make([]string, len(a))
	for i, v := range a {
		out[i] = v.String()
	}
	return out
}

// Interfaces returns the arguments as plain Go values.
func (a Args) Interfaces() []any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Interface()
	}
	return out
}

// CoerceAll applies Coerce to each raw value, preserving order.
func CoerceAll(raw ...any) Args {
	out := make(Args, len(raw))
	for i, r := range raw {
		out[i] = Coerce(r)
	}
	return out
}
