// Package slot models the loosely typed parameter values the voice platform
// extracts from user speech. A slot arrives as a JSON number, a bare string,
// a wrapper object holding a number-like value, or nothing at all; every
// consumer works with the canonical accessors instead of re-inspecting the
// raw payload.
package slot

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

// Kind tags the wire shape a slot value arrived in.
type Kind int

const (
	KindAbsent Kind = iota
	KindNumber
	KindText
	KindWrapper
)

// Value is a tagged union over the slot shapes. The zero value is absent.
type Value struct {
	kind Kind
	num  decimal.Decimal
	text string
}

// FromNumber returns a numeric slot value.
func FromNumber(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

// FromText returns a textual slot value.
func FromText(s string) Value {
	return Value{kind: KindText, text: s}
}

// Wrapped returns a wrapper-object slot value holding the given number-like text.
func Wrapped(s string) Value {
	return Value{kind: KindWrapper, text: s}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// UnmarshalJSON accepts null, numbers, strings, and {"value": <number|string>}.
// Anything else degrades to absent; slot decoding never fails a request.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*v = Value{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*v = Value{}
			return nil
		}
		*v = FromText(s)
	case '{':
		var wrapper struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || len(wrapper.Value) == 0 {
			*v = Value{}
			return nil
		}
		inner := strings.TrimSpace(string(wrapper.Value))
		if inner == "null" {
			*v = Value{}
			return nil
		}
		if inner[0] == '"' {
			var s string
			if err := json.Unmarshal(wrapper.Value, &s); err != nil {
				*v = Value{}
				return nil
			}
			*v = Wrapped(s)
			return nil
		}
		*v = Wrapped(inner)
	default:
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			*v = Value{}
			return nil
		}
		*v = FromNumber(d)
	}

	return nil
}

// Number coerces the value to a nullable decimal. Absent values and strings
// that do not parse as a plain number come back invalid; a value that is
// already numeric is returned as-is, so the coercion is idempotent.
func (v Value) Number() decimal.NullDecimal {
	switch v.kind {
	case KindNumber:
		return decimal.NullDecimal{Decimal: v.num, Valid: true}
	case KindText, KindWrapper:
		return parseNumber(v.text)
	default:
		return decimal.NullDecimal{}
	}
}

// NumberFromText coerces free-text numeric phrases: textual values are first
// stripped of every rune except digits, '.' and '-', so "1,200원" parses as
// 1200. Numeric and absent values behave exactly like Number.
func (v Value) NumberFromText() decimal.NullDecimal {
	switch v.kind {
	case KindText, KindWrapper:
		return parseNumber(stripNonNumeric(v.text))
	default:
		return v.Number()
	}
}

// Text returns the trimmed textual content of the value.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return v.num.String()
	case KindText, KindWrapper:
		return strings.TrimSpace(v.text)
	default:
		return ""
	}
}

func parseNumber(s string) decimal.NullDecimal {
	// Korean IMEs routinely emit full-width digits; fold them before parsing.
	clean := strings.TrimSpace(width.Fold.String(s))
	if clean == "" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func stripNonNumeric(s string) string {
	folded := width.Fold.String(s)

	var b strings.Builder
	for _, r := range folded {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
