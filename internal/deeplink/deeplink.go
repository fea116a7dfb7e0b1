// Package deeplink assembles the smartledger:// URIs the host application
// consumes. Query parameters keep their append order, so identical canonical
// input always produces a byte-identical link.
package deeplink

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Scheme is the URI scheme the host application's link receiver registers.
const Scheme = "smartledger"

// Builder accumulates an ordered query string for one deep link.
type Builder struct {
	path   string
	params []string
}

// New starts a link for a direct entity action, e.g. "transaction/add".
func New(path string) *Builder {
	return &Builder{path: path}
}

// NewNav starts a navigation link; the route is carried percent-encoded as
// the first query value even though it contains path-like text.
func NewNav(route string) *Builder {
	return New("nav/open").Str("route", route)
}

// Str appends a string parameter. Values empty after trimming are omitted
// entirely; everything else is percent-encoded.
func (b *Builder) Str(key, value string) *Builder {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return b
	}

	b.params = append(b.params, key+"="+url.QueryEscape(trimmed))
	return b
}

// Num appends a numeric parameter in decimal text form; invalid (absent)
// numbers are omitted.
func (b *Builder) Num(key string, value decimal.NullDecimal) *Builder {
	if !value.Valid {
		return b
	}

	b.params = append(b.params, key+"="+value.Decimal.String())
	return b
}

// Int appends an optional integer parameter.
func (b *Builder) Int(key string, value *int) *Builder {
	if value == nil {
		return b
	}

	return b.Num(key, decimal.NullDecimal{Decimal: decimal.NewFromInt(int64(*value)), Valid: true})
}

// Flag appends key=true. Flags are never emitted as false; callers simply
// skip the call.
func (b *Builder) Flag(key string) *Builder {
	b.params = append(b.params, key+"=true")
	return b
}

func (b *Builder) String() string {
	uri := Scheme + "://" + b.path
	if len(b.params) == 0 {
		return uri
	}

	return uri + "?" + strings.Join(b.params, "&")
}
