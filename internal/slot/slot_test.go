package slot_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
)

func TestValue_UnmarshalJSON(t *testing.T) {
	type testCase struct {
		name     string
		payload  string
		wantKind slot.Kind
		wantText string
	}

	tests := []testCase{
		{name: "Null", payload: `null`, wantKind: slot.KindAbsent},
		{name: "Number", payload: `3000000`, wantKind: slot.KindNumber, wantText: "3000000"},
		{name: "DecimalNumber", payload: `12.5`, wantKind: slot.KindNumber, wantText: "12.5"},
		{name: "String", payload: `"1,200원"`, wantKind: slot.KindText, wantText: "1,200원"},
		{name: "WrapperString", payload: `{"value":"3000000"}`, wantKind: slot.KindWrapper, wantText: "3000000"},
		{name: "WrapperNumber", payload: `{"value":42}`, wantKind: slot.KindWrapper, wantText: "42"},
		{name: "WrapperNull", payload: `{"value":null}`, wantKind: slot.KindAbsent},
		{name: "ObjectWithoutValue", payload: `{"other":1}`, wantKind: slot.KindAbsent},
		{name: "Garbage", payload: `[1,2]`, wantKind: slot.KindAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v slot.Value
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &v))
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.wantText, v.Text())
		})
	}
}

func TestValue_Number(t *testing.T) {
	type testCase struct {
		name string
		v    slot.Value
		want string
		ok   bool
	}

	tests := []testCase{
		{name: "Absent", v: slot.Value{}, ok: false},
		{name: "Number", v: slot.FromNumber(decimal.NewFromInt(1500)), want: "1500", ok: true},
		{name: "PlainString", v: slot.FromText("3000000"), want: "3000000", ok: true},
		{name: "NegativeString", v: slot.FromText("-42"), want: "-42", ok: true},
		{name: "WrapperString", v: slot.Wrapped("3000000"), want: "3000000", ok: true},
		{name: "FullWidthDigits", v: slot.FromText("１２００"), want: "1200", ok: true},
		{name: "NonNumericString", v: slot.FromText("우유"), ok: false},
		{name: "EmptyString", v: slot.FromText("  "), ok: false},
		{name: "CurrencyString", v: slot.FromText("1,200원"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Number()
			assert.Equal(t, tt.ok, got.Valid)
			if tt.ok {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

func TestValue_NumberFromText(t *testing.T) {
	type testCase struct {
		name string
		v    slot.Value
		want string
		ok   bool
	}

	tests := []testCase{
		{name: "CurrencyString", v: slot.FromText("1,200원"), want: "1200", ok: true},
		{name: "UnitSuffix", v: slot.FromText("3개"), want: "3", ok: true},
		{name: "Number", v: slot.FromNumber(decimal.NewFromInt(7)), want: "7", ok: true},
		{name: "OnlyJunk", v: slot.FromText("하나"), ok: false},
		{name: "Absent", v: slot.Value{}, ok: false},
		{name: "DanglingMinus", v: slot.FromText("--"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.NumberFromText()
			assert.Equal(t, tt.ok, got.Valid)
			if tt.ok {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

// Normalizing an already-normalized number must return the same number.
func TestValue_NumberIdempotent(t *testing.T) {
	first := slot.FromText("1,200원").NumberFromText()
	require.True(t, first.Valid)

	second := slot.FromNumber(first.Decimal).NumberFromText()
	require.True(t, second.Valid)
	assert.True(t, first.Decimal.Equal(second.Decimal))
}
