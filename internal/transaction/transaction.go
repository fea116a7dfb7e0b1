package transaction

import (
	"github.com/shopspring/decimal"
)

// Type represents the kind of ledger entry a spoken command creates.
type Type string

const (
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
	TypeSavings Type = "savings"
	TypeRefund  Type = "refund"
)

// Label returns the Korean display word for the type.
func (t Type) Label() string {
	switch t {
	case TypeIncome:
		return "수입"
	case TypeSavings:
		return "저축"
	case TypeRefund:
		return "반품"
	default:
		return "지출"
	}
}

// Record is the canonical form of one spoken transaction. It is built fresh
// per invocation and discarded after producing a message or deep link.
type Record struct {
	Type              Type
	Amount            decimal.NullDecimal
	Quantity          decimal.NullDecimal
	Unit              string
	UnitPrice         decimal.NullDecimal
	Description       string
	Category          string
	Memo              string
	PaymentMethod     string
	Store             string
	SavingsAllocation string
}

// EffectiveAmount is the total the user meant: an explicit amount always
// wins; otherwise quantity × unit price when both are present and positive.
func (r Record) EffectiveAmount() decimal.NullDecimal {
	if r.Amount.Valid {
		return r.Amount
	}

	if r.Quantity.Valid && r.UnitPrice.Valid &&
		r.Quantity.Decimal.IsPositive() && r.UnitPrice.Decimal.IsPositive() {
		return decimal.NullDecimal{
			Decimal: r.Quantity.Decimal.Mul(r.UnitPrice.Decimal),
			Valid:   true,
		}
	}

	return decimal.NullDecimal{}
}
