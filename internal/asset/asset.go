package asset

import (
	"github.com/shopspring/decimal"
)

// Category is the closed asset grouping the app's simple input screen knows.
type Category string

const (
	CategoryCash    Category = "cash"
	CategoryDeposit Category = "deposit"
	CategoryStock   Category = "stock"
	CategoryOther   Category = "other"
)

// Label returns the app UI label carried in deep links; the canonical record
// keeps the enum tag.
func (c Category) Label() string {
	switch c {
	case CategoryDeposit:
		return "예금/적금"
	case CategoryStock:
		return "소액 투자"
	case CategoryOther:
		return "기타 실물 자산"
	default:
		return "현금"
	}
}

// Record is the canonical form of one spoken asset entry.
type Record struct {
	Category Category
	Name     string
	Amount   decimal.NullDecimal
	Location string
	Memo     string
}
