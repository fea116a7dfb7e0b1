package food

import (
	"github.com/shopspring/decimal"
)

// Record is the canonical form of one spoken food or household item. The
// purchase date stays a normalized phrase, not a date; the app resolves it
// against its own calendar.
type Record struct {
	Name             string
	Quantity         decimal.NullDecimal
	Unit             string
	Location         string
	Category         string
	Supplier         string
	Memo             string
	PurchaseDateText string
	HealthTags       string
	ExpiryDayOffset  *int
	Price            decimal.NullDecimal
}
