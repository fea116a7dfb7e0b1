package stock

import (
	"github.com/shopspring/decimal"
)

// Adjustment is the canonical form of one spoken stock decrement. An absent
// amount means the whole remaining stock.
type Adjustment struct {
	ProductName string
	Amount      decimal.NullDecimal
	Unit        string
}

// CheckResult carries the stock-check deep link plus placeholder fields the
// app replaces with live inventory values once the link is opened.
type CheckResult struct {
	ProductName  string
	CurrentStock int
	Unit         string
	ExpiryDays   *int
	LastPrice    decimal.NullDecimal
	Location     string
	DeepLink     string
}
