package vocab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ledgervoice/internal/vocab"
)

func TestClean_Memo(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want string
	}

	tests := []testCase{
		{name: "Plain", raw: "유기농", want: "유기농"},
		{name: "LeadingFiller", raw: "메모 유기농", want: "유기농"},
		{name: "Quoted", raw: `"세일 상품"`, want: "세일 상품"},
		{name: "TrailingPunctuation", raw: "맛있음!!", want: "맛있음"},
		{name: "SuffixBecause", raw: "유기농이라서요", want: "유기농"},
		{name: "SuffixShortBecause", raw: "세일이라서", want: "세일"},
		{name: "SuffixHaeseo", raw: "할인해서", want: "할인"},
		{name: "SuffixOnlyNotStripped", raw: "라서요", want: "라서요"},
		{name: "Everything", raw: "메모 '반값 할인이라서요'", want: "반값 할인"},
		{name: "Empty", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vocab.Clean(tt.raw, vocab.MemoRules))
		})
	}
}

// Longer suffixes must win over shorter suffixes that are substrings of
// them; "이라서요" ends with "요" context but must strip as one unit.
func TestClean_MemoSuffixOrder(t *testing.T) {
	// If "라서" matched first this would leave "유기농이" behind.
	assert.Equal(t, "유기농", vocab.Clean("유기농이라서", vocab.MemoRules))
	assert.Equal(t, "유기농", vocab.Clean("유기농이라서요", vocab.MemoRules))
}

func TestClean_Supplier(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want string
	}

	tests := []testCase{
		{name: "Plain", raw: "이마트", want: "이마트"},
		{name: "BoughtAt", raw: "이마트에서 산 거", want: "이마트"},
		{name: "BoughtAtCompact", raw: "코스트코에서 산", want: "코스트코"},
		{name: "PurchasedAt", raw: "마켓컬리에서 구매한", want: "마켓컬리"},
		{name: "At", raw: "홈플러스에서", want: "홈플러스"},
		{name: "TrailingDash", raw: "이마트 - ", want: "이마트"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vocab.Clean(tt.raw, vocab.SupplierRules))
		})
	}
}

func TestCleanPurchaseDate(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want string
	}

	tests := []testCase{
		{name: "Yesterday", raw: "어제 샀어", want: "어제"},
		{name: "Today", raw: "오늘 마트에서", want: "오늘"},
		{name: "JustNow", raw: "방금 사왔어", want: "오늘"},
		{name: "DateWithParticle", raw: "10월 2일에 샀어", want: "10월 2일"},
		{name: "DateWithBought", raw: "지난주에 산", want: "지난주"},
		{name: "PlainDate", raw: "10월 2일", want: "10월 2일"},
		{name: "Empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vocab.CleanPurchaseDate(tt.raw))
		})
	}
}
