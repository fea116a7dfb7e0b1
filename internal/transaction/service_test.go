package transaction_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

func num(i int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(i), Valid: true}
}

func TestRecord_EffectiveAmount(t *testing.T) {
	type testCase struct {
		name string
		rec  transaction.Record
		want string
		ok   bool
	}

	tests := []testCase{
		{
			name: "ExplicitWins",
			rec:  transaction.Record{Amount: num(500), Quantity: num(3), UnitPrice: num(1000)},
			want: "500", ok: true,
		},
		{
			name: "DerivedFromQuantity",
			rec:  transaction.Record{Quantity: num(3), UnitPrice: num(1000)},
			want: "3000", ok: true,
		},
		{
			name: "MissingUnitPrice",
			rec:  transaction.Record{Quantity: num(3)},
			ok:   false,
		},
		{
			name: "NonPositiveQuantity",
			rec:  transaction.Record{Quantity: num(0), UnitPrice: num(1000)},
			ok:   false,
		},
		{name: "Empty", rec: transaction.Record{}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rec.EffectiveAmount()
			assert.Equal(t, tt.ok, got.Valid)
			if tt.ok {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

func TestService_Preview(t *testing.T) {
	svc := transaction.NewService()

	type testCase struct {
		name        string
		slots       transaction.Slots
		wantType    transaction.Type
		wantMessage string
	}

	tests := []testCase{
		{
			name:        "SalaryIncome",
			slots:       transaction.Slots{Type: "월급", Amount: slot.Wrapped("3000000")},
			wantType:    transaction.TypeIncome,
			wantMessage: "3000000원 수입 맞나요? 저장할까요?",
		},
		{
			name:        "DescriptionAndAmount",
			slots:       transaction.Slots{Type: "지출", Amount: slot.FromText("4500"), Description: " 커피 "},
			wantType:    transaction.TypeExpense,
			wantMessage: "커피 4500원 지출 맞나요? 저장할까요?",
		},
		{
			name:        "DescriptionOnly",
			slots:       transaction.Slots{Type: "저금", Description: "비상금"},
			wantType:    transaction.TypeSavings,
			wantMessage: "비상금 저축 맞나요? 저장할까요?",
		},
		{
			name:        "NothingRecognized",
			slots:       transaction.Slots{Type: "모르는말", Amount: slot.FromText("많이")},
			wantType:    transaction.TypeExpense,
			wantMessage: "지출을(를) 기록할까요?",
		},
		{
			name: "DerivedAmountInMessage",
			slots: transaction.Slots{
				Type:        "지출",
				Quantity:    slot.FromText("3개"),
				UnitPrice:   slot.FromText("1000"),
				Description: "라면",
			},
			wantType:    transaction.TypeExpense,
			wantMessage: "라면 3000원 지출 맞나요? 저장할까요?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Preview(tt.slots)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestService_Confirm(t *testing.T) {
	svc := transaction.NewService()

	got := svc.Confirm(transaction.Slots{Type: "월급", Amount: slot.Wrapped("3000000")})

	require.True(t, got.Success)
	assert.Equal(t,
		"smartledger://transaction/add?type=income&amount=3000000&autoSubmit=true&confirmed=true",
		got.DeepLink)
	assert.Contains(t, got.Message, "앱 열기")
}

func TestService_ConfirmRichFields(t *testing.T) {
	svc := transaction.NewService()

	got := svc.Confirm(transaction.Slots{
		Type:          "지출",
		Amount:        slot.FromText("12000"),
		Quantity:      slot.FromText("2개"),
		Unit:          "개",
		UnitPrice:     slot.FromText("6000"),
		Description:   "삼겹살",
		Category:      "식비",
		Memo:          "세일이라서요",
		PaymentMethod: "카드",
		Store:         "이마트",
	})

	assert.Equal(t,
		"smartledger://transaction/add?type=expense&amount=12000&quantity=2"+
			"&unit=%EA%B0%9C&unitPrice=6000&description=%EC%82%BC%EA%B2%B9%EC%82%B4"+
			"&category=%EC%8B%9D%EB%B9%84&paymentMethod=%EC%B9%B4%EB%93%9C"+
			"&store=%EC%9D%B4%EB%A7%88%ED%8A%B8&memo=%EC%84%B8%EC%9D%BC"+
			"&autoSubmit=true&confirmed=true",
		got.DeepLink)
}

// Preview and Confirm must agree on every canonical field for identical raw
// slots; divergence would commit something the user never approved.
func TestService_PreviewConfirmIdentity(t *testing.T) {
	svc := transaction.NewService()

	slots := transaction.Slots{
		Type:        "저축",
		Amount:      slot.Wrapped("50000"),
		Description: "적금 이체",
		Memo:        "메모 보너스라서요",
	}

	preview := svc.Preview(slots)
	confirm := svc.Confirm(slots)

	// The confirm link must be built from exactly the previewed record.
	assert.Contains(t, confirm.DeepLink, "type="+string(preview.Type))
	assert.Contains(t, confirm.DeepLink, "amount="+preview.Amount.Decimal.String())
	assert.Contains(t, confirm.DeepLink, "memo=%EB%B3%B4%EB%84%88%EC%8A%A4")
	assert.Equal(t, "보너스", preview.Memo)
}

func TestService_Quick(t *testing.T) {
	svc := transaction.NewService()

	quick := transaction.QuickSlots{
		Amount:      slot.FromText("4500"),
		Description: "아메리카노",
		Payment:     "카드",
		Store:       "스타벅스",
	}

	preview := svc.PreviewQuick(quick)
	assert.Equal(t, "아메리카노 · 4500원 · 결제:카드 · 매장:스타벅스", preview.RawLine)
	assert.Equal(t, "아메리카노 · 4500원 · 결제:카드 · 매장:스타벅스로 저장할까요?", preview.Message)

	confirm := svc.ConfirmQuick(quick)
	require.True(t, confirm.Success)
	assert.Contains(t, confirm.DeepLink, "route=%2Ftransaction%2Fquick-simple-expense")
	assert.Contains(t, confirm.DeepLink, "intent=quick_expense_add")
	assert.Contains(t, confirm.DeepLink, "amount=4500")
	assert.Contains(t, confirm.DeepLink, "autoSubmit=true&confirmed=true")
}

func TestService_Points(t *testing.T) {
	svc := transaction.NewService()

	preview := svc.PreviewPoints(transaction.PointsSlots{Amount: slot.FromText("1200")})
	assert.Equal(t, transaction.TypeSavings, preview.Type)
	assert.Equal(t, "쇼핑 포인트", preview.Description)
	assert.Equal(t, "쇼핑 포인트 1200원 포인트 기록 맞나요? 저장할까요?", preview.Message)

	confirm := svc.ConfirmPoints(transaction.PointsSlots{Amount: slot.FromText("1200")})
	assert.Contains(t, confirm.DeepLink, "type=savings")
	assert.Contains(t, confirm.DeepLink, "memo=%23%ED%8F%AC%EC%9D%B8%ED%8A%B8%EB%AA%A8%EC%9C%BC%EA%B8%B0")
	assert.Contains(t, confirm.DeepLink, "savingsAllocation=assetIncrease")
	assert.Contains(t, confirm.DeepLink, "autoSubmit=true&confirmed=true")
}

// The four-field simple flow is the rich path with the extra slots absent.
func TestService_SimpleVariantSubset(t *testing.T) {
	svc := transaction.NewService()

	got := svc.Confirm(transaction.Slots{
		Type:        "지출",
		Amount:      slot.FromText("9900"),
		Description: "점심",
		Category:    "식비",
	})

	assert.Equal(t,
		"smartledger://transaction/add?type=expense&amount=9900"+
			"&description=%EC%A0%90%EC%8B%AC&category=%EC%8B%9D%EB%B9%84"+
			"&autoSubmit=true&confirmed=true",
		got.DeepLink)
}
