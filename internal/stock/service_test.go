package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/stock"
)

func TestService_Check(t *testing.T) {
	svc := stock.NewService()

	got := svc.Check("계란")
	assert.Equal(t, "달걀", got.ProductName)
	assert.Equal(t, "개", got.Unit)
	assert.Equal(t, 0, got.CurrentStock)
	assert.Equal(t, "smartledger://stock/check?product=%EB%8B%AC%EA%B1%80", got.DeepLink)

	got = svc.Check("팽이")
	assert.Equal(t, "팽이버섯", got.ProductName)
	assert.Equal(t, "봉", got.Unit)
}

func TestService_PreviewUse(t *testing.T) {
	svc := stock.NewService()

	type testCase struct {
		name        string
		slots       stock.Slots
		wantName    string
		wantMessage string
	}

	tests := []testCase{
		{
			name:        "WithAmountAndUnit",
			slots:       stock.Slots{ProductName: "파", Amount: slot.FromText("2"), Unit: "단"},
			wantName:    "대파",
			wantMessage: "대파 2단 차감 맞나요? 차감할까요?",
		},
		{
			name:        "WholeStock",
			slots:       stock.Slots{ProductName: "우유"},
			wantName:    "우유",
			wantMessage: "우유 전량 차감 맞나요? 차감할까요?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.PreviewUse(tt.slots)
			assert.Equal(t, tt.wantName, got.ProductName)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestService_ConfirmUse(t *testing.T) {
	svc := stock.NewService()

	got := svc.ConfirmUse(stock.Slots{ProductName: "계란", Amount: slot.FromText("3"), Unit: "개"})

	require.True(t, got.Success)
	assert.Equal(t,
		"smartledger://stock/use?product=%EB%8B%AC%EA%B1%80&amount=3&unit=%EA%B0%9C&autoSubmit=true&confirmed=true",
		got.DeepLink)
	assert.Contains(t, got.Message, "달걀 3개 차감")
}

func TestService_ConfirmUseWholeStock(t *testing.T) {
	svc := stock.NewService()

	got := svc.ConfirmUse(stock.Slots{ProductName: "두부"})

	assert.Equal(t,
		"smartledger://stock/use?product=%EB%91%90%EB%B6%80&autoSubmit=true&confirmed=true",
		got.DeepLink)
	assert.Contains(t, got.Message, "두부 전량 차감")
}
