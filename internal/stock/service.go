package stock

import (
	"strings"

	"github.com/MrJamesThe3rd/ledgervoice/internal/deeplink"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/vocab"
)

// Slots carries the raw stock-use slot values.
type Slots struct {
	ProductName string
	Amount      slot.Value
	Unit        string
}

type Preview struct {
	Adjustment
	Message string
}

type Confirm struct {
	Success  bool
	DeepLink string
	Message  string
}

// Service normalizes spoken stock commands; stateless.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Check canonicalizes the product name and returns the stock-check link.
// The inventory fields are placeholders; the app fills them on open.
func (s *Service) Check(productName string) CheckResult {
	name := vocab.CanonicalProduct(productName)

	return CheckResult{
		ProductName: name,
		Unit:        vocab.DefaultUnit(name),
		DeepLink:    deeplink.New("stock/check").Str("product", name).String(),
	}
}

func (s *Service) normalize(sl Slots) Adjustment {
	return Adjustment{
		ProductName: vocab.CanonicalProduct(sl.ProductName),
		Amount:      sl.Amount.Number(),
		Unit:        strings.TrimSpace(sl.Unit),
	}
}

func (s *Service) PreviewUse(sl Slots) Preview {
	adj := s.normalize(sl)

	message := adj.ProductName + " 전량 차감 맞나요? 차감할까요?"
	if adj.Amount.Valid {
		message = adj.ProductName + " " + adj.Amount.Decimal.String() + adj.Unit + " 차감 맞나요? 차감할까요?"
	}

	return Preview{Adjustment: adj, Message: message}
}

func (s *Service) ConfirmUse(sl Slots) Confirm {
	adj := s.normalize(sl)

	summary := adj.ProductName + " 전량"
	if adj.Amount.Valid {
		summary = adj.ProductName + " " + adj.Amount.Decimal.String() + adj.Unit
	}

	b := deeplink.New("stock/use").
		Str("product", adj.ProductName).
		Num("amount", adj.Amount).
		Str("unit", adj.Unit).
		Flag("autoSubmit").
		Flag("confirmed")

	return Confirm{
		Success:  true,
		DeepLink: b.String(),
		Message:  summary + " 차감을 진행합니다. 지금 \"앱 열기\"라고 말하면 완료됩니다.",
	}
}
