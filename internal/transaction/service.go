package transaction

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgervoice/internal/deeplink"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/vocab"
)

// Slots carries the raw transaction slot values as the voice platform
// extracted them.
type Slots struct {
	Type          string
	Amount        slot.Value
	Quantity      slot.Value
	Unit          string
	UnitPrice     slot.Value
	Description   string
	Category      string
	Memo          string
	PaymentMethod string
	Store         string
}

// Preview is the canonical record plus the confirmation question; no deep
// link is produced at this stage.
type Preview struct {
	Record
	Message string
}

// Confirm is the committed result the voice platform hands to the phone.
type Confirm struct {
	Success  bool
	DeepLink string
	Message  string
}

// Service normalizes spoken transaction slots into canonical records and
// deep links. It is stateless; concurrent calls are independent.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// normalize is the single normalization path shared by Preview and Confirm.
// Both phases must agree on every canonical field for identical raw input.
func (s *Service) normalize(sl Slots) Record {
	return Record{
		Type:          Type(vocab.TransactionTypes.Resolve(sl.Type)),
		Amount:        sl.Amount.Number(),
		Quantity:      sl.Quantity.NumberFromText(),
		Unit:          strings.TrimSpace(sl.Unit),
		UnitPrice:     sl.UnitPrice.Number(),
		Description:   strings.TrimSpace(sl.Description),
		Category:      strings.TrimSpace(sl.Category),
		Memo:          vocab.Clean(sl.Memo, vocab.MemoRules),
		PaymentMethod: strings.TrimSpace(sl.PaymentMethod),
		Store:         strings.TrimSpace(sl.Store),
	}
}

func (s *Service) Preview(sl Slots) Preview {
	rec := s.normalize(sl)

	label := rec.Type.Label()
	amount := rec.EffectiveAmount()

	var message string
	switch {
	case rec.Description != "" && amount.Valid:
		message = rec.Description + " " + amount.Decimal.String() + "원 " + label + " 맞나요? 저장할까요?"
	case amount.Valid:
		message = amount.Decimal.String() + "원 " + label + " 맞나요? 저장할까요?"
	case rec.Description != "":
		message = rec.Description + " " + label + " 맞나요? 저장할까요?"
	default:
		message = label + "을(를) 기록할까요?"
	}

	return Preview{Record: rec, Message: message}
}

func (s *Service) Confirm(sl Slots) Confirm {
	rec := s.normalize(sl)

	var parts []string
	if rec.Description != "" {
		parts = append(parts, rec.Description)
	}
	if amount := rec.EffectiveAmount(); amount.Valid {
		parts = append(parts, amount.Decimal.String()+"원")
	}
	parts = append(parts, rec.Type.Label())

	return Confirm{
		Success:  true,
		DeepLink: buildLink(rec, true, true),
		Message:  strings.Join(parts, " ") + " 저장을 진행합니다. 지금 \"앱 열기\"라고 말하면 완료됩니다.",
	}
}

// buildLink renders the transaction/add deep link. Parameter order is fixed
// and part of the link contract with the app.
func buildLink(rec Record, autoSubmit, confirmed bool) string {
	b := deeplink.New("transaction/add").
		Str("type", string(rec.Type)).
		Num("amount", rec.Amount).
		Num("quantity", rec.Quantity).
		Str("unit", rec.Unit).
		Num("unitPrice", rec.UnitPrice).
		Str("description", rec.Description).
		Str("category", rec.Category).
		Str("paymentMethod", rec.PaymentMethod).
		Str("store", rec.Store).
		Str("memo", rec.Memo).
		Str("savingsAllocation", rec.SavingsAllocation)

	if autoSubmit {
		b.Flag("autoSubmit")
		if confirmed {
			b.Flag("confirmed")
		}
	}

	return b.String()
}

// QuickSlots carries the one-line simple expense slots.
type QuickSlots struct {
	Amount      slot.Value
	Description string
	Payment     string
	Store       string
}

// QuickPreview echoes the normalized quick-expense fields plus the one-line
// summary the app's line parser accepts.
type QuickPreview struct {
	Amount      decimal.NullDecimal
	Description string
	Payment     string
	Store       string
	RawLine     string
	Message     string
}

func (s *Service) PreviewQuick(sl QuickSlots) QuickPreview {
	amount, description, payment, store := normalizeQuick(sl)

	var parts []string
	if description != "" {
		parts = append(parts, description)
	}
	if amount.Valid {
		parts = append(parts, amount.Decimal.String()+"원")
	}
	if payment != "" {
		parts = append(parts, "결제:"+payment)
	}
	if store != "" {
		parts = append(parts, "매장:"+store)
	}

	summary := strings.Join(parts, " · ")
	message := summary
	if message == "" {
		message = "간편 지출"
	}

	return QuickPreview{
		Amount:      amount,
		Description: description,
		Payment:     payment,
		Store:       store,
		RawLine:     summary,
		Message:     message + "로 저장할까요?",
	}
}

func (s *Service) ConfirmQuick(sl QuickSlots) Confirm {
	amount, description, payment, store := normalizeQuick(sl)

	var parts []string
	if description != "" {
		parts = append(parts, description)
	}
	if amount.Valid {
		parts = append(parts, amount.Decimal.String()+"원")
	}
	if payment != "" {
		parts = append(parts, payment)
	}
	if store != "" {
		parts = append(parts, store)
	}

	b := deeplink.NewNav("/transaction/quick-simple-expense").
		Str("intent", "quick_expense_add").
		Str("line", strings.Join(parts, " ")).
		Num("amount", amount).
		Str("description", description).
		Str("payment", payment).
		Str("store", store).
		Flag("autoSubmit").
		Flag("confirmed")

	return Confirm{
		Success:  true,
		DeepLink: b.String(),
		Message:  "간편 지출 입력 화면을 엽니다",
	}
}

func normalizeQuick(sl QuickSlots) (decimal.NullDecimal, string, string, string) {
	return sl.Amount.Number(),
		strings.TrimSpace(sl.Description),
		strings.TrimSpace(sl.Payment),
		strings.TrimSpace(sl.Store)
}

// pointsMemo tags shopping point savings so the app groups them.
const pointsMemo = "#포인트모으기"

// PointsSlots carries the shopping-point slots.
type PointsSlots struct {
	Amount      slot.Value
	Description string
}

func (s *Service) PreviewPoints(sl PointsSlots) Preview {
	rec := s.normalizePoints(sl)

	message := "쇼핑 포인트를 기록할까요?"
	if rec.Amount.Valid {
		message = rec.Description + " " + rec.Amount.Decimal.String() + "원 포인트 기록 맞나요? 저장할까요?"
	}

	return Preview{Record: rec, Message: message}
}

func (s *Service) ConfirmPoints(sl PointsSlots) Confirm {
	rec := s.normalizePoints(sl)
	rec.Memo = pointsMemo
	rec.SavingsAllocation = "assetIncrease"

	parts := []string{rec.Description}
	if rec.Amount.Valid {
		parts = append(parts, rec.Amount.Decimal.String()+"원")
	}
	parts = append(parts, "포인트")

	return Confirm{
		Success:  true,
		DeepLink: buildLink(rec, true, true),
		Message:  strings.Join(parts, " ") + " 입력을 진행합니다. 지금 \"앱 열기\"라고 말하면 완료됩니다.",
	}
}

func (s *Service) normalizePoints(sl PointsSlots) Record {
	description := strings.TrimSpace(sl.Description)
	if description == "" {
		description = "쇼핑 포인트"
	}

	return Record{
		Type:        TypeSavings,
		Amount:      sl.Amount.Number(),
		Description: description,
	}
}
