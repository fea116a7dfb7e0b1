package asset

import (
	"strings"

	"github.com/MrJamesThe3rd/ledgervoice/internal/deeplink"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/vocab"
)

// Slots carries the raw asset slot values.
type Slots struct {
	Category string
	Name     string
	Amount   slot.Value
	Location string
	Memo     string
}

type Preview struct {
	Record
	Message string
}

type Confirm struct {
	Success  bool
	DeepLink string
	Message  string
}

// Service normalizes spoken asset slots; stateless.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) normalize(sl Slots) Record {
	return Record{
		Category: Category(vocab.AssetCategories.Resolve(sl.Category)),
		Name:     strings.TrimSpace(sl.Name),
		Amount:   sl.Amount.Number(),
		Location: strings.TrimSpace(sl.Location),
		Memo:     strings.TrimSpace(sl.Memo),
	}
}

func (s *Service) Preview(sl Slots) Preview {
	rec := s.normalize(sl)

	message := "자산을 저장할까요?"
	if rec.Name != "" && rec.Amount.Valid {
		message = rec.Category.Label() + " | " + rec.Name + " " + rec.Amount.Decimal.String() + "원 맞나요? 자산 저장할까요?"
	}

	return Preview{Record: rec, Message: message}
}

func (s *Service) Confirm(sl Slots) Confirm {
	rec := s.normalize(sl)

	var parts []string
	if rec.Name != "" {
		parts = append(parts, rec.Name)
	}
	if rec.Amount.Valid {
		parts = append(parts, rec.Amount.Decimal.String()+"원")
	}

	return Confirm{
		Success:  true,
		DeepLink: buildLink(rec, true, true),
		Message:  strings.Join(parts, " ") + " 자산 저장을 진행합니다. 지금 \"앱 열기\"라고 말하면 완료됩니다.",
	}
}

func buildLink(rec Record, autoSubmit, confirmed bool) string {
	b := deeplink.NewNav("/asset/input/simple").
		Str("intent", "asset_add").
		Str("category", rec.Category.Label()).
		Str("name", rec.Name).
		Num("amount", rec.Amount).
		Str("location", rec.Location).
		Str("memo", rec.Memo)

	if autoSubmit {
		b.Flag("autoSubmit")
		if confirmed {
			b.Flag("confirmed")
		}
	}

	return b.String()
}
