package food

import (
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/ledgervoice/internal/dateparse"
	"github.com/MrJamesThe3rd/ledgervoice/internal/deeplink"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/vocab"
)

// Slots carries the raw food-item slot values.
type Slots struct {
	Name         string
	Quantity     slot.Value
	Unit         string
	Location     string
	Category     string
	Supplier     string
	Memo         string
	PurchaseDate string
	HealthTags   string
	ExpiryDays   slot.Value
	ExpiryText   string
	Price        slot.Value
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

// Result is the direct (non-preview) registration outcome.
type Result struct {
	Success  bool
	DeepLink string
	Message  string
}

// Service normalizes spoken food slots into expiry registrations.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// NewServiceAt pins the reference clock; used by tests.
func NewServiceAt(now func() time.Time) *Service {
	return &Service{now: now}
}

// normalize samples the reference date exactly once so a call spanning
// midnight cannot mix two days' worth of offsets.
func (s *Service) normalize(sl Slots) Record {
	ref := s.now()

	rec := Record{
		Name:             strings.TrimSpace(sl.Name),
		Quantity:         sl.Quantity.NumberFromText(),
		Unit:             strings.TrimSpace(sl.Unit),
		Location:         vocab.StorageLocations.Normalize(sl.Location),
		Category:         vocab.FoodCategories.Normalize(sl.Category),
		Supplier:         vocab.Clean(sl.Supplier, vocab.SupplierRules),
		Memo:             vocab.Clean(sl.Memo, vocab.MemoRules),
		PurchaseDateText: vocab.CleanPurchaseDate(sl.PurchaseDate),
		HealthTags:       vocab.HealthTags(sl.HealthTags),
		Price:            sl.Price.NumberFromText(),
	}

	if days, ok := dateparse.ExpiryOffset(sl.ExpiryDays, sl.ExpiryText, ref); ok {
		rec.ExpiryDayOffset = &days
	}

	return rec
}

func (s *Service) Preview(sl Slots) Preview {
	rec := s.normalize(sl)

	summary := summarize(rec)
	if summary == "" {
		summary = "식재료"
	}

	return Preview{Record: rec, Message: summary + " 등록 맞나요? 등록할까요?"}
}

func (s *Service) Confirm(sl Slots) Confirm {
	rec := s.normalize(sl)

	summary := summarize(rec)
	if summary == "" {
		summary = "식재료"
	}

	return Confirm{
		Success:  true,
		DeepLink: buildLink(rec, true, true),
		Message:  summary + " 등록을 진행합니다. 지금 \"앱 열기\"라고 말하면 완료됩니다.",
	}
}

// Upsert opens the registration screen pre-filled without the auto-submit
// handshake; nothing is committed until the user acts in the app.
func (s *Service) Upsert(sl Slots) Result {
	rec := s.normalize(sl)

	return Result{
		Success:  true,
		DeepLink: buildLink(rec, false, false),
		Message:  "식재료/생활용품 등록 화면을 엽니다",
	}
}

func summarize(rec Record) string {
	var parts []string
	if rec.Name != "" {
		parts = append(parts, rec.Name)
	}
	if rec.Quantity.Valid {
		parts = append(parts, rec.Quantity.Decimal.String()+rec.Unit)
	}
	if rec.Location != "" {
		parts = append(parts, rec.Location)
	}
	if rec.Category != "" {
		parts = append(parts, rec.Category)
	}
	if rec.Supplier != "" {
		parts = append(parts, "구매처 "+rec.Supplier)
	}
	if rec.PurchaseDateText != "" {
		parts = append(parts, "구매일 "+rec.PurchaseDateText)
	}
	if rec.HealthTags != "" {
		parts = append(parts, "태그 "+rec.HealthTags)
	}
	if rec.ExpiryDayOffset != nil {
		parts = append(parts, strconv.Itoa(*rec.ExpiryDayOffset)+"일 후")
	}

	return strings.Join(parts, " ")
}

// buildLink renders the food registration link. autoSubmit is appended only
// when the caller asked for it and the record carries enough to compute an
// expiry date: a name and a resolved day offset.
func buildLink(rec Record, autoSubmit, confirmed bool) string {
	b := deeplink.NewNav("/food/expiry").
		Str("intent", "upsert").
		Str("name", rec.Name).
		Num("quantity", rec.Quantity).
		Str("unit", rec.Unit).
		Str("location", rec.Location).
		Str("category", rec.Category).
		Str("supplier", rec.Supplier).
		Str("memo", rec.Memo).
		Str("purchaseDate", rec.PurchaseDateText).
		Str("healthTags", rec.HealthTags).
		Num("price", rec.Price).
		Int("expiryDays", rec.ExpiryDayOffset)

	if autoSubmit && rec.Name != "" && rec.ExpiryDayOffset != nil {
		b.Flag("autoSubmit")
		if confirmed {
			b.Flag("confirmed")
		}
	}

	return b.String()
}
