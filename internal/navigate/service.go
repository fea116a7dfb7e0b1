package navigate

import (
	"strings"

	"github.com/MrJamesThe3rd/ledgervoice/internal/deeplink"
)

// Result is the navigation outcome handed back to the voice platform. These
// actions only open screens; they never change app state.
type Result struct {
	Success  bool
	DeepLink string
	Message  string
}

// Service resolves spoken screen names into navigation deep links.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// OpenFeature opens the screen a spoken name refers to. Unknown utterances
// are tried as feature ids; an empty utterance falls back to the dashboard.
func (s *Service) OpenFeature(utterance string) Result {
	id := strings.TrimSpace(utterance)
	if mapped, ok := utteranceFeatures[id]; ok {
		id = mapped
	}
	if id == "" {
		id = "dashboard"
	}

	feature := deeplink.Lookup(id)

	b := deeplink.NewNav(feature.Route)
	if id == "food_expiry_upsert" {
		b.Str("intent", "upsert")
	}

	return Result{
		Success:  true,
		DeepLink: b.String(),
		Message:  feature.Label + "을(를) 엽니다",
	}
}

// OpenDashboard opens the home screen without going through the nav route.
func (s *Service) OpenDashboard() Result {
	return Result{
		Success:  true,
		DeepLink: deeplink.New("dashboard").String(),
		Message:  "대시보드를 엽니다",
	}
}

// OpenRecipeRecommendation scrolls the expiry screen to the daily recipe
// recommendation section.
func (s *Service) OpenRecipeRecommendation() Result {
	return Result{
		Success:  true,
		DeepLink: deeplink.NewNav("/food/expiry").Str("intent", "recipe_recommendation").String(),
		Message:  "오늘의 요리 추천 섹션을 엽니다",
	}
}

// OpenCookableRecipePicker opens the picker listing dishes cookable from
// stored ingredients.
func (s *Service) OpenCookableRecipePicker() Result {
	return Result{
		Success:  true,
		DeepLink: deeplink.NewNav("/food/expiry").Str("intent", "cookable_recipe_picker").String(),
		Message:  "보관 중인 식재료 요리 피커를 엽니다",
	}
}

// OpenUsageMode opens the expiry screen in usage (decrement) mode.
func (s *Service) OpenUsageMode() Result {
	return Result{
		Success:  true,
		DeepLink: deeplink.NewNav("/food/expiry").Str("intent", "usage_mode").String(),
		Message:  "유통기한 사용(차감) 모드를 엽니다",
	}
}

// OpenIncomeEntry routes to the income entry screen with a follow-up prompt.
func (s *Service) OpenIncomeEntry() Result {
	r := s.OpenFeature("transaction_add_income")
	r.Message = "수입 입력 화면을 엽니다. 지금 '앱 열기'라고 말하면 계속할 수 있어요."

	return r
}

// OpenReceiptScan routes to the expense entry screen where the receipt
// scanner lives.
func (s *Service) OpenReceiptScan() Result {
	r := s.OpenFeature("transaction_add")
	r.Message = "영수증 스캔 화면을 열게요. 앱이 열리면 영수증 아이콘을 눌러 촬영해 주세요. 지금 \"앱 열기\"라고 말하면 계속 진행됩니다."

	return r
}
