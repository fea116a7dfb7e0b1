package deeplink

import "sort"

// Feature pairs a screen's display label with its in-app route.
type Feature struct {
	Label string
	Route string
}

// features is the closed feature-id table shared with the host application.
var features = map[string]Feature{
	"dashboard":                  {Label: "대시보드", Route: "/"},
	"food_expiry":                {Label: "유통기한", Route: "/food/expiry"},
	"food_expiry_upsert":         {Label: "식재료/생활용품 등록", Route: "/food/expiry"},
	"shopping_cart":              {Label: "장바구니", Route: "/shopping/cart"},
	"shopping_points_input":      {Label: "포인트 입력", Route: "/shopping/points-input"},
	"shopping_prep":              {Label: "쇼핑준비", Route: "/shopping/prep"},
	"assets":                     {Label: "자산", Route: "/asset/dashboard"},
	"recipe":                     {Label: "레시피", Route: "/food/cooking-start"},
	"transaction_add":            {Label: "지출입력", Route: "/transaction/add"},
	"transaction_add_income":     {Label: "수입입력", Route: "/transaction/add-income"},
	"transaction_add_detailed":   {Label: "상세입력", Route: "/transaction/add-detailed"},
	"quick_simple_expense_input": {Label: "간편 지출", Route: "/transaction/quick-simple-expense"},
	"daily_transactions":         {Label: "일일내역", Route: "/transaction/daily"},
	"income_detail":              {Label: "수입 상세", Route: "/transaction/detail-income"},
	"income_split":               {Label: "수입배분", Route: "/income/split"},
	"refunds":                    {Label: "반품", Route: "/transaction/refund"},
	"project_100m":               {Label: "1억 프로젝트", Route: "/asset/project-100m"},
	"weather_manual_input":       {Label: "날씨 입력", Route: "/weather/manual-input"},
	"stats_overview":             {Label: "통계", Route: "/stats/monthly"},
	"fixed_cost_stats":           {Label: "고정비 통계", Route: "/fixed-cost/stats"},
	"period_stats_week":          {Label: "주간 리포트", Route: "/stats/period/week"},
	"period_stats_month":         {Label: "월간 리포트", Route: "/stats/period/month"},
	"period_stats_quarter":       {Label: "분기 리포트", Route: "/stats/period/quarter"},
	"period_stats_half_year":     {Label: "반기 리포트", Route: "/stats/period/half-year"},
	"period_stats_year":          {Label: "연간 리포트", Route: "/stats/period/year"},
	"period_stats_decade":        {Label: "10년", Route: "/stats/period/decade"},
	"stats_search":               {Label: "통계 검색", Route: "/stats/search"},
	"shopping_cheapest_month":    {Label: "최저가 달", Route: "/stats/shopping/cheapest-month"},
	"monthly_stats":              {Label: "월간통계", Route: "/stats/monthly-simple"},
	"spending_analysis":          {Label: "소비분석", Route: "/stats/spending-analysis"},
	"card_discount_stats":        {Label: "카드할인통계", Route: "/stats/card-discount"},
	"points_motivation_stats":    {Label: "포인트통계", Route: "/stats/points-motivation"},
	"weather_price_prediction":   {Label: "날씨 기반 가격 예측", Route: "/stats/weather-price-prediction"},
	"savings_plan":               {Label: "저축플랜", Route: "/savings/plan/list"},
	"emergency_fund":             {Label: "비상금", Route: "/emergency-fund"},
	"quick_stock":                {Label: "빠른 재고 차감", Route: "/household/quick-stock-use"},
	"consumables":                {Label: "소모품", Route: "/household/consumables"},
	"consumable_inventory":       {Label: "재고목록", Route: "/household/inventory"},
	"calendar":                   {Label: "캘린더", Route: "/calendar"},
	"asset_input":                {Label: "자산 입력", Route: "/asset/input/simple"},
	"asset_allocation":           {Label: "자산 배분", Route: "/asset/allocation"},
	"asset_management":           {Label: "자산 평가", Route: "/asset/management"},
	"icon_management_asset":      {Label: "자산 아이콘 관리", Route: "/settings/icon-management-asset"},
	"root_transactions":          {Label: "전체 거래", Route: "/root/transactions"},
	"root_search":                {Label: "루트 검색", Route: "/root/search"},
	"root_account_manage":        {Label: "계정 관리", Route: "/root/accounts"},
	"root_month_end":             {Label: "월말 정산", Route: "/root/month-end"},
	"screen_saver_settings":      {Label: "보호기 설정", Route: "/root/screen-saver-settings"},
	"icon_management_root":       {Label: "루트 아이콘 관리", Route: "/settings/icon-management-root"},
	"application_settings":       {Label: "애플리케이션 설정", Route: "/settings/application"},
	"theme_settings":             {Label: "테마", Route: "/settings/theme"},
	"display_settings":           {Label: "표시/폰트", Route: "/display-settings"},
	"language_settings":          {Label: "언어 설정", Route: "/settings/language"},
	"currency_settings":          {Label: "통화 설정", Route: "/currency-settings"},
	"nutrition_report":           {Label: "레시피/식재료 검색", Route: "/nutrition-report"},
	"settings":                   {Label: "설정", Route: "/settings"},
	"backup":                     {Label: "백업", Route: "/backup"},
	"trash":                      {Label: "휴지통", Route: "/trash"},
	"voice_shortcuts":            {Label: "음성단축키", Route: "/settings/voice-shortcuts"},
	"voice_dashboard":            {Label: "음성대시보드", Route: "/voice/dashboard"},
}

// Lookup returns the feature for an id. Unknown ids fall back to the id
// itself as label and the root route.
func Lookup(id string) Feature {
	if f, ok := features[id]; ok {
		return f
	}

	return Feature{Label: id, Route: "/"}
}

// IDs returns every known feature id in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(features))
	for id := range features {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
