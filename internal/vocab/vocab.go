// Package vocab holds the fixed Korean vocabulary of the voice interface:
// synonym tables mapping free speech onto closed enum tags, open label maps
// for storage locations and food categories, the product synonym table for
// the stock domain, and the conversational suffix rulesets. Every table is
// built once at init and never written afterwards.
package vocab

import "strings"

// Table resolves free text onto a closed set of canonical tags. Matching is
// exact: first the raw text against the synonym map, then the
// lowercase-trimmed text against the tag set, then the fallback tag.
type Table struct {
	synonyms map[string]string
	tags     map[string]bool
	fallback string
}

func NewTable(fallback string, tags []string, synonyms map[string]string) Table {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}

	return Table{synonyms: synonyms, tags: set, fallback: fallback}
}

// Resolve always returns a member of the table's tag set; unrecognized input
// silently becomes the fallback.
func (t Table) Resolve(raw string) string {
	if canonical, ok := t.synonyms[raw]; ok {
		return canonical
	}

	clean := strings.ToLower(strings.TrimSpace(raw))
	if t.tags[clean] {
		return clean
	}

	return t.fallback
}

// TransactionTypes maps spoken transaction kinds onto the ledger's type tags.
var TransactionTypes = NewTable("expense",
	[]string{"expense", "income", "savings", "refund"},
	map[string]string{
		"지출": "expense",
		"소비": "expense",
		"쓴돈": "expense",
		"수입": "income",
		"월급": "income",
		"급여": "income",
		"벌이": "income",
		"저축": "savings",
		"적금": "savings",
		"저금": "savings",
		"반품": "refund",
		"환불": "refund",
	})

// AssetCategories maps spoken asset kinds onto the asset category tags.
var AssetCategories = NewTable("cash",
	[]string{"cash", "deposit", "stock", "other"},
	map[string]string{
		"현금":       "cash",
		"예금/적금":    "deposit",
		"예금":       "deposit",
		"적금":       "deposit",
		"소액 투자":    "stock",
		"투자":       "stock",
		"기타 실물 자산": "other",
		"기타":       "other",
	})

// LabelMap normalizes free text onto app display labels. Lookup is exact on
// the whitespace-compacted text; unmapped input passes through trimmed.
type LabelMap map[string]string

func (m LabelMap) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if label, ok := m[compact(trimmed)]; ok {
		return label
	}

	return trimmed
}

// StorageLocations normalizes where a food item is kept.
var StorageLocations = LabelMap{
	"냉장고":   "냉장",
	"냉동실":   "냉동",
	"상온":    "실온",
	"김치냉장고": "김치냉장고",
	"김치냉장":  "김치냉장고",
}

// FoodCategories normalizes spoken food groupings onto the app's categories.
var FoodCategories = LabelMap{
	"야채":   "채소",
	"고기":   "육류",
	"생선":   "수산물",
	"해산물":  "수산물",
	"우유":   "유제품",
	"치즈":   "유제품",
	"요구르트": "유제품",
	"냉동":   "냉동식품",
	"음료수":  "음료",
	"양념":   "양념/소스",
	"소스":   "양념/소스",
}

// productSynonyms canonicalizes spoken product names for the stock domain.
var productSynonyms = map[string]string{
	"팽이":    "팽이버섯",
	"팽이버섯":  "팽이버섯",
	"새송이":   "새송이버섯",
	"새송이버섯": "새송이버섯",
	"표고":    "표고버섯",
	"표고버섯":  "표고버섯",
	"양파":    "양파",
	"당근":    "당근",
	"감자":    "감자",
	"대파":    "대파",
	"파":     "대파",
	"마늘":    "마늘",
	"생강":    "생강",
	"고추":    "고추",
	"청양고추":  "청양고추",
	"달걀":    "달걀",
	"계란":    "달걀",
	"에그":    "달걀",
	"소고기":   "소고기",
	"쇠고기":   "소고기",
	"돼지고기":  "돼지고기",
	"삼겹살":   "삼겹살",
	"닭고기":   "닭고기",
	"닭":     "닭고기",
	"치킨":    "닭고기",
	"새우":    "새우",
	"오징어":   "오징어",
	"고등어":   "고등어",
	"삼치":    "삼치",
	"우유":    "우유",
	"치즈":    "치즈",
	"버터":    "버터",
	"요거트":   "요거트",
	"요구르트":  "요거트",
	"두부":    "두부",
	"순두부":   "순두부",
	"라면":    "라면",
	"국수":    "국수",
	"파스타":   "파스타",
	"간장":    "간장",
	"된장":    "된장",
	"고추장":   "고추장",
	"소금":    "소금",
	"설탕":    "설탕",
	"식용유":   "식용유",
	"참기름":   "참기름",
	"들기름":   "들기름",
	"사태살":   "사태살",
	"사태":    "사태살",
	"아욱":    "아욱",
	"아우":    "아욱",
}

// CanonicalProduct resolves product-name synonyms; unknown names pass
// through trimmed.
func CanonicalProduct(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return ""
	}

	if canonical, ok := productSynonyms[clean]; ok {
		return canonical
	}

	return clean
}

// defaultUnits carries the counting unit the app shows per product.
var defaultUnits = map[string]string{
	"팽이버섯":  "봉",
	"새송이버섯": "팩",
	"표고버섯":  "팩",
	"라면":    "개",
	"양파":    "개",
	"당근":    "개",
	"감자":    "개",
	"고추":    "개",
	"두부":    "모",
	"달걀":    "개",
	"대파":    "단",
	"마늘":    "통",
	"우유":    "팩",
	"치즈":    "장",
	"소고기":   "g",
	"돼지고기":  "g",
	"삼겹살":   "g",
	"닭고기":   "g",
	"새우":    "g",
	"오징어":   "g",
}

// DefaultUnit returns the counting unit for a canonical product name,
// falling back to 개.
func DefaultUnit(product string) string {
	if unit, ok := defaultUnits[product]; ok {
		return unit
	}

	return "개"
}

// healthTagVocabulary is the closed set of dietary tags the app understands.
var healthTagVocabulary = []string{"탄수화물", "당류", "주류"}

// HealthTags extracts known dietary tags from free text. A substring pass
// keeps tags embedded in longer phrases; a token pass (comma, pipe, and
// whitespace separated) catches the rest. Output is space-joined in
// first-seen order without duplicates.
func HealthTags(raw string) string {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return ""
	}

	var found []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			found = append(found, tag)
		}
	}

	for _, tag := range healthTagVocabulary {
		if strings.Contains(clean, tag) {
			add(tag)
		}
	}

	normalized := strings.ReplaceAll(clean, "|", ",")
	for _, part := range strings.Split(normalized, ",") {
		for _, token := range strings.Fields(part) {
			for _, tag := range healthTagVocabulary {
				if token == tag {
					add(tag)
				}
			}
		}
	}

	return strings.Join(found, " ")
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
