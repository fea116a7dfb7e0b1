package vocab

import (
	"strings"
	"unicode"
)

// Ruleset describes how to recover the semantic content of one kind of
// conversational free text. Suffixes are checked top to bottom and the first
// match wins, so longer suffixes must precede any shorter suffix that is a
// substring of them — the order is part of the contract.
type Ruleset struct {
	Prefixes     []string // leading filler tokens, stripped with trailing spaces
	Suffixes     []string // ordered sentence-final particles
	Loose        bool     // match suffixes across intervening whitespace
	TrimTrailing string   // extra trailing runes removed before suffix matching
}

// MemoRules cleans spoken memo text ("유기농이라서요" → "유기농").
var MemoRules = Ruleset{
	Prefixes: []string{"메모", "노트", "설명"},
	Suffixes: []string{
		"이라서요",
		"라서요",
		"여서요",
		"해서요",
		"이라서",
		"라서",
		"여서",
		"해서",
		"라",
		"야",
	},
}

// SupplierRules cleans spoken purchase sources ("이마트에서 산 거" → "이마트").
var SupplierRules = Ruleset{
	TrimTrailing: " \t-–—",
	Loose:        true,
	Suffixes: []string{
		"에서 산 거",
		"에서 산것",
		"에서 산",
		"에서 구매한",
		"에서 구매",
		"에서 구입한",
		"에서 구입",
		"에서",
	},
}

// purchaseDateRules strips trailing "bought it" particles from date phrases.
var purchaseDateRules = Ruleset{
	Loose: true,
	Suffixes: []string{
		"에샀어",
		"에샀어요",
		"에산거",
		"에산것",
		"에산",
		"샀어",
		"샀어요",
		"산거",
		"산것",
		"산",
		"구매했어",
		"구매했어요",
		"구매한거",
		"구매한",
		"구입했어",
		"구입했어요",
		"구입한",
	},
}

// Clean trims the text, strips filler prefixes, a surrounding quote pair,
// trailing punctuation, and at most one conversational suffix per the
// ruleset. Cleaning never empties a non-empty input through suffix removal.
func Clean(raw string, rs Ruleset) string {
	out := strings.TrimSpace(raw)
	if out == "" {
		return ""
	}

	for _, prefix := range rs.Prefixes {
		if strings.HasPrefix(out, prefix) {
			out = strings.TrimSpace(strings.TrimPrefix(out, prefix))
		}
	}

	out = stripQuotePair(out)
	out = strings.TrimSpace(strings.TrimRight(out, ".!?~"))

	if rs.TrimTrailing != "" {
		out = strings.TrimSpace(strings.TrimRight(out, rs.TrimTrailing))
	}

	for _, suffix := range rs.Suffixes {
		var trimmed string
		var ok bool
		if rs.Loose {
			trimmed, ok = trimSuffixLoose(out, suffix)
		} else {
			trimmed, ok = trimSuffixExact(out, suffix)
		}

		if ok && trimmed != "" {
			out = trimmed
			break
		}
	}

	return out
}

// CleanPurchaseDate normalizes spoken purchase-date text. Phrases mentioning
// 어제/오늘/방금/막 collapse to the day word; everything else loses its
// trailing "bought it" particle.
func CleanPurchaseDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	compacted := compact(trimmed)
	if strings.Contains(compacted, "어제") {
		return "어제"
	}
	if strings.Contains(compacted, "오늘") || strings.Contains(compacted, "방금") || strings.Contains(compacted, "막") {
		return "오늘"
	}

	return Clean(trimmed, purchaseDateRules)
}

func stripQuotePair(s string) string {
	runes := []rune(s)
	if len(runes) < 3 {
		return s
	}

	first, last := runes[0], runes[len(runes)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return strings.TrimSpace(string(runes[1 : len(runes)-1]))
	}

	return s
}

func trimSuffixExact(s, suffix string) (string, bool) {
	if !strings.HasSuffix(s, suffix) {
		return s, false
	}

	return strings.TrimSpace(strings.TrimSuffix(s, suffix)), true
}

// trimSuffixLoose removes the suffix runes from the end of s while skipping
// whitespace inside the match, so "10월 2일에 샀어" loses "에샀어".
func trimSuffixLoose(s, suffix string) (string, bool) {
	runes := []rune(s)
	target := []rune(suffix)

	i := len(runes) - 1
	for j := len(target) - 1; j >= 0; j-- {
		if unicode.IsSpace(target[j]) {
			continue
		}
		for i >= 0 && unicode.IsSpace(runes[i]) {
			i--
		}
		if i < 0 || runes[i] != target[j] {
			return s, false
		}
		i--
	}

	return strings.TrimSpace(string(runes[:i+1])), true
}
