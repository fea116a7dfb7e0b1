// Package dateparse resolves Korean expiry-date phrases into day offsets.
// All arithmetic is anchored to a reference date supplied by the caller; the
// package never reads the clock, so one invocation cannot straddle midnight.
package dateparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
)

var (
	relativeDays = regexp.MustCompile(`(\d{1,3})\s*일\s*(?:후|뒤)`)
	monthDay     = regexp.MustCompile(`(\d{1,2})\s*월\s*(\d{1,2})\s*일`)
)

// dayWords are whitespace-collapsed exact matches for near-term phrases.
var dayWords = map[string]int{
	"오늘":   0,
	"오늘까지": 0,
	"방금":   0,
	"막":    0,
	"내일":   1,
	"내일까지": 1,
	"모레":   2,
	"모레까지": 2,
}

var saturdayDeadlines = map[string]bool{
	"주말까지":     true,
	"이번주주말까지": true,
	"토요일까지":    true,
	"이번주토요일까지": true,
	"토까지":      true,
}

var sundayDeadlines = map[string]bool{
	"일요일까지":    true,
	"이번주일요일까지": true,
	"일까지":      true,
	"이번주까지":    true,
	"금주까지":     true,
}

// ExpiryOffset resolves the expiry day offset for a food item. An explicit
// numeric slot always wins, returned as given; otherwise the phrase is
// parsed relative to ref. The second return is false when neither input
// yields an offset.
func ExpiryOffset(direct slot.Value, phrase string, ref time.Time) (int, bool) {
	if d := direct.NumberFromText(); d.Valid {
		return int(d.Decimal.IntPart()), true
	}

	return PhraseOffset(phrase, ref)
}

// PhraseOffset parses a spoken deadline phrase into a non-negative day
// offset from ref. Unparseable phrases report false, never an error.
func PhraseOffset(phrase string, ref time.Time) (int, bool) {
	raw := strings.TrimSpace(phrase)
	if raw == "" {
		return 0, false
	}

	compacted := strings.Join(strings.Fields(raw), "")

	if days, ok := dayWords[compacted]; ok {
		return days, true
	}

	if saturdayDeadlines[compacted] {
		return daysUntilWeekday(time.Saturday, ref), true
	}
	if sundayDeadlines[compacted] {
		return daysUntilWeekday(time.Sunday, ref), true
	}

	if m := relativeDays.FindStringSubmatch(raw); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if m := monthDay.FindStringSubmatch(raw); m != nil {
		month, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		day, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, false
		}

		today := midnight(ref)
		target := time.Date(ref.Year(), time.Month(month), day, 0, 0, 0, 0, ref.Location())
		if target.Before(today) {
			// The date already passed this year; the speaker means next year.
			target = time.Date(ref.Year()+1, time.Month(month), day, 0, 0, 0, 0, ref.Location())
		}

		diff := int(math.Round(target.Sub(today).Hours() / 24))
		if diff < 0 {
			return 0, false
		}
		return diff, true
	}

	return 0, false
}

// daysUntilWeekday counts days from ref to the next occurrence of target,
// with ref's own weekday counting as zero.
func daysUntilWeekday(target time.Weekday, ref time.Time) int {
	return (int(target) - int(ref.Weekday()) + 7) % 7
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
