package dateparse_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ledgervoice/internal/dateparse"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
)

// 2026-09-02 is a Wednesday.
var wednesday = time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)

func TestPhraseOffset(t *testing.T) {
	type testCase struct {
		name   string
		phrase string
		ref    time.Time
		want   int
		ok     bool
	}

	sunday := time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC)

	tests := []testCase{
		{name: "Today", phrase: "오늘", ref: wednesday, want: 0, ok: true},
		{name: "UntilToday", phrase: "오늘까지", ref: wednesday, want: 0, ok: true},
		{name: "JustNow", phrase: "방금", ref: wednesday, want: 0, ok: true},
		{name: "Tomorrow", phrase: "내일", ref: wednesday, want: 1, ok: true},
		{name: "UntilTomorrow", phrase: "내일 까지", ref: wednesday, want: 1, ok: true},
		{name: "DayAfterTomorrow", phrase: "모레까지", ref: wednesday, want: 2, ok: true},
		{name: "UntilWeekend", phrase: "주말까지", ref: wednesday, want: 3, ok: true},
		{name: "UntilSaturday", phrase: "토까지", ref: wednesday, want: 3, ok: true},
		{name: "UntilSunday", phrase: "일요일까지", ref: wednesday, want: 4, ok: true},
		{name: "UntilThisWeek", phrase: "이번주까지", ref: wednesday, want: 4, ok: true},
		{name: "SundayOnSunday", phrase: "일요일까지", ref: sunday, want: 0, ok: true},
		{name: "SaturdayOnSunday", phrase: "토요일까지", ref: sunday, want: 6, ok: true},
		{name: "RelativeDays", phrase: "3일 후", ref: wednesday, want: 3, ok: true},
		{name: "RelativeDaysAlt", phrase: "10일뒤", ref: wednesday, want: 10, ok: true},
		{name: "MonthDayAhead", phrase: "9월 10일", ref: wednesday, want: 8, ok: true},
		{name: "MonthDayCompact", phrase: "9월10일", ref: wednesday, want: 8, ok: true},
		{name: "MonthDayRollsToNextYear", phrase: "1월 1일", ref: wednesday, want: 121, ok: true},
		{name: "SameDayMonthDay", phrase: "9월 2일", ref: wednesday, want: 0, ok: true},
		{name: "Unparseable", phrase: "다음에", ref: wednesday, ok: false},
		{name: "Empty", phrase: "  ", ref: wednesday, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dateparse.PhraseOffset(tt.phrase, tt.ref)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExpiryOffset_DirectWins(t *testing.T) {
	got, ok := dateparse.ExpiryOffset(slot.FromNumber(decimal.NewFromInt(14)), "내일까지", wednesday)
	assert.True(t, ok)
	assert.Equal(t, 14, got)

	// Free-text numeric slots are stripped before parsing.
	got, ok = dateparse.ExpiryOffset(slot.FromText("7일"), "오늘까지", wednesday)
	assert.True(t, ok)
	assert.Equal(t, 7, got)
}

func TestExpiryOffset_PhraseFallback(t *testing.T) {
	got, ok := dateparse.ExpiryOffset(slot.Value{}, "내일까지", wednesday)
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = dateparse.ExpiryOffset(slot.Value{}, "", wednesday)
	assert.False(t, ok)

	_, ok = dateparse.ExpiryOffset(slot.FromText("없음"), "글쎄", wednesday)
	assert.False(t, ok)
}
