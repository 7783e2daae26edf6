package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesAreValid(t *testing.T) {
	rules := DefaultRules()

	require.NoError(t, rules.Validate())
	assert.Len(t, rules.Courts, 9)
	assert.Equal(t, 7, rules.FirstHour)
	assert.Equal(t, 21, rules.LastHour)
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Rules)
	}{
		{"empty courts", func(r *Rules) { r.Courts = nil }},
		{"blank court name", func(r *Rules) { r.Courts = []string{"Mira 2", ""} }},
		{"duplicate court", func(r *Rules) { r.Courts = []string{"Mira 2", "Mira 2"} }},
		{"negative first hour", func(r *Rules) { r.FirstHour = -1 }},
		{"last hour before first", func(r *Rules) { r.LastHour = r.FirstHour - 1 }},
		{"last hour past midnight", func(r *Rules) { r.LastHour = 24 }},
		{"zero window", func(r *Rules) { r.WindowDays = 0 }},
		{"zero active quota", func(r *Rules) { r.MaxActiveBookings = 0 }},
		{"zero daily quota", func(r *Rules) { r.MaxPerDayBookings = 0 }},
		{"zero activity window", func(r *Rules) { r.ActivityWindowDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(&rules)
			assert.Error(t, rules.Validate())
		})
	}
}

func TestRulesCourtExists(t *testing.T) {
	rules := DefaultRules()

	assert.True(t, rules.CourtExists("Mira Oasis 3C"))
	assert.False(t, rules.CourtExists("Mira 3"))
	assert.False(t, rules.CourtExists(""))
}

func TestRulesHourInRange(t *testing.T) {
	rules := DefaultRules()

	assert.False(t, rules.HourInRange(6))
	assert.True(t, rules.HourInRange(7))
	assert.True(t, rules.HourInRange(21))
	assert.False(t, rules.HourInRange(22))
}

func TestRulesHours(t *testing.T) {
	rules := Rules{FirstHour: 7, LastHour: 10}

	assert.Equal(t, []int{7, 8, 9, 10}, rules.Hours())
}

func TestRulesBeyondWindow(t *testing.T) {
	rules := DefaultRules()
	today := date(2025, 6, 10)

	// Край окна включительно: today+14 еще бронируется
	assert.False(t, rules.BeyondWindow(date(2025, 6, 24), today))
	assert.True(t, rules.BeyondWindow(date(2025, 6, 25), today))

	// Прошедшие даты не нарушают окно, их отсекает проверка истечения
	assert.False(t, rules.BeyondWindow(date(2025, 6, 1), today))
}

func TestRulesWindowDates(t *testing.T) {
	rules := Rules{WindowDays: 2}
	today := time.Date(2025, 6, 10, 18, 45, 0, 0, gst)

	dates := rules.WindowDates(today)

	require.Len(t, dates, 3)
	assert.Equal(t, date(2025, 6, 10), dates[0])
	assert.Equal(t, date(2025, 6, 12), dates[2])
}
