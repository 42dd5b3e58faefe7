package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefundPercent(t *testing.T) {
	tests := []struct {
		name        string
		days        int
		wantPercent int
	}{
		{"far out", 90, 90},
		{"exactly 30 days", 30, 90},
		{"one day inside 70 tier", 29, 70},
		{"exactly 15 days", 15, 70},
		{"one day inside 50 tier", 14, 50},
		{"exactly 7 days", 7, 50},
		{"one day inside 25 tier", 6, 25},
		{"exactly 3 days", 3, 25},
		{"one day inside 0 tier", 2, 0},
		{"travel today", 0, 0},
		{"travel date already passed", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPercent, RefundPercent(tt.days))
		})
	}
}

func TestRefundAmount(t *testing.T) {
	// 10 days out, 90000 -> 50% tier -> 45000
	assert.Equal(t, int64(45000), RefundAmount(90000, 50))

	// rounding to whole rupee
	assert.Equal(t, int64(22501), RefundAmount(90005, 25))
	assert.Equal(t, int64(0), RefundAmount(144000, 0))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		travel time.Time
		want   int
	}{
		{"ten full days", now.AddDate(0, 0, 10), 10},
		{"partial day truncates down", now.Add(9*24*time.Hour + 23*time.Hour), 9},
		{"same day later hour", now.Add(5 * time.Hour), 0},
		{"in the past", now.AddDate(0, 0, -3), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(now, tt.travel))
		})
	}
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2024, 7, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 7, 14, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2024, 7, 15, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameCalendarDay(morning, evening))
	assert.False(t, SameCalendarDay(evening, nextDay))
}

func TestModificationFee(t *testing.T) {
	assert.Equal(t, int64(0), ModificationFee(false, false))
	assert.Equal(t, int64(2500), ModificationFee(true, false))
	assert.Equal(t, int64(5000), ModificationFee(false, true))
	assert.Equal(t, int64(7500), ModificationFee(true, true))
}
