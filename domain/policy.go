package domain

import (
	"math"
	"time"
)

// Flat modification fees in whole rupees. Cumulative when a single
// request both moves the travel date and upgrades the room.
const (
	DateChangeFee  int64 = 2500
	RoomUpgradeFee int64 = 5000
)

// Clock supplies the current time so the refund schedule can be
// tested against a fixed point instead of the wall clock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// DaysUntil truncates the interval between now and the travel date to
// whole days. Travel dates already in the past come out negative.
func DaysUntil(now, travelDate time.Time) int {
	return int(travelDate.Sub(now).Hours() / 24)
}

// RefundPercent maps days-until-travel onto the cancellation schedule:
// 30+ days 90%, 15-29 days 70%, 7-14 days 50%, 3-6 days 25%,
// anything closer 0%.
func RefundPercent(daysUntilTravel int) int {
	switch {
	case daysUntilTravel >= 30:
		return 90
	case daysUntilTravel >= 15:
		return 70
	case daysUntilTravel >= 7:
		return 50
	case daysUntilTravel >= 3:
		return 25
	}
	return 0
}

// RefundAmount applies a refund percentage to the booking's current
// amount, rounded to the whole rupee.
func RefundAmount(currentAmount int64, percent int) int64 {
	return int64(math.Round(float64(currentAmount) * float64(percent) / 100))
}

// SameCalendarDay compares two timestamps on their normalized calendar
// dates. Re-selecting a different departure slot within the same day
// does not count as a date change.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ModificationFee computes the flat fee for one modify request.
func ModificationFee(dateChanged, roomUpgraded bool) int64 {
	var fee int64
	if dateChanged {
		fee += DateChangeFee
	}
	if roomUpgraded {
		fee += RoomUpgradeFee
	}
	return fee
}
