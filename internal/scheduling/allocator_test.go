package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

func TestRemainingSlots(t *testing.T) {
	rules := domain.DefaultBookingRules()
	d := date(2025, 3, 17)

	tests := []struct {
		name   string
		counts domain.BookingCounts
		want   domain.Remaining
	}{
		{"nothing booked", nil, domain.Remaining{Normal: 4, Urgent: 4}},
		{"partially booked", domain.BookingCounts{"2025-03-17": {Normal: 1, Urgent: 2}}, domain.Remaining{Normal: 3, Urgent: 2}},
		{"full", domain.BookingCounts{"2025-03-17": {Normal: 4, Urgent: 0}}, domain.Remaining{Normal: 0, Urgent: 4}},
		{"overbooked clamps to zero", domain.BookingCounts{"2025-03-17": {Normal: 6, Urgent: 7}}, domain.Remaining{}},
		{"other date ignored", domain.BookingCounts{"2025-03-18": {Normal: 4}}, domain.Remaining{Normal: 4, Urgent: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingSlots(d, tt.counts, rules))
		})
	}
}

func TestHasNormalCapacity_Exhausted(t *testing.T) {
	rules := domain.DefaultBookingRules()
	d := date(2025, 3, 17)
	counts := domain.BookingCounts{"2025-03-17": {Normal: 4, Urgent: 0}}

	assert.False(t, HasNormalCapacity(d, counts, rules))
	assert.Equal(t, 0, RemainingSlots(d, counts, rules).Normal)
	assert.True(t, HasNormalCapacity(date(2025, 3, 18), counts, rules))
}

func TestHasUrgentCapacity(t *testing.T) {
	rules := domain.DefaultBookingRules()
	d := date(2025, 3, 17)
	counts := domain.BookingCounts{"2025-03-17": {Urgent: 4}}

	assert.True(t, HasUrgentCapacity(d, counts, rules))

	rules.EnforceUrgentCap = true
	assert.False(t, HasUrgentCapacity(d, counts, rules))
	assert.True(t, HasUrgentCapacity(date(2025, 3, 18), counts, rules))
}

func TestIsUrgentLeadTimeSatisfied(t *testing.T) {
	rules := domain.DefaultBookingRules()
	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)

	// 2025-03-12 09:00 is exactly 36h away
	target := UrgentTargetTime(date(2025, 3, 12), rules)
	assert.Equal(t, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), target)
	assert.True(t, IsUrgentLeadTimeSatisfied(target, now, rules))

	// one minute later only 35 whole hours remain
	assert.False(t, IsUrgentLeadTimeSatisfied(target, now.Add(time.Minute), rules))

	assert.False(t, IsUrgentLeadTimeSatisfied(UrgentTargetTime(date(2025, 3, 11), rules), now, rules))
	assert.False(t, IsUrgentLeadTimeSatisfied(now.Add(-time.Hour), now, rules))
}

func TestIsUrgentDateAvailable(t *testing.T) {
	rules := domain.DefaultBookingRules()
	rules.EnforceUrgentCap = true
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	counts := domain.BookingCounts{"2025-03-13": {Urgent: 4}}

	assert.False(t, IsUrgentDateAvailable(date(2025, 3, 11), counts, rules, now))
	assert.True(t, IsUrgentDateAvailable(date(2025, 3, 12), counts, rules, now))
	assert.False(t, IsUrgentDateAvailable(date(2025, 3, 13), counts, rules, now))
}

func TestNextAvailableNormalDate(t *testing.T) {
	rules := domain.DefaultBookingRules()
	today := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)

	t.Run("first window date free", func(t *testing.T) {
		assert.Equal(t, date(2025, 3, 17), NextAvailableNormalDate(nil, rules, today))
	})

	t.Run("skips full dates", func(t *testing.T) {
		counts := domain.BookingCounts{
			"2025-03-17": {Normal: 4},
			"2025-03-18": {Normal: 4},
		}
		assert.Equal(t, date(2025, 3, 19), NextAvailableNormalDate(counts, rules, today))
	})

	t.Run("falls back to window start when all full", func(t *testing.T) {
		counts := domain.BookingCounts{}
		start := date(2025, 3, 17)
		for i := 0; i < rules.NormalSearchDays; i++ {
			counts[domain.DateKey(start.AddDate(0, 0, i))] = domain.DayCounts{Normal: 4}
		}
		assert.Equal(t, start, NextAvailableNormalDate(counts, rules, today))

		// the first date after the window is never considered
		counts[domain.DateKey(start.AddDate(0, 0, rules.NormalSearchDays))] = domain.DayCounts{}
		assert.Equal(t, start, NextAvailableNormalDate(counts, rules, today))
	})
}

func TestNextAvailableUrgentDate(t *testing.T) {
	rules := domain.DefaultBookingRules()
	now := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)
	counts := domain.BookingCounts{"2025-03-12": {Urgent: 4}}

	// uncapped: start of now+36h
	assert.Equal(t, date(2025, 3, 12), NextAvailableUrgentDate(counts, rules, now))

	rules.EnforceUrgentCap = true
	assert.Equal(t, date(2025, 3, 13), NextAvailableUrgentDate(counts, rules, now))

	full := domain.BookingCounts{}
	for i := 0; i < rules.UrgentSearchDays; i++ {
		full[domain.DateKey(date(2025, 3, 12).AddDate(0, 0, i))] = domain.DayCounts{Urgent: 4}
	}
	assert.Equal(t, date(2025, 3, 12), NextAvailableUrgentDate(full, rules, now))
}

func TestAvailability(t *testing.T) {
	rules := domain.DefaultBookingRules()
	counts := domain.BookingCounts{
		"2025-03-17": {Normal: 4},
		"2025-03-18": {Normal: 2},
	}

	dates := Availability(counts, rules, time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC), 3)
	require.Len(t, dates, 3)

	assert.Equal(t, domain.DateAvailability{Date: date(2025, 3, 17), RemainingSlots: 0, IsFull: true}, dates[0])
	assert.Equal(t, domain.DateAvailability{Date: date(2025, 3, 18), RemainingSlots: 2, IsFull: false}, dates[1])
	assert.Equal(t, domain.DateAvailability{Date: date(2025, 3, 19), RemainingSlots: 4, IsFull: false}, dates[2])

	first := FirstAvailable(dates)
	require.NotNil(t, first)
	assert.Equal(t, date(2025, 3, 18), *first)

	assert.Nil(t, FirstAvailable(dates[:1]))
}

func TestNextNormalSlotFrom(t *testing.T) {
	rules := domain.DefaultBookingRules()
	counts := domain.BookingCounts{"2025-03-17": {Normal: 4}}

	got, ok := NextNormalSlotFrom(date(2025, 3, 17), counts, rules, 1)
	assert.False(t, ok)
	assert.Equal(t, date(2025, 3, 17), got)

	got, ok = NextNormalSlotFrom(date(2025, 3, 17), counts, rules, 2)
	assert.True(t, ok)
	assert.Equal(t, date(2025, 3, 18), got)
}

func TestUrgentAvailability(t *testing.T) {
	rules := domain.DefaultBookingRules()
	// 2025-03-12 09:00 is 34.5h away, 2025-03-13 09:00 is 58.5h away
	now := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)
	counts := domain.BookingCounts{"2025-03-14": {Urgent: 4}}

	got := UrgentAvailability(counts, rules, now)
	require.Len(t, got, rules.UrgentSearchDays)

	assert.True(t, got[0].Date.Equal(date(2025, 3, 12)))
	assert.False(t, got[0].Available)
	assert.True(t, got[1].Available)
	assert.True(t, got[2].Available, "urgent cap is not enforced by default")
	assert.True(t, got[13].Date.Equal(date(2025, 3, 25)))

	rules.EnforceUrgentCap = true
	got = UrgentAvailability(counts, rules, now)
	assert.False(t, got[2].Available)
	assert.True(t, got[3].Available)
}

func TestUrgentSearchStart(t *testing.T) {
	rules := domain.DefaultBookingRules()
	assert.True(t, UrgentSearchStart(time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC), rules).Equal(date(2025, 3, 12)))
	assert.True(t, UrgentSearchStart(time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC), rules).Equal(date(2025, 3, 11)))
}
