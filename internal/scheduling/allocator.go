package scheduling

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// RemainingSlots free normal and urgent slots on date, never negative
func RemainingSlots(date time.Time, counts domain.BookingCounts, rules domain.BookingRules) domain.Remaining {
	booked := counts.For(date)
	return domain.Remaining{
		Normal: max(0, rules.MaxNormalPerDay-booked.Normal),
		Urgent: max(0, rules.MaxUrgentPerDay-booked.Urgent),
	}
}

// HasNormalCapacity reports whether a normal order can still target date
func HasNormalCapacity(date time.Time, counts domain.BookingCounts, rules domain.BookingRules) bool {
	return RemainingSlots(date, counts, rules).Normal > 0
}

// HasUrgentCapacity reports whether an urgent order can still target date.
// Always true unless rules.EnforceUrgentCap is set.
func HasUrgentCapacity(date time.Time, counts domain.BookingCounts, rules domain.BookingRules) bool {
	if !rules.EnforceUrgentCap {
		return true
	}
	return RemainingSlots(date, counts, rules).Urgent > 0
}

// UrgentTargetTime the moment an urgent delivery on date is measured against: date at UrgentReferenceHour
func UrgentTargetTime(date time.Time, rules domain.BookingRules) time.Time {
	return StartOfDay(date).Add(time.Duration(rules.UrgentReferenceHour) * time.Hour)
}

// IsUrgentLeadTimeSatisfied reports whether at least UrgentMinHours whole hours separate now and target
func IsUrgentLeadTimeSatisfied(target, now time.Time, rules domain.BookingRules) bool {
	return HoursBetween(target, now) >= rules.UrgentMinHours
}

// IsUrgentDateAvailable combines the lead time check at the reference hour with urgent capacity
func IsUrgentDateAvailable(date time.Time, counts domain.BookingCounts, rules domain.BookingRules, now time.Time) bool {
	if !IsUrgentLeadTimeSatisfied(UrgentTargetTime(date, rules), now, rules) {
		return false
	}
	return HasUrgentCapacity(date, counts, rules)
}

// NextNormalSlotFrom scans days dates starting at start and returns the first one with normal capacity.
// ok is false when the whole window is full, the returned date is start in that case.
func NextNormalSlotFrom(start time.Time, counts domain.BookingCounts, rules domain.BookingRules, days int) (time.Time, bool) {
	start = StartOfDay(start)
	for i := 0; i < days; i++ {
		candidate := AddDays(start, i)
		if HasNormalCapacity(candidate, counts, rules) {
			return candidate, true
		}
	}
	return start, false
}

// NextAvailableNormalDate first date from today+NormalMinDays with normal capacity.
// Falls back to the start of the window when NormalSearchDays dates are all full.
func NextAvailableNormalDate(counts domain.BookingCounts, rules domain.BookingRules, today time.Time) time.Time {
	start := AddDays(StartOfDay(today), rules.NormalMinDays)
	date, _ := NextNormalSlotFrom(start, counts, rules, rules.NormalSearchDays)
	return date
}

// UrgentSearchStart first date an urgent order can be delivered on: startOfDay(now+UrgentMinHours)
func UrgentSearchStart(now time.Time, rules domain.BookingRules) time.Time {
	return StartOfDay(now.Add(time.Duration(rules.UrgentMinHours) * time.Hour))
}

// NextAvailableUrgentDate first date from startOfDay(now+UrgentMinHours) with urgent capacity.
// Falls back to the start of the window when UrgentSearchDays dates are all full.
func NextAvailableUrgentDate(counts domain.BookingCounts, rules domain.BookingRules, now time.Time) time.Time {
	start := UrgentSearchStart(now, rules)
	for i := 0; i < rules.UrgentSearchDays; i++ {
		candidate := AddDays(start, i)
		if HasUrgentCapacity(candidate, counts, rules) {
			return candidate
		}
	}
	return start
}

// Availability per-date normal capacity for days dates starting at start
func Availability(counts domain.BookingCounts, rules domain.BookingRules, start time.Time, days int) []domain.DateAvailability {
	start = StartOfDay(start)
	result := make([]domain.DateAvailability, 0, days)
	for i := 0; i < days; i++ {
		date := AddDays(start, i)
		remaining := RemainingSlots(date, counts, rules).Normal
		result = append(result, domain.DateAvailability{
			Date:           date,
			RemainingSlots: remaining,
			IsFull:         remaining == 0,
		})
	}
	return result
}

// FirstAvailable first date that is not full, nil if every date is full
func FirstAvailable(dates []domain.DateAvailability) *time.Time {
	for _, d := range dates {
		if !d.IsFull {
			date := d.Date
			return &date
		}
	}
	return nil
}

// UrgentAvailability urgent bookability of UrgentSearchDays dates from UrgentSearchStart.
// The first date can still miss the lead time at UrgentReferenceHour.
func UrgentAvailability(counts domain.BookingCounts, rules domain.BookingRules, now time.Time) []domain.UrgentDateAvailability {
	start := UrgentSearchStart(now, rules)
	result := make([]domain.UrgentDateAvailability, 0, rules.UrgentSearchDays)
	for i := 0; i < rules.UrgentSearchDays; i++ {
		d := AddDays(start, i)
		result = append(result, domain.UrgentDateAvailability{
			Date:      d,
			Available: IsUrgentDateAvailable(d, counts, rules, now),
		})
	}
	return result
}
