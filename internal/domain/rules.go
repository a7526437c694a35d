package domain

import "fmt"

// BookingRules process-wide capacity, lead time and pricing rules.
// Loaded once from configuration and treated as read-only afterwards.
type BookingRules struct {
	MaxNormalPerDay        int
	MaxUrgentPerDay        int
	UrgentSurchargePercent int
	UrgentMinHours         int
	NormalMinDays          int
	AdvancePaymentPercent  int

	NormalSearchDays   int // forward scan window for normal dates
	UrgentSearchDays   int // forward scan window for urgent dates
	DeliverySearchDays int // window used to shift an estimated delivery past full dates

	// UrgentReferenceHour hour of day at which an urgent delivery date is checked against UrgentMinHours
	UrgentReferenceHour int

	// EnforceUrgentCap rejects urgent orders once MaxUrgentPerDay is reached.
	// When false urgent orders are always accepted and the urgent counter is kept for reporting only.
	EnforceUrgentCap bool
}

// DefaultBookingRules returns the rules the boutique runs with
func DefaultBookingRules() BookingRules {
	return BookingRules{
		MaxNormalPerDay:        DefaultMaxNormalPerDay,
		MaxUrgentPerDay:        DefaultMaxUrgentPerDay,
		UrgentSurchargePercent: DefaultUrgentSurchargePercent,
		UrgentMinHours:         DefaultUrgentMinHours,
		NormalMinDays:          DefaultNormalMinDays,
		AdvancePaymentPercent:  DefaultAdvancePaymentPercent,
		NormalSearchDays:       DefaultNormalSearchDays,
		UrgentSearchDays:       DefaultUrgentSearchDays,
		DeliverySearchDays:     DefaultDeliverySearchDays,
		UrgentReferenceHour:    DefaultUrgentReferenceHour,
		EnforceUrgentCap:       false,
	}
}

// Validate checks that the rules are usable
func (r BookingRules) Validate() error {
	switch {
	case r.MaxNormalPerDay <= 0:
		return fmt.Errorf("%w: maxNormalPerDay must be positive, got %d", ErrInvalidRules, r.MaxNormalPerDay)
	case r.MaxUrgentPerDay <= 0:
		return fmt.Errorf("%w: maxUrgentPerDay must be positive, got %d", ErrInvalidRules, r.MaxUrgentPerDay)
	case r.UrgentSurchargePercent < 0 || r.UrgentSurchargePercent > 100:
		return fmt.Errorf("%w: urgentSurchargePercent must be in [0, 100], got %d", ErrInvalidRules, r.UrgentSurchargePercent)
	case r.AdvancePaymentPercent < 0 || r.AdvancePaymentPercent > 100:
		return fmt.Errorf("%w: advancePaymentPercent must be in [0, 100], got %d", ErrInvalidRules, r.AdvancePaymentPercent)
	case r.UrgentMinHours <= 0:
		return fmt.Errorf("%w: urgentMinHours must be positive, got %d", ErrInvalidRules, r.UrgentMinHours)
	case r.NormalMinDays <= 0:
		return fmt.Errorf("%w: normalMinDays must be positive, got %d", ErrInvalidRules, r.NormalMinDays)
	case r.NormalSearchDays <= 0 || r.UrgentSearchDays <= 0 || r.DeliverySearchDays <= 0:
		return fmt.Errorf("%w: search windows must be positive", ErrInvalidRules)
	case r.UrgentReferenceHour < 0 || r.UrgentReferenceHour > 23:
		return fmt.Errorf("%w: urgentReferenceHour must be in [0, 23], got %d", ErrInvalidRules, r.UrgentReferenceHour)
	}
	return nil
}

// CapFor returns the daily cap applied to bookingType, 0 means uncapped
func (r BookingRules) CapFor(bookingType BookingType) int {
	if bookingType == BookingUrgent {
		if r.EnforceUrgentCap {
			return r.MaxUrgentPerDay
		}
		return 0
	}
	return r.MaxNormalPerDay
}
