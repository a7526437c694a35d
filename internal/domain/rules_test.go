package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBookingRules(t *testing.T) {
	rules := DefaultBookingRules()

	require.NoError(t, rules.Validate())
	assert.Equal(t, 4, rules.MaxNormalPerDay)
	assert.Equal(t, 4, rules.MaxUrgentPerDay)
	assert.Equal(t, 30, rules.UrgentSurchargePercent)
	assert.Equal(t, 36, rules.UrgentMinHours)
	assert.Equal(t, 7, rules.NormalMinDays)
	assert.Equal(t, 30, rules.AdvancePaymentPercent)
	assert.Equal(t, 9, rules.UrgentReferenceHour)
	assert.False(t, rules.EnforceUrgentCap)
}

func TestBookingRules_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *BookingRules)
	}{
		{"negative normal cap", func(r *BookingRules) { r.MaxNormalPerDay = -1 }},
		{"zero normal cap", func(r *BookingRules) { r.MaxNormalPerDay = 0 }},
		{"zero urgent cap", func(r *BookingRules) { r.MaxUrgentPerDay = 0 }},
		{"surcharge above 100", func(r *BookingRules) { r.UrgentSurchargePercent = 101 }},
		{"negative advance", func(r *BookingRules) { r.AdvancePaymentPercent = -5 }},
		{"zero urgent lead time", func(r *BookingRules) { r.UrgentMinHours = 0 }},
		{"zero normal lead time", func(r *BookingRules) { r.NormalMinDays = 0 }},
		{"zero search window", func(r *BookingRules) { r.NormalSearchDays = 0 }},
		{"reference hour out of range", func(r *BookingRules) { r.UrgentReferenceHour = 24 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultBookingRules()
			tt.mutate(&rules)
			assert.ErrorIs(t, rules.Validate(), ErrInvalidRules)
		})
	}
}

func TestBookingRules_CapFor(t *testing.T) {
	rules := DefaultBookingRules()
	assert.Equal(t, 4, rules.CapFor(BookingNormal))
	assert.Equal(t, 0, rules.CapFor(BookingUrgent))

	rules.EnforceUrgentCap = true
	assert.Equal(t, 4, rules.CapFor(BookingUrgent))
}
