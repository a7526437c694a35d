package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEstimatedDeliveryDate(t *testing.T) {
	rules := domain.DefaultBookingRules()
	start := date(2025, 1, 1)

	urgent := EstimatedDeliveryDate(start, true, rules)
	assert.Equal(t, time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC), urgent)

	normal := EstimatedDeliveryDate(start, false, rules)
	assert.Equal(t, date(2025, 1, 8), normal)

	assert.Equal(t, urgent, EstimatedDeliveryDate(start, true, rules))
	assert.Equal(t, normal, EstimatedDeliveryDate(start, false, rules))
}

func TestProcessingStartDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 42, 0, 0, time.UTC)

	t.Run("tailor visit", func(t *testing.T) {
		got := ProcessingStartDate(domain.MeasurementTailor, ptr.Ptr(date(2025, 3, 10)), now)
		assert.Equal(t, date(2025, 3, 11), got)
	})

	t.Run("tailor visit with time of day", func(t *testing.T) {
		visit := time.Date(2025, 3, 12, 18, 30, 0, 0, time.UTC)
		got := ProcessingStartDate(domain.MeasurementTailor, &visit, now)
		assert.Equal(t, date(2025, 3, 13), got)
	})

	t.Run("self", func(t *testing.T) {
		got := ProcessingStartDate(domain.MeasurementSelf, nil, now)
		assert.Equal(t, date(2025, 3, 11), got)
	})

	t.Run("self ignores visit date", func(t *testing.T) {
		got := ProcessingStartDate(domain.MeasurementSelf, ptr.Ptr(date(2025, 4, 1)), now)
		assert.Equal(t, date(2025, 3, 11), got)
	})

	t.Run("tailor without visit date starts tomorrow", func(t *testing.T) {
		got := ProcessingStartDate(domain.MeasurementTailor, nil, now)
		assert.Equal(t, date(2025, 3, 11), got)
	})

	t.Run("past visit date still yields a date", func(t *testing.T) {
		got := ProcessingStartDate(domain.MeasurementTailor, ptr.Ptr(date(2020, 1, 1)), now)
		assert.Equal(t, date(2020, 1, 2), got)
	})

	t.Run("keeps location", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		late := time.Date(2025, 3, 10, 23, 59, 0, 0, ist)
		got := ProcessingStartDate(domain.MeasurementSelf, nil, late)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, ist), got)
	})
}

func TestPlanDelivery_NormalFreeDate(t *testing.T) {
	rules := domain.DefaultBookingRules()

	plan := PlanDelivery(date(2025, 3, 11), domain.BookingNormal, nil, rules)

	assert.Equal(t, date(2025, 3, 18), plan.EstimatedDelivery)
	assert.Equal(t, date(2025, 3, 18), plan.SlotDate)
	assert.False(t, plan.Shifted)
	assert.False(t, plan.Fallback)
}

func TestPlanDelivery_NormalShiftsPastFullDates(t *testing.T) {
	rules := domain.DefaultBookingRules()
	counts := domain.BookingCounts{
		"2025-03-18": {Normal: 4},
		"2025-03-19": {Normal: 5},
		"2025-03-20": {Normal: 3},
	}

	plan := PlanDelivery(date(2025, 3, 11), domain.BookingNormal, counts, rules)

	assert.Equal(t, date(2025, 3, 20), plan.EstimatedDelivery)
	assert.Equal(t, date(2025, 3, 20), plan.SlotDate)
	assert.True(t, plan.Shifted)
}

func TestPlanDelivery_NormalFallback(t *testing.T) {
	rules := domain.DefaultBookingRules()
	rules.DeliverySearchDays = 3
	counts := domain.BookingCounts{
		"2025-03-18": {Normal: 4},
		"2025-03-19": {Normal: 4},
		"2025-03-20": {Normal: 4},
	}

	plan := PlanDelivery(date(2025, 3, 11), domain.BookingNormal, counts, rules)

	assert.Equal(t, date(2025, 3, 18), plan.SlotDate)
	assert.True(t, plan.Fallback)
	assert.False(t, plan.Shifted)
}

func TestPlanDelivery_UrgentIgnoresCounts(t *testing.T) {
	rules := domain.DefaultBookingRules()
	counts := domain.BookingCounts{"2025-03-12": {Normal: 4, Urgent: 9}}

	plan := PlanDelivery(date(2025, 3, 11), domain.BookingUrgent, counts, rules)

	assert.Equal(t, time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC), plan.EstimatedDelivery)
	assert.Equal(t, date(2025, 3, 12), plan.SlotDate)
	assert.False(t, plan.Shifted)
}

func TestDeliverySearchRange(t *testing.T) {
	rules := domain.DefaultBookingRules()

	from, to := DeliverySearchRange(time.Date(2025, 3, 18, 12, 0, 0, 0, time.UTC), rules)

	assert.Equal(t, date(2025, 3, 18), from)
	assert.Equal(t, date(2025, 5, 16), to)
}

func TestDateIn(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	parsed, err := time.Parse(domain.DateFormat, "2025-03-10")
	assert.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, ist), DateIn(parsed, ist))
}
