package scheduling

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// ProcessingStartDate the day work on an order begins.
// Tailor measured orders start the day after the visit, everything else starts tomorrow.
// Past visit dates are not rejected here.
func ProcessingStartDate(method domain.MeasurementMethod, tailorVisitDate *time.Time, now time.Time) time.Time {
	if method == domain.MeasurementTailor && tailorVisitDate != nil {
		return StartOfDay(AddDays(*tailorVisitDate, 1))
	}
	return StartOfDay(AddDays(now, 1))
}

// EstimatedDeliveryDate lower-bound delivery estimate: UrgentMinHours hours or NormalMinDays days after processing start
func EstimatedDeliveryDate(processingStart time.Time, isUrgent bool, rules domain.BookingRules) time.Time {
	if isUrgent {
		return processingStart.Add(time.Duration(rules.UrgentMinHours) * time.Hour)
	}
	return AddDays(processingStart, rules.NormalMinDays)
}

// DeliveryPlan schedule of one order
type DeliveryPlan struct {
	ProcessingStart   time.Time
	EstimatedDelivery time.Time
	// SlotDate delivery date whose counter the order occupies
	SlotDate time.Time
	// Shifted the estimate moved forward past full dates
	Shifted bool
	// Fallback every date in the search window was full and the unshifted date was kept
	Fallback bool
}

// DeliverySearchRange dates whose counts PlanDelivery needs for a given estimate
func DeliverySearchRange(estimated time.Time, rules domain.BookingRules) (from, to time.Time) {
	from = StartOfDay(estimated)
	return from, AddDays(from, rules.DeliverySearchDays-1)
}

// PlanDelivery stamps the processing start and delivery date of an order.
// Normal orders landing on a full date move to the next date with capacity within DeliverySearchDays.
// Urgent orders keep their estimate and occupy the counter of its calendar day.
func PlanDelivery(processingStart time.Time, bookingType domain.BookingType, counts domain.BookingCounts, rules domain.BookingRules) DeliveryPlan {
	estimated := EstimatedDeliveryDate(processingStart, bookingType.IsUrgent(), rules)
	plan := DeliveryPlan{
		ProcessingStart:   processingStart,
		EstimatedDelivery: estimated,
		SlotDate:          StartOfDay(estimated),
	}
	if bookingType.IsUrgent() {
		return plan
	}

	slot, ok := NextNormalSlotFrom(estimated, counts, rules, rules.DeliverySearchDays)
	if !ok {
		plan.Fallback = true
		return plan
	}
	if !slot.Equal(plan.SlotDate) {
		plan.Shifted = true
		plan.SlotDate = slot
		plan.EstimatedDelivery = slot
	}
	return plan
}
