package scheduling

import "github.com/sliques/SLQ-OrderService/internal/domain"

// CalculatePrice price breakdown of one order.
// Only the surcharge and the advance are rounded; the balance is derived by subtraction
// so advance + balance always equals total.
func CalculatePrice(basePrice int64, isUrgent bool, addOns []domain.AddOn, requiresAdvance bool, rules domain.BookingRules) domain.PricingResult {
	var addOnsTotal int64
	for _, a := range addOns {
		addOnsTotal += a.Price
	}
	subtotal := basePrice + addOnsTotal

	var surcharge int64
	if isUrgent {
		surcharge = percentOf(subtotal, rules.UrgentSurchargePercent)
	}
	total := subtotal + surcharge

	var advance int64
	if requiresAdvance {
		advance = percentOf(total, rules.AdvancePaymentPercent)
	}

	return domain.PricingResult{
		BasePrice:       basePrice,
		AddOnsTotal:     addOnsTotal,
		UrgentSurcharge: surcharge,
		Total:           total,
		AdvanceAmount:   advance,
		BalanceAmount:   total - advance,
		RequiresAdvance: requiresAdvance,
	}
}

// percentOf amount*percent/100 rounded to the nearest unit, halves toward +inf
func percentOf(amount int64, percent int) int64 {
	p := amount * int64(percent)
	if p >= 0 {
		return (p + 50) / 100
	}
	return -((-p + 49) / 100)
}
