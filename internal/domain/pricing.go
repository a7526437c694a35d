package domain

// AddOn extra paid work on top of the base service
type AddOn struct {
	Name  string
	Price int64
}

// PricingResult price breakdown of one order, amounts in whole rupees
type PricingResult struct {
	BasePrice       int64
	AddOnsTotal     int64
	UrgentSurcharge int64
	Total           int64
	AdvanceAmount   int64
	BalanceAmount   int64
	RequiresAdvance bool
}
