package domain

// Default booking rules
const (
	DefaultMaxNormalPerDay        = 4
	DefaultMaxUrgentPerDay        = 4
	DefaultUrgentSurchargePercent = 30
	DefaultUrgentMinHours         = 36
	DefaultNormalMinDays          = 7
	DefaultAdvancePaymentPercent  = 30
	DefaultNormalSearchDays       = 30
	DefaultUrgentSearchDays       = 14
	DefaultDeliverySearchDays     = 60
	DefaultUrgentReferenceHour    = 9 // 09:00
)

// Business validation constants
const (
	MaxCustomerNameLength = 200
	MaxNotesLength        = 1000
	MaxAddOnsPerOrder     = 10
	OrderIDPrefix         = "SLQ"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses of orders that still occupy a delivery slot
var ActiveStatuses = []OrderStatus{
	StatusPickupAwaited,
	StatusFabricReceived,
	StatusProcessing,
	StatusReady,
	StatusOutForDelivery,
}

// InProgressStatuses statuses counted as "in progress" on the admin dashboard
var InProgressStatuses = []OrderStatus{
	StatusFabricReceived,
	StatusProcessing,
	StatusReady,
	StatusOutForDelivery,
}
