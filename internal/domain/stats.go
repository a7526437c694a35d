package domain

import "time"

// OrderFilter admin list filter
type OrderFilter struct {
	Status *OrderStatus // nil = all statuses
	Limit  int
	Offset int
}

// OrderStats dashboard numbers for one calendar day
type OrderStats struct {
	TodayOrders      int
	PendingOrders    int // waiting for pickup
	InProgressOrders int
	TodayRevenue     int64 // total amount of today's non-cancelled orders
}

// DayRange [start, end) bounds of a calendar day
type DayRange struct {
	Start time.Time
	End   time.Time
}
