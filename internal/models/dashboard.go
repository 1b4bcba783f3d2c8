package models

import "time"

// AdminStats is the admin dashboard fan-out snapshot. It is recomputed
// on every load; nothing here is cached or incrementally maintained.
type AdminStats struct {
	TotalUsers     int64    `json:"total_users"`
	TotalVendors   int64    `json:"total_vendors"`
	PendingVendors int64    `json:"pending_vendors"`
	TotalProducts  int64    `json:"total_products"`
	TotalOrders    int64    `json:"total_orders"`
	TotalRevenue   float64  `json:"total_revenue"`
	RecentOrders   []Order  `json:"recent_orders"`
	RecentVendors  []Vendor `json:"recent_vendors"`
}

// MonthDelta compares a metric across the current and previous calendar
// month.
type MonthDelta struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	GrowthPercent float64 `json:"growth_percent"`
}

type DetailedAnalytics struct {
	Revenue     MonthDelta `json:"revenue"`
	Orders      MonthDelta `json:"orders"`
	NewUsers    MonthDelta `json:"new_users"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// VendorStats backs the vendor earnings dashboard.
type VendorStats struct {
	TotalOrders     int64       `json:"total_orders"`
	TotalEarnings   float64     `json:"total_earnings"`
	DailyOrders     int64       `json:"daily_orders"`
	DailyEarnings   float64     `json:"daily_earnings"`
	MonthlyOrders   int64       `json:"monthly_orders"`
	MonthlyEarnings float64     `json:"monthly_earnings"`
	RecentItems     []OrderItem `json:"recent_items"`
}
