package domain

import "time"

// Summary tables are rewritten wholesale by the analytics recompute after
// every transaction mutation. Reads never aggregate raw rows.

type SalesSummary struct {
	ID              int       `json:"-" gorm:"primaryKey"`
	TotalSalesPence int64     `json:"total_sales_pence"`
	Orders          int       `json:"orders"`
	AvgOrderPence   int64     `json:"avg_order_pence"`
	WeekOverWeekPct float64   `json:"week_over_week_pct"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// HourlySales always materializes 24 rows, one per hour of day.
type HourlySales struct {
	Hour         int   `json:"hour" gorm:"primaryKey"`
	Orders       int   `json:"orders"`
	RevenuePence int64 `json:"revenue_pence"`
}

// DailySales always materializes 7 rows, one per weekday (0=Sunday).
type DailySales struct {
	DayOfWeek    int    `json:"day_of_week" gorm:"primaryKey"`
	Day          string `json:"day"`
	Orders       int    `json:"orders"`
	RevenuePence int64  `json:"revenue_pence"`
}

type SiteSummary struct {
	StoreID       string `json:"store_id" gorm:"primaryKey"`
	StoreName     string `json:"store_name"`
	Orders        int    `json:"orders"`
	RevenuePence  int64  `json:"revenue_pence"`
	AvgOrderPence int64  `json:"avg_order_pence"`
}

type ProductSummary struct {
	Name         string `json:"name" gorm:"primaryKey"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	RevenuePence int64  `json:"revenue_pence"`
}

type CustomerSummary struct {
	ID                 int       `json:"-" gorm:"primaryKey"`
	IdentifiedOrders   int       `json:"identified_orders"`
	NewCustomers       int       `json:"new_customers"`
	ReturningCustomers int       `json:"returning_customers"`
	AvgSpendPence      int64     `json:"avg_spend_pence"`
	AvgVisits          float64   `json:"avg_visits"`
	GeneratedAt        time.Time `json:"generated_at"`
}
