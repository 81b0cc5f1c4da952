package response

import "github.com/shopspring/decimal"

// DashboardResponse agregados de solo lectura para el dashboard
// (inventory-service es la fuente; este servicio solo los reexpone)
type DashboardResponse struct {
	TotalProducts       int             `json:"totalProducts"`
	LowStockCount       int             `json:"lowStockCount"`
	OutOfStockCount     int             `json:"outOfStockCount"`
	TodaysSales         decimal.Decimal `json:"todaysSales"`
	TodaysTransactions  int             `json:"todaysTransactions"`
	MonthlySales        decimal.Decimal `json:"monthlySales"`
	MonthlyTransactions int             `json:"monthlyTransactions"`
}

// SalesReportResponse reporte agregado de ventas para un rango
type SalesReportResponse struct {
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalTax          decimal.Decimal `json:"totalTax"`
	TotalDiscount     decimal.Decimal `json:"totalDiscount"`
}
