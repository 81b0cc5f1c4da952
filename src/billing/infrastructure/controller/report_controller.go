package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos/src/billing/domain/entity"
	"pos/src/billing/infrastructure/client"
)

// ReportController proxy de reportes agregados y lecturas de facturas.
// Solo lectura: dashboard, ventas diarias/mensuales/por rango y facturas.
type ReportController struct {
	reports *client.ReportClient
	bills   *client.BillingClient
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(reports *client.ReportClient, bills *client.BillingClient) *ReportController {
	return &ReportController{
		reports: reports,
		bills:   bills,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/dashboard", c.Dashboard)
		reports.GET("/sales/daily", c.DailySales)
		reports.GET("/sales/monthly", c.MonthlySales)
		reports.GET("/sales/custom", c.CustomSales)
	}

	bills := router.Group("/bills")
	{
		bills.GET("", c.ListBills)
		bills.GET("/date-range", c.ListBillsByDateRange)
		bills.GET("/number/:bill_number", c.GetBillByNumber)
		bills.GET("/:bill_id", c.GetBill)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/dashboard")
	log.Println("  GET    /api/v1/reports/sales/daily")
	log.Println("  GET    /api/v1/reports/sales/monthly")
	log.Println("  GET    /api/v1/reports/sales/custom?startDate=&endDate=")
	log.Println("  GET    /api/v1/bills")
	log.Println("  GET    /api/v1/bills/:bill_id")
	log.Println("  GET    /api/v1/bills/number/:bill_number")
	log.Println("  GET    /api/v1/bills/date-range?startDate=&endDate=")
}

// respondReportError mapea errores de los colaboradores remotos
func respondReportError(ctx *gin.Context, err error) {
	var tErr *entity.TransportError
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &tErr):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": tErr.Message})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Dashboard estadísticas generales
func (c *ReportController) Dashboard(ctx *gin.Context) {
	stats, err := c.reports.Dashboard(ctx.Request.Context())
	if err != nil {
		log.Printf("Error fetching dashboard: %v", err)
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// DailySales ventas del día
func (c *ReportController) DailySales(ctx *gin.Context) {
	report, err := c.reports.DailySales(ctx.Request.Context())
	if err != nil {
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// MonthlySales ventas del mes
func (c *ReportController) MonthlySales(ctx *gin.Context) {
	report, err := c.reports.MonthlySales(ctx.Request.Context())
	if err != nil {
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// CustomSales ventas para un rango de fechas
func (c *ReportController) CustomSales(ctx *gin.Context) {
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")
	if startDate == "" || endDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "startDate and endDate query parameters are required (format: YYYY-MM-DD)",
		})
		return
	}

	report, err := c.reports.CustomSales(ctx.Request.Context(), startDate, endDate)
	if err != nil {
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ListBills lista todas las facturas
func (c *ReportController) ListBills(ctx *gin.Context) {
	bills, err := c.bills.ListBills(ctx.Request.Context())
	if err != nil {
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bills)
}

// GetBill obtiene una factura por id
func (c *ReportController) GetBill(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("bill_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill_id format"})
		return
	}

	bill, err := c.bills.GetBill(ctx.Request.Context(), id)
	if err != nil {
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bill)
}

// GetBillByNumber obtiene una factura por número
func (c *ReportController) GetBillByNumber(ctx *gin.Context) {
	bill, err := c.bills.GetBillByNumber(ctx.Request.Context(), ctx.Param("bill_number"))
	if err != nil {
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bill)
}

// ListBillsByDateRange facturas dentro de un rango de fechas
func (c *ReportController) ListBillsByDateRange(ctx *gin.Context) {
	start := ctx.Query("startDate")
	end := ctx.Query("endDate")
	if start == "" || end == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "startDate and endDate query parameters are required (format: YYYY-MM-DD)",
		})
		return
	}

	bills, err := c.bills.ListBillsByDateRange(ctx.Request.Context(), start, end)
	if err != nil {
		respondReportError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bills)
}
