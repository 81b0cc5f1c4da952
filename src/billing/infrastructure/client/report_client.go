package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pos/src/billing/application/response"
)

// ReportClient cliente HTTP para los reportes agregados de
// inventory-service. Solo lecturas: el terminal los muestra tal cual.
type ReportClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewReportClient crea una nueva instancia del cliente
func NewReportClient() *ReportClient {
	return &ReportClient{
		httpClient: &http.Client{
			Timeout: apiTimeout(),
		},
		baseURL: apiBaseURL(),
	}
}

// Dashboard estadísticas generales del negocio
func (c *ReportClient) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	var stats response.DashboardResponse
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/reports/dashboard", nil, &stats, false); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DailySales reporte de ventas del día
func (c *ReportClient) DailySales(ctx context.Context) (*response.SalesReportResponse, error) {
	var report response.SalesReportResponse
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/reports/sales/daily", nil, &report, false); err != nil {
		return nil, err
	}
	return &report, nil
}

// MonthlySales reporte de ventas del mes
func (c *ReportClient) MonthlySales(ctx context.Context) (*response.SalesReportResponse, error) {
	var report response.SalesReportResponse
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/reports/sales/monthly", nil, &report, false); err != nil {
		return nil, err
	}
	return &report, nil
}

// CustomSales reporte de ventas para un rango de fechas arbitrario
func (c *ReportClient) CustomSales(ctx context.Context, startDate, endDate string) (*response.SalesReportResponse, error) {
	endpoint := fmt.Sprintf("%s/reports/sales/custom?startDate=%s&endDate=%s",
		c.baseURL, url.QueryEscape(startDate), url.QueryEscape(endDate))

	var report response.SalesReportResponse
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &report, false); err != nil {
		return nil, err
	}
	return &report, nil
}
