package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pos/src/billing/domain/entity"
)

// BillingClient cliente HTTP para las facturas de inventory-service.
// Implementa port.BillingPort (CreateBill) y las lecturas de facturas
// que usa la vista de reportes.
type BillingClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewBillingClient crea una nueva instancia del cliente
func NewBillingClient() *BillingClient {
	return &BillingClient{
		httpClient: &http.Client{
			Timeout: apiTimeout(),
		},
		baseURL: apiBaseURL(),
	}
}

// CreateBill envía el draft del carrito y retorna la factura
// persistida por el servidor. En fallo no hay efectos locales:
// el caso de uso deja el carrito intacto.
func (c *BillingClient) CreateBill(ctx context.Context, draft *entity.BillDraft) (*entity.FinalizedBill, error) {
	var bill entity.FinalizedBill
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/bills", draft, &bill, false); err != nil {
		return nil, err
	}
	return &bill, nil
}

// ListBills lista todas las facturas
func (c *BillingClient) ListBills(ctx context.Context) ([]entity.FinalizedBill, error) {
	var bills []entity.FinalizedBill
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/bills", nil, &bills, false); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetBill obtiene una factura por id
func (c *BillingClient) GetBill(ctx context.Context, id int64) (*entity.FinalizedBill, error) {
	endpoint := fmt.Sprintf("%s/bills/%d", c.baseURL, id)

	var bill entity.FinalizedBill
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &bill, true); err != nil {
		return nil, err
	}
	return &bill, nil
}

// GetBillByNumber obtiene una factura por número
func (c *BillingClient) GetBillByNumber(ctx context.Context, number string) (*entity.FinalizedBill, error) {
	endpoint := fmt.Sprintf("%s/bills/number/%s", c.baseURL, url.PathEscape(number))

	var bill entity.FinalizedBill
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &bill, true); err != nil {
		return nil, err
	}
	return &bill, nil
}

// ListBillsByDateRange facturas emitidas dentro de un rango de fechas
func (c *BillingClient) ListBillsByDateRange(ctx context.Context, start, end string) ([]entity.FinalizedBill, error) {
	endpoint := fmt.Sprintf("%s/bills/date-range?startDate=%s&endDate=%s",
		c.baseURL, url.QueryEscape(start), url.QueryEscape(end))

	var bills []entity.FinalizedBill
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &bills, false); err != nil {
		return nil, err
	}
	return bills, nil
}
