package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pos/src/billing/application/request"
	"pos/src/billing/domain/entity"
)

// InventoryClient cliente HTTP para el catálogo de productos de
// inventory-service. Implementa port.CatalogPort para el carrito y
// expone además las operaciones CRUD/búsqueda que el terminal proxea.
type InventoryClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewInventoryClient crea una nueva instancia del cliente
func NewInventoryClient() *InventoryClient {
	return &InventoryClient{
		httpClient: &http.Client{
			Timeout: apiTimeout(),
		},
		baseURL: apiBaseURL(),
	}
}

// GetProductByBarcode resuelve un producto por barcode exacto.
// 404 del catálogo → entity.ErrProductNotFound (aviso al usuario,
// no un fallo de transporte).
func (c *InventoryClient) GetProductByBarcode(ctx context.Context, barcode string) (*entity.ProductSnapshot, error) {
	endpoint := fmt.Sprintf("%s/products/barcode/%s", c.baseURL, url.PathEscape(barcode))

	var product entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &product, true); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts lista todos los productos del catálogo
func (c *InventoryClient) ListProducts(ctx context.Context) ([]entity.ProductSnapshot, error) {
	var products []entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/products", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct obtiene un producto por id
func (c *InventoryClient) GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error) {
	endpoint := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	var product entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &product, true); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts busca productos por palabra clave
func (c *InventoryClient) SearchProducts(ctx context.Context, keyword string) ([]entity.ProductSnapshot, error) {
	endpoint := fmt.Sprintf("%s/products/search?keyword=%s", c.baseURL, url.QueryEscape(keyword))

	var products []entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory lista productos de una categoría
func (c *InventoryClient) ListByCategory(ctx context.Context, category string) ([]entity.ProductSnapshot, error) {
	endpoint := fmt.Sprintf("%s/products/category/%s", c.baseURL, url.PathEscape(category))

	var products []entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories lista las categorías existentes
func (c *InventoryClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/products/categories", nil, &categories, false); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListLowStock productos en o bajo su umbral de stock
func (c *InventoryClient) ListLowStock(ctx context.Context) ([]entity.ProductSnapshot, error) {
	var products []entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/products/low-stock", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// ListOutOfStock productos sin stock
func (c *InventoryClient) ListOutOfStock(ctx context.Context) ([]entity.ProductSnapshot, error) {
	var products []entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodGet, c.baseURL+"/products/out-of-stock", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct da de alta un producto
func (c *InventoryClient) CreateProduct(ctx context.Context, req *request.ProductRequest) (*entity.ProductSnapshot, error) {
	var product entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodPost, c.baseURL+"/products", req, &product, false); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct edita un producto. El barcode es inmutable
// post-creación: no se reenvía en updates.
func (c *InventoryClient) UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) (*entity.ProductSnapshot, error) {
	endpoint := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	payload := *req
	payload.Barcode = ""

	var product entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodPut, endpoint, &payload, &product, true); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct elimina un producto por id
func (c *InventoryClient) DeleteProduct(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	return doJSON(ctx, c.httpClient, http.MethodDelete, endpoint, nil, nil, true)
}

// AdjustStock ajusta el stock de un producto con nota de auditoría
func (c *InventoryClient) AdjustStock(ctx context.Context, id int64, req *request.AdjustStockRequest) (*entity.ProductSnapshot, error) {
	endpoint := fmt.Sprintf("%s/products/%d/adjust-stock", c.baseURL, id)

	var product entity.ProductSnapshot
	if err := doJSON(ctx, c.httpClient, http.MethodPatch, endpoint, req, &product, true); err != nil {
		return nil, err
	}
	return &product, nil
}

// StockMovements historial de movimientos de stock de un producto
func (c *InventoryClient) StockMovements(ctx context.Context, id int64) ([]entity.StockMovement, error) {
	endpoint := fmt.Sprintf("%s/products/%d/stock-movements", c.baseURL, id)

	var movements []entity.StockMovement
	if err := doJSON(ctx, c.httpClient, http.MethodGet, endpoint, nil, &movements, true); err != nil {
		return nil, err
	}
	return movements, nil
}

// Ping verifica que inventory-service responda (health check)
func (c *InventoryClient) Ping(ctx context.Context) error {
	_, err := c.ListCategories(ctx)
	return err
}
