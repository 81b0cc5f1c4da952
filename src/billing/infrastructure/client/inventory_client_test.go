package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/src/billing/application/request"
	"pos/src/billing/domain/entity"
)

func newTestInventoryClient(t *testing.T, handler http.Handler) *InventoryClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("INVENTORY_API_URL", srv.URL+"/api")
	return NewInventoryClient()
}

func TestGetProductByBarcode_Exitoso(t *testing.T) {
	c := newTestInventoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products/barcode/8901030895555", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       1,
			"name":     "Rice 1kg",
			"category": "Grains",
			"barcode":  "8901030895555",
			"price":    "50",
			"quantity": 20,
			"status":   "In Stock",
		})
	}))

	product, err := c.GetProductByBarcode(context.Background(), "8901030895555")
	require.NoError(t, err)
	assert.Equal(t, "Rice 1kg", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 20, product.Quantity)
	assert.False(t, product.IsOutOfStock())
}

func TestGetProductByBarcode_404EsProductNotFound(t *testing.T) {
	c := newTestInventoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetProductByBarcode(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestGetProductByBarcode_500LlevaElMensajeDelServidor(t *testing.T) {
	c := newTestInventoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database unavailable"}`))
	}))

	_, err := c.GetProductByBarcode(context.Background(), "8901030895555")
	var tErr *entity.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusInternalServerError, tErr.StatusCode)
	assert.Equal(t, "database unavailable", tErr.Message)
}

func TestGetProductByBarcode_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // el puerto queda sin nadie escuchando
	t.Setenv("INVENTORY_API_URL", srv.URL+"/api")
	c := NewInventoryClient()

	_, err := c.GetProductByBarcode(context.Background(), "8901030895555")
	var tErr *entity.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Zero(t, tErr.StatusCode)
}

func TestCreateProduct(t *testing.T) {
	c := newTestInventoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Rice 1kg", body["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": "Rice 1kg", "barcode": "8901030895555"})
	}))

	created, err := c.CreateProduct(context.Background(), &request.ProductRequest{
		Name:     "Rice 1kg",
		Category: "Grains",
		Barcode:  "8901030895555",
		Price:    decimal.NewFromInt(50),
		Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestSearchProducts_EscapaElKeyword(t *testing.T) {
	c := newTestInventoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/search", r.URL.Path)
		assert.Equal(t, "rice & beans", r.URL.Query().Get("keyword"))
		_, _ = w.Write([]byte(`[]`))
	}))

	products, err := c.SearchProducts(context.Background(), "rice & beans")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAdjustStock(t *testing.T) {
	c := newTestInventoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/products/3/adjust-stock", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, -2, body["adjustment"])

		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "Milk 1L", "quantity": 8})
	}))

	updated, err := c.AdjustStock(context.Background(), 3, &request.AdjustStockRequest{
		Adjustment: -2,
		Notes:      "damaged packaging",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)
}

func TestDeleteProduct(t *testing.T) {
	c := newTestInventoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.NoError(t, c.DeleteProduct(context.Background(), 9))
}
