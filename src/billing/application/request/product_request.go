package request

import "github.com/shopspring/decimal"

// ProductRequest alta/edición de producto (proxy hacia inventory-service).
// En updates el barcode es inmutable post-creación; inventory-service
// lo rechaza y este servicio no lo reenvía.
type ProductRequest struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Barcode           string          `json:"barcode,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// AdjustStockRequest ajuste manual de stock de un producto
type AdjustStockRequest struct {
	Adjustment int    `json:"adjustment"`
	Notes      string `json:"notes"`
}
