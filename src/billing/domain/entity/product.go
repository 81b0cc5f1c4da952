package entity

import (
	"github.com/shopspring/decimal"
)

// Estados de producto según inventory-service
const (
	ProductStatusInStock    = "In Stock"
	ProductStatusOutOfStock = "Out of Stock"
)

// ProductSnapshot representa la copia de solo lectura de un producto
// tal como lo devuelve inventory-service en el momento del lookup.
// El carrito nunca vuelve a consultar stock: el techo de disponibilidad
// queda congelado en este snapshot.
type ProductSnapshot struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Barcode           string          `json:"barcode"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	Status            string          `json:"status"`
}

// IsOutOfStock indica si el producto no tiene stock disponible
func (p *ProductSnapshot) IsOutOfStock() bool {
	return p.Status == ProductStatusOutOfStock
}

// StockMovement representa un movimiento de stock reportado por inventory-service
// HITO: vista de movimientos de stock en el terminal
type StockMovement struct {
	ID             int64  `json:"id"`
	ProductID      int64  `json:"productId"`
	Adjustment     int    `json:"adjustment"`
	ResultingStock int    `json:"quantity"`
	Notes          string `json:"notes"`
	CreatedAt      string `json:"createdAt"`
}
