package entity

import (
	"github.com/shopspring/decimal"
)

// LineItem representa un renglón del carrito (Entity dentro del Aggregate Cart).
// Unicidad: a lo sumo un LineItem por barcode; los escaneos repetidos
// incrementan Quantity en lugar de duplicar renglones.
// Invariante: 1 <= Quantity <= AvailableStock.
type LineItem struct {
	Barcode        string          `json:"barcode"`
	ProductID      int64           `json:"productId"`
	ProductName    string          `json:"productName"`
	UnitPrice      decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	AvailableStock int             `json:"availableStock"`
}

// NewLineItem crea un renglón a partir del snapshot del producto.
// Quantity arranca en 1; AvailableStock congela el stock del lookup.
func NewLineItem(p *ProductSnapshot) (*LineItem, error) {
	if p.Barcode == "" {
		return nil, ErrBarcodeRequired
	}
	if p.Price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if p.Quantity < 1 {
		return nil, &StockLimitError{ProductName: p.Name, Available: p.Quantity}
	}

	return &LineItem{
		Barcode:        p.Barcode,
		ProductID:      p.ID,
		ProductName:    p.Name,
		UnitPrice:      p.Price,
		Quantity:       1,
		AvailableStock: p.Quantity,
	}, nil
}

// Subtotal calcula precio unitario por cantidad
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
