package request

import "github.com/shopspring/decimal"

// QuantityRequest fija la cantidad exacta de un renglón del carrito
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AdjustmentsRequest setters de impuesto y descuento. Punteros para
// distinguir "no enviado" de cero.
type AdjustmentsRequest struct {
	TaxRate  *decimal.Decimal `json:"taxRate,omitempty"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
}
