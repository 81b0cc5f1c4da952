package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillDraft es el payload de creación de factura que se envía a
// inventory-service al finalizar el carrito. Discount lleva el
// descuento YA clampeado (discountApplied), nunca el campo crudo.
type BillDraft struct {
	Items    []BillDraftItem `json:"items"`
	TaxRate  decimal.Decimal `json:"taxRate"`
	Discount decimal.Decimal `json:"discount"`
}

// BillDraftItem par {barcode, quantity} dentro del draft
type BillDraftItem struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

// FinalizedBill es el registro inmutable emitido por el servidor al
// crear la factura. El cliente nunca lo muta; la vista de recibo lo
// muestra tal cual llegó.
type FinalizedBill struct {
	ID         int64               `json:"id"`
	BillNumber string              `json:"billNumber"`
	Items      []FinalizedBillItem `json:"items"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Discount   decimal.Decimal     `json:"discount"`
	Tax        decimal.Decimal     `json:"tax"`
	Total      decimal.Decimal     `json:"total"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// FinalizedBillItem renglón de la factura confirmada
type FinalizedBillItem struct {
	Barcode     string          `json:"barcode"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
