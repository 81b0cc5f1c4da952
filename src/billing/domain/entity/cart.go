package entity

import (
	"github.com/shopspring/decimal"
)

// CartState estados del ciclo de vida del carrito
// Empty → Building → Submitting → Finalized → Empty (new bill)
type CartState string

const (
	CartStateEmpty      CartState = "EMPTY"
	CartStateBuilding   CartState = "BUILDING"
	CartStateSubmitting CartState = "SUBMITTING"
	CartStateFinalized  CartState = "FINALIZED"
)

// Cart representa la factura en curso (Aggregate Root).
// Posee los renglones en orden de inserción, la tasa de impuesto y el
// descuento crudo. El descuento se clampea recién en Totals(), nunca
// al setearlo, para que la UI pueda mostrar transitoriamente un valor
// fuera de rango.
// Las mutaciones deben aplicarse siempre sobre el carrito vigente de
// la sesión (ver BillingSession.Apply), nunca sobre copias viejas.
type Cart struct {
	State          CartState       `json:"state"`
	Items          []LineItem      `json:"items"`
	TaxRatePercent decimal.Decimal `json:"taxRate"`
	DiscountAmount decimal.Decimal `json:"discount"`
	Bill           *FinalizedBill  `json:"bill,omitempty"`

	defaultTaxRate decimal.Decimal
}

// CartTotals resultado del cálculo de totales (lectura pura)
type CartTotals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountApplied decimal.Decimal `json:"discountApplied"`
	TaxableBase     decimal.Decimal `json:"taxableBase"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Total           decimal.Decimal `json:"total"`
}

// NewCart crea un carrito vacío con la tasa de impuesto por defecto
func NewCart(defaultTaxRate decimal.Decimal) *Cart {
	return &Cart{
		State:          CartStateEmpty,
		Items:          []LineItem{},
		TaxRatePercent: defaultTaxRate,
		DiscountAmount: decimal.Zero,
		defaultTaxRate: defaultTaxRate,
	}
}

// findItem busca el renglón por barcode; retorna índice o -1
func (c *Cart) findItem(barcode string) int {
	for i := range c.Items {
		if c.Items[i].Barcode == barcode {
			return i
		}
	}
	return -1
}

// FindItem retorna el renglón para un barcode, si existe
func (c *Cart) FindItem(barcode string) (*LineItem, bool) {
	if i := c.findItem(barcode); i >= 0 {
		return &c.Items[i], true
	}
	return nil, false
}

// AddProduct agrega el producto al carrito a partir de su snapshot.
// - producto sin stock → ErrProductOutOfStock, carrito sin cambios
// - barcode nuevo → renglón con quantity 1 (added=true)
// - barcode existente → incrementa 1 salvo que ya esté en el techo
//   de stock, en cuyo caso retorna StockLimitError sin cambios
func (c *Cart) AddProduct(p *ProductSnapshot) (added bool, err error) {
	if c.State == CartStateSubmitting {
		return false, ErrCartSubmitting
	}
	if p.IsOutOfStock() {
		return false, ErrProductOutOfStock
	}

	if i := c.findItem(p.Barcode); i >= 0 {
		item := &c.Items[i]
		if item.Quantity >= item.AvailableStock {
			return false, &StockLimitError{ProductName: item.ProductName, Available: item.AvailableStock}
		}
		item.Quantity++
		c.State = CartStateBuilding
		return false, nil
	}

	item, err := NewLineItem(p)
	if err != nil {
		return false, err
	}
	c.Items = append(c.Items, *item)
	c.State = CartStateBuilding
	return true, nil
}

// SetQuantity fija la cantidad exacta de un renglón.
// - quantity > stock disponible → StockLimitError, sin cambios
// - quantity <= 0 → elimina el renglón (equivalente a RemoveItem)
func (c *Cart) SetQuantity(barcode string, quantity int) error {
	if c.State == CartStateSubmitting {
		return ErrCartSubmitting
	}
	i := c.findItem(barcode)
	if i < 0 {
		return ErrLineItemNotFound
	}
	item := &c.Items[i]
	if quantity > item.AvailableStock {
		return &StockLimitError{ProductName: item.ProductName, Available: item.AvailableStock}
	}
	if quantity <= 0 {
		return c.RemoveItem(barcode)
	}
	item.Quantity = quantity
	return nil
}

// RemoveItem elimina el renglón incondicionalmente.
// Idempotente: no es error si el barcode no está.
// Rechazado durante Submitting: el draft en vuelo ya capturó los renglones.
func (c *Cart) RemoveItem(barcode string) error {
	if c.State == CartStateSubmitting {
		return ErrCartSubmitting
	}
	if i := c.findItem(barcode); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
	if len(c.Items) == 0 && c.State == CartStateBuilding {
		c.State = CartStateEmpty
	}
	return nil
}

// SetTaxRate setter puro; valida rango 0..100
func (c *Cart) SetTaxRate(percent decimal.Decimal) error {
	if percent.LessThan(decimal.Zero) || percent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidTaxRate
	}
	c.TaxRatePercent = percent
	return nil
}

// SetDiscount setter puro; el clamp contra el subtotal ocurre en Totals()
func (c *Cart) SetDiscount(amount decimal.Decimal) error {
	if amount.LessThan(decimal.Zero) {
		return ErrInvalidDiscount
	}
	c.DiscountAmount = amount
	return nil
}

// Totals calcula los totales del carrito. Función pura: puede llamarse
// repetidamente sin mutar estado.
//   subtotal        = Σ (precio × cantidad)
//   discountApplied = min(discount, subtotal)  (nunca negativo)
//   taxableBase     = subtotal − discountApplied
//   taxAmount       = taxableBase × (taxRate / 100)
//   total           = taxableBase + taxAmount
func (c *Cart) Totals() CartTotals {
	subtotal := decimal.Zero
	for i := range c.Items {
		subtotal = subtotal.Add(c.Items[i].Subtotal())
	}

	discountApplied := c.DiscountAmount
	if discountApplied.GreaterThan(subtotal) {
		discountApplied = subtotal
	}
	if discountApplied.LessThan(decimal.Zero) {
		discountApplied = decimal.Zero
	}

	taxableBase := subtotal.Sub(discountApplied)
	taxAmount := taxableBase.Mul(c.TaxRatePercent).Div(decimal.NewFromInt(100))
	total := taxableBase.Add(taxAmount)

	return CartTotals{
		Subtotal:        subtotal,
		DiscountApplied: discountApplied,
		TaxableBase:     taxableBase,
		TaxAmount:       taxAmount,
		Total:           total,
	}
}

// Draft arma el payload de creación de factura con el descuento
// ya clampeado (computed discountApplied, no el campo crudo)
func (c *Cart) Draft() *BillDraft {
	items := make([]BillDraftItem, 0, len(c.Items))
	for i := range c.Items {
		items = append(items, BillDraftItem{
			Barcode:  c.Items[i].Barcode,
			Quantity: c.Items[i].Quantity,
		})
	}
	return &BillDraft{
		Items:    items,
		TaxRate:  c.TaxRatePercent,
		Discount: c.Totals().DiscountApplied,
	}
}

// BeginSubmit transiciona a Submitting. Precondiciones:
// al menos un renglón y ninguna finalización en vuelo.
func (c *Cart) BeginSubmit() error {
	if c.State == CartStateSubmitting {
		return ErrCartSubmitting
	}
	if len(c.Items) == 0 {
		return ErrCartEmpty
	}
	c.State = CartStateSubmitting
	return nil
}

// CompleteSubmit guarda la factura confirmada por el servidor y
// resetea los campos de trabajo a sus defaults
func (c *Cart) CompleteSubmit(bill *FinalizedBill) {
	c.State = CartStateFinalized
	c.Bill = bill
	c.Items = []LineItem{}
	c.DiscountAmount = decimal.Zero
	c.TaxRatePercent = c.defaultTaxRate
}

// FailSubmit vuelve a Building con todos los datos intactos
func (c *Cart) FailSubmit() {
	c.State = CartStateBuilding
}

// Reset descarta la factura finalizada y vuelve a Empty con defaults
// (operación "new bill"). Rechazado durante Submitting: si no, el
// commit tardío de la finalización pisaría el carrito ya reseteado.
func (c *Cart) Reset() error {
	if c.State == CartStateSubmitting {
		return ErrCartSubmitting
	}
	c.State = CartStateEmpty
	c.Items = []LineItem{}
	c.DiscountAmount = decimal.Zero
	c.TaxRatePercent = c.defaultTaxRate
	c.Bill = nil
	return nil
}
