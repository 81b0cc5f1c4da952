package entity

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductOutOfStock = errors.New("product is out of stock")
	ErrLineItemNotFound  = errors.New("line item not found")
	ErrCartEmpty         = errors.New("cart must have at least one item")
	ErrCartSubmitting    = errors.New("bill generation already in progress")
	ErrCartNotFinalized  = errors.New("cart has no finalized bill")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInvalidTaxRate    = errors.New("tax_rate must be between 0 and 100")
	ErrInvalidDiscount   = errors.New("discount_amount must be greater than or equal to 0")
	ErrInvalidPrice      = errors.New("price must be greater than or equal to 0")
	ErrBarcodeRequired   = errors.New("barcode is required")
	ErrSessionNotFound   = errors.New("billing session not found")
)

// StockLimitError indica que la cantidad pedida supera el stock
// disponible capturado en el snapshot del producto.
// El carrito queda sin cambios cuando se produce este error.
type StockLimitError struct {
	ProductName string
	Available   int
}

func (e *StockLimitError) Error() string {
	return fmt.Sprintf("cannot add more %s: only %d units available", e.ProductName, e.Available)
}

// TransportError representa un fallo de red/HTTP contra un colaborador remoto.
// Message lleva el mensaje del servidor cuando existe; si no, un mensaje genérico.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("inventory-service returned status %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// DeviceError representa un fallo del escáner físico (no encontrado,
// sin permisos, error de dispositivo). El flujo de billing sigue
// disponible vía entrada manual.
type DeviceError struct {
	Reason string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("scanner device error: %s", e.Reason)
}
