package port

import (
	"context"

	"pos/src/billing/domain/entity"
)

// CatalogPort define el contrato contra el catálogo remoto de productos.
// El carrito solo necesita resolver barcode → snapshot; el resto de las
// operaciones de producto (CRUD, búsquedas) viven en el cliente concreto
// y se exponen como proxy.
type CatalogPort interface {
	// GetProductByBarcode resuelve un producto por barcode exacto.
	// Retorna entity.ErrProductNotFound si el catálogo no lo conoce (404).
	GetProductByBarcode(ctx context.Context, barcode string) (*entity.ProductSnapshot, error)
}
