package port

import (
	"context"

	"pos/src/billing/domain/entity"
)

// BillingPort define el contrato de finalización de factura contra
// inventory-service. Create es la única operación que muta estado
// remoto desde el carrito.
type BillingPort interface {
	// CreateBill envía el draft y retorna el registro persistido.
	// En fallo el carrito del llamador debe quedar intacto.
	CreateBill(ctx context.Context, draft *entity.BillDraft) (*entity.FinalizedBill, error)
}
