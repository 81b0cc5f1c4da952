package port

import (
	"github.com/google/uuid"

	"pos/src/billing/domain/entity"
)

// SessionRepository define el contrato para las sesiones de billing
// en memoria. Operaciones mínimas: Create, Get y Delete.
// Sin listados, sin persistencia: una sesión vive lo que vive el
// proceso del terminal.
type SessionRepository interface {
	// Create abre una sesión nueva con carrito vacío
	Create() *entity.BillingSession

	// Get retorna la sesión o entity.ErrSessionNotFound
	Get(id uuid.UUID) (*entity.BillingSession, error)

	// Delete descarta la sesión; idempotente
	Delete(id uuid.UUID)
}
