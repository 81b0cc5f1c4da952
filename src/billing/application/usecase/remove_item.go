package usecase

import (
	"github.com/google/uuid"

	"pos/src/billing/application/response"
	"pos/src/billing/domain/entity"
	"pos/src/billing/domain/port"
)

// RemoveItemUseCase elimina un renglón del carrito
type RemoveItemUseCase struct {
	sessions port.SessionRepository
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(sessions port.SessionRepository) *RemoveItemUseCase {
	return &RemoveItemUseCase{sessions: sessions}
}

// Execute elimina incondicionalmente; idempotente si el barcode no está
func (uc *RemoveItemUseCase) Execute(sessionID uuid.UUID, barcode string) (*response.CartResponse, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Apply(func(c *entity.Cart) error {
		return c.RemoveItem(barcode)
	}); err != nil {
		return nil, err
	}

	resp := response.NewCartResponse(sess)
	return &resp, nil
}
