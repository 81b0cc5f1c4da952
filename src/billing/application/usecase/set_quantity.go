package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pos/src/billing/application/response"
	"pos/src/billing/domain/entity"
	"pos/src/billing/domain/port"
)

// SetQuantityUseCase fija la cantidad exacta de un renglón del carrito
type SetQuantityUseCase struct {
	sessions port.SessionRepository
}

// NewSetQuantityUseCase crea una nueva instancia del caso de uso
func NewSetQuantityUseCase(sessions port.SessionRepository) *SetQuantityUseCase {
	return &SetQuantityUseCase{sessions: sessions}
}

// Execute aplica la cantidad pedida:
// - mayor al stock disponible → warning, sin cambios
// - menor o igual a cero → elimina el renglón
// Mutación local pura, sin llamada de red.
func (uc *SetQuantityUseCase) Execute(sessionID uuid.UUID, barcode string, quantity int) (*response.CartResponse, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	err = sess.Apply(func(c *entity.Cart) error {
		return c.SetQuantity(barcode, quantity)
	})

	if err != nil {
		var limitErr *entity.StockLimitError
		if !errors.As(err, &limitErr) {
			return nil, err
		}
		sess.SetNotice(entity.NewNotice(entity.NoticeLevelWarning,
			fmt.Sprintf("Only %d units available", limitErr.Available)))
	}

	resp := response.NewCartResponse(sess)
	return &resp, nil
}
