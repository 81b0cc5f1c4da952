package usecase

import (
	"github.com/google/uuid"

	"pos/src/billing/application/response"
	"pos/src/billing/domain/entity"
	"pos/src/billing/domain/port"
)

// NewBillUseCase descarta la factura finalizada y arranca una nueva:
// el carrito vuelve a Empty con descuento 0 y la tasa por defecto
type NewBillUseCase struct {
	sessions port.SessionRepository
}

// NewNewBillUseCase crea una nueva instancia del caso de uso
func NewNewBillUseCase(sessions port.SessionRepository) *NewBillUseCase {
	return &NewBillUseCase{sessions: sessions}
}

// Execute resetea el carrito de la sesión
func (uc *NewBillUseCase) Execute(sessionID uuid.UUID) (*response.CartResponse, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Apply(func(c *entity.Cart) error {
		return c.Reset()
	}); err != nil {
		return nil, err
	}
	sess.DismissNotice()

	resp := response.NewCartResponse(sess)
	return &resp, nil
}
