package usecase

import (
	"github.com/google/uuid"

	"pos/src/billing/application/request"
	"pos/src/billing/application/response"
	"pos/src/billing/domain/entity"
	"pos/src/billing/domain/port"
)

// SetAdjustmentsUseCase setters de impuesto y descuento del carrito.
// Son mutaciones locales puras: el descuento NO se clampea acá sino en
// el cálculo de totales, para que la UI pueda mostrar transitoriamente
// un valor fuera de rango.
type SetAdjustmentsUseCase struct {
	sessions port.SessionRepository
}

// NewSetAdjustmentsUseCase crea una nueva instancia del caso de uso
func NewSetAdjustmentsUseCase(sessions port.SessionRepository) *SetAdjustmentsUseCase {
	return &SetAdjustmentsUseCase{sessions: sessions}
}

// Execute aplica los campos presentes en el request
func (uc *SetAdjustmentsUseCase) Execute(sessionID uuid.UUID, req *request.AdjustmentsRequest) (*response.CartResponse, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Apply(func(c *entity.Cart) error {
		if req.TaxRate != nil {
			if err := c.SetTaxRate(*req.TaxRate); err != nil {
				return err
			}
		}
		if req.Discount != nil {
			if err := c.SetDiscount(*req.Discount); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	resp := response.NewCartResponse(sess)
	return &resp, nil
}
