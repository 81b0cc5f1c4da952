package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"pos/src/billing/application/response"
	"pos/src/billing/domain/entity"
	"pos/src/billing/domain/port"
)

// FinalizeBillUseCase envía el carrito a inventory-service y lo
// transiciona a Finalized con la factura confirmada.
// Flujo transaccional:
// 1. BeginSubmit bajo lock (rechaza carrito vacío y doble finalize)
// 2. POST /bills fuera del lock
// 3. Éxito → CompleteSubmit; fallo → FailSubmit con los datos intactos
type FinalizeBillUseCase struct {
	billing  port.BillingPort
	sessions port.SessionRepository
}

// NewFinalizeBillUseCase crea una nueva instancia del caso de uso
func NewFinalizeBillUseCase(billing port.BillingPort, sessions port.SessionRepository) *FinalizeBillUseCase {
	return &FinalizeBillUseCase{
		billing:  billing,
		sessions: sessions,
	}
}

// Execute finaliza el carrito de la sesión
func (uc *FinalizeBillUseCase) Execute(ctx context.Context, sessionID uuid.UUID) (*response.CartResponse, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	// ========================================================================
	// PASO 1: PRECONDICIONES Y TRANSICIÓN A SUBMITTING (bajo lock)
	// ========================================================================
	var draft *entity.BillDraft
	err = sess.Apply(func(c *entity.Cart) error {
		if beginErr := c.BeginSubmit(); beginErr != nil {
			return beginErr
		}
		// El draft se arma acá adentro: lleva el estado vigente del
		// carrito y el descuento ya clampeado contra el subtotal
		draft = c.Draft()
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrCartEmpty) {
			// Rechazo local: sin llamada de red
			sess.SetNotice(entity.NewNotice(entity.NoticeLevelWarning, "Please add items to the bill"))
			resp := response.NewCartResponse(sess)
			return &resp, nil
		}
		return nil, err
	}

	// ========================================================================
	// PASO 2: CREAR FACTURA EN INVENTORY-SERVICE (fuera del lock)
	// ========================================================================
	log.Printf("💾 Finalizando carrito de %s: %d renglones", sessionID, len(draft.Items))
	bill, err := uc.billing.CreateBill(ctx, draft)

	// ========================================================================
	// PASO 3: COMMIT DEL RESULTADO CONTRA EL CARRITO VIGENTE
	// ========================================================================
	if err != nil {
		log.Printf("❌ Falló la creación de factura para %s: %v", sessionID, err)
		_ = sess.Apply(func(c *entity.Cart) error {
			c.FailSubmit()
			return nil
		})
		sess.SetNotice(entity.NewNotice(entity.NoticeLevelDanger, "Failed to generate bill: "+transportMessage(err)))
		resp := response.NewCartResponse(sess)
		return &resp, nil
	}

	_ = sess.Apply(func(c *entity.Cart) error {
		c.CompleteSubmit(bill)
		return nil
	})
	log.Printf("✅ Factura %s confirmada para la sesión %s", bill.BillNumber, sessionID)
	sess.SetNotice(entity.NewNotice(entity.NoticeLevelSuccess, "Bill generated successfully!"))

	resp := response.NewCartResponse(sess)
	return &resp, nil
}

// transportMessage extrae el mensaje del servidor si vino; si no, el
// error tal cual (mensaje genérico de transporte)
func transportMessage(err error) string {
	var tErr *entity.TransportError
	if errors.As(err, &tErr) && tErr.Message != "" {
		return tErr.Message
	}
	return err.Error()
}
