package usecase

import (
	"log"

	"github.com/google/uuid"

	"pos/src/billing/application/response"
	"pos/src/billing/domain/port"
)

// SessionLifecycleUseCase abre, consulta y cierra sesiones de billing
// del terminal. Cerrar una sesión es el teardown del flujo: cualquier
// lookup que resuelva después encuentra la sesión ausente y su
// resultado se descarta.
type SessionLifecycleUseCase struct {
	sessions port.SessionRepository
}

// NewSessionLifecycleUseCase crea una nueva instancia del caso de uso
func NewSessionLifecycleUseCase(sessions port.SessionRepository) *SessionLifecycleUseCase {
	return &SessionLifecycleUseCase{sessions: sessions}
}

// Open abre una sesión nueva con carrito vacío
func (uc *SessionLifecycleUseCase) Open() *response.CartResponse {
	sess := uc.sessions.Create()
	log.Printf("🧾 Sesión de billing abierta: %s", sess.ID)
	resp := response.NewCartResponse(sess)
	return &resp
}

// Get retorna la vista actual del carrito de la sesión
func (uc *SessionLifecycleUseCase) Get(sessionID uuid.UUID) (*response.CartResponse, error) {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	resp := response.NewCartResponse(sess)
	return &resp, nil
}

// Close descarta la sesión; idempotente
func (uc *SessionLifecycleUseCase) Close(sessionID uuid.UUID) {
	uc.sessions.Delete(sessionID)
	log.Printf("🧾 Sesión de billing cerrada: %s", sessionID)
}

// DismissNotice descarta el aviso vigente de la sesión
func (uc *SessionLifecycleUseCase) DismissNotice(sessionID uuid.UUID) error {
	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	sess.DismissNotice()
	return nil
}
