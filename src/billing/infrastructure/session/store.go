package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/billing/domain/entity"
)

// Store almacén en memoria de sesiones de billing.
// Una sesión vive lo que vive el proceso: sin persistencia (las
// facturas confirmadas viven en inventory-service).
type Store struct {
	sessions       map[uuid.UUID]*entity.BillingSession
	mu             sync.RWMutex
	defaultTaxRate decimal.Decimal
}

// NewStore crea un almacén vacío con la tasa de impuesto por defecto
// que heredan los carritos nuevos
func NewStore(defaultTaxRate decimal.Decimal) *Store {
	return &Store{
		sessions:       make(map[uuid.UUID]*entity.BillingSession),
		defaultTaxRate: defaultTaxRate,
	}
}

// Create abre una sesión nueva con carrito vacío
func (s *Store) Create() *entity.BillingSession {
	sess := entity.NewBillingSession(s.defaultTaxRate)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get retorna la sesión o entity.ErrSessionNotFound
func (s *Store) Get(id uuid.UUID) (*entity.BillingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return sess, nil
}

// Delete descarta la sesión; idempotente
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count cantidad de sesiones vivas (para health/metrics)
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
