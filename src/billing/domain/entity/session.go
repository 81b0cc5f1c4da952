package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingSession es la sesión activa de un terminal: dueña exclusiva
// de un carrito y de su último aviso.
//
// Toda mutación entra por Apply, que ejecuta la función de transición
// sobre el carrito VIGENTE bajo el lock de la sesión. Así el resultado
// de un lookup asíncrono se commitea contra el estado actual y no
// contra un valor capturado antes de iniciar la llamada: dos escaneos
// casi simultáneos del mismo barcode nuevo terminan en un renglón con
// cantidad 2, nunca en renglones duplicados ni incrementos perdidos.
type BillingSession struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu     sync.Mutex
	cart   *Cart
	notice *Notice
}

// NewBillingSession crea una sesión con carrito vacío
func NewBillingSession(defaultTaxRate decimal.Decimal) *BillingSession {
	return &BillingSession{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		cart:      NewCart(defaultTaxRate),
	}
}

// Apply ejecuta la transición sobre el carrito vigente, serializada
// con cualquier otra mutación de la sesión
func (s *BillingSession) Apply(fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart)
}

// Snapshot retorna una copia consistente del carrito para armar
// respuestas (los renglones se copian; la copia no comparte slice)
func (s *BillingSession) Snapshot() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, len(s.cart.Items))
	copy(items, s.cart.Items)

	return CartSnapshot{
		State:          s.cart.State,
		Items:          items,
		TaxRatePercent: s.cart.TaxRatePercent,
		DiscountAmount: s.cart.DiscountAmount,
		Totals:         s.cart.Totals(),
		Bill:           s.cart.Bill,
	}
}

// SetNotice reemplaza el último aviso de la sesión
func (s *BillingSession) SetNotice(n *Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = n
}

// Notice retorna el último aviso si no venció; nil en caso contrario
func (s *BillingSession) Notice(now time.Time) *Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notice == nil || s.notice.Expired(now) {
		return nil
	}
	return s.notice
}

// DismissNotice descarta el aviso vigente (dismiss explícito)
func (s *BillingSession) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

// CartSnapshot copia de lectura del carrito en un instante dado
type CartSnapshot struct {
	State          CartState
	Items          []LineItem
	TaxRatePercent decimal.Decimal
	DiscountAmount decimal.Decimal
	Totals         CartTotals
	Bill           *FinalizedBill
}
