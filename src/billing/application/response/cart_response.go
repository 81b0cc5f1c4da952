package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/billing/domain/entity"
)

// CartResponse vista del carrito para el terminal: renglones, campos
// de trabajo, totales clampeados y el último aviso no vencido
type CartResponse struct {
	SessionID uuid.UUID         `json:"session_id"`
	State     entity.CartState  `json:"state"`
	Items     []entity.LineItem `json:"items"`
	ItemCount int               `json:"item_count"`
	TaxRate   decimal.Decimal   `json:"tax_rate"`
	Discount  decimal.Decimal   `json:"discount"`
	Totals    entity.CartTotals `json:"totals"`
	Notice    *NoticeResponse   `json:"notice,omitempty"`

	// Bill solo viene cuando el carrito está FINALIZED
	Bill *entity.FinalizedBill `json:"bill,omitempty"`
}

// NoticeResponse aviso vigente de la sesión
type NoticeResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// ScanResponse resultado de procesar un barcode. ClearInput le indica
// a la UI que limpie el campo de texto: solo en not-found y
// out-of-stock (variante defensiva; un alta exitosa no limpia).
type ScanResponse struct {
	CartResponse
	ClearInput bool `json:"clear_input"`
}

// NewCartResponse arma la vista a partir del snapshot de la sesión
func NewCartResponse(s *entity.BillingSession) CartResponse {
	snap := s.Snapshot()

	resp := CartResponse{
		SessionID: s.ID,
		State:     snap.State,
		Items:     snap.Items,
		ItemCount: len(snap.Items),
		TaxRate:   snap.TaxRatePercent,
		Discount:  snap.DiscountAmount,
		Totals:    snap.Totals,
		Bill:      snap.Bill,
	}

	if n := s.Notice(time.Now()); n != nil {
		resp.Notice = &NoticeResponse{Level: n.Level, Message: n.Message}
	}
	return resp
}
