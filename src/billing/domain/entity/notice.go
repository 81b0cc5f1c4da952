package entity

import (
	"time"

	"github.com/google/uuid"
)

// Niveles de aviso para el terminal (mapean a los alerts de la UI)
const (
	NoticeLevelSuccess = "success"
	NoticeLevelWarning = "warning"
	NoticeLevelDanger  = "danger"
)

// Duración por defecto de un aviso antes del auto-dismiss
const NoticeTTL = 5 * time.Second

// Notice es el "último aviso" de una sesión de billing: un único valor
// con expiración explícita en lugar de alerts imperativos dispersos.
// Un aviso vencido no se entrega más; también existe dismiss explícito.
type Notice struct {
	ID        uuid.UUID `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewNotice crea un aviso con expiración NoticeTTL a partir de ahora
func NewNotice(level, message string) *Notice {
	return &Notice{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		ExpiresAt: time.Now().Add(NoticeTTL),
	}
}

// Expired indica si el aviso ya venció en el instante dado
func (n *Notice) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}
