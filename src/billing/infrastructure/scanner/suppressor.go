package scanner

import (
	"sync"
	"time"
)

// Ventana de supresión de lecturas duplicadas: un escaneo físico suele
// decodificarse varias veces seguidas mientras el código sigue frente
// al lector
const DefaultSuppressWindow = 800 * time.Millisecond

// suppressState estado etiquetado del supresor:
// zero value = Idle; con Text seteado = Suppressing(text, expiry)
type suppressState struct {
	Text   string
	Expiry time.Time
}

// Suppressor guarda de single-flight por texto decodificado.
// Garantiza que un mismo escaneo físico no dispare dos submits, pero
// admite inmediatamente un texto distinto (segundo producto) y el
// mismo texto una vez vencida la ventana.
type Suppressor struct {
	mu     sync.Mutex
	state  suppressState
	window time.Duration
}

// NewSuppressor crea un supresor en estado Idle
func NewSuppressor(window time.Duration) *Suppressor {
	if window <= 0 {
		window = DefaultSuppressWindow
	}
	return &Suppressor{window: window}
}

// Admit decide si el texto decodificado pasa al procesamiento.
// Si pasa, el supresor transiciona a Suppressing(text, now+window).
func (s *Suppressor) Admit(text string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Text == text && now.Before(s.state.Expiry) {
		return false
	}

	s.state = suppressState{Text: text, Expiry: now.Add(s.window)}
	return true
}

// Reset vuelve al estado Idle (siguiente lectura pasa siempre)
func (s *Suppressor) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = suppressState{}
}
