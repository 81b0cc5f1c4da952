package scanner

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"pos/src/billing/application/usecase"
	"pos/src/billing/domain/port"
)

// Listener conecta una capacidad de escaneo con el carrito de una
// sesión: consume el stream de textos decodificados, filtra duplicados
// con el supresor y dispara el mismo caso de uso que la entrada manual.
// El teardown cierra la capacidad y tolera lookups que resuelvan
// después: su resultado se descarta porque la sesión ya no está.
type Listener struct {
	scanner   port.Scanner
	scanUC    *usecase.ScanBarcodeUseCase
	sessionID uuid.UUID
	sup       *Suppressor

	cancel  context.CancelFunc
	started bool
	done    chan struct{}
}

// NewListener crea el listener para una sesión dada
func NewListener(scanner port.Scanner, scanUC *usecase.ScanBarcodeUseCase, sessionID uuid.UUID) *Listener {
	return &Listener{
		scanner:   scanner,
		scanUC:    scanUC,
		sessionID: sessionID,
		sup:       NewSuppressor(DefaultSuppressWindow),
		done:      make(chan struct{}),
	}
}

// Start abre la capacidad y arranca el bombeo de lecturas.
// Si el dispositivo falla retorna entity.DeviceError y el billing
// sigue disponible por entrada manual.
func (l *Listener) Start(ctx context.Context) error {
	ctx, l.cancel = context.WithCancel(ctx)
	l.started = true

	decodes, err := l.scanner.Open(ctx)
	if err != nil {
		l.cancel()
		close(l.done)
		return err
	}

	go func() {
		defer close(l.done)
		for {
			select {
			case <-ctx.Done():
				return
			case text, ok := <-decodes:
				if !ok {
					log.Printf("📷 Stream del escáner agotado para la sesión %s", l.sessionID)
					return
				}
				if !l.sup.Admit(text, time.Now()) {
					continue
				}
				if _, err := l.scanUC.Execute(ctx, l.sessionID, text); err != nil {
					// Sesión cerrada o fallo de transporte: se loguea y
					// se sigue; la lectura no se reintenta sola
					log.Printf("⚠️  Lectura de escáner descartada (%s): %v", text, err)
				}
			}
		}
	}()

	log.Printf("📷 Escáner conectado a la sesión %s", l.sessionID)
	return nil
}

// Stop detiene el bombeo y libera el dispositivo. Idempotente; seguro
// aunque Start haya fallado.
func (l *Listener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	_ = l.scanner.Close()
	if l.started {
		<-l.done
	}
}
