package scanner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"pos/src/billing/domain/entity"
)

// WedgeScanner lee textos decodificados de un lector de barcode en
// modo "keyboard wedge": el dispositivo entrega una línea por lectura
// (p.ej. /dev/ttyACM0 o un FIFO alimentado por el driver de cámara).
// Implementa port.Scanner.
type WedgeScanner struct {
	path string

	mu        sync.Mutex
	device    io.ReadCloser
	closeOnce sync.Once
	closed    chan struct{}
}

// NewWedgeScanner crea la capacidad sobre la ruta del dispositivo
func NewWedgeScanner(path string) *WedgeScanner {
	return &WedgeScanner{
		path:   path,
		closed: make(chan struct{}),
	}
}

// Open abre el dispositivo y entrega el stream de lecturas.
// Fallos de apertura se mapean a entity.DeviceError para que el flujo
// de billing caiga a entrada manual sin romperse.
func (w *WedgeScanner) Open(ctx context.Context) (<-chan string, error) {
	if w.path == "" {
		return nil, &entity.DeviceError{Reason: "no scanner device configured"}
	}

	device, err := os.Open(w.path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, &entity.DeviceError{Reason: "scanner device not found: " + w.path}
		case errors.Is(err, fs.ErrPermission):
			return nil, &entity.DeviceError{Reason: "permission denied opening scanner device: " + w.path}
		default:
			return nil, &entity.DeviceError{Reason: err.Error()}
		}
	}

	w.mu.Lock()
	w.device = device
	w.mu.Unlock()

	decodes := make(chan string)
	go w.pump(ctx, device, decodes)
	return decodes, nil
}

// pump recorre el dispositivo línea a línea y publica las lecturas
// no vacías hasta EOF, cierre o cancelación del contexto
func (w *WedgeScanner) pump(ctx context.Context, device io.Reader, decodes chan<- string) {
	defer close(decodes)

	lines := bufio.NewScanner(device)
	for lines.Scan() {
		text := strings.TrimSpace(lines.Text())
		if text == "" {
			continue
		}
		select {
		case decodes <- text:
		case <-ctx.Done():
			return
		case <-w.closed:
			return
		}
	}
}

// Close libera el dispositivo en forma determinista.
// Idempotente y seguro aunque Open nunca haya completado.
func (w *WedgeScanner) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closed)
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.device != nil {
			err = w.device.Close()
			w.device = nil
		}
	})
	return err
}
