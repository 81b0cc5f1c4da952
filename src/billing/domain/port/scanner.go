package port

import "context"

// Scanner define la capacidad de escaneo físico del terminal.
// Open entrega un stream perezoso de textos decodificados o falla con
// entity.DeviceError (dispositivo ausente, sin permisos, error de
// lectura). El canal se cierra cuando el dispositivo se agota o se
// cierra la capacidad.
//
// Close debe ser determinista e idempotente: seguro de llamar varias
// veces y seguro aunque Open nunca haya completado con éxito.
type Scanner interface {
	Open(ctx context.Context) (<-chan string, error)
	Close() error
}
