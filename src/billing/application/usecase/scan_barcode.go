package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"pos/src/billing/application/response"
	"pos/src/billing/domain/entity"
	"pos/src/billing/domain/port"
)

// ScanBarcodeUseCase procesa un barcode contra el catálogo y el carrito.
// Es el mismo camino para los dos disparadores (entrada manual y evento
// de cámara): el commit siempre se aplica sobre el carrito vigente de la
// sesión, así dos escaneos rápidos que resuelven fuera de orden terminan
// igual en un solo renglón con la cantidad correcta.
type ScanBarcodeUseCase struct {
	catalog  port.CatalogPort
	sessions port.SessionRepository
}

// NewScanBarcodeUseCase crea una nueva instancia del caso de uso
func NewScanBarcodeUseCase(catalog port.CatalogPort, sessions port.SessionRepository) *ScanBarcodeUseCase {
	return &ScanBarcodeUseCase{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Execute resuelve y commitea un barcode escaneado.
// Entrada vacía es no-op (no es error, no hay llamada de red).
// El carrito solo cambia después de una respuesta exitosa del catálogo.
func (uc *ScanBarcodeUseCase) Execute(ctx context.Context, sessionID uuid.UUID, raw string) (*response.ScanResponse, error) {
	// ========================================================================
	// PASO 1: NORMALIZAR ENTRADA (vacío = no-op)
	// ========================================================================
	barcode := strings.TrimSpace(raw)

	sess, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if barcode == "" {
		return &response.ScanResponse{CartResponse: response.NewCartResponse(sess)}, nil
	}

	// ========================================================================
	// PASO 2: LOOKUP EN EL CATÁLOGO (fuera del lock de la sesión)
	// ========================================================================
	product, err := uc.catalog.GetProductByBarcode(ctx, barcode)
	if errors.Is(err, entity.ErrProductNotFound) {
		log.Printf("❌ Barcode no encontrado en catálogo: %s", barcode)
		sess.SetNotice(entity.NewNotice(entity.NoticeLevelDanger, "Product not found with barcode: "+barcode))
		return &response.ScanResponse{
			CartResponse: response.NewCartResponse(sess),
			ClearInput:   true,
		}, nil
	}
	if err != nil {
		// Error de transporte: el carrito queda intacto, el usuario reintenta
		log.Printf("❌ Error consultando catálogo para %s: %v", barcode, err)
		return nil, err
	}

	// ========================================================================
	// PASO 3: DESCARTAR SI LA SESIÓN SE CERRÓ DURANTE EL LOOKUP
	// ========================================================================
	// Se vuelve a pedir la sesión y el commit sigue por el puntero
	// recién obtenido, nunca por el capturado antes del lookup
	sess, err = uc.sessions.Get(sessionID)
	if err != nil {
		log.Printf("⚠️  Sesión %s cerrada durante el lookup, resultado descartado", sessionID)
		return nil, err
	}

	// ========================================================================
	// PASO 4: COMMIT CONTRA EL CARRITO VIGENTE
	// ========================================================================
	var added bool
	err = sess.Apply(func(c *entity.Cart) error {
		a, applyErr := c.AddProduct(product)
		added = a
		return applyErr
	})

	clearInput := false
	switch {
	case err == nil:
		if added {
			log.Printf("🛒 Agregado %s (barcode %s) al carrito de %s", product.Name, barcode, sessionID)
			sess.SetNotice(entity.NewNotice(entity.NoticeLevelSuccess, fmt.Sprintf("Added %s to bill", product.Name)))
		} else {
			log.Printf("🛒 +1 %s en el carrito de %s", product.Name, sessionID)
			sess.SetNotice(entity.NewNotice(entity.NoticeLevelSuccess, fmt.Sprintf("Added 1 more %s", product.Name)))
		}

	case errors.Is(err, entity.ErrProductOutOfStock):
		// Producto sin stock: aviso nombrando el producto, carrito sin
		// cambios, y la UI limpia el texto tipeado
		sess.SetNotice(entity.NewNotice(entity.NoticeLevelDanger, fmt.Sprintf("%s is out of stock", product.Name)))
		clearInput = true

	case errors.Is(err, entity.ErrCartSubmitting):
		sess.SetNotice(entity.NewNotice(entity.NoticeLevelWarning, "Bill generation in progress"))

	default:
		var limitErr *entity.StockLimitError
		if errors.As(err, &limitErr) {
			sess.SetNotice(entity.NewNotice(entity.NoticeLevelWarning,
				fmt.Sprintf("Cannot add more. Only %d units available", limitErr.Available)))
		} else {
			return nil, err
		}
	}

	return &response.ScanResponse{
		CartResponse: response.NewCartResponse(sess),
		ClearInput:   clearInput,
	}, nil
}
