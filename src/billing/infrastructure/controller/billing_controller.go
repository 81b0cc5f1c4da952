package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos/src/billing/application/request"
	"pos/src/billing/application/usecase"
	"pos/src/billing/domain/entity"
)

// BillingController maneja las peticiones HTTP del flujo de billing:
// ciclo de vida de sesiones, escaneo, edición del carrito y finalización
type BillingController struct {
	lifecycleUC   *usecase.SessionLifecycleUseCase
	scanUC        *usecase.ScanBarcodeUseCase
	setQuantityUC *usecase.SetQuantityUseCase
	removeItemUC  *usecase.RemoveItemUseCase
	adjustmentsUC *usecase.SetAdjustmentsUseCase
	finalizeUC    *usecase.FinalizeBillUseCase
	newBillUC     *usecase.NewBillUseCase
}

// NewBillingController crea una nueva instancia del controlador
func NewBillingController(
	lifecycleUC *usecase.SessionLifecycleUseCase,
	scanUC *usecase.ScanBarcodeUseCase,
	setQuantityUC *usecase.SetQuantityUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	adjustmentsUC *usecase.SetAdjustmentsUseCase,
	finalizeUC *usecase.FinalizeBillUseCase,
	newBillUC *usecase.NewBillUseCase,
) *BillingController {
	return &BillingController{
		lifecycleUC:   lifecycleUC,
		scanUC:        scanUC,
		setQuantityUC: setQuantityUC,
		removeItemUC:  removeItemUC,
		adjustmentsUC: adjustmentsUC,
		finalizeUC:    finalizeUC,
		newBillUC:     newBillUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *BillingController) RegisterRoutes(router *gin.RouterGroup) {
	billing := router.Group("/billing/sessions")
	{
		billing.POST("", c.OpenSession)
		billing.GET("/:session_id", c.GetCart)
		billing.DELETE("/:session_id", c.CloseSession)
		billing.POST("/:session_id/scan", c.Scan)
		billing.PUT("/:session_id/items/:barcode/quantity", c.SetQuantity)
		billing.DELETE("/:session_id/items/:barcode", c.RemoveItem)
		billing.PUT("/:session_id/adjustments", c.SetAdjustments)
		billing.POST("/:session_id/finalize", c.Finalize)
		billing.POST("/:session_id/new-bill", c.NewBill)
		billing.DELETE("/:session_id/notice", c.DismissNotice)
	}

	log.Println("Rutas Billing disponibles:")
	log.Println("  POST   /api/v1/billing/sessions")
	log.Println("  GET    /api/v1/billing/sessions/:session_id")
	log.Println("  DELETE /api/v1/billing/sessions/:session_id")
	log.Println("  POST   /api/v1/billing/sessions/:session_id/scan  ⭐ (Barcode Scan)")
	log.Println("  PUT    /api/v1/billing/sessions/:session_id/items/:barcode/quantity")
	log.Println("  DELETE /api/v1/billing/sessions/:session_id/items/:barcode")
	log.Println("  PUT    /api/v1/billing/sessions/:session_id/adjustments")
	log.Println("  POST   /api/v1/billing/sessions/:session_id/finalize")
	log.Println("  POST   /api/v1/billing/sessions/:session_id/new-bill")
	log.Println("  DELETE /api/v1/billing/sessions/:session_id/notice")
}

// sessionID parsea el path param; responde 400 y retorna false si es inválido
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session_id format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError mapea la taxonomía de errores a status HTTP
func respondError(ctx *gin.Context, err error) {
	var tErr *entity.TransportError
	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrLineItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrCartSubmitting):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidTaxRate),
		errors.Is(err, entity.ErrInvalidDiscount),
		errors.Is(err, entity.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &tErr):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": tErr.Message})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// OpenSession abre una sesión nueva de billing
func (c *BillingController) OpenSession(ctx *gin.Context) {
	resp := c.lifecycleUC.Open()
	ctx.JSON(http.StatusCreated, resp)
}

// GetCart retorna la vista actual del carrito
func (c *BillingController) GetCart(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.lifecycleUC.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CloseSession descarta la sesión (teardown del flujo)
func (c *BillingController) CloseSession(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	c.lifecycleUC.Close(id)
	ctx.Status(http.StatusNoContent)
}

// Scan procesa un barcode (entrada manual o evento de cámara)
func (c *BillingController) Scan(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := c.scanUC.Execute(ctx.Request.Context(), id, req.Barcode)
	if err != nil {
		log.Printf("Error processing barcode scan: %v", err)
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetQuantity fija la cantidad exacta de un renglón
func (c *BillingController) SetQuantity(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req request.QuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := c.setQuantityUC.Execute(id, ctx.Param("barcode"), req.Quantity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveItem elimina un renglón del carrito
func (c *BillingController) RemoveItem(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.removeItemUC.Execute(id, ctx.Param("barcode"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetAdjustments setters de impuesto y descuento
func (c *BillingController) SetAdjustments(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var req request.AdjustmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := c.adjustmentsUC.Execute(id, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Finalize envía el carrito a inventory-service
func (c *BillingController) Finalize(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.finalizeUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		log.Printf("Error finalizing bill: %v", err)
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// NewBill descarta la factura finalizada y arranca una nueva
func (c *BillingController) NewBill(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.newBillUC.Execute(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DismissNotice descarta el aviso vigente de la sesión
func (c *BillingController) DismissNotice(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := c.lifecycleUC.DismissNotice(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
