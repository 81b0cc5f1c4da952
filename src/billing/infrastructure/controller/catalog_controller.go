package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos/src/billing/application/request"
	"pos/src/billing/domain/entity"
	"pos/src/billing/infrastructure/client"
)

// CatalogController proxy del CRUD de productos hacia inventory-service.
// Sin lógica de dominio: el terminal solo reenvía y muestra.
type CatalogController struct {
	inventory *client.InventoryClient
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(inventory *client.InventoryClient) *CatalogController {
	return &CatalogController{inventory: inventory}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/search", c.SearchProducts)
		products.GET("/categories", c.ListCategories)
		products.GET("/category/:category", c.ListByCategory)
		products.GET("/low-stock", c.ListLowStock)
		products.GET("/out-of-stock", c.ListOutOfStock)
		products.GET("/barcode/:barcode", c.GetByBarcode)
		products.GET("/:product_id", c.GetProduct)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
		products.PATCH("/:product_id/adjust-stock", c.AdjustStock)
		products.GET("/:product_id/stock-movements", c.StockMovements)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/barcode/:barcode")
	log.Println("  GET    /api/v1/products/search?keyword=")
	log.Println("  GET    /api/v1/products/low-stock")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  DELETE /api/v1/products/:product_id")
	log.Println("  PATCH  /api/v1/products/:product_id/adjust-stock")
}

// productID parsea el path param numérico
func productID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("product_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return 0, false
	}
	return id, true
}

// respondCatalogError mapea errores del catálogo remoto
func respondCatalogError(ctx *gin.Context, err error) {
	var tErr *entity.TransportError
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &tErr):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": tErr.Message})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ListProducts lista todos los productos
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	products, err := c.inventory.ListProducts(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// GetByBarcode resuelve un producto por barcode exacto
func (c *CatalogController) GetByBarcode(ctx *gin.Context) {
	product, err := c.inventory.GetProductByBarcode(ctx.Request.Context(), ctx.Param("barcode"))
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// GetProduct obtiene un producto por id
func (c *CatalogController) GetProduct(ctx *gin.Context) {
	id, ok := productID(ctx)
	if !ok {
		return
	}

	product, err := c.inventory.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// SearchProducts busca por palabra clave
func (c *CatalogController) SearchProducts(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "keyword query parameter is required"})
		return
	}

	products, err := c.inventory.SearchProducts(ctx.Request.Context(), keyword)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// ListCategories lista las categorías existentes
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.inventory.ListCategories(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// ListByCategory lista productos de una categoría
func (c *CatalogController) ListByCategory(ctx *gin.Context) {
	products, err := c.inventory.ListByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// ListLowStock productos en o bajo su umbral
func (c *CatalogController) ListLowStock(ctx *gin.Context) {
	products, err := c.inventory.ListLowStock(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// ListOutOfStock productos sin stock
func (c *CatalogController) ListOutOfStock(ctx *gin.Context) {
	products, err := c.inventory.ListOutOfStock(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// CreateProduct da de alta un producto
func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" || req.Barcode == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name and barcode are required"})
		return
	}

	product, err := c.inventory.CreateProduct(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct edita un producto (barcode inmutable)
func (c *CatalogController) UpdateProduct(ctx *gin.Context) {
	id, ok := productID(ctx)
	if !ok {
		return
	}

	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := c.inventory.UpdateProduct(ctx.Request.Context(), id, &req)
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct elimina un producto
func (c *CatalogController) DeleteProduct(ctx *gin.Context) {
	id, ok := productID(ctx)
	if !ok {
		return
	}

	if err := c.inventory.DeleteProduct(ctx.Request.Context(), id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		respondCatalogError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AdjustStock ajusta el stock con nota de auditoría
func (c *CatalogController) AdjustStock(ctx *gin.Context) {
	id, ok := productID(ctx)
	if !ok {
		return
	}

	var req request.AdjustStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := c.inventory.AdjustStock(ctx.Request.Context(), id, &req)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// StockMovements historial de movimientos de un producto
func (c *CatalogController) StockMovements(ctx *gin.Context) {
	id, ok := productID(ctx)
	if !ok {
		return
	}

	movements, err := c.inventory.StockMovements(ctx.Request.Context(), id)
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movements)
}
