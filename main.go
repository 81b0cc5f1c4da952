package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	apiConfig "pos/src/api/config"
	billingUseCase "pos/src/billing/application/usecase"
	billingClient "pos/src/billing/infrastructure/client"
	billingController "pos/src/billing/infrastructure/controller"
	billingScanner "pos/src/billing/infrastructure/scanner"
	billingSession "pos/src/billing/infrastructure/session"
	sharedConfig "pos/src/shared/infrastructure/config"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Terminal Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint for POS Terminal service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for POS Terminal service")
	}

	// Configurar GZIP y otros middlewares compartidos
	gzipSharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, gzipSharedCfg)

	// Tasa de impuesto por defecto de los carritos nuevos
	taxDefault, err := decimal.NewFromString(getEnv("TAX_RATE_DEFAULT", "5"))
	if err != nil {
		log.Fatalf("❌ TAX_RATE_DEFAULT inválido: %v", err)
	}

	// Clientes HTTP hacia inventory-service
	inventoryClient := billingClient.NewInventoryClient()
	bClient := billingClient.NewBillingClient()
	reportClient := billingClient.NewReportClient()

	// Almacén de sesiones en memoria
	sessions := billingSession.NewStore(taxDefault)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.Version = "1.0.0"
	apiCfg.Inventory = inventoryClient
	apiCfg.Sessions = sessions
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulo Billing
	scanUC := setupBillingModule(v1, inventoryClient, bClient, reportClient, sessions)

	// Escáner físico opcional: si hay dispositivo configurado se abre
	// una sesión de kiosco y se bombean las lecturas hacia ella
	var listener *billingScanner.Listener
	if devicePath := os.Getenv("SCANNER_DEVICE"); devicePath != "" {
		kiosk := sessions.Create()
		log.Printf("📷 Sesión de kiosco para el escáner: %s", kiosk.ID)

		listener = billingScanner.NewListener(billingScanner.NewWedgeScanner(devicePath), scanUC, kiosk.ID)
		if err := listener.Start(context.Background()); err != nil {
			// El billing sigue disponible vía entrada manual
			log.Printf("⚠️  Escáner no disponible (%v), se continúa con entrada manual", err)
			listener = nil
		}
	}

	// Iniciar el servidor. El apagado es por señal: SIGINT/SIGTERM
	// liberan el escáner y drenan las conexiones en curso.
	port := getEnv("PORT", "8081")
	srv := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		log.Printf("✅ Servidor POS Terminal iniciado en http://localhost:%s", port)
		log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Error al iniciar el servidor: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("🛑 Señal de apagado recibida, cerrando...")
	if listener != nil {
		listener.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Apagado forzado: %v", err)
	}
	log.Println("✅ Servidor POS Terminal detenido")
}

// setupBillingModule configura el módulo Billing y retorna el caso de
// uso de escaneo (lo comparte el listener del escáner físico)
func setupBillingModule(
	router *gin.RouterGroup,
	inventoryClient *billingClient.InventoryClient,
	bClient *billingClient.BillingClient,
	reportClient *billingClient.ReportClient,
	sessions *billingSession.Store,
) *billingUseCase.ScanBarcodeUseCase {
	log.Println("Configurando módulo Billing...")

	// Crear casos de uso
	lifecycleUC := billingUseCase.NewSessionLifecycleUseCase(sessions)
	scanUC := billingUseCase.NewScanBarcodeUseCase(inventoryClient, sessions)
	setQuantityUC := billingUseCase.NewSetQuantityUseCase(sessions)
	removeItemUC := billingUseCase.NewRemoveItemUseCase(sessions)
	adjustmentsUC := billingUseCase.NewSetAdjustmentsUseCase(sessions)
	finalizeUC := billingUseCase.NewFinalizeBillUseCase(bClient, sessions)
	newBillUC := billingUseCase.NewNewBillUseCase(sessions)

	// Crear controladores
	billingCtrl := billingController.NewBillingController(
		lifecycleUC, scanUC, setQuantityUC, removeItemUC, adjustmentsUC, finalizeUC, newBillUC)
	catalogCtrl := billingController.NewCatalogController(inventoryClient)
	reportCtrl := billingController.NewReportController(reportClient, bClient)

	// Registrar rutas
	billingCtrl.RegisterRoutes(router)
	catalogCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Billing configurado exitosamente")
	return scanUC
}
