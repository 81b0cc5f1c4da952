package config

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pos/src/billing/infrastructure/client"
	"pos/src/billing/infrastructure/session"
)

// APIConfig contiene la configuración del módulo API (health + docs)
type APIConfig struct {
	Version   string
	Inventory *client.InventoryClient
	Sessions  *session.Store
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version: "dev",
	}
}

// SetupAPIModule registra health check en raíz y bajo /api/v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := healthHandler(cfg)
	router.GET("/health", handler)
	v1.GET("/health", handler)
}

// healthHandler responde el estado del servicio y la alcanzabilidad
// de inventory-service (degraded si el colaborador no contesta)
func healthHandler(cfg APIConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "ok"
		inventoryStatus := "unknown"

		if cfg.Inventory != nil {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()

			if err := cfg.Inventory.Ping(pingCtx); err != nil {
				status = "degraded"
				inventoryStatus = "unreachable"
			} else {
				inventoryStatus = "ok"
			}
		}

		body := gin.H{
			"status":    status,
			"service":   "pos-terminal-service",
			"version":   cfg.Version,
			"inventory": inventoryStatus,
		}
		if cfg.Sessions != nil {
			body["active_sessions"] = cfg.Sessions.Count()
		}

		ctx.JSON(http.StatusOK, body)
	}
}
