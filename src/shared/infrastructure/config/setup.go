package config

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// GzipSharedConfig contiene la configuración del módulo compartido de compresión
type GzipSharedConfig struct {
	EnableGzip        bool
	GzipExcludedPaths []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() GzipSharedConfig {
	return GzipSharedConfig{
		EnableGzip:        true,
		GzipExcludedPaths: []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config GzipSharedConfig) {
	if config.EnableGzip {
		router.Use(gzip.Gzip(gzip.DefaultCompression,
			gzip.WithExcludedPaths(config.GzipExcludedPaths)))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
	// (CORS, autenticación, medición de rendimiento)
}
