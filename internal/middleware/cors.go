package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/aidar/stellar-team/internal/config"
)

// CORSMiddleware создает middleware, разрешающий внешнему сайту читать каталог.
// Каталог доступен только на чтение, поэтому разрешены лишь GET, HEAD и OPTIONS.
func CORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           cfg.MaxAge,
	})
}
