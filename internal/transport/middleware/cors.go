package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/roommatch-backend/internal/config"
)

// CORS returns go-chi/cors middleware built from cfg. Preflight requests are
// answered without reaching the router.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
