package handler

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS applies the cross-origin policy for the configured client origins.
// With no origins configured the handler is returned unchanged: rs/cors
// would otherwise fall back to a wildcard origin, which browsers refuse to
// pair with credentialed (cookie) requests.
func CORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		return next
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(next)
}
