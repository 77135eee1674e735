package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS creates a new CORS middleware with the given allowed origins.
// The dashboard frontend is a static page served from a different origin,
// so only simple read/write methods and JSON bodies are needed.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
		},
		ExposedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
}
