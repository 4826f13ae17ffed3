package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var DefaultOrigins = []string{
	"http://localhost:4200",
	"http://localhost:9000",
	"http://127.0.0.1:4200",
	"http://127.0.0.1:9000",
}

// CORS allows the given origins, falling back to the local dev servers when empty.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-Id"},
		ExposeHeaders:    []string{"Link", "X-Total-Count", "Location", "X-Request-Id", "X-clientesApp-alert", "X-clientesApp-error", "X-clientesApp-params"},
		AllowCredentials: true,
	})
}
