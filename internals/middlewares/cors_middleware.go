// middlewares/cors.go

package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"ainexus_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware; origins come from the
// CORS_ORIGINS env var (comma-separated), "*" by default.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: configs.GetEnv("CORS_ORIGINS", "*"),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}
