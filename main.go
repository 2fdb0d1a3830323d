package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"ainexus_backend/internals/configs"
	database "ainexus_backend/internals/databases"
	"ainexus_backend/internals/middlewares"
	"ainexus_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.Migrate()

	app := fiber.New(fiber.Config{
		AppName:     "ainexus_backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   10 * 1024 * 1024,
	})

	app.Use(func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("X-Request-ID", reqID)

		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] %s %s %s -> %d (%s)",
			reqID, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	app.Static("/static/uploads", configs.UploadDir())

	route.SetupRoutes(app, database.DB)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("[INFO] shutting down...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	port := configs.GetEnv("PORT", "3000")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("[ERROR] server stopped: %v", err)
	}
	log.Println("[INFO] bye.")
}
