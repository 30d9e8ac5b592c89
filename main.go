package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/users/auth/scheduler"
	"sekolahku_backend/internals/middlewares"
	"sekolahku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	databases.ConnectDB()
	databases.TunePool()

	app := fiber.New(fiber.Config{
		AppName:     "Sekolahku Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	// Request ID untuk korelasi log
	app.Use(func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)
		c.Locals("request_id", rid)
		return c.Next()
	})

	middlewares.SetupMiddlewares(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	route.SetupRoutes(app, databases.DB)

	// Pembersih token blacklist kedaluwarsa
	stopCleanup := make(chan struct{})
	scheduler.StartTokenCleanup(databases.DB, time.Hour, stopCleanup)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("⏳ Mematikan server...")
		close(stopCleanup)
		if err := app.Shutdown(); err != nil {
			log.Println("[ERROR] shutdown:", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 Server berjalan di port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("❌ Gagal menjalankan server:", err)
	}
}
