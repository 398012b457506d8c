package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-sales/internal/handler"
	"go-inventory-sales/internal/repository"
	"go-inventory-sales/internal/service"
	"go-inventory-sales/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo()
	backOrders := repository.NewBackOrderQueue()
	ledger := repository.NewSalesLedger()

	invService := service.NewInventoryService(productRepo, backOrders, ledger, wsHub)
	dashService := service.NewDashboardService(invService)

	invHandler := handler.NewInventoryHandler(invService)
	reportHandler := handler.NewReportHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Sales Service v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	api := app.Group("/api/v1")

	// Product Routes
	api.Get("/products", invHandler.GetProducts)
	api.Post("/products", invHandler.CreateProduct)
	api.Put("/products/:id/stock", invHandler.UpdateStock)
	api.Delete("/products/:id", invHandler.DeleteProduct)

	// Sale & Back-Order Routes
	api.Post("/sales", invHandler.RecordSale)
	api.Get("/backorders", invHandler.GetBackOrders)
	api.Post("/backorders/process", invHandler.ProcessBackOrders)

	// Report & Dashboard Routes
	api.Post("/reports/end-of-day", reportHandler.GenerateEndOfDayReport)
	api.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
