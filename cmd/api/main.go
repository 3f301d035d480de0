package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-retail-crm/internal/handler"
	"go-retail-crm/internal/middleware"
	"go-retail-crm/internal/repository"
	"go-retail-crm/internal/service"
	"go-retail-crm/internal/ws"
	"go-retail-crm/pkg/config"
	"go-retail-crm/pkg/database"
	"go-retail-crm/pkg/logger"
	"go-retail-crm/pkg/textgen"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	appLog := logger.New(logger.Options{
		ServiceName: "grocymart-crm",
		Level:       cfg.App.LogLevel,
	})

	// 2. Setup Local Store (sqlite by default; the app must come up with no
	// remote service reachable)
	db, err := database.Connect(cfg.DB)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to open local store")
	}
	localStore := repository.NewLocalStore(db)
	if err := localStore.Migrate(); err != nil {
		appLog.Fatal().Err(err).Msg("failed to migrate local store")
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(appLog)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	remoteStore := repository.NewRemoteStore(cfg.Remote.BaseURL, cfg.Remote.ProbeTimeout, appLog)
	store := repository.NewFallbackStore(remoteStore, localStore, appLog)

	catalogService := service.NewCatalogService(store, wsHub)
	customerService := service.NewCustomerService(store)
	orderService := service.NewOrderService(store, wsHub)
	dashService := service.NewDashboardService(store)
	insightService := service.NewInsightService(store, textgen.New(cfg.Insight), appLog)
	sessionService := service.NewSessionService(localStore, cfg.JWT)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashHandler := handler.NewDashboardHandler(dashService)
	insightHandler := handler.NewInsightHandler(insightService)
	authHandler := handler.NewAuthHandler(sessionService)
	statusHandler := handler.NewStatusHandler(store, wsHub)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "GrocyMart CRM Pro v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// Metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)

	api.Get("/status", statusHandler.GetStatus)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireSession(cfg.JWT))

	// Product Routes
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Post("/products", catalogHandler.SaveProduct)
	protected.Delete("/products/:id", catalogHandler.DeleteProduct)

	// Customer Routes
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Post("/customers", customerHandler.SaveCustomer)

	// Order Routes
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Post("/orders", orderHandler.CreateOrder)

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/sales-by-day", dashHandler.GetSalesByDay)
	protected.Get("/dashboard/top-products", dashHandler.GetTopProducts)

	// Insight Routes (advisory text analysis, degraded when unconfigured)
	protected.Get("/insights/inventory", insightHandler.GetInventoryInsights)
	protected.Get("/insights/sales", insightHandler.GetSalesSummary)

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

	// 7. Initial liveness probe, advisory only
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if store.Probe(ctx) {
			appLog.Info().Str("remote", cfg.Remote.BaseURL).Msg("remote persistence service reachable")
		} else {
			appLog.Warn().Str("remote", cfg.Remote.BaseURL).Msg("remote persistence service unreachable, operating on local store")
		}
	}()

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			appLog.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		appLog.Fatal().Err(err).Msg("server forced to shutdown")
	}
	appLog.Info().Msg("server exited")
}
