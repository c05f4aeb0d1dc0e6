package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monokpe/james-ecom/internal/api/handlers"
	"github.com/monokpe/james-ecom/internal/api/middleware"
	"github.com/monokpe/james-ecom/internal/cache"
	"github.com/monokpe/james-ecom/internal/config"
	"github.com/monokpe/james-ecom/internal/health"
	"github.com/monokpe/james-ecom/internal/metrics"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	service "github.com/monokpe/james-ecom/internal/services"
	"github.com/monokpe/james-ecom/internal/tracing"
	"github.com/monokpe/james-ecom/pkg/sendgrid"
	"github.com/monokpe/james-ecom/pkg/stripe"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := tracing.Setup(context.Background(), "james-ecom", cfg.Tracing.OTLPEndpoint)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey)
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	notificationService := service.NewNotificationService(repos.Notification, sendGridClient, cfg.SendGrid.FromEmail)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	productService := service.NewProductService(repos.Product, productCache, &cfg.Cache)
	productHandler := handlers.NewProductHandler(productService)
	catalogService := service.NewCatalogService(repos.Catalog)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	inventoryService := service.NewInventoryService(repos.Stock, repos.Product, notificationService, productCache, cfg.Inventory.LowStockThreshold)
	stockHandler := handlers.NewStockHandler(inventoryService)
	orderService := service.NewOrderService(repos.Order, repos.Product, notificationService, productCache, cfg.Inventory.LowStockThreshold)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentService := service.NewPaymentService(repos.Payment, repos.Order, stripeClient, notificationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistService := service.NewWishlistService(repos.Wishlist, repos.Product)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	addressService := service.NewAddressService(repos.Address)
	addressHandler := handlers.NewAddressHandler(addressService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: stripeClient,
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Catalog
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PATCH /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.Authenticate(catalogHandler.CreateCategory()))
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.Authenticate(catalogHandler.DeleteCategory()))
	routerMux.HandleFunc("POST /api/v1/tags", authMiddleware.Authenticate(catalogHandler.CreateTag()))
	routerMux.HandleFunc("GET /api/v1/tags", catalogHandler.ListTags())
	routerMux.HandleFunc("DELETE /api/v1/tags/{id}", authMiddleware.Authenticate(catalogHandler.DeleteTag()))
	routerMux.HandleFunc("POST /api/v1/attributes", authMiddleware.Authenticate(catalogHandler.CreateAttribute()))
	routerMux.HandleFunc("GET /api/v1/attributes", catalogHandler.ListAttributes())
	routerMux.HandleFunc("DELETE /api/v1/attributes/{id}", authMiddleware.Authenticate(catalogHandler.DeleteAttribute()))

	// Inventory
	routerMux.HandleFunc("POST /api/v1/stock-movements", authMiddleware.Authenticate(stockHandler.CreateStockMovement()))
	routerMux.HandleFunc("GET /api/v1/products/{id}/stock-movements", authMiddleware.Authenticate(stockHandler.ListStockMovements()))

	// Orders
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", authMiddleware.Authenticate(orderHandler.UpdateOrderStatus()))

	// Payments
	routerMux.HandleFunc("POST /api/v1/payments", authMiddleware.Authenticate(paymentHandler.ConfirmPayment()))
	routerMux.HandleFunc("GET /api/v1/payments/{id}", authMiddleware.Authenticate(paymentHandler.GetPayment()))
	routerMux.HandleFunc("POST /api/v1/stripe-payment", authMiddleware.Authenticate(paymentHandler.CreatePaymentIntent()))

	// Cart and wishlist
	routerMux.HandleFunc("GET /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.ListItems()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("GET /api/v1/wishlist/items", authMiddleware.Authenticate(wishlistHandler.ListItems()))
	routerMux.HandleFunc("POST /api/v1/wishlist/items", authMiddleware.Authenticate(wishlistHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/v1/wishlist/items/{id}", authMiddleware.Authenticate(wishlistHandler.RemoveItem()))

	// Addresses
	routerMux.HandleFunc("POST /api/v1/addresses", authMiddleware.Authenticate(addressHandler.CreateAddress()))
	routerMux.HandleFunc("GET /api/v1/addresses", authMiddleware.Authenticate(addressHandler.ListAddresses()))
	routerMux.HandleFunc("GET /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.GetAddress()))
	routerMux.HandleFunc("PUT /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.UpdateAddress()))
	routerMux.HandleFunc("DELETE /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.DeleteAddress()))

	// Notifications
	routerMux.HandleFunc("POST /api/v1/notifications/email", authMiddleware.Authenticate(notificationHandler.SendEmail()))
	routerMux.HandleFunc("GET /api/v1/notifications/{id}", authMiddleware.Authenticate(notificationHandler.GetNotification()))
	routerMux.HandleFunc("GET /api/v1/notifications", authMiddleware.Authenticate(notificationHandler.ListNotifications()))

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux

	if cfg.RateLimit.MaxRequests > 0 {
		limiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		handler = limiter.Limit(handler)
	}

	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "james-ecom")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("⚠️ Error closing the redis connection", slog.String("error", err.Error()))
	}
}
