// File: freshfold/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshfold/config"
	"freshfold/cron"
	"freshfold/database"
	customerRepoPkg "freshfold/database/repository/customer"
	identityRepoPkg "freshfold/database/repository/identity"
	orderRepoPkg "freshfold/database/repository/order"
	"freshfold/handlers"
	"freshfold/middleware"
	"freshfold/routes"
	"freshfold/services/booking"
	"freshfold/services/identity"
	"freshfold/services/notification"
	"freshfold/services/saas"
	"freshfold/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	identityRepo := identityRepoPkg.NewMongoIdentityRepo()

	// External platform client. The key-vending endpoint is preferred; a
	// statically configured key covers local development.
	var tokens saas.TokenSource
	if config.AppConfig.LaundryAPIKeyURL != "" {
		tokens = &saas.VendingTokenSource{
			URL:        config.AppConfig.LaundryAPIKeyURL,
			HTTPClient: &http.Client{Timeout: 10 * time.Second},
		}
	} else {
		tokens = saas.StaticTokenSource{Key: config.AppConfig.LaundryAPIKey}
	}
	platform := saas.NewHTTPClient(config.AppConfig.LaundryAPIBaseURL, tokens, nil, logger)

	// services.
	notificationService, err := notification.NewDefaultNotificationService(utils.GetNoticeCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	identityService := &identity.DefaultIdentityService{
		Repo:  identityRepo,
		Cache: utils.GetAuthCacheClient(),
	}

	mirrorQueue := cron.NewMirrorEnqueuer()
	cron.InitMirrorWorker(customerRepo, orderRepo)

	wizardService := &booking.DefaultWizardService{
		Store:     booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Platform:  platform,
		Customers: customerRepo,
		Identity:  identityService,
		Notifier:  notificationService,
		Mirror:    mirrorQueue,
		Logger:    logger,
	}

	paymentService := booking.NewPaymentService(logger)

	bookingHandler := handlers.NewBookingHandler(wizardService, notificationService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	proxyHandler := handlers.NewProxyHandler(platform, tokens, logger)
	identityHandler := handlers.NewIdentityHandler(identityService, logger)
	orderHandler := handlers.NewOrderHandler(orderRepo, logger)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"session": utils.GetSessionCacheClient(),
		"auth":    utils.GetAuthCacheClient(),
		"notice":  utils.GetNoticeCacheClient(),
	}, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking wizard endpoints.
		InitiateSession:    bookingHandler.InitiateSession,
		GetSession:         bookingHandler.GetSession,
		UpdateFields:       bookingHandler.UpdateFields,
		ToggleLocker:       bookingHandler.ToggleLocker,
		SelectCustomerType: bookingHandler.SelectCustomerType,
		Advance:            bookingHandler.Advance,
		Retreat:            bookingHandler.Retreat,
		ResolveCustomer:    bookingHandler.ResolveCustomer,
		Submit:             bookingHandler.Submit,
		CancelSession:      bookingHandler.CancelSession,
		DrainNotices:       bookingHandler.DrainNotices,

		// Pricing endpoints.
		GetPricingPlans: handlers.GetPricingPlans,
		QuoteTotal:      handlers.QuoteTotal,

		// Payment endpoints.
		CreatePaymentIntent: paymentHandler.CreatePaymentIntent,

		// Platform proxy endpoints.
		ProxyForward: proxyHandler.Forward,
		GetAPIKey:    proxyHandler.GetAPIKey,

		// Identity endpoints.
		Authenticate:     identityHandler.Authenticate,
		RequestMagicLink: identityHandler.RequestMagicLink,
		VerifyMagicLink:  identityHandler.VerifyMagicLink,

		// Order history endpoints.
		ListMyOrders: orderHandler.ListMyOrders,

		// Ops endpoints.
		Health: handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
