package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pitlane-backend-go/internal/api"
	"pitlane-backend-go/internal/config"
	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/db"
	"pitlane-backend-go/internal/middleware"
	"pitlane-backend-go/internal/store"
	"pitlane-backend-go/internal/store/firestoredb"
	"pitlane-backend-go/internal/store/memory"
)

func main() {
	// --- 1. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	releaseMode := strings.EqualFold(appConfig.GinMode, "release")

	// --- 2. Initialize Logger (Zap) ---
	var zapLogger *zap.Logger
	if releaseMode {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Application configuration loaded", zap.String("appMode", appConfig.AppMode))

	// --- 3. Initialize the document store ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()

	var docStore store.Store
	if appConfig.IsLocal() {
		memStore := memory.New(memory.WithIDGenerator(func(collection string) string {
			return uuid.NewString()
		}))
		if err := db.SeedDemoData(initCtx, memStore); err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to seed demo data", zap.Error(err))
		}
		docStore = memStore
		zapLogger.Info("In-memory store initialized and seeded with demo data",
			zap.String("adminEmail", db.SeedAdminEmail))
	} else {
		fsStore, err := firestoredb.New(initCtx, appConfig)
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Cloud Firestore", zap.Error(err))
		}
		docStore = fsStore
		zapLogger.Info("Cloud Firestore initialized", zap.String("projectId", appConfig.FirebaseProjectID))
	}
	defer docStore.Close()

	// --- 4. Initialize Repositories ---
	userRepo := db.NewUserRepository(docStore)
	productRepo := db.NewProductRepository(docStore)
	cartRepo := db.NewCartRepository(docStore)
	orderRepo := db.NewOrderRepository(docStore)

	// --- 5. Initialize Services ---
	tokenService, err := core.NewTokenService(appConfig)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize TokenService", zap.Error(err))
	}
	userService := core.NewUserService(userRepo)
	productService := core.NewProductService(productRepo)
	cartService := core.NewCartService(cartRepo, productRepo)
	orderService := core.NewOrderService(orderRepo, cartRepo, zapLogger)
	paymentService := core.NewPaymentService(appConfig, zapLogger)
	zapLogger.Info("Core services initialized successfully.")

	// --- 6. Setup Gin HTTP Engine ---
	if releaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 7. Apply Global Middleware (order matters) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(appConfig))

	// --- 8. Setup API Routes ---
	api.SetupRoutes(router, zapLogger, releaseMode, api.Services{
		Users:    userService,
		Tokens:   tokenService,
		Products: productService,
		Carts:    cartService,
		Orders:   orderService,
		Payments: paymentService,
	})

	// --- 9. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...",
		zap.String("address", serverAddr),
		zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 10. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
