package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	hrapp "github.com/chemstock/backend/internal/application/hr"
	identityapp "github.com/chemstock/backend/internal/application/identity"
	partnerapp "github.com/chemstock/backend/internal/application/partner"
	productionapp "github.com/chemstock/backend/internal/application/production"
	reportapp "github.com/chemstock/backend/internal/application/report"
	salesapp "github.com/chemstock/backend/internal/application/sales"
	stockapp "github.com/chemstock/backend/internal/application/stock"
	"github.com/chemstock/backend/internal/infrastructure/auth"
	"github.com/chemstock/backend/internal/infrastructure/config"
	"github.com/chemstock/backend/internal/infrastructure/logger"
	"github.com/chemstock/backend/internal/infrastructure/persistence"
	"github.com/chemstock/backend/internal/interfaces/http/handler"
	"github.com/chemstock/backend/internal/interfaces/http/middleware"
	"github.com/chemstock/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting chemstock backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	lotRepo := persistence.NewGormLotRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Token infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisBlacklist.Close()
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled")
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Using in-memory token blacklist, tokens survive neither restarts nor multiple instances")
	}

	// Application services
	lotService := stockapp.NewLotService(lotRepo)
	productionService := productionapp.NewProductionService(
		batchRepo,
		persistence.NewGormProductionTransactionScope(db.DB),
	)
	salesService := salesapp.NewSalesService(
		saleRepo,
		clientRepo,
		persistence.NewGormSalesTransactionScope(db.DB),
	)
	clientService := partnerapp.NewClientService(clientRepo)
	employeeService := hrapp.NewEmployeeService(employeeRepo)
	dashboardService := reportapp.NewDashboardService(dashboardRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)

	// HTTP handlers
	lotHandler := handler.NewLotHandler(lotService)
	productionHandler := handler.NewProductionHandler(productionService)
	saleHandler := handler.NewSaleHandler(salesService)
	clientHandler := handler.NewClientHandler(clientService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check outside API versioning
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)

	stockRoutes := router.NewDomainGroup("stock", "/stock")
	stockRoutes.POST("/lots", lotHandler.Create)
	stockRoutes.GET("/lots", lotHandler.List)
	stockRoutes.GET("/lots/:id", lotHandler.GetByID)
	stockRoutes.PUT("/lots/:id", lotHandler.Update)
	stockRoutes.DELETE("/lots/:id", lotHandler.Delete)

	productionRoutes := router.NewDomainGroup("production", "/production")
	productionRoutes.POST("/batches", productionHandler.Produce)
	productionRoutes.GET("/batches", productionHandler.List)
	productionRoutes.GET("/batches/:id", productionHandler.GetByID)
	productionRoutes.DELETE("/batches/:id", productionHandler.Delete)

	salesRoutes := router.NewDomainGroup("sales", "/sales")
	salesRoutes.POST("", saleHandler.Sell)
	salesRoutes.GET("", saleHandler.List)

	clientRoutes := router.NewDomainGroup("clients", "/clients")
	clientRoutes.POST("", clientHandler.Create)
	clientRoutes.GET("", clientHandler.List)
	clientRoutes.GET("/:id", clientHandler.GetByID)
	clientRoutes.PUT("/:id", clientHandler.Update)
	clientRoutes.DELETE("/:id", clientHandler.Delete)

	employeeRoutes := router.NewDomainGroup("employees", "/employees")
	employeeRoutes.POST("", employeeHandler.Create)
	employeeRoutes.GET("", employeeHandler.List)
	employeeRoutes.GET("/:id", employeeHandler.GetByID)
	employeeRoutes.PUT("/:id", employeeHandler.Update)
	employeeRoutes.DELETE("/:id", employeeHandler.Delete)

	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/summary", dashboardHandler.Summary)

	systemRoutes := router.NewDomainGroup("system", "/health")
	systemRoutes.GET("", systemHandler.Health)

	r.Register(authRoutes).
		Register(stockRoutes).
		Register(productionRoutes).
		Register(salesRoutes).
		Register(clientRoutes).
		Register(employeeRoutes).
		Register(dashboardRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
