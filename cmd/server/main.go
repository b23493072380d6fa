package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"halachick.backend/internal/config"
	"halachick.backend/internal/domain/entities"
	"halachick.backend/internal/infrastructure/mailer"
	"halachick.backend/internal/infrastructure/repositories"
	"halachick.backend/internal/interfaces/http/handlers"
	"halachick.backend/internal/interfaces/http/middleware"
	"halachick.backend/internal/usecases"
	"halachick.backend/pkg/jwt"
	"halachick.backend/pkg/logger"
	"halachick.backend/pkg/metrics"
	"halachick.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	farmRepo := repositories.NewFarmRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	fundRepo := repositories.NewInsuranceFundRepository(db)
	claimRepo := repositories.NewInsuranceClaimRepository(db)
	productRepo := repositories.NewMarketProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Initialize mail and token blacklist
	mail := mailer.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, cfg.Server.BaseURL)
	blacklist := redis.NewTokenBlacklist()

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, blacklist, mail)
	farmUsecase := usecases.NewFarmUsecase(farmRepo)
	investmentUsecase := usecases.NewInvestmentUsecase(investmentRepo, fundRepo)
	insuranceUsecase := usecases.NewInsuranceUsecase(claimRepo, fundRepo, farmRepo)
	marketUsecase := usecases.NewMarketUsecase(productRepo, orderRepo, farmRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, investmentRepo, fundRepo, claimRepo, settingRepo, mail)

	// Email investors when their investment finishes
	investmentUsecase.RegisterStatusHook(func(ctx context.Context, investment *entities.Investment, status entities.InvestmentStatus) error {
		if status != entities.InvestmentCompleted {
			return nil
		}
		investor, err := userRepo.GetByID(ctx, investment.InvestorID)
		if err != nil {
			return err
		}
		return mail.SendNotificationEmail(investor.Email, investor.FullName,
			"Your investment is complete",
			fmt.Sprintf("Your %s investment has completed with a profit of %.2f.", investment.Type, investment.CurrentProfit))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, jwtService, cfg.Server.Env == "production")
	farmHandler := handlers.NewFarmHandler(farmUsecase)
	investmentHandler := handlers.NewInvestmentHandler(investmentUsecase)
	insuranceHandler := handlers.NewInsuranceHandler(insuranceUsecase)
	marketHandler := handlers.NewMarketHandler(marketUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService, blacklist)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.Middleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		farmHandler:       farmHandler,
		investmentHandler: investmentHandler,
		insuranceHandler:  insuranceHandler,
		marketHandler:     marketHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 HalaChick Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
