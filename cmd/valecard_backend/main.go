package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/valecard/valecard_backend/cmd/docs"
	"github.com/valecard/valecard_backend/internal/core/services"
	"github.com/valecard/valecard_backend/internal/handlers"
	"github.com/valecard/valecard_backend/internal/middleware"
	"github.com/valecard/valecard_backend/internal/platform/crypto"
	"github.com/valecard/valecard_backend/internal/repositories/database/pgsql"
	"github.com/valecard/valecard_backend/pkg/config"
	"github.com/valecard/valecard_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valecard/valecard_backend/internal/core/domain"
	validator "github.com/go-playground/validator/v10"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Valecard Backend API
// @version 1.0
// @description Corporate benefit card issuance, lifecycle and transaction API.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Company API key used on card creation and recharge requests.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cipher, err := crypto.NewCipher(cfg.CardCipherKey)
	if err != nil {
		logger.Error("Failed to initialize card cipher", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidations(logger)

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/health", handlers.GetHealth)

	setupAPIRoutes(r, dbPool, cipher)
	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection compatible with the main pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// registerValidations hooks domain validations into gin's binding validator.
func registerValidations(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Error("Failed to access binding validator engine")
		os.Exit(1)
	}
	if err := v.RegisterValidation("cardtype", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCardType(fl.Field().String())
		return ok
	}); err != nil {
		logger.Error("Failed to register cardtype validation", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func setupAPIRoutes(r *gin.Engine, dbPool *pgxpool.Pool, cipher *crypto.Cipher) {
	companyRepo := pgsql.NewCompanyRepository(dbPool)
	employeeRepo := pgsql.NewEmployeeRepository(dbPool)
	cardRepo := pgsql.NewCardRepository(dbPool)
	businessRepo := pgsql.NewBusinessRepository(dbPool)
	paymentRepo := pgsql.NewPaymentRepository(dbPool)
	rechargeRepo := pgsql.NewRechargeRepository(dbPool)

	transactionService := services.NewTransactionService(companyRepo, employeeRepo, cardRepo, businessRepo, paymentRepo, rechargeRepo, cipher)
	cardService := services.NewCardService(companyRepo, employeeRepo, cardRepo, cipher, transactionService)

	root := r.Group("")
	handlers.RegisterCardRoutes(root, cardService)
	handlers.RegisterPaymentRoutes(root, transactionService)
	handlers.RegisterRechargeRoutes(root, transactionService)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
