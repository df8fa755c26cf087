package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/docs"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/route"
	"github.com/hugohenrick/lojista-x/internal/adapter/payment"
	"github.com/hugohenrick/lojista-x/internal/adapter/repository/memory"
	"github.com/hugohenrick/lojista-x/internal/adapter/repository/postgres"
	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/internal/infrastructure/database"
	"github.com/hugohenrick/lojista-x/internal/seed"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
	"github.com/hugohenrick/lojista-x/pkg/metrics"
	"github.com/hugohenrick/lojista-x/pkg/ratelimit"
	"github.com/hugohenrick/lojista-x/pkg/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	router  *gin.Engine
	db      *database.PostgresDB
	limiter *ratelimit.Limiter
	done    chan struct{}
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	gin.SetMode(cfg.App.GinMode)

	app := &App{
		cfg:    cfg,
		logger: log,
		done:   make(chan struct{}),
	}

	store, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.App.SeedDemoData {
		if _, err := seed.Demo(ctx, store, time.Now(), log); err != nil {
			app.Close()
			return nil, fmt.Errorf("erro ao carregar dados de demonstração: %w", err)
		}
	}

	jwtService, err := auth.NewJWTService(cfg.JWT)
	if err != nil {
		app.Close()
		return nil, err
	}

	m := metrics.New()
	services := service.New(service.Deps{
		Store:    store,
		Logger:   log,
		Recorder: m,
	}, jwtService)

	controllers := route.Controllers{
		Auth:      controller.NewAuthController(services.Auth, services.Accounts, log),
		Account:   controller.NewAccountController(services.Accounts, cfg.Stripe, log),
		Product:   controller.NewProductController(services.Products, log),
		Customer:  controller.NewCustomerController(services.Customers, log),
		Sale:      controller.NewSaleController(services.Sales, log),
		Employee:  controller.NewEmployeeController(services.Employees, log),
		Expense:   controller.NewExpenseController(services.Expenses, log),
		Dashboard: controller.NewDashboardController(services.Dashboard, log),
		Checkout:  controller.NewCheckoutController(payment.NewProvider(cfg.Stripe, log), cfg.App.BaseURL, m, log),
	}

	app.limiter = ratelimit.New(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	app.limiter.StartCleanup(time.Minute, app.done)

	app.router = gin.New()
	app.router.Use(gin.Recovery())
	app.router.Use(cors.New(corsConfig(cfg.App.AllowedOrigins)))
	app.router.Use(logger.GinMiddleware(log))
	app.router.Use(m.GinMiddleware())

	app.router.GET("/metrics", gin.WrapH(m.Handler()))
	docs.SwaggerInfo.BasePath = "/api/v1"
	app.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	route.SetupRoutes(app.router, controllers, auth.JWTAuthMiddleware(jwtService), app.limiter.Middleware())

	return app, nil
}

// openStore escolhe o armazenamento conforme STORAGE_DRIVER
func (a *App) openStore(ctx context.Context) (repository.Store, error) {
	if a.cfg.App.StorageDriver != config.StoragePostgres {
		a.logger.Info("Usando armazenamento em memória")
		return memory.NewStore(), nil
	}

	version, err := database.RunMigrations(a.cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	a.logger.Info("Migrações aplicadas", "version", version)

	db, err := database.NewPostgresDB(ctx, a.cfg.Database, a.logger)
	if err != nil {
		return nil, err
	}
	a.db = db
	return postgres.NewStore(db), nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
	if a.db != nil {
		a.db.Close()
	}
}
