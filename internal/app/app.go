package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finlearn_backend/internal/config"
	"finlearn_backend/internal/controller"
	"finlearn_backend/internal/curriculum"
	"finlearn_backend/internal/finmath"
	"finlearn_backend/internal/repository"
	"finlearn_backend/internal/service"
	"finlearn_backend/pkg/configwatcher"
	"finlearn_backend/pkg/database"
	"finlearn_backend/pkg/logger"
	"finlearn_backend/pkg/monitoring"
	"finlearn_backend/pkg/security"
	"finlearn_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client
	TaxTables *finmath.TaxTables

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user    *repository.UserRepository
	records *repository.RecordRepository
}

type services struct {
	storage    *service.StorageService
	auth       *service.AuthService
	progress   *service.ProgressService
	curriculum *service.CurriculumService
}

type controllers struct {
	auth       *controller.AuthController
	progress   *controller.ProgressController
	curriculum *controller.CurriculumController
	calculator *controller.CalculatorController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		records: repository.NewRecordRepository(repository.NewRedisKV(rdb)),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, modules []curriculum.Module, registry *finmath.Registry) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage
	s.auth = service.NewAuthService(repos.user, repos.records, cfg)
	s.progress = service.NewProgressService(repos.records, modules)
	s.curriculum = service.NewCurriculumService(modules, registry, a.TaxTables, storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		progress:   controller.NewProgressController(s.progress),
		curriculum: controller.NewCurriculumController(s.curriculum, s.progress),
		calculator: controller.NewCalculatorController(s.curriculum),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) loadTaxTables(cfg *config.Config) *finmath.TaxTables {
	tables, err := finmath.LoadTaxTables(cfg.Tax.RegimesPath)
	if err != nil {
		logger.Log.Warn("Failed to load tax regime file, using built-in tables",
			zap.String("path", cfg.Tax.RegimesPath),
			zap.Error(err))
		tables, err = finmath.NewTaxTables(finmath.DefaultRegimeSet())
		if err != nil {
			logger.Log.Fatal("Built-in tax tables invalid", zap.Error(err))
		}
		return tables
	}

	if cfg.Tax.WatchReload {
		go configwatcher.Watch(cfg.Tax.RegimesPath, tables.Reload)
	}
	return tables
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	app.TaxTables = app.loadTaxTables(cfg)

	registry := finmath.NewRegistry(app.TaxTables)
	modules := curriculum.Catalog()
	if err := curriculum.Validate(modules, registry); err != nil {
		logger.Log.Fatal("Curriculum catalog invalid", zap.Error(err))
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, modules, registry)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("finlearn-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
