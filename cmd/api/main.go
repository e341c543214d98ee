package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/agenciaflow/agencia-api/docs"
	"github.com/agenciaflow/agencia-api/internal/application/auth"
	"github.com/agenciaflow/agencia-api/internal/application/review"
	"github.com/agenciaflow/agencia-api/internal/application/tasks"
	"github.com/agenciaflow/agencia-api/internal/application/usecase"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
	infranotify "github.com/agenciaflow/agencia-api/internal/infrastructure/notify"
	infrapdf "github.com/agenciaflow/agencia-api/internal/infrastructure/pdf"
	"github.com/agenciaflow/agencia-api/internal/infrastructure/postgres"
	infrastorage "github.com/agenciaflow/agencia-api/internal/infrastructure/storage"
	httpRouter "github.com/agenciaflow/agencia-api/internal/interfaces/http"
	"github.com/agenciaflow/agencia-api/pkg/config"
	"github.com/agenciaflow/agencia-api/pkg/logger"
)

// @title        AgenciaFlow API
// @version      1.0
// @description  Backend del panel de gestión de la agencia: clientes, marcas, servicios, tareas, recursos y contratos.
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	overrideRepo := postgres.NewPriceOverrideRepository(pool)
	collaboratorRepo := postgres.NewCollaboratorRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	historyRepo := postgres.NewReviewHistoryRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	perm := permission.NewChecker(permission.DefaultMatrix(), cfg.Auth.SuperAdminEmails)

	blobStorage := infrastorage.NewSupabaseStorage(cfg.Storage.BaseURL, cfg.Storage.APIKey)
	pdfGenerator := infrapdf.NewMarotoContractGenerator(cfg.App.Name)
	notifier := infranotify.NewLogNotifier(log.Zerolog())

	authUC := auth.NewAuthUseCase(collaboratorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	brandUC := usecase.NewBrandUseCase(brandRepo, clientRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, overrideRepo, clientRepo)
	collaboratorUC := usecase.NewCollaboratorUseCase(collaboratorRepo, perm)
	contractUC := usecase.NewContractUseCase(contractRepo, clientRepo, pdfGenerator)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, brandRepo, clientRepo)
	resourceUC := usecase.NewResourceUseCase(resourceRepo, historyRepo, brandRepo, taskRepo, blobStorage, cfg.Storage.Bucket)

	createTaskUC := tasks.NewCreateTaskUseCase(
		txRunner, taskRepo, clientRepo, brandRepo, serviceRepo, overrideRepo,
		perm, tasks.DefaultPlanLimits,
	)
	advanceUC := tasks.NewAdvanceStatusUseCase(taskRepo, perm)
	taskQueryUC := tasks.NewTaskQueryUseCase(taskRepo)
	reviewUC := review.NewReviewResourceUseCase(
		txRunner, resourceRepo, taskRepo, brandRepo, perm, notifier,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    110 << 20, // subidas de video
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgenciaFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ClientUC:       clientUC,
		BrandUC:        brandUC,
		ServiceUC:      serviceUC,
		CollaboratorUC: collaboratorUC,
		ContractUC:     contractUC,
		DashboardUC:    dashboardUC,
		ResourceUC:     resourceUC,
		CreateTaskUC:   createTaskUC,
		AdvanceUC:      advanceUC,
		TaskQueryUC:    taskQueryUC,
		ReviewUC:       reviewUC,
		Perm:           perm,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
