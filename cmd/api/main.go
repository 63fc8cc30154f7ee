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

	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/internal/application/assistant"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/automation"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/pipeline"
	infraai "github.com/tu-usuario/crm-pro/internal/infrastructure/ai"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	workflowRepo := postgres.NewWorkflowRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := activity.NewRecorder(activityRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accountUC := crm.NewAccountUseCase(accountRepo, txRunner, recorder)
	contactUC := crm.NewContactUseCase(contactRepo, accountRepo, recorder)
	dealUC := pipeline.NewDealUseCase(dealRepo, accountRepo, recorder)
	engine := automation.NewEngine(workflowRepo, activityRepo, log)
	statsUC := analytics.NewStatsUseCase(statsRepo)

	// Asistente: con API key delega en Claude; sin ella queda en modo offline.
	var llm assistant.LLMService
	if cfg.AI.AnthropicAPIKey != "" {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}
	chatUC := assistant.NewChatUseCase(statsRepo, llm, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		AccountUC: accountUC,
		ContactUC: contactUC,
		DealUC:    dealUC,
		Engine:    engine,
		Recorder:  recorder,
		StatsUC:   statsUC,
		ChatUC:    chatUC,
		JWTSecret: cfg.JWT.Secret,
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
