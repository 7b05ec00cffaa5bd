package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaguilard28/cv-areli/adapters/event"
	httpAdapter "github.com/aaguilard28/cv-areli/adapters/http"
	"github.com/aaguilard28/cv-areli/adapters/llm"
	"github.com/aaguilard28/cv-areli/adapters/media_storage"
	"github.com/aaguilard28/cv-areli/adapters/persistence"
	"github.com/aaguilard28/cv-areli/adapters/render"
	"github.com/aaguilard28/cv-areli/internal/application/service"
	auditUC "github.com/aaguilard28/cv-areli/internal/application/usecase/audit"
	backupUC "github.com/aaguilard28/cv-areli/internal/application/usecase/backup"
	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	publishUC "github.com/aaguilard28/cv-areli/internal/application/usecase/publish"
	rewriteUC "github.com/aaguilard28/cv-areli/internal/application/usecase/rewrite"
	snapshotUC "github.com/aaguilard28/cv-areli/internal/application/usecase/snapshot"
	"github.com/aaguilard28/cv-areli/internal/config"
	"github.com/aaguilard28/cv-areli/pkg/auth"
	"github.com/aaguilard28/cv-areli/pkg/logger"
	"github.com/aaguilard28/cv-areli/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting CV Areli API Server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "cv-areli-api")
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Storage backend
	var kv persistence.KVStore
	var dbPool *pgxpool.Pool
	switch cfg.Storage.Backend {
	case "postgres":
		dbPool, err = persistence.NewPostgresPool(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()
		kv, err = persistence.NewPostgresKV(context.Background(), dbPool)
		if err != nil {
			appLogger.Fatal("cannot init Postgres state store", err)
		}
	case "memory":
		kv = persistence.NewMemoryKV()
		appLogger.Warn("Using in-memory storage, state will not survive restarts")
	default:
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		kv = persistence.NewRedisKV(redisClient)
	}

	// Events (optional)
	var events service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		events = kafkaClient
	}

	// Repositories
	versionRepo := persistence.NewVersionRepo(kv, appLogger)
	sectionRepo := persistence.NewSectionRepo(kv, appLogger)
	themeRepo := persistence.NewThemeRepo(kv, appLogger)

	// Engine
	engine := builder.NewEngine(versionRepo, sectionRepo, themeRepo, events, appLogger)
	engine.Bootstrap(context.Background())

	// Use cases
	snapshots := snapshotUC.NewUseCase(kv, versionRepo, sectionRepo, themeRepo, engine, events, cfg.Import.Strict, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(cfg, jwtSvc, appLogger)
	versionHandler := httpAdapter.NewVersionHandler(engine, appLogger)
	sectionHandler := httpAdapter.NewSectionHandler(engine, appLogger)
	themeHandler := httpAdapter.NewThemeHandler(engine, appLogger)
	snapshotHandler := httpAdapter.NewSnapshotHandler(snapshots, appLogger)
	publicHandler := httpAdapter.NewPublicHandler(engine, appLogger)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), errorMiddleware)

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.GET("/state", versionHandler.GetState)

				versions := adminPrivate.Group("/versions")
				{
					versions.POST("", versionHandler.CreateVersion)
					versions.PATCH("/active", versionHandler.UpdateActiveVersion)
					versions.POST("/:id/activate", versionHandler.SwitchVersion)
					versions.POST("/:id/duplicate", versionHandler.DuplicateVersion)
					versions.DELETE("/:id", versionHandler.DeleteVersion)
				}

				sections := adminPrivate.Group("/sections")
				{
					sections.POST("", sectionHandler.AddCustomSection)
					sections.POST("/:id/toggle", sectionHandler.ToggleSection)
					sections.PUT("/order", sectionHandler.ReorderSections)
				}

				adminPrivate.GET("/themes", themeHandler.ListThemes)
				adminPrivate.PUT("/theme", themeHandler.SelectTheme)

				adminPrivate.GET("/snapshot", snapshotHandler.Export)
				adminPrivate.POST("/snapshot", snapshotHandler.Import)

				// Rewrite assist, only when an LLM host is configured.
				if cfg.Ollama.Host != "" {
					llmSvc, err := llm.NewOllamaLLMAdapter(cfg, appLogger)
					if err != nil {
						appLogger.Fatal("cannot init LLM adapter", err)
					}
					rewriteHandler := httpAdapter.NewRewriteHandler(
						rewriteUC.NewUseCase(llmSvc, appLogger), appLogger)
					adminPrivate.POST("/rewrite", rewriteHandler.Rewrite)
				}

				// PDF publish, only when an upload target is configured.
				if cfg.Cloudinary.CloudName != "" {
					uploader, err := media_storage.NewCloudinaryAdapter(cfg)
					if err != nil {
						appLogger.Fatal("cannot init uploader", err)
					}
					publishHandler := httpAdapter.NewPublishHandler(
						publishUC.NewUseCase(engine, render.NewChromedpRenderer(), uploader, appLogger),
						appLogger)
					adminPrivate.POST("/publish", publishHandler.Publish)

					backupHandler := httpAdapter.NewBackupHandler(
						backupUC.NewBackupUseCase(snapshots, uploader, appLogger), appLogger)
					adminPrivate.POST("/snapshot/backup", backupHandler.CreateBackup)
				}

				// Audit trail, only when Postgres is around.
				if dbPool != nil {
					auditRepo := persistence.NewPostgresAuditRepo(dbPool, appLogger)
					auditHandler := httpAdapter.NewAuditHandler(
						auditUC.NewListUseCase(auditRepo), appLogger)
					adminPrivate.GET("/audit", auditHandler.ListEntries)
				}
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "UP"}) })
			public.GET("/cv", publicHandler.GetCV)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
