package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "tasklist/internal/adapter/db"
	httpadapter "tasklist/internal/adapter/http"
	"tasklist/internal/adapter/http/handlers"
	appservice "tasklist/internal/app/service"
	"tasklist/internal/config"
	"tasklist/pkg/translator"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and web view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	conf := config.LoadConfig()
	logger, err := setupLogger(conf)
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	if !conf.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  conf.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(conf)
	if err != nil {
		logger.Error("failed to connect to database", zap.String("driver", conf.DbDriver), zap.Error(err))
		return err
	}

	if conf.AutoMigrate {
		if err := dbadapter.Migrate(ctx, db); err != nil {
			_ = db.Close()
			logger.Error("failed to migrate database", zap.Error(err))
			return err
		}
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	stepRepository := dbadapter.NewStepRepository(db)
	projectRepository := dbadapter.NewProjectRepository(db)

	router, err := httpadapter.NewRouter(logger, conf.AllowedOrigins, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, handlers.HealthInfo{
			AppName:     conf.AppName,
			AppVersion:  conf.AppVersion,
			Environment: conf.AppEnv,
			DbDriver:    conf.DbDriver,
		}),
		Task:        handlers.NewTaskHandler(appservice.NewTaskService(taskRepository, stepRepository, projectRepository)),
		Step:        handlers.NewStepHandler(appservice.NewStepService(stepRepository, taskRepository)),
		Project:     handlers.NewProjectHandler(appservice.NewProjectService(projectRepository)),
		Environment: handlers.NewEnvironmentHandler(conf.AppEnv),
	})
	if err != nil {
		_ = db.Close()
		return err
	}

	server := &http.Server{
		Addr:              ":" + conf.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("env", conf.AppEnv),
			zap.String("driver", conf.DbDriver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		conf.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("shutting down server")
				shutdownErr := server.Shutdown(ctx)
				if err := db.Close(); err != nil {
					logger.Warn("failed to close database connection", zap.Error(err))
				}
				return shutdownErr
			},
		},
	)

	exitCode := <-wait
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	syncLogger(logger)
	os.Exit(exitCode)
	return nil
}
