package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"todo-chat/internal/api"
	"todo-chat/internal/config"
	"todo-chat/internal/intent"
	"todo-chat/internal/interpreter"
	"todo-chat/internal/logging"
	"todo-chat/internal/services"
	"todo-chat/internal/validation"
)

func newServeCommand() *cobra.Command {
	var (
		addr      string
		staticDir string
		store     string
		aiBaseURL string
		aiModel   string
		aiTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := &config.ConfigOverrides{}
			if cmd.Flags().Changed("addr") {
				overrides.Addr = &addr
			}
			if cmd.Flags().Changed("static-dir") {
				overrides.StaticDir = &staticDir
			}
			if cmd.Flags().Changed("store") {
				overrides.StoreBackend = &store
			}
			if cmd.Flags().Changed("ai-base-url") {
				overrides.AIBaseURL = &aiBaseURL
			}
			if cmd.Flags().Changed("ai-model") {
				overrides.AIModel = &aiModel
			}
			if cmd.Flags().Changed("ai-timeout") {
				overrides.AITimeout = &aiTimeout
			}
			if cmd.Flags().Changed("verbose") {
				verbose, err := cmd.Flags().GetBool("verbose")
				if err != nil {
					return err
				}
				overrides.Verbose = &verbose
			}

			cfg, err := config.NewLoader().LoadWithOverrides(overrides)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&staticDir, "static-dir", "./static", "directory with the bundled UI")
	cmd.Flags().StringVar(&store, "store", "memory", "task store backend (memory|sqlite)")
	cmd.Flags().StringVar(&aiBaseURL, "ai-base-url", "", "base URL of the interpretation service")
	cmd.Flags().StringVar(&aiModel, "ai-model", "", "model name for the interpretation service")
	cmd.Flags().DurationVar(&aiTimeout, "ai-timeout", 30*time.Second, "timeout for interpretation calls")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Application.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, err := NewRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	taskService := services.NewTaskService(repo)
	executor := intent.NewExecutor(taskService, logger)
	validator := validation.NewValidatorWithConfig(cfg)

	interp := interpreter.NewOpenAIClient(interpreter.Config{
		BaseURL:     cfg.Interpreter.BaseURL,
		APIKey:      cfg.Interpreter.APIKey,
		Model:       cfg.Interpreter.Model,
		Timeout:     cfg.Interpreter.Timeout,
		MaxTokens:   cfg.Interpreter.MaxTokens,
		Temperature: cfg.Interpreter.Temperature,
	}, logger)
	if cfg.Interpreter.APIKey == "" {
		logger.Warn("no API key configured, chat messages will get a fallback reply")
	}

	handler := api.New(taskService, executor, interp, validator, cfg.Server.StaticDir, logger)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("store", cfg.Store.Backend),
			zap.String("model", cfg.Interpreter.Model))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Application.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Application.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
