package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/work-reminder/internal/app/workreminder"
	"github.com/magabrotheeeer/work-reminder/internal/config"
	"github.com/magabrotheeeer/work-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/migrations"
	"github.com/magabrotheeeer/work-reminder/internal/models"
	authservice "github.com/magabrotheeeer/work-reminder/internal/services/auth"
	"github.com/magabrotheeeer/work-reminder/internal/storage"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and run the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

var adminFlags models.RegisterRequest

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Long: `Create an admin account. Admin accounts cannot be deactivated or deleted from the API.

Examples:
  work-reminder create-admin --username root --email root@example.com --password secret12 --full-name "Site Admin"`,
	RunE: runCreateAdmin,
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminFlags.Username, "username", "", "admin username")
	f.StringVar(&adminFlags.Email, "email", "", "admin email")
	f.StringVar(&adminFlags.Password, "password", "", "admin password")
	f.StringVar(&adminFlags.FullName, "full-name", "", "admin full name")
	for _, name := range []string{"username", "email", "password", "full-name"} {
		_ = createAdminCmd.MarkFlagRequired(name)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.MustLoad(), nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Env)
	logger.Info("starting work-reminder", slog.String("env", cfg.Env), slog.String("version", version))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := workreminder.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		return err
	}
	if err = app.Run(ctx); err != nil {
		logger.Error("server stopped with error", sl.Err(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Env)

	db, err := storage.New(cmd.Context(), cfg.StorageConnectionString)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = migrations.Run(db.DB.DB, cfg.MigrationsPath); err != nil {
		logger.Error("failed to apply migrations", sl.Err(err))
		return err
	}
	logger.Info("migrations applied", slog.String("path", cfg.MigrationsPath))
	return nil
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TimeoutHTTP)
	defer cancel()

	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return err
	}
	defer db.Close()

	// Отзыв токенов CLI не нужен, поэтому кэш не подключается.
	svc := authservice.NewService(db, jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL), nil, logger)

	req := adminFlags
	req.ConfirmPassword = req.Password
	uid, err := svc.CreateAdmin(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "admin created: %s\n", uid)
	return nil
}
