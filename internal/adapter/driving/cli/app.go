package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diillson/aws-dashboard-go/internal/adapter/driving/httpapi"
	"github.com/diillson/aws-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-dashboard-go/internal/observability/metrics"
	"github.com/diillson/aws-dashboard-go/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// ServerApp represents the command-line application that runs the HTTP server.
type ServerApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	configRepo       repository.ConfigRepository
	version          string
}

// NewServerApp cria uma nova aplicação CLI.
func NewServerApp(versionStr string) *ServerApp {
	app := &ServerApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-dashboard",
		Short:   "AWS Dashboard API server",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Dashboard API version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("addr", "l", ":8000", "Address for the HTTP server to listen on")
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *ServerApp) Execute() error {
	return app.rootCmd.Execute()
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *ServerApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	addr, _ := app.rootCmd.Flags().GetString("addr")
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	logLevel, _ := app.rootCmd.Flags().GetString("log-level")

	// O arquivo de configuração, quando presente, sobrescreve os defaults das
	// flags. Credenciais nunca vêm daqui; chegam por request.
	if configFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		if cfg.Addr != "" {
			addr = cfg.Addr
		}
		if cfg.LogLevel != "" {
			logLevel = cfg.LogLevel
		}
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger.SetLevel(level)

	registry := metrics.NewRegistry()
	server := httpapi.NewServer(addr, logger, app.dashboardUseCase, registry)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.WithField("addr", addr).Info("AWS Dashboard API listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	}
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *ServerApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetConfigRepository sets the configuration repository for the CLI app.
func (app *ServerApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}
