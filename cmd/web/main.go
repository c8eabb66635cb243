package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/de-tools/boxoffice-atlas/pkg/runtime/logging"
	"github.com/de-tools/boxoffice-atlas/pkg/server"
	"github.com/de-tools/boxoffice-atlas/pkg/services/config"
	"github.com/de-tools/boxoffice-atlas/pkg/services/dates"
	"github.com/de-tools/boxoffice-atlas/pkg/services/workflow"
	"github.com/de-tools/boxoffice-atlas/pkg/store/kobis"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve a read-only preview of the weekly box office report",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a config file")
	rootCmd.Flags().String("addr", config.DefaultAddr, "Address to listen on")
	rootCmd.Flags().Duration("timeout", config.DefaultTimeout, "Deadline for KOBIS requests")
	rootCmd.Flags().String("log-level", "info", "Log level")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, closer := logging.New(cfg.Log, os.Stderr)
	defer closer.Close()
	ctx := logger.WithContext(cmd.Context())

	client, err := kobis.NewClient(cfg.BaseURL, cfg.APIKey, kobis.WithTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("failed to create KOBIS client: %w", err)
	}

	source := workflow.NewSource(client, dates.NewSelector(nil), cfg.TargetDate)

	webAPI := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Fetcher:           source,
			IncludeRankChange: cfg.IncludeRankChange,
			Logger:            logger,
		},
	})

	logger.Info().Msgf("starting preview server on %s", cfg.Server.Addr)
	return webAPI.Start(ctx)
}
