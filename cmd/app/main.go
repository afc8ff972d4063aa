package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatchdesk/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	envFile string
	port    string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dispatchdesk",
		Short:         "Delivery dispatch desk manifest service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")
	root.AddCommand(serveCmd())
	return root
}

func serveCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the manifest API",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if c.Flags().Changed("port") {
				config.HTTPPort = port
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config)
		},
	}
	c.Flags().StringVar(&port, "port", "", "HTTP port, overrides HTTP_PORT")
	return c
}

func serve(ctx context.Context, config cmd.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		return err
	}
	if app.ClipboardCommand() == "" {
		logger.WarnContext(ctx, "No clipboard tool found, clipboard reads will fail")
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateEcho()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.InfoContext(shutdownCtx, "Shutting down")
	return e.Shutdown(shutdownCtx)
}
