package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marketsynth/gends/internal/appconfig"
	"github.com/marketsynth/gends/internal/httpapi"
	"github.com/marketsynth/gends/internal/logging"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP/WebSocket façade over the generator engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel == "debug")
	if err != nil {
		return err
	}
	defer log.Sync()

	registry := httpapi.NewRegistry()
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Registry: registry,
		Logger:   log,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	log.Infow("server listening", "addr", cfg.HTTPAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
