package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/arl/statsviz"
	"github.com/spf13/cobra"

	"minpai/internal/app"
	"minpai/internal/bot"
	"minpai/internal/config"
	"minpai/internal/log"
	httpport "minpai/internal/ports/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the decision API",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg := src.Config()
		log.InitLog(cfg.App.Name, cfg.Log.Level)
		log.Info("config: %+v", cfg.Redacted())

		tuning, err := app.TuningFromConfig(cfg)
		if err != nil {
			return err
		}
		registry, err := bot.NewRegistry(tuning)
		if err != nil {
			return err
		}
		defer registry.Close()

		src.OnChange(func(c *config.Config) {
			log.SetLevel(c.Log.Level)
			t, err := app.TuningFromConfig(c)
			if err != nil {
				log.Error("config reload: %v", err)
				return
			}
			registry.Reset(t)
			log.Info("config reloaded, opponent model %s", t.OpponentModel)
		})
		src.Watch(func(err error) { log.Error("%v", err) })

		if cfg.Metrics.Port > 0 {
			go serveMetrics(cfg.Metrics.Port)
		}

		server := httpport.NewServer(
			app.NewController(registry),
			httpport.WithPort(cfg.HTTP.Port),
			httpport.WithMode(cfg.HTTP.Mode),
			httpport.WithTokens(app.NewTokenService(cfg.HTTP.JwtSecret, cfg.App.Name)),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Error("statsviz: %v", err)
		return
	}
	addr := fmt.Sprintf("0.0.0.0:%d", port)
	log.Info("metrics on http://localhost:%d/debug/statsviz/", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("metrics server: %v", err)
	}
}
