package nakama

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"minpai/internal/app"
	"minpai/internal/bot"
	"minpai/internal/config"
)

// InitModule loads the engine configuration named by the runtime env and
// registers the decision RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	src, err := config.Load(env[EnvConfigFile])
	if err != nil {
		logger.Error("Failed to load minpai config: %v", err)
		return err
	}
	cfg := src.Config()

	tuning, err := app.TuningFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("minpai tuning: %w", err)
	}
	registry, err := bot.NewRegistry(tuning)
	if err != nil {
		return err
	}

	secret := env[EnvJwtSecret]
	if secret == "" {
		secret = cfg.HTTP.JwtSecret
	}
	m := NewModule(app.NewController(registry), app.NewTokenService(secret, cfg.App.Name))
	if err := m.Register(initializer); err != nil {
		registry.Close()
		return err
	}

	logger.WithField("opponent_model", cfg.Engine.OpponentModel).Info("Minpai Go module loaded.")
	return nil
}
