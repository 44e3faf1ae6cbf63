package app

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"minpai/internal/bot"
	"minpai/internal/config"
)

func TestTuningFromDefaultConfig(t *testing.T) {
	got, err := TuningFromConfig(config.Default())
	if err != nil {
		t.Fatalf("TuningFromConfig() error = %v", err)
	}
	if diff := cmp.Diff(bot.DefaultTuning, got); diff != "" {
		t.Fatalf("default tuning mismatch (-want +got):\n%s", diff)
	}
}

func TestTuningFromConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.OpponentModel = "opponent"
	cfg.Engine.SearchRoot = "pruned"
	cfg.Tiers.Hard.DeepDepth = 7
	cfg.Tiers.Medium.TimeBudget = time.Second

	got, err := TuningFromConfig(cfg)
	if err != nil {
		t.Fatalf("TuningFromConfig() error = %v", err)
	}
	if got.OpponentModel != bot.OpponentModelOpponent || got.SearchRoot != bot.SearchRootPruned || got.Hard.DeepDepth != 7 || got.Medium.TimeBudget != time.Second {
		t.Fatalf("TuningFromConfig() = %+v", got)
	}

	cfg.Engine.SearchRoot = "half"
	if _, err := TuningFromConfig(cfg); err == nil {
		t.Errorf("TuningFromConfig(searchRoot half) error = nil")
	}
	cfg.Engine.SearchRoot = "full"
	cfg.Engine.OpponentModel = "mirror"
	if _, err := TuningFromConfig(cfg); err == nil {
		t.Errorf("TuningFromConfig(mirror) error = nil")
	}
}
