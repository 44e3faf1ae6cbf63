package app

import (
	"minpai/internal/bot"
	"minpai/internal/config"
)

// TuningFromConfig maps the engine section of cfg onto bot tuning.
func TuningFromConfig(cfg *config.Config) (bot.Tuning, error) {
	model, err := bot.ParseOpponentModel(cfg.Engine.OpponentModel)
	if err != nil {
		return bot.Tuning{}, err
	}
	root, err := bot.ParseSearchRoot(cfg.Engine.SearchRoot)
	if err != nil {
		return bot.Tuning{}, err
	}
	hard := cfg.Tiers.Hard
	return bot.Tuning{
		OpponentModel: model,
		SearchRoot:    root,
		Medium: bot.SearchTuning{
			Depth:      cfg.Tiers.Medium.Depth,
			TimeBudget: cfg.Tiers.Medium.TimeBudget,
		},
		Hard: bot.HardTuning{
			SearchTuning: bot.SearchTuning{
				Depth:      hard.Depth,
				TimeBudget: hard.TimeBudget,
			},
			DeepDepth:    hard.DeepDepth,
			ShallowDepth: hard.ShallowDepth,
			ShallowAfter: hard.ShallowAfter,
			ShortHand:    hard.ShortHand,
		},
	}, nil
}
