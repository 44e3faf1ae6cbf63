package bot

import (
	"time"

	"minpai/internal/bot/internal"
	"minpai/internal/domain"
)

// HardBot prunes like MediumBot and searches deeper, adapting the depth to
// the hand sizes and to the time already spent.
type HardBot struct {
	searchTier
	tuning HardTuning
}

// NewHardBot builds a HardBot from tuning. A nil now uses time.Now.
func NewHardBot(tuning Tuning, now func() time.Time) *HardBot {
	return &HardBot{
		searchTier: searchTier{
			identity: IdentityFor(LevelHard),
			rules:    DefaultPruneRules,
			model:    tuning.OpponentModel,
			root:     tuning.SearchRoot,
			budget:   tuning.Hard.TimeBudget,
			now:      now,
		},
		tuning: tuning.Hard,
	}
}

func (b *HardBot) Decide(state domain.GameState) (Move, error) {
	start := b.clock()
	ctx, move, done := b.prune(state)
	if done {
		return move, nil
	}

	phase := internal.DetectPhase(state, b.tuning.ShortHand)
	depth := b.tuning.DepthFor(phase, b.clock().Sub(start))
	return b.search(state, ctx.Candidates, depth), nil
}
