package bot

import (
	"time"

	"minpai/internal/domain"
)

// MediumBot prunes its candidates and runs a shallow fixed-depth search.
type MediumBot struct {
	searchTier
	depth int
}

// NewMediumBot builds a MediumBot from tuning. A nil now uses time.Now.
func NewMediumBot(tuning Tuning, now func() time.Time) *MediumBot {
	return &MediumBot{
		searchTier: searchTier{
			identity: IdentityFor(LevelMedium),
			rules:    DefaultPruneRules,
			model:    tuning.OpponentModel,
			root:     tuning.SearchRoot,
			budget:   tuning.Medium.TimeBudget,
			now:      now,
		},
		depth: tuning.Medium.Depth,
	}
}

func (b *MediumBot) Decide(state domain.GameState) (Move, error) {
	ctx, move, done := b.prune(state)
	if done {
		return move, nil
	}
	return b.search(state, ctx.Candidates, b.depth), nil
}
