package bot

import (
	"fmt"
	"time"

	"minpai/internal/bot/internal"
	"minpai/internal/domain"
)

// PruneContext holds the state for the candidate pruning pipeline.
type PruneContext struct {
	State      domain.GameState
	Candidates []domain.Card
	Now        time.Time
	// Trace records "rule before->after" for each rule that ran.
	Trace []string
}

// PruneRule is one step that may narrow the candidate list.
type PruneRule interface {
	Name() string
	Apply(ctx *PruneContext)
}

// QuickPruneRule keeps the highest-priority share of candidates.
type QuickPruneRule struct{}

func (r QuickPruneRule) Name() string { return "quick_prune" }

func (r QuickPruneRule) Apply(ctx *PruneContext) {
	ctx.Candidates = internal.QuickPrune(ctx.Candidates, ctx.State)
}

// BoundaryPruneRule cuts the list short late in long games.
type BoundaryPruneRule struct{}

func (r BoundaryPruneRule) Name() string { return "boundary_prune" }

func (r BoundaryPruneRule) Apply(ctx *PruneContext) {
	ctx.Candidates = internal.BoundaryPrune(ctx.Candidates, ctx.State, ctx.Now)
}

// DefaultPruneRules is the pipeline shared by the searching tiers.
var DefaultPruneRules = []PruneRule{QuickPruneRule{}, BoundaryPruneRule{}}

// RunPipeline applies rules in order. A rule that empties a non-empty list
// is ignored.
func RunPipeline(rules []PruneRule, ctx *PruneContext) {
	for _, rule := range rules {
		before := ctx.Candidates
		rule.Apply(ctx)
		if len(ctx.Candidates) == 0 && len(before) > 0 {
			ctx.Candidates = before
		}
		ctx.Trace = append(ctx.Trace, fmt.Sprintf("%s %d->%d", rule.Name(), len(before), len(ctx.Candidates)))
	}
}
