package internal

import (
	"math"
	"time"

	"minpai/internal/domain"
)

const (
	// QuickPruneMin is the candidate count at or below which QuickPrune keeps
	// everything.
	QuickPruneMin = 3
	// QuickPruneRatio is the share of candidates QuickPrune keeps.
	QuickPruneRatio = 0.6
	// QuickPruneFloor is the least QuickPrune ever keeps.
	QuickPruneFloor = 2

	// BoundaryHandSize and BoundaryCandidates disable BoundaryPrune for short
	// hands and short candidate lists.
	BoundaryHandSize   = 2
	BoundaryCandidates = 2
	// BoundaryElapsed is how long after game start BoundaryPrune starts cutting.
	BoundaryElapsed = 800 * time.Millisecond
	// BoundaryKeep is how many candidates survive a boundary cut.
	BoundaryKeep = 3
)

// QuickPrune keeps the highest-priority share of candidates. Lists of
// QuickPruneMin or fewer are returned unchanged.
func QuickPrune(candidates []domain.Card, state domain.GameState) []domain.Card {
	if len(candidates) <= QuickPruneMin {
		return candidates
	}

	scored := BuildScoredMoves(candidates, state)
	keep := QuickPruneKeep(len(candidates))

	out := make([]domain.Card, 0, keep)
	for _, sm := range scored[:keep] {
		out = append(out, sm.Card)
	}
	return out
}

// QuickPruneKeep is max(QuickPruneFloor, round(QuickPruneRatio*n)) capped at n.
func QuickPruneKeep(n int) int {
	keep := int(math.Round(QuickPruneRatio * float64(n)))
	if keep < QuickPruneFloor {
		keep = QuickPruneFloor
	}
	if keep > n {
		keep = n
	}
	return keep
}

// BoundaryPrune truncates candidates to the first BoundaryKeep once the game
// has run longer than BoundaryElapsed at now. Short hands and short lists
// pass through.
func BoundaryPrune(candidates []domain.Card, state domain.GameState, now time.Time) []domain.Card {
	if state.AIHand.Len() <= BoundaryHandSize || len(candidates) <= BoundaryCandidates {
		return candidates
	}
	if now.Sub(state.GameStartTime) > BoundaryElapsed && len(candidates) > BoundaryKeep {
		return candidates[:BoundaryKeep]
	}
	return candidates
}
