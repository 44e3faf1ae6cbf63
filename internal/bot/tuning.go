package bot

import (
	"fmt"
	"time"

	botinternal "minpai/internal/bot/internal"
)

// OpponentModel selects whose cards the minimizing plies draw from.
type OpponentModel = botinternal.OpponentModel

const (
	// OpponentModelLegacy replays the AI's own hand on the player's plies.
	OpponentModelLegacy = botinternal.OpponentModelLegacy
	// OpponentModelOpponent draws the player's plies from the player's hand.
	OpponentModelOpponent = botinternal.OpponentModelOpponent
)

// ParseOpponentModel validates a configured model name.
func ParseOpponentModel(name string) (OpponentModel, error) {
	switch m := OpponentModel(name); m {
	case OpponentModelLegacy, OpponentModelOpponent:
		return m, nil
	default:
		return "", fmt.Errorf("unknown opponent model: %q", name)
	}
}

// SearchRoot selects which cards the root of a tier's search expands.
type SearchRoot string

const (
	// SearchRootFull expands every playable card; pruning only decides the
	// single-candidate shortcut.
	SearchRootFull SearchRoot = "full"
	// SearchRootPruned expands only the candidates that survived pruning.
	SearchRootPruned SearchRoot = "pruned"
)

// ParseSearchRoot validates a configured root scope.
func ParseSearchRoot(name string) (SearchRoot, error) {
	switch r := SearchRoot(name); r {
	case SearchRootFull, SearchRootPruned:
		return r, nil
	default:
		return "", fmt.Errorf("unknown search root: %q", name)
	}
}

// SearchTuning fixes the search of a tier.
type SearchTuning struct {
	Depth      int
	TimeBudget time.Duration
}

// HardTuning adapts the search depth to the position. Depth is the base;
// DeepDepth applies when either hand has ShortHand cards or fewer;
// ShallowDepth applies when pruning alone took longer than ShallowAfter.
type HardTuning struct {
	SearchTuning
	DeepDepth    int
	ShallowDepth int
	ShallowAfter time.Duration
	ShortHand    int
}

// Tuning holds every tier's parameters.
type Tuning struct {
	OpponentModel OpponentModel
	SearchRoot    SearchRoot
	Medium        SearchTuning
	Hard          HardTuning
}

// DefaultTuning matches the historical engine.
var DefaultTuning = Tuning{
	OpponentModel: OpponentModelLegacy,
	SearchRoot:    SearchRootFull,
	Medium: SearchTuning{
		Depth:      2,
		TimeBudget: 800 * time.Millisecond,
	},
	Hard: HardTuning{
		SearchTuning: SearchTuning{
			Depth:      4,
			TimeBudget: 1500 * time.Millisecond,
		},
		DeepDepth:    5,
		ShallowDepth: 2,
		ShallowAfter: 500 * time.Millisecond,
		ShortHand:    3,
	},
}

// DepthFor picks the hard tier's depth for phase given the time already
// spent on this decision.
func (t HardTuning) DepthFor(phase botinternal.GamePhase, spent time.Duration) int {
	if phase == botinternal.PhaseEnd {
		return t.DeepDepth
	}
	if spent > t.ShallowAfter {
		return t.ShallowDepth
	}
	return t.Depth
}
