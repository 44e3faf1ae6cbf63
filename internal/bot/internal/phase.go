package internal

import "minpai/internal/domain"

// GamePhase describes the current strategic stage of a game.
type GamePhase int

const (
	// PhaseOpening indicates nothing is in play yet.
	PhaseOpening GamePhase = iota
	// PhaseMid indicates both hands are still above the endgame threshold.
	PhaseMid
	// PhaseEnd indicates either hand is at or below the endgame threshold.
	PhaseEnd
)

func (p GamePhase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseMid:
		return "mid"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// DetectPhase infers the phase from hand sizes. shortHand is the hand size at
// or below which the game counts as an endgame.
func DetectPhase(state domain.GameState, shortHand int) GamePhase {
	if state.AIHand.Len() <= shortHand || state.PlayerHand.Len() <= shortHand {
		return PhaseEnd
	}
	if state.CurrentCard == nil {
		return PhaseOpening
	}
	return PhaseMid
}
