package internal

import "minpai/internal/domain"

// MoveSource produces the candidate cards for one ply of the search and
// names the side whose hand a chosen card is removed from.
type MoveSource interface {
	Moves(state domain.GameState) []domain.Card
	Mover() domain.Side
}

// HandMoves draws candidates from Source's hand and removes the chosen card
// from Mover's hand. Source and Mover normally agree; the legacy opponent
// model sets them apart.
type HandMoves struct {
	Source domain.Side
	Actor  domain.Side
}

// Moves returns the cards of Source's hand playable on the current card.
func (m HandMoves) Moves(state domain.GameState) []domain.Card {
	return domain.Playable(state.HandOf(m.Source), state.CurrentCard)
}

// Mover returns the side whose hand loses the played card.
func (m HandMoves) Mover() domain.Side {
	return m.Actor
}

// OpponentModel selects how the minimizing ply is simulated.
type OpponentModel string

const (
	// OpponentModelLegacy reproduces the historical engine: the opponent's
	// candidates are drawn from the AI hand while removal targets the player's
	// hand by id, so the player's hand is usually left unchanged.
	OpponentModelLegacy OpponentModel = "legacy"
	// OpponentModelOpponent draws the opponent's candidates from its own hand.
	OpponentModelOpponent OpponentModel = "opponent"
)

// AIMoves is the maximizing ply: the AI plays from its own hand.
var AIMoves MoveSource = HandMoves{Source: domain.SideAI, Actor: domain.SideAI}

// OpponentMoves returns the minimizing-ply source for model. Unknown models
// fall back to legacy.
func OpponentMoves(model OpponentModel) MoveSource {
	if model == OpponentModelOpponent {
		return HandMoves{Source: domain.SidePlayer, Actor: domain.SidePlayer}
	}
	return HandMoves{Source: domain.SideAI, Actor: domain.SidePlayer}
}
