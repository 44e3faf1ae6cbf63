package bot

import (
	botinternal "minpai/internal/bot/internal"
	"minpai/internal/domain"
)

// Move represents the decision made by the AI.
type Move struct {
	Pass bool
	Card domain.Card

	// Diagnostics; zero when no search ran.
	Candidates int
	Depth      int
	Nodes      int
	TimedOut   bool
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	// Decide picks the AI's card for state, or passes when nothing is playable.
	Decide(state domain.GameState) (Move, error)
	// ShouldReportMinpai reports whether an opponent's "one card left" call
	// should be challenged, given the opponent's real hand size.
	ShouldReportMinpai(opponentHandCount int) bool
	Info() Identity
}

// Analysis summarizes a position for decision logs.
type Analysis = botinternal.Analysis

// AnalyzePosition profiles both hands of state.
func AnalyzePosition(state domain.GameState) Analysis {
	return botinternal.Analyze(state)
}
