package internal

import (
	"sort"

	"minpai/internal/domain"
)

// Priority bonuses used to rank candidates before search.
const (
	PriorityCultureMatch = 15.0
	PriorityTypeMatch    = 12.0
	PriorityOnlyCulture  = 8.0
	PriorityOnlyType     = 6.0
	PriorityShortHand    = 10.0

	// ShortHandSize is the AI hand size at or below which every candidate
	// receives PriorityShortHand.
	ShortHandSize = 3
)

// ScoredMove is a candidate card with its priority score.
type ScoredMove struct {
	Card  domain.Card
	Score float64
}

// PriorityScore ranks card as a reply to the current card. With nothing in
// play every card scores zero.
func PriorityScore(card domain.Card, state domain.GameState, profile HandProfile) float64 {
	current := state.CurrentCard
	if current == nil {
		return 0
	}

	score := 0.0
	if card.Culture == current.Culture {
		score += PriorityCultureMatch
	}
	if card.Type == current.Type {
		score += PriorityTypeMatch
	}
	if profile.OnlyOfCulture(card) {
		score += PriorityOnlyCulture
	}
	if profile.OnlyOfType(card) {
		score += PriorityOnlyType
	}
	if profile.TotalCards <= ShortHandSize {
		score += PriorityShortHand
	}
	return score
}

// BuildScoredMoves scores each candidate against the AI hand and sorts them
// by descending score. Ties keep their input order.
func BuildScoredMoves(candidates []domain.Card, state domain.GameState) []ScoredMove {
	profile := ProfileHand(state.AIHand)
	scored := make([]ScoredMove, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, ScoredMove{Card: c, Score: PriorityScore(c, state, profile)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
