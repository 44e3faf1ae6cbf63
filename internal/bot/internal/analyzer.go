package internal

import (
	"fmt"
	"strings"

	"minpai/internal/domain"
)

// Analysis is a read-only summary of a position, used for decision logs.
type Analysis struct {
	AI     HandProfile
	Player HandProfile

	AIPlayable     int
	PlayerPlayable int

	Penalties domain.Penalties

	AILastCard     bool
	PlayerLastCard bool

	AICalledMinpai     bool
	PlayerCalledMinpai bool
}

// Analyze profiles both hands and counts their playable cards against the
// card in play.
func Analyze(state domain.GameState) Analysis {
	ai := ProfileHand(state.AIHand)
	player := ProfileHand(state.PlayerHand)
	return Analysis{
		AI:                 ai,
		Player:             player,
		AIPlayable:         domain.CountPlayable(state.AIHand, state.CurrentCard),
		PlayerPlayable:     domain.CountPlayable(state.PlayerHand, state.CurrentCard),
		Penalties:          state.Penalties,
		AILastCard:         ai.TotalCards == 1,
		PlayerLastCard:     player.TotalCards == 1,
		AICalledMinpai:     state.AICalledMinpai,
		PlayerCalledMinpai: state.PlayerCalledMinpai,
	}
}

// CultureSpread renders non-zero culture counts, e.g. "fuzhou=2 putian=1".
func (p HandProfile) CultureSpread() string {
	var parts []string
	for _, c := range domain.AllCultures {
		if n := p.Cultures[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c, n))
		}
	}
	return strings.Join(parts, " ")
}

// TypeSpread renders non-zero type counts, e.g. "character=1 quote=3".
func (p HandProfile) TypeSpread() string {
	var parts []string
	for _, t := range domain.AllCardTypes {
		if n := p.Types[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", t, n))
		}
	}
	return strings.Join(parts, " ")
}
