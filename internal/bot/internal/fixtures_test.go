package internal

import (
	"math/rand"
	"time"

	"minpai/internal/domain"
)

func card(id string, c domain.Culture, t domain.CardType) domain.Card {
	return domain.Card{ID: id, Name: id, Culture: c, Type: t, Image: id + ".png"}
}

func ids(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

// randomState deals ai and player cards from a shuffled two-copy deck and
// puts the next card in play when withCurrent is set.
func randomState(rng *rand.Rand, ai, player int, withCurrent bool) domain.GameState {
	deck := domain.ShuffleDeck(domain.NewDeck(2), rng)
	state := domain.GameState{
		Phase:         domain.PhasePlaying,
		AIHand:        domain.MustHand(deck[:ai]...),
		PlayerHand:    domain.MustHand(deck[ai : ai+player]...),
		Deck:          deck[ai+player+1:],
		RoundCount:    1,
		GameStartTime: time.Unix(1700000000, 0),
	}
	if withCurrent {
		cur := deck[ai+player]
		state.CurrentCard = &cur
	}
	return state
}
