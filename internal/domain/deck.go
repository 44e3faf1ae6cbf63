package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrDeckTooSmall = errors.New("deck too small to deal")

// NewDeck returns copies cards of every culture/type combination, ordered by
// culture, then type, then copy number. Ids have the form "fuzhou-quote-2".
func NewDeck(copies int) []Card {
	deck := make([]Card, 0, NumCultures*NumCardTypes*copies)
	for _, c := range AllCultures {
		for _, t := range AllCardTypes {
			for n := 1; n <= copies; n++ {
				id := fmt.Sprintf("%s-%s-%d", c, t, n)
				deck = append(deck, Card{
					ID:      id,
					Name:    id,
					Culture: c,
					Type:    t,
					Image:   "/static/cards/" + id + ".png",
				})
			}
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal starts a fresh game: handSize cards to each side, one face-up card in
// play, the rest left in the deck.
func Deal(deck []Card, handSize int, now time.Time) (GameState, error) {
	need := 2*handSize + 1
	if handSize < 1 || len(deck) < need {
		return GameState{}, fmt.Errorf("%w: have %d, need %d", ErrDeckTooSmall, len(deck), need)
	}

	player, err := NewHand(deck[:handSize]...)
	if err != nil {
		return GameState{}, err
	}
	ai, err := NewHand(deck[handSize : 2*handSize]...)
	if err != nil {
		return GameState{}, err
	}
	current := deck[2*handSize]

	rest := make([]Card, len(deck)-need)
	copy(rest, deck[need:])

	return GameState{
		Phase:         PhasePlaying,
		CurrentPlayer: CurrentPlayerAI,
		CurrentCard:   &current,
		Deck:          rest,
		PlayerHand:    player,
		AIHand:        ai,
		RoundCount:    1,
		GameStartTime: now,
	}, nil
}
