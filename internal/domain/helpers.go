package domain

import (
	"errors"
	"fmt"
)

var ErrDuplicateCard = errors.New("duplicate card id")

// Hand is an immutable set of cards keyed by id. Iteration follows insertion
// order so that every consumer sees the cards in the same sequence.
type Hand struct {
	cards []Card
	index map[string]int
}

// NewHand builds a hand from cards, rejecting repeated ids.
func NewHand(cards ...Card) (Hand, error) {
	h := Hand{
		cards: make([]Card, 0, len(cards)),
		index: make(map[string]int, len(cards)),
	}
	for _, c := range cards {
		if _, ok := h.index[c.ID]; ok {
			return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c.ID)
		}
		h.index[c.ID] = len(h.cards)
		h.cards = append(h.cards, c)
	}
	return h, nil
}

// MustHand is NewHand for fixtures whose ids are known to be unique.
func MustHand(cards ...Card) Hand {
	h, err := NewHand(cards...)
	if err != nil {
		panic(err)
	}
	return h
}

// Len returns the number of cards held.
func (h Hand) Len() int { return len(h.cards) }

// Cards returns a copy of the cards in insertion order.
func (h Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Contains reports whether a card with the given id is held.
func (h Hand) Contains(id string) bool {
	_, ok := h.index[id]
	return ok
}

// Without returns a hand lacking the card with the given id. The receiver is
// left untouched; when the id is not held the receiver itself is returned.
func (h Hand) Without(id string) Hand {
	pos, ok := h.index[id]
	if !ok {
		return h
	}
	out := Hand{
		cards: make([]Card, 0, len(h.cards)-1),
		index: make(map[string]int, len(h.cards)-1),
	}
	for i, c := range h.cards {
		if i == pos {
			continue
		}
		out.index[c.ID] = len(out.cards)
		out.cards = append(out.cards, c)
	}
	return out
}

