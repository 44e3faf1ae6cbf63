package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativePenalty = errors.New("penalty must be non-negative")
	ErrCardInTwoPlaces = errors.New("card held in more than one place")
)

// Phase represents the lifecycle stage of a minpai game.
type Phase string

const (
	// PhaseWaiting is the pre-deal state.
	PhaseWaiting Phase = "waiting"
	// PhasePlaying is the active game state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseFinished is the state after a winner is known.
	PhaseFinished Phase = "finished"
)

// Side identifies one of the two seats at the table.
type Side int

const (
	SidePlayer Side = iota
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Penalties counts penalty cards drawn by each side.
type Penalties struct {
	Player int
	AI     int
}

// GameState is a read-only snapshot of a game handed to the AI for a single
// decision. Successor states produced by Play share the deck slice and never
// write to it.
type GameState struct {
	Phase         Phase
	CurrentPlayer string
	CurrentCard   *Card
	Deck          []Card
	PlayerHand    Hand
	AIHand        Hand

	PlayerCalledMinpai bool
	AICalledMinpai     bool

	Penalties  Penalties
	RoundCount int

	GameStartTime time.Time
	Winner        string
	GameEndTime   *time.Time
}

// HandOf returns the hand held by side.
func (s GameState) HandOf(side Side) Hand {
	if side == SideAI {
		return s.AIHand
	}
	return s.PlayerHand
}

// Finished reports whether the game has ended.
func (s GameState) Finished() bool {
	return s.Phase == PhaseFinished
}

// Play returns the hypothetical successor in which card is moved into play
// and removed, by id, from side's hand. If side does not hold the card its
// hand is left as it was.
func (s GameState) Play(side Side, card Card) GameState {
	next := s
	c := card
	next.CurrentCard = &c
	if side == SideAI {
		next.AIHand = s.AIHand.Without(card.ID)
	} else {
		next.PlayerHand = s.PlayerHand.Without(card.ID)
	}
	return next
}

// Validate checks the structural invariants of a snapshot: penalties are
// non-negative and no card id appears in more than one of deck, player hand
// and AI hand.
func (s GameState) Validate() error {
	if s.Penalties.Player < 0 || s.Penalties.AI < 0 {
		return fmt.Errorf("%w: player=%d ai=%d", ErrNegativePenalty, s.Penalties.Player, s.Penalties.AI)
	}

	seen := make(map[string]string, len(s.Deck)+s.PlayerHand.Len()+s.AIHand.Len())
	mark := func(where string, cards []Card) error {
		for _, c := range cards {
			if prev, ok := seen[c.ID]; ok {
				return fmt.Errorf("%w: %s in %s and %s", ErrCardInTwoPlaces, c.ID, prev, where)
			}
			seen[c.ID] = where
		}
		return nil
	}
	if err := mark("deck", s.Deck); err != nil {
		return err
	}
	if err := mark("player_hand", s.PlayerHand.Cards()); err != nil {
		return err
	}
	return mark("ai_hand", s.AIHand.Cards())
}
