package app

import (
	"errors"
	"fmt"
	"math"
	"time"

	"minpai/internal/domain"
)

var ErrMissingField = errors.New("missing required field")

// DecodeError reports a snapshot that could not be turned into a game state.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Card is the wire form of a card.
type Card struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Culture string `json:"culture"`
	Type    string `json:"type"`
	Image   string `json:"image"`
}

// CardInput is a card as received; every field is required.
type CardInput struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	Culture *string `json:"culture"`
	Type    *string `json:"type"`
	Image   *string `json:"image"`
}

// Snapshot is the game state document sent by the hosting service.
type Snapshot struct {
	GamePhase          string         `json:"game_phase"`
	CurrentPlayer      string         `json:"current_player"`
	CurrentCard        *CardInput     `json:"current_card"`
	Deck               []CardInput    `json:"deck"`
	PlayerHand         []CardInput    `json:"player_hand"`
	AIHand             []CardInput    `json:"ai_hand"`
	PlayerCalledMinpai bool           `json:"player_called_minpai"`
	AICalledMinpai     bool           `json:"ai_called_minpai"`
	Penalties          map[string]int `json:"penalties"`
	RoundCount         *int           `json:"round_count"`
	GameStartTime      *float64       `json:"game_start_time"`
	Winner             *string        `json:"winner"`
	GameEndTime        *float64       `json:"game_end_time"`
}

// EncodeCard renders c in wire form.
func EncodeCard(c domain.Card) Card {
	return Card{
		ID:      c.ID,
		Name:    c.Name,
		Culture: c.Culture.String(),
		Type:    c.Type.String(),
		Image:   c.Image,
	}
}

// Decode validates in and builds the domain card.
func (in CardInput) Decode() (domain.Card, error) {
	missing := func(name string) error {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	switch {
	case in.ID == nil:
		return domain.Card{}, missing("id")
	case in.Name == nil:
		return domain.Card{}, missing("name")
	case in.Culture == nil:
		return domain.Card{}, missing("culture")
	case in.Type == nil:
		return domain.Card{}, missing("type")
	case in.Image == nil:
		return domain.Card{}, missing("image")
	}

	culture, err := domain.ParseCulture(*in.Culture)
	if err != nil {
		return domain.Card{}, err
	}
	cardType, err := domain.ParseCardType(*in.Type)
	if err != nil {
		return domain.Card{}, err
	}
	return domain.Card{
		ID:      *in.ID,
		Name:    *in.Name,
		Culture: culture,
		Type:    cardType,
		Image:   *in.Image,
	}, nil
}

func decodeCards(field string, in []CardInput) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(in))
	for i, ci := range in {
		c, err := ci.Decode()
		if err != nil {
			return nil, &DecodeError{Field: fmt.Sprintf("%s[%d]", field, i), Err: err}
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeHand(field string, in []CardInput) (domain.Hand, error) {
	cards, err := decodeCards(field, in)
	if err != nil {
		return domain.Hand{}, err
	}
	hand, err := domain.NewHand(cards...)
	if err != nil {
		return domain.Hand{}, &DecodeError{Field: field, Err: err}
	}
	return hand, nil
}

// EpochToTime converts fractional epoch seconds.
func EpochToTime(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second)))
}

// TimeToEpoch converts t to fractional epoch seconds.
func TimeToEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// Decode builds the domain state. Absent optional fields take defaults:
// phase "playing", current player "human", round 1, start time now and no
// penalties.
func (s Snapshot) Decode(now time.Time) (domain.GameState, error) {
	state := domain.GameState{
		Phase:              domain.PhasePlaying,
		CurrentPlayer:      domain.CurrentPlayerHuman,
		PlayerCalledMinpai: s.PlayerCalledMinpai,
		AICalledMinpai:     s.AICalledMinpai,
		RoundCount:         1,
		GameStartTime:      now,
	}
	if s.GamePhase != "" {
		state.Phase = domain.Phase(s.GamePhase)
	}
	if s.CurrentPlayer != "" {
		state.CurrentPlayer = s.CurrentPlayer
	}
	if s.RoundCount != nil {
		state.RoundCount = *s.RoundCount
	}
	if s.GameStartTime != nil {
		state.GameStartTime = EpochToTime(*s.GameStartTime)
	}
	if s.Winner != nil {
		state.Winner = *s.Winner
	}
	if s.GameEndTime != nil {
		end := EpochToTime(*s.GameEndTime)
		state.GameEndTime = &end
	}

	if s.CurrentCard != nil {
		c, err := s.CurrentCard.Decode()
		if err != nil {
			return domain.GameState{}, &DecodeError{Field: "current_card", Err: err}
		}
		state.CurrentCard = &c
	}

	var err error
	if state.Deck, err = decodeCards("deck", s.Deck); err != nil {
		return domain.GameState{}, err
	}
	if state.PlayerHand, err = decodeHand("player_hand", s.PlayerHand); err != nil {
		return domain.GameState{}, err
	}
	if state.AIHand, err = decodeHand("ai_hand", s.AIHand); err != nil {
		return domain.GameState{}, err
	}

	state.Penalties = domain.Penalties{
		Player: s.Penalties["player"],
		AI:     s.Penalties["ai"],
	}

	if err := state.Validate(); err != nil {
		return domain.GameState{}, &DecodeError{Field: "gameState", Err: err}
	}
	return state, nil
}

// EncodeSnapshot is the inverse of Decode, used by tooling that builds
// requests from a dealt game.
func EncodeSnapshot(state domain.GameState) Snapshot {
	encode := func(cards []domain.Card) []CardInput {
		out := make([]CardInput, 0, len(cards))
		for _, c := range cards {
			out = append(out, cardInput(c))
		}
		return out
	}

	round := state.RoundCount
	snap := Snapshot{
		GamePhase:          string(state.Phase),
		CurrentPlayer:      state.CurrentPlayer,
		Deck:               encode(state.Deck),
		PlayerHand:         encode(state.PlayerHand.Cards()),
		AIHand:             encode(state.AIHand.Cards()),
		PlayerCalledMinpai: state.PlayerCalledMinpai,
		AICalledMinpai:     state.AICalledMinpai,
		Penalties:          map[string]int{"player": state.Penalties.Player, "ai": state.Penalties.AI},
		RoundCount:         &round,
	}
	if !state.GameStartTime.IsZero() {
		start := TimeToEpoch(state.GameStartTime)
		snap.GameStartTime = &start
	}
	if state.CurrentCard != nil {
		ci := cardInput(*state.CurrentCard)
		snap.CurrentCard = &ci
	}
	if state.Winner != "" {
		w := state.Winner
		snap.Winner = &w
	}
	if state.GameEndTime != nil {
		end := TimeToEpoch(*state.GameEndTime)
		snap.GameEndTime = &end
	}
	return snap
}

func cardInput(c domain.Card) CardInput {
	wire := EncodeCard(c)
	return CardInput{
		ID:      &wire.ID,
		Name:    &wire.Name,
		Culture: &wire.Culture,
		Type:    &wire.Type,
		Image:   &wire.Image,
	}
}
