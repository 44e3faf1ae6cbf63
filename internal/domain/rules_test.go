package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlayable(t *testing.T) {
	hand := MustHand(
		card("fz-loc", CultureFuzhou, TypeLocation),
		card("pt-quote", CulturePutian, TypeQuote),
		card("ly-char", CultureLongyan, TypeCharacter),
		card("np-quote", CultureNanping, TypeQuote),
	)
	fuzhouChar := card("cur", CultureFuzhou, TypeCharacter)
	putianLoc := card("cur", CulturePutian, TypeLocation)

	tests := []struct {
		name    string
		current *Card
		want    []string
	}{
		{name: "nothing in play", current: nil, want: []string{"fz-loc", "pt-quote", "ly-char", "np-quote"}},
		{name: "culture or type", current: &fuzhouChar, want: []string{"fz-loc", "ly-char"}},
		{name: "culture and type disjoint", current: &putianLoc, want: []string{"fz-loc", "pt-quote"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Playable(hand, tt.current)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Fatalf("Playable() mismatch (-want +got):\n%s", diff)
			}
			if n := CountPlayable(hand, tt.current); n != len(tt.want) {
				t.Fatalf("CountPlayable() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

// Every card of the full pool is checked against every possible card in play.
func TestPlayableMatchesDefinition(t *testing.T) {
	deck := NewDeck(1)
	hand := MustHand(deck...)
	for i := range deck {
		cur := deck[i]
		got := Playable(hand, &cur)
		var want []string
		for _, c := range deck {
			if c.Culture == cur.Culture || c.Type == cur.Type {
				want = append(want, c.ID)
			}
		}
		if diff := cmp.Diff(want, ids(got)); diff != "" {
			t.Fatalf("Playable(%s) mismatch (-want +got):\n%s", cur, diff)
		}
	}
}

func TestGameStatePlay(t *testing.T) {
	a := card("a", CultureFuzhou, TypeQuote)
	b := card("b", CulturePutian, TypeQuote)
	p := card("p", CultureLongyan, TypeLocation)
	s := GameState{
		Phase:      PhasePlaying,
		AIHand:     MustHand(a, b),
		PlayerHand: MustHand(p),
	}

	next := s.Play(SideAI, a)
	if next.CurrentCard == nil || next.CurrentCard.ID != "a" {
		t.Fatalf("CurrentCard = %v, want a", next.CurrentCard)
	}
	if next.AIHand.Len() != 1 || next.AIHand.Contains("a") {
		t.Fatalf("AIHand = %v, want [b]", ids(next.AIHand.Cards()))
	}
	if s.AIHand.Len() != 2 || s.CurrentCard != nil {
		t.Fatalf("Play mutated the receiver")
	}

	// Removing an id the side does not hold leaves its hand alone.
	other := s.Play(SidePlayer, b)
	if other.PlayerHand.Len() != 1 {
		t.Fatalf("PlayerHand.Len() = %d, want 1", other.PlayerHand.Len())
	}
}

func TestGameStateValidate(t *testing.T) {
	a := card("a", CultureFuzhou, TypeQuote)
	b := card("b", CulturePutian, TypeQuote)

	ok := GameState{Deck: []Card{b}, AIHand: MustHand(a)}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	shared := GameState{Deck: []Card{a}, AIHand: MustHand(a)}
	if err := shared.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want %v", ErrCardInTwoPlaces)
	}

	negative := GameState{Penalties: Penalties{AI: -1}}
	if err := negative.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want %v", ErrNegativePenalty)
	}
}
