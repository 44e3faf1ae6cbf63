package internal

import (
	"testing"

	"minpai/internal/domain"
)

func TestAnalyze(t *testing.T) {
	cur := card("cur", domain.CultureFuzhou, domain.TypeQuote)
	state := domain.GameState{
		CurrentCard: &cur,
		AIHand: domain.MustHand(
			card("a", domain.CultureFuzhou, domain.TypeCharacter),
			card("b", domain.CulturePutian, domain.TypeCharacter),
			card("c", domain.CulturePutian, domain.TypeQuote),
		),
		PlayerHand:         domain.MustHand(card("p", domain.CultureLongyan, domain.TypeLocation)),
		Penalties:          domain.Penalties{Player: 1},
		PlayerCalledMinpai: true,
	}

	got := Analyze(state)
	if got.AIPlayable != 2 || got.PlayerPlayable != 0 {
		t.Fatalf("playable ai=%d player=%d, want 2 and 0", got.AIPlayable, got.PlayerPlayable)
	}
	if got.AILastCard || !got.PlayerLastCard {
		t.Fatalf("last card flags ai=%v player=%v", got.AILastCard, got.PlayerLastCard)
	}
	if !got.PlayerCalledMinpai || got.AICalledMinpai {
		t.Fatalf("minpai flags not copied: %+v", got)
	}
	if s := got.AI.CultureSpread(); s != "fuzhou=1 putian=2" {
		t.Fatalf("CultureSpread() = %q", s)
	}
	if s := got.AI.TypeSpread(); s != "character=2 quote=1" {
		t.Fatalf("TypeSpread() = %q", s)
	}
	if s := ProfileHand(domain.MustHand()).CultureSpread(); s != "" {
		t.Fatalf("empty CultureSpread() = %q", s)
	}
}
