package app

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"minpai/internal/bot"
	"minpai/internal/domain"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	reg, err := bot.NewRegistry(bot.DefaultTuning, bot.WithRand(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(reg.Close)
	return NewController(reg)
}

func card(id string, c domain.Culture, ty domain.CardType) domain.Card {
	return domain.Card{ID: id, Name: id, Culture: c, Type: ty, Image: id + ".png"}
}

func request(t *testing.T, difficulty string, state domain.GameState) DecisionRequest {
	t.Helper()
	snap := EncodeSnapshot(state)
	return DecisionRequest{GameState: &snap, Difficulty: difficulty}
}

func TestDecidePlaysOnlyFollower(t *testing.T) {
	cur := card("cur", domain.CultureLongyan, domain.TypeQuote)
	state := domain.GameState{
		Phase:       domain.PhasePlaying,
		CurrentCard: &cur,
		AIHand: domain.MustHand(
			card("fz-char", domain.CultureFuzhou, domain.TypeCharacter),
			card("ly-loc", domain.CultureLongyan, domain.TypeLocation),
		),
		PlayerHand:    domain.MustHand(card("pt-char", domain.CulturePutian, domain.TypeCharacter)),
		GameStartTime: time.Unix(1700000000, 0),
	}

	c := newController(t)
	for _, level := range bot.Levels {
		res := c.Decide(context.Background(), request(t, string(level), state))
		if !res.Success {
			t.Fatalf("%s Decide() failed: %s", level, res.Error)
		}
		if res.Card == nil || res.Card.ID != "ly-loc" {
			t.Errorf("%s Card = %+v, want ly-loc", level, res.Card)
		}
		if diff := cmp.Diff(bot.IdentityFor(level), res.AIInfo); diff != "" {
			t.Errorf("%s ai_info mismatch (-want +got):\n%s", level, diff)
		}
		if res.DecisionTime < 0 {
			t.Errorf("%s DecisionTime = %v", level, res.DecisionTime)
		}
	}
}

func TestDecideNothingPlayable(t *testing.T) {
	cur := card("cur", domain.CultureLongyan, domain.TypeQuote)
	state := domain.GameState{
		CurrentCard: &cur,
		AIHand:      domain.MustHand(card("fz-char", domain.CultureFuzhou, domain.TypeCharacter)),
		PlayerHand:  domain.MustHand(card("pt-loc", domain.CulturePutian, domain.TypeLocation)),
	}
	res := newController(t).Decide(context.Background(), request(t, "hard", state))
	if !res.Success || res.Card != nil {
		t.Fatalf("Decide() = %+v, want success with no card", res)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"card":null`) {
		t.Fatalf("body = %s, want card null", body)
	}
}

func TestDecideDifficultyLabels(t *testing.T) {
	state := domain.GameState{
		AIHand:     domain.MustHand(card("a", domain.CultureFuzhou, domain.TypeQuote)),
		PlayerHand: domain.MustHand(card("p", domain.CulturePutian, domain.TypeQuote)),
	}
	tests := []struct {
		label      string
		difficulty string
		level      bot.Level
	}{
		{label: "", difficulty: "medium", level: bot.LevelMedium},
		{label: "Easy", difficulty: "Easy", level: bot.LevelEasy},
		{label: "expert", difficulty: "expert", level: bot.LevelMedium},
	}
	c := newController(t)
	for _, tt := range tests {
		res := c.Decide(context.Background(), request(t, tt.label, state))
		if !res.Success {
			t.Errorf("%q: Decide() failed: %s", tt.label, res.Error)
		}
		if res.Difficulty != tt.difficulty || res.AIInfo.Difficulty != tt.level {
			t.Errorf("%q: difficulty = %s, ai_info = %s, want %s, %s",
				tt.label, res.Difficulty, res.AIInfo.Difficulty, tt.difficulty, tt.level)
		}
	}
}

func TestDecideFailures(t *testing.T) {
	c := newController(t)

	res := c.Decide(context.Background(), DecisionRequest{Difficulty: "hard"})
	if res.Success || res.Error != ErrNoGameState.Error() || res.Difficulty != "hard" {
		t.Fatalf("Decide(no state) = %+v", res)
	}

	var snap Snapshot
	body := `{"ai_hand": [{"id": "a", "name": "a", "culture": "xiamen", "type": "quote", "image": "a"}]}`
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	res = c.Decide(context.Background(), DecisionRequest{GameState: &snap, Difficulty: "easy"})
	if res.Success || !strings.Contains(res.Error, "xiamen") {
		t.Fatalf("Decide(bad culture) = %+v", res)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res = c.Decide(ctx, DecisionRequest{GameState: &snap})
	if res.Success || res.Error != context.Canceled.Error() {
		t.Fatalf("Decide(canceled) = %+v", res)
	}
}

type panickingBrain struct{}

func (panickingBrain) Decide(domain.GameState) (bot.Move, error) { panic("out of cards") }
func (panickingBrain) Info() bot.Identity { return bot.IdentityFor(bot.LevelHard) }
func (panickingBrain) ShouldReportMinpai(int) bool { return false }

func TestDecideRecoversPanic(t *testing.T) {
	reg, err := bot.NewRegistry(bot.DefaultTuning, bot.WithFactory(
		func(bot.Level, bot.Tuning, *rand.Rand, func() time.Time) (bot.Brain, error) {
			return panickingBrain{}, nil
		}))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(reg.Close)
	c := NewController(reg)

	state := domain.GameState{
		AIHand:     domain.MustHand(card("a", domain.CultureFuzhou, domain.TypeQuote)),
		PlayerHand: domain.MustHand(card("p", domain.CulturePutian, domain.TypeQuote)),
	}
	res := c.Decide(context.Background(), request(t, "hard", state))
	if res.Success || res.Difficulty != "hard" {
		t.Fatalf("Decide() = %+v, want a hard failure", res)
	}
	if !strings.HasPrefix(res.Error, ErrBrainPanic.Error()) || !strings.Contains(res.Error, "out of cards") {
		t.Fatalf("Error = %q", res.Error)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{"success": false, "error": res.Error, "difficulty": "hard"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("panic body mismatch (-want +got):\n%s", diff)
	}
}

func TestDecisionResultJSON(t *testing.T) {
	fail, err := json.Marshal(failure("hard", errors.New("boom")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(fail, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{"success": false, "error": "boom", "difficulty": "hard"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("failure body mismatch (-want +got):\n%s", diff)
	}

	ok := DecisionResult{
		Success:      true,
		Card:         &Card{ID: "a", Name: "a", Culture: "fuzhou", Type: "quote", Image: "a.png"},
		DecisionTime: 0.25,
		Difficulty:   "easy",
		AIInfo:       bot.IdentityFor(bot.LevelEasy),
	}
	body, err := json.Marshal(ok)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back DecisionResult
	if err := json.Unmarshal(body, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(ok, back); diff != "" {
		t.Fatalf("success round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReportMinpai(t *testing.T) {
	c := newController(t)
	for n := 0; n <= 4; n++ {
		res := c.ReportMinpai(context.Background(), ReportRequest{Difficulty: "easy", OpponentHandCount: n})
		if !res.Success || res.ShouldReport != (n != 1) || res.Difficulty != "easy" {
			t.Errorf("ReportMinpai(%d) = %+v", n, res)
		}
	}
	if res := c.ReportMinpai(context.Background(), ReportRequest{OpponentHandCount: -1}); res.Success {
		t.Fatalf("ReportMinpai(-1) = %+v, want failure", res)
	}
}

func TestDecideUsesClock(t *testing.T) {
	reg, err := bot.NewRegistry(bot.DefaultTuning)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	defer reg.Close()

	now := time.Unix(1700000000, 0)
	clock := func() time.Time {
		now = now.Add(100 * time.Millisecond)
		return now
	}
	state := domain.GameState{
		AIHand:     domain.MustHand(card("a", domain.CultureFuzhou, domain.TypeQuote)),
		PlayerHand: domain.MustHand(card("p", domain.CulturePutian, domain.TypeQuote)),
	}
	res := NewController(reg, WithNow(clock)).Decide(context.Background(), request(t, "easy", state))
	if !res.Success || res.DecisionTime != 0.1 {
		t.Fatalf("Decide() = %+v, want decision_time 0.1", res)
	}
}
