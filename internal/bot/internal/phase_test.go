package internal

import (
	"math/rand"
	"testing"
)

func TestDetectPhase(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	tests := []struct {
		name        string
		ai, player  int
		withCurrent bool
		want        GamePhase
	}{
		{name: "opening", ai: 7, player: 7, withCurrent: false, want: PhaseOpening},
		{name: "mid", ai: 6, player: 5, withCurrent: true, want: PhaseMid},
		{name: "ai short", ai: 3, player: 7, withCurrent: true, want: PhaseEnd},
		{name: "player short", ai: 7, player: 2, withCurrent: false, want: PhaseEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := randomState(rng, tt.ai, tt.player, tt.withCurrent)
			if got := DetectPhase(state, 3); got != tt.want {
				t.Fatalf("DetectPhase = %v, want %v", got, tt.want)
			}
		})
	}
}
