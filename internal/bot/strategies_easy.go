package bot

import (
	"math/rand"
	"sync"
	"time"

	"minpai/internal/domain"
)

// EasyBot never searches: it follows the card in play by culture, then by
// type, and otherwise picks at random.
type EasyBot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEasyBot returns an EasyBot drawing from rng; nil seeds from the clock.
func NewEasyBot(rng *rand.Rand) *EasyBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &EasyBot{rng: rng}
}

func (b *EasyBot) Decide(state domain.GameState) (Move, error) {
	cands := candidates(state)
	switch len(cands) {
	case 0:
		return Move{Pass: true}, nil
	case 1:
		return Move{Card: cands[0], Candidates: 1}, nil
	}

	if cur := state.CurrentCard; cur != nil {
		for _, c := range cands {
			if c.Culture == cur.Culture {
				return Move{Card: c, Candidates: len(cands)}, nil
			}
		}
		for _, c := range cands {
			if c.Type == cur.Type {
				return Move{Card: c, Candidates: len(cands)}, nil
			}
		}
	}

	b.mu.Lock()
	i := b.rng.Intn(len(cands))
	b.mu.Unlock()
	return Move{Card: cands[i], Candidates: len(cands)}, nil
}

func (b *EasyBot) ShouldReportMinpai(n int) bool { return reportMinpai(n) }

func (b *EasyBot) Info() Identity { return IdentityFor(LevelEasy) }
