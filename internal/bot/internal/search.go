package internal

import (
	"math"
	"time"

	"minpai/internal/domain"
)

// SearchResult is the outcome of one alpha-beta search.
type SearchResult struct {
	Score    float64
	BestMove *domain.Card // set only by the root ply
	Nodes    int
	TimedOut bool
}

// Searcher runs depth-limited alpha-beta minimax with the AI maximizing.
// A Searcher holds configuration only and may be shared between goroutines.
type Searcher struct {
	Evaluate func(domain.GameState) float64
	// Max and Min generate candidates for the maximizing and minimizing plies.
	Max MoveSource
	Min MoveSource
	// TimeBudget bounds a whole search; zero means no bound. The clock is read
	// before each node, so a search can overrun by one node's work.
	TimeBudget time.Duration
	Now        func() time.Time
}

// NewSearcher returns a Searcher using Evaluate, the AI's own moves for the
// maximizing ply and model for the minimizing ply.
func NewSearcher(model OpponentModel, budget time.Duration) Searcher {
	return Searcher{
		Evaluate:   Evaluate,
		Max:        AIMoves,
		Min:        OpponentMoves(model),
		TimeBudget: budget,
		Now:        time.Now,
	}
}

// Search explores state to depth plies with the AI to move.
func (s Searcher) Search(state domain.GameState, depth int) SearchResult {
	return s.SearchFrom(state, depth, nil)
}

// SearchFrom is Search with the root's candidates fixed to root. A nil root
// lets the maximizing MoveSource generate them.
func (s Searcher) SearchFrom(state domain.GameState, depth int, root []domain.Card) SearchResult {
	r := &searchRun{
		Searcher: s,
		root:     root,
	}
	if r.Evaluate == nil {
		r.Evaluate = Evaluate
	}
	if r.Max == nil {
		r.Max = AIMoves
	}
	if r.Min == nil {
		r.Min = OpponentMoves(OpponentModelLegacy)
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	r.start = r.Now()

	score, best := r.alphaBeta(state, depth, math.Inf(-1), math.Inf(1), true, true)
	return SearchResult{
		Score:    score,
		BestMove: best,
		Nodes:    r.nodes,
		TimedOut: r.timedOut,
	}
}

// searchRun carries the per-call counters so Searcher stays immutable.
type searchRun struct {
	Searcher
	root     []domain.Card
	start    time.Time
	nodes    int
	timedOut bool
}

func (r *searchRun) expired() bool {
	if r.TimeBudget <= 0 {
		return false
	}
	if r.Now().Sub(r.start) > r.TimeBudget {
		r.timedOut = true
		return true
	}
	return false
}

func terminal(state domain.GameState) bool {
	return state.AIHand.Len() == 0 || state.PlayerHand.Len() == 0 || state.Finished()
}

func (r *searchRun) alphaBeta(state domain.GameState, depth int, alpha, beta float64, maximizing, isRoot bool) (float64, *domain.Card) {
	r.nodes++

	if r.expired() || depth <= 0 || terminal(state) {
		return r.Evaluate(state), nil
	}

	source := r.Min
	if maximizing {
		source = r.Max
	}
	var moves []domain.Card
	if isRoot && r.root != nil {
		moves = r.root
	} else {
		moves = source.Moves(state)
	}
	if len(moves) == 0 {
		return r.Evaluate(state), nil
	}

	if maximizing {
		best := math.Inf(-1)
		var bestMove *domain.Card
		for i := range moves {
			child := state.Play(source.Mover(), moves[i])
			score, _ := r.alphaBeta(child, depth-1, alpha, beta, false, false)
			if score > best {
				best = score
				mv := moves[i]
				bestMove = &mv
			}
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best, bestMove
	}

	best := math.Inf(1)
	for i := range moves {
		child := state.Play(source.Mover(), moves[i])
		score, _ := r.alphaBeta(child, depth-1, alpha, beta, true, false)
		best = math.Min(best, score)
		beta = math.Min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best, nil
}
