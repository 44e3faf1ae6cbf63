package bot

import (
	"time"

	"minpai/internal/bot/internal"
	"minpai/internal/domain"
)

// reportMinpai is shared by every tier: a "one card left" call is
// challenged unless the caller really holds exactly one card.
func reportMinpai(opponentHandCount int) bool {
	return opponentHandCount != 1
}

// candidates returns the AI's playable cards for state.
func candidates(state domain.GameState) []domain.Card {
	return domain.Playable(state.AIHand, state.CurrentCard)
}

// searchTier is the common body of the searching tiers.
type searchTier struct {
	identity Identity
	rules    []PruneRule
	model    internal.OpponentModel
	root     SearchRoot
	budget   time.Duration
	now      func() time.Time
}

func (s *searchTier) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *searchTier) Info() Identity { return s.identity }

func (s *searchTier) ShouldReportMinpai(n int) bool { return reportMinpai(n) }

// prune runs the pipeline; done is set when the decision is already made.
func (s *searchTier) prune(state domain.GameState) (ctx PruneContext, move Move, done bool) {
	cands := candidates(state)
	switch len(cands) {
	case 0:
		return ctx, Move{Pass: true}, true
	case 1:
		return ctx, Move{Card: cands[0], Candidates: 1}, true
	}

	ctx = PruneContext{State: state, Candidates: cands, Now: s.clock()}
	RunPipeline(s.rules, &ctx)
	if len(ctx.Candidates) == 1 {
		return ctx, Move{Card: ctx.Candidates[0], Candidates: 1}, true
	}
	return ctx, Move{}, false
}

// search runs the tier's search to depth. The root expands every playable
// card unless the tier restricts it to the pruned candidates. If the search
// ends without a best move the first pruned candidate is played.
func (s *searchTier) search(state domain.GameState, pruned []domain.Card, depth int) Move {
	searcher := internal.NewSearcher(s.model, s.budget)
	searcher.Now = s.clock

	var res internal.SearchResult
	width := len(candidates(state))
	if s.root == SearchRootPruned {
		res = searcher.SearchFrom(state, depth, pruned)
		width = len(pruned)
	} else {
		res = searcher.Search(state, depth)
	}

	move := Move{
		Card:       pruned[0],
		Candidates: width,
		Depth:      depth,
		Nodes:      res.Nodes,
		TimedOut:   res.TimedOut,
	}
	if res.BestMove != nil {
		move.Card = *res.BestMove
	}
	return move
}
