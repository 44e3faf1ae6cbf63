package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"minpai/internal/bot"
	"minpai/internal/domain"
	"minpai/internal/log"
)

var (
	ErrNoGameState = errors.New("gameState is required")
	ErrBrainPanic  = errors.New("decision failed")
)

// Controller is the single entry point for AI decisions. It is safe for
// concurrent use.
type Controller struct {
	registry *bot.Registry
	now      func() time.Time
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithNow sets the clock used for decode defaults and decision timing.
func WithNow(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// NewController builds a Controller serving brains from registry.
func NewController(registry *bot.Registry, opts ...ControllerOption) *Controller {
	c := &Controller{registry: registry, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decide decodes the snapshot in req, asks the brain for the requested
// difficulty and packages the answer. Every failure, including a panicking
// brain, becomes a result with Success false.
func (c *Controller) Decide(ctx context.Context, req DecisionRequest) (res DecisionResult) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	trace := uuid.NewString()
	start := c.now()

	defer func() {
		if r := recover(); r != nil {
			log.Error("decision %s: panic: %v", trace, r)
			res = failure(difficulty, fmt.Errorf("%w: %v", ErrBrainPanic, r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return failure(difficulty, err)
	}
	if req.GameState == nil {
		log.Warn("decision %s: %v", trace, ErrNoGameState)
		return failure(difficulty, ErrNoGameState)
	}
	state, err := req.GameState.Decode(start)
	if err != nil {
		log.Warn("decision %s: %v", trace, err)
		return failure(difficulty, err)
	}

	brain, level := c.registry.Get(difficulty)
	if log.DebugEnabled() {
		logAnalysis(trace, level, state)
	}

	move, err := brain.Decide(state)
	if err != nil {
		log.Error("decision %s: %s: %v", trace, level, err)
		return failure(difficulty, err)
	}
	elapsed := c.now().Sub(start)

	res = DecisionResult{
		Success:      true,
		DecisionTime: elapsed.Seconds(),
		Difficulty:   difficulty,
		AIInfo:       brain.Info(),
	}
	if !move.Pass {
		wire := EncodeCard(move.Card)
		res.Card = &wire
	}
	log.Info("decision %s: level=%s card=%s candidates=%d depth=%d nodes=%d timed_out=%v took=%s",
		trace, level, cardLabel(move), move.Candidates, move.Depth, move.Nodes, move.TimedOut, elapsed)
	return res
}

// ReportMinpai answers whether the AI challenges an opponent's minpai call.
func (c *Controller) ReportMinpai(ctx context.Context, req ReportRequest) ReportResult {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	if ctx.Err() != nil || req.OpponentHandCount < 0 {
		return ReportResult{Difficulty: difficulty}
	}
	brain, _ := c.registry.Get(difficulty)
	return ReportResult{
		Success:      true,
		ShouldReport: brain.ShouldReportMinpai(req.OpponentHandCount),
		Difficulty:   difficulty,
	}
}

func failure(difficulty string, err error) DecisionResult {
	return DecisionResult{Difficulty: difficulty, Error: err.Error()}
}

func cardLabel(m bot.Move) string {
	if m.Pass {
		return "pass"
	}
	return m.Card.ID
}

func logAnalysis(trace string, level bot.Level, state domain.GameState) {
	a := bot.AnalyzePosition(state)
	log.Debug("decision %s: level=%s ai[%d] cultures{%s} types{%s} playable=%d",
		trace, level, a.AI.TotalCards, a.AI.CultureSpread(), a.AI.TypeSpread(), a.AIPlayable)
	log.Debug("decision %s: player[%d] cultures{%s} types{%s} playable=%d penalties=%d/%d minpai=%v/%v",
		trace, a.Player.TotalCards, a.Player.CultureSpread(), a.Player.TypeSpread(), a.PlayerPlayable,
		a.Penalties.AI, a.Penalties.Player, a.AICalledMinpai, a.PlayerCalledMinpai)
}
