package app

import (
	"encoding/json"

	"minpai/internal/bot"
)

// DecisionRequest asks for the AI's next card.
type DecisionRequest struct {
	GameState  *Snapshot `json:"gameState"`
	Difficulty string    `json:"difficulty"`
}

// DecisionResult is the answer to a DecisionRequest. Failures carry only
// Error and Difficulty on the wire.
type DecisionResult struct {
	Success      bool
	Card         *Card
	DecisionTime float64
	Difficulty   string
	AIInfo       bot.Identity
	Error        string
}

type decisionSuccess struct {
	Success      bool         `json:"success"`
	Card         *Card        `json:"card"`
	DecisionTime float64      `json:"decision_time"`
	Difficulty   string       `json:"difficulty"`
	AIInfo       bot.Identity `json:"ai_info"`
}

type decisionFailure struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Difficulty string `json:"difficulty"`
}

func (r DecisionResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(decisionFailure{
			Error:      r.Error,
			Difficulty: r.Difficulty,
		})
	}
	return json.Marshal(decisionSuccess{
		Success:      true,
		Card:         r.Card,
		DecisionTime: r.DecisionTime,
		Difficulty:   r.Difficulty,
		AIInfo:       r.AIInfo,
	})
}

func (r *DecisionResult) UnmarshalJSON(data []byte) error {
	var wire struct {
		decisionSuccess
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*r = DecisionResult{
		Success:      wire.Success,
		Card:         wire.Card,
		DecisionTime: wire.DecisionTime,
		Difficulty:   wire.Difficulty,
		AIInfo:       wire.AIInfo,
		Error:        wire.Error,
	}
	return nil
}

// ReportRequest asks whether the opponent's "one card left" call should be
// challenged.
type ReportRequest struct {
	Difficulty        string `json:"difficulty"`
	OpponentHandCount int    `json:"opponent_hand_count"`
}

type ReportResult struct {
	Success      bool   `json:"success"`
	ShouldReport bool   `json:"should_report"`
	Difficulty   string `json:"difficulty"`
}
