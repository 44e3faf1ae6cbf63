package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"minpai/internal/app"
	"minpai/internal/bot"
	"minpai/internal/config"
	"minpai/internal/domain"
)

var (
	snapshotFile string
	difficulty   string
	seed         int64
	handSize     int
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "print the AI decision for a snapshot",
	Long: `decide reads a decision request (or a bare snapshot) from --file and
prints the response document. Without --file a game is dealt from --seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := config.Load(configFile)
		if err != nil {
			return err
		}
		tuning, err := app.TuningFromConfig(src.Config())
		if err != nil {
			return err
		}
		registry, err := bot.NewRegistry(tuning, bot.WithRand(rand.New(rand.NewSource(seed))))
		if err != nil {
			return err
		}
		defer registry.Close()

		req, err := loadRequest()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("difficulty") || req.Difficulty == "" {
			req.Difficulty = difficulty
		}

		res := app.NewController(registry).Decide(context.Background(), req)
		return printJSON(res)
	},
}

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "print a freshly dealt snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := dealGame()
		if err != nil {
			return err
		}
		snap := app.EncodeSnapshot(state)
		return printJSON(app.DecisionRequest{GameState: &snap, Difficulty: difficulty})
	},
}

func init() {
	for _, c := range []*cobra.Command{decideCmd, dealCmd} {
		c.Flags().StringVar(&difficulty, "difficulty", app.DefaultDifficulty, "easy, medium or hard")
		c.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for dealing and the easy tier")
		c.Flags().IntVar(&handSize, "hand", domain.DefaultHandSize, "cards per hand when dealing")
	}
	decideCmd.Flags().StringVar(&snapshotFile, "file", "", "decision request or snapshot JSON")
}

func dealGame() (domain.GameState, error) {
	rng := rand.New(rand.NewSource(seed))
	deck := domain.ShuffleDeck(domain.NewDeck(domain.DefaultDeckCopies), rng)
	return domain.Deal(deck, handSize, time.Now())
}

// loadRequest accepts either {"gameState": ..., "difficulty": ...} or the
// snapshot alone.
func loadRequest() (app.DecisionRequest, error) {
	if snapshotFile == "" {
		state, err := dealGame()
		if err != nil {
			return app.DecisionRequest{}, err
		}
		snap := app.EncodeSnapshot(state)
		return app.DecisionRequest{GameState: &snap}, nil
	}

	data, err := os.ReadFile(snapshotFile)
	if err != nil {
		return app.DecisionRequest{}, err
	}
	var req app.DecisionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return app.DecisionRequest{}, fmt.Errorf("parse %s: %w", snapshotFile, err)
	}
	if req.GameState == nil {
		var snap app.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return app.DecisionRequest{}, fmt.Errorf("parse %s: %w", snapshotFile, err)
		}
		req.GameState = &snap
	}
	return req, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
