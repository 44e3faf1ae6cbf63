package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"

	"minpai/internal/app"
)

// Module holds the services behind the RPCs.
type Module struct {
	controller *app.Controller
	tokens     *app.TokenService
}

func NewModule(controller *app.Controller, tokens *app.TokenService) *Module {
	return &Module{controller: controller, tokens: tokens}
}

// Register registers every RPC of the module.
func (m *Module) Register(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcAIDecision, m.rpcAIDecision); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcReportMinpai, m.rpcReportMinpai); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcServiceToken, m.rpcServiceToken)
}

// rpcAIDecision answers with the decision document in both the success and
// the failure case; only an unreadable payload is an RPC error.
//
// Payload: {"gameState": {...}, "difficulty": "easy|medium|hard"}
func (m *Module) rpcAIDecision(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req app.DecisionRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	res := m.controller.Decide(ctx, req)
	if !res.Success {
		logger.WithField("difficulty", res.Difficulty).Warn("ai_decision failed: %s", res.Error)
	}

	b, err := json.Marshal(res)
	if err != nil {
		logger.Error("ai_decision marshal: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(b), nil
}

// Payload: {"difficulty": "...", "opponent_hand_count": n}
func (m *Module) rpcReportMinpai(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req app.ReportRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if req.OpponentHandCount < 0 {
		return "", runtime.NewError("opponent_hand_count must not be negative", codeInvalidArgument)
	}

	b, _ := json.Marshal(m.controller.ReportMinpai(ctx, req))
	return string(b), nil
}
