package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"

	"minpai/internal/app"
)

// TokenResponse carries a bearer token for the HTTP decision API.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// rpcServiceToken issues a token whose subject is the calling user.
func (m *Module) rpcServiceToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("User session required", codeUnauthenticated)
	}
	if !m.tokens.Enabled() {
		logger.Warn("ai_service_token: %v", app.ErrTokenConfig)
		return "", runtime.NewError("Token service unavailable", codeUnavailable)
	}

	token, err := m.tokens.Issue(userID, app.DefaultTokenTTL)
	if err != nil {
		logger.Error("Failed to issue service token for %s: %v", userID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	b, _ := json.Marshal(TokenResponse{Token: token, ExpiresIn: int64(app.DefaultTokenTTL.Seconds())})
	return string(b), nil
}
