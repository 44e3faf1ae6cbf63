package nakama

const (
	// RpcAIDecision returns the AI's next card for a game snapshot.
	RpcAIDecision = "ai_decision"
	// RpcReportMinpai answers whether the AI challenges a "one card left" call.
	RpcReportMinpai = "ai_report_minpai"
	// RpcServiceToken issues a bearer token for the HTTP decision API.
	RpcServiceToken = "ai_service_token"
)

// Runtime env keys read in InitModule.
const (
	EnvConfigFile = "minpai_config"
	EnvJwtSecret  = "minpai_jwt_secret"
)

// gRPC status codes used with runtime.NewError.
const (
	codeInvalidArgument = 3
	codeUnauthenticated = 16
	codeUnavailable     = 14
	codeInternal        = 13
)
