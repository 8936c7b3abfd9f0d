package constants

// Centralized constants for routes and API messages. Environment
// variable names live on the env-tagged structs in cmd/.

// Routes used by the ops router
const (
	RouteAPIPrefix    = "/api"
	RouteVersion      = "/version"
	RouteSpecies      = "/species"
	RouteMoves        = "/moves"
	RouteBattles      = "/battles"
	RouteLeaderboard  = "/leaderboard"
	RoutePlayerByName = "/players/:name"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidLimit           = "Invalid limit"
	ErrNameRequired           = "name is required"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchPlayer      = "Failed to fetch player stats"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldPlayer   = "player"
	LogFieldOpponent = "opponent"
	LogFieldAddr     = "addr"
	LogFieldMode     = "mode"
	LogFieldSeed     = "seed"
	LogFieldTurn     = "turn"
	LogFieldWinner   = "winner"
	LogFieldName     = "name"
	LogFieldKey      = "key"
	LogFieldMessage  = "message"
)
