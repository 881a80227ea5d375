package model

import "time"

// GameState represents the current phase of a session
type GameState string

const (
	GameStateBuilding GameState = "building" // Placements allowed
	GameStateEnded    GameState = "ended"    // Board scored, waiting for restart
)

// Game is a single play-through on one grid
type Game struct {
	Grid       *Grid
	State      GameState
	Selected   CellType
	BuildLimit int // Budget the session started with
	BuildsLeft int

	// Set once the game has ended
	FinalScore *BoardScore

	StartedAt time.Time
	UpdatedAt time.Time
}

// IsOver returns true once the board has been scored
func (g *Game) IsOver() bool {
	return g.State == GameStateEnded
}

// BuildsUsed returns how many builds have been spent this session
func (g *Game) BuildsUsed() int {
	return g.BuildLimit - g.BuildsLeft
}
