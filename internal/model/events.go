package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted    EventType = "game_started"
	EventBuildingChosen EventType = "building_chosen"
	EventCellPlaced     EventType = "cell_placed"
	EventRoadsMerged    EventType = "roads_merged"
	EventGameEnded      EventType = "game_ended"
	EventGameReset      EventType = "game_reset"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   any // Type-specific data
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Rows       int
	Columns    int
	BuildsLeft int
}

// GameResetPayload contains data for game reset events
type GameResetPayload struct {
	Rows       int
	Columns    int
	BuildsLeft int
}

// BuildingChosenPayload contains data for building chosen events
type BuildingChosenPayload struct {
	Type CellType
}

// CellPlacedPayload contains data for cell placed events
type CellPlacedPayload struct {
	Position   Position
	Type       CellType
	Previous   CellType
	Delta      int
	BuildsLeft int
}

// RoadsMergedPayload contains data for road normalization events
type RoadsMergedPayload struct {
	Rewritten int
}

// GameEndedPayload contains data for game ended events
type GameEndedPayload struct {
	Score BoardScore
}
