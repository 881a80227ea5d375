package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrInvalidColumns  = errors.New("columns must be positive")
	ErrEmptyGrid       = errors.New("grid needs at least one cell")
	ErrNilCell         = errors.New("cell handle is nil")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrRaggedLayout    = errors.New("layout rows have mismatched widths")

	// Catalogue errors
	ErrUnknownCellType = errors.New("unknown cell type")

	// Session errors
	ErrNoGame         = errors.New("no game in progress")
	ErrGameOver       = errors.New("game has already ended")
	ErrPlacementLimit = errors.New("placement limit reached for cell type")
	ErrNoSelection    = errors.New("no building selected")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
