package config

const (
	// DefaultBoardSyncInterval is how often the boards are reconciled when
	// BOARD_SYNC_INTERVAL is not set.
	DefaultBoardSyncInterval = "6h"
)
