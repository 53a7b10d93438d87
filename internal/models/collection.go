package models

// Collection names one of the fixed, independently persisted trade ledgers.
// Collections are siblings: a record id is only unique within its own
// collection, and moving a record between collections assigns a fresh id.
type Collection string

const (
	// Dashboard holds the real-account trades shown on the main dashboard.
	Dashboard Collection = "dashboard"
	// Demo holds demo-account trades.
	Demo Collection = "demo"
	// Tools is the trade-tools workspace.
	Tools Collection = "tools"
	// Daily holds daily-challenge trades.
	Daily Collection = "daily"
	// Analytics holds analytics-only trades.
	Analytics Collection = "analytics"
	// Backtesting holds backtesting trades.
	Backtesting Collection = "backtesting"
)

// Collections returns every known collection, in display order.
func Collections() []Collection {
	return []Collection{Dashboard, Demo, Tools, Daily, Analytics, Backtesting}
}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	switch c {
	case Dashboard, Demo, Tools, Daily, Analytics, Backtesting:
		return true
	}
	return false
}
