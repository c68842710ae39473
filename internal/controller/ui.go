// Package controller turns client state into presentation updates and
// renders them.
package controller

// Level classifies a notification.
type Level int

// Available Level values.
const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a single user-facing message about an operation outcome.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// UI defines the interface for presenting terrain state.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Notify shows the outcome of one user action.
	Notify(n Notification)
	// DisplayStatus shows the terrain status indicators.
	DisplayStatus(status StatusView) error
	// DisplayLots shows the lot summary and the per-lot table.
	DisplayLots(lots LotsView) error
}
