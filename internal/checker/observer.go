package checker

import "time"

// EventType represents the phases of a structure check
type EventType string

const (
	EventCheckStart   EventType = "check_start"
	EventTableChecked EventType = "table_checked"
	EventTableSkipped EventType = "table_skipped"
	EventCheckEnd     EventType = "check_end"
)

// Event represents a lifecycle event in a check run
type Event struct {
	Type       EventType   // Type of event
	RunID      string      // Identifies the check run for tracing
	Collection string      // Name of the collection being checked
	Timestamp  time.Time   // When the event occurred
	Data       interface{} // Phase-specific data (table count, missing properties, totals)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
