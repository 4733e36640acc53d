package core

import "fmt"

// EventType represents the kind of change seen on a log file.
type EventType string

const (
	EventWrite  EventType = "WRITE"
	EventDelete EventType = "DELETE"
)

// Event reports a change of the log file in Dir.
type Event struct {
	Type      EventType
	Dir       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Dir)
}
