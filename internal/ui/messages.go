package ui

import "time"

// scheduledMsg fires a timer or animation frame registered with the scheduler.
// Ids of stopped handles are ignored when they arrive.
type scheduledMsg struct {
	id uint64
	at time.Time
}
