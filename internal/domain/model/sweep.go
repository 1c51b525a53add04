package model

import "time"

// CategoryResult is the outcome of one category in a sweep.
type CategoryResult struct {
	Category  string
	Success   bool
	Count     int
	Headlines []string
	Err       error
}

// SweepReport collects the per-category results of one sweep, in input order.
type SweepReport struct {
	StartedAt time.Time
	Duration  time.Duration
	Results   []CategoryResult
}

// Succeeded returns how many categories reported success.
func (r SweepReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil && res.Success {
			n++
		}
	}
	return n
}

// NotificationField is a titled section of a notification.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic digest for downstream notifiers.
type Notification struct {
	Title       string
	Description string
	Fields      []NotificationField
	Timestamp   time.Time
}
