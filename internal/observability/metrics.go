package observability

import (
	"fmt"
	"time"
)

// Metrics holds calculated metrics derived from the event log.
type Metrics struct {
	ScansCompleted int            `json:"scans_completed"`
	TasksCollected int            `json:"tasks_collected"`
	FilesParsed    int            `json:"files_parsed"`
	FilesSkipped   int            `json:"files_skipped"`
	SkipsByReason  map[string]int `json:"skips_by_reason"`
	EventCount     int            `json:"event_count"`
	OldestEvent    *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent    *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a new MetricsCalculator that reads from the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them into metrics.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		SkipsByReason: make(map[string]int),
	}

	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case "scan.completed":
			m.ScansCompleted++
			if n, ok := event.Data["collected"].(float64); ok {
				m.TasksCollected += int(n)
			}
		case "scan.file_parsed":
			m.FilesParsed++
		case "scan.file_skipped":
			m.FilesSkipped++
			if reason, ok := event.Data["reason"].(string); ok {
				m.SkipsByReason[reason]++
			}
		}
	}

	return m, nil
}
