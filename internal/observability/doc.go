// Package observability provides event logging and metrics calculation for
// vault scans. It uses structured JSON Lines (JSONL) for event persistence
// and derives metrics on-demand from the event log. Event logging is opt-in:
// scans write nothing unless an event log path is configured.
package observability
