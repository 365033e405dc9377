// Package core contains the business logic for tasknotes: task predicates,
// filter selection, and configuration loading.
package core

import (
	"strings"
	"time"

	"github.com/valter-silva-au/tasknotes/pkg/models"
)

// doneStatuses are the recognized "done" tokens, compared case-insensitively.
var doneStatuses = map[string]struct{}{
	"done":      {},
	"completed": {},
	"x":         {},
}

// Today returns the caller's current local calendar date. Predicates take the
// date explicitly so they stay pure and deterministic under test.
func Today() models.Date {
	return models.DateOf(time.Now())
}

// IsDone reports whether the task's status is a recognized done token.
func IsDone(t models.Task) bool {
	_, ok := doneStatuses[strings.ToLower(t.Status)]
	return ok
}

// IsPending reports whether the task is not done.
func IsPending(t models.Task) bool {
	return !IsDone(t)
}

// IsDueToday reports whether the task has a due date equal to today.
func IsDueToday(t models.Task, today models.Date) bool {
	return t.Due != nil && t.Due.Equal(today)
}

// IsOverdue reports whether the task has a due date strictly before today and
// is not done. A done task is never overdue regardless of its due date.
func IsOverdue(t models.Task, today models.Date) bool {
	return t.Due != nil && t.Due.Before(today) && !IsDone(t)
}

// IsCompletedToday reports whether the task has a completion date equal to today.
func IsCompletedToday(t models.Task, today models.Date) bool {
	return t.CompletedDate != nil && t.CompletedDate.Equal(today)
}
