package core

import "github.com/valter-silva-au/tasknotes/pkg/models"

// Predicate is a filter over task records evaluated against a fixed date.
type Predicate func(models.Task) bool

// Filter returns the tasks satisfying the predicate, preserving order. The
// result is always non-nil so an empty selection renders as [] rather than null.
func Filter(tasks []models.Task, pred Predicate) []models.Task {
	result := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			result = append(result, t)
		}
	}
	return result
}

// All is the identity predicate.
func All(models.Task) bool { return true }

// DueToday binds IsDueToday to a date.
func DueToday(today models.Date) Predicate {
	return func(t models.Task) bool { return IsDueToday(t, today) }
}

// Overdue binds IsOverdue to a date.
func Overdue(today models.Date) Predicate {
	return func(t models.Task) bool { return IsOverdue(t, today) }
}

// CompletedToday binds IsCompletedToday to a date.
func CompletedToday(today models.Date) Predicate {
	return func(t models.Task) bool { return IsCompletedToday(t, today) }
}

// CountSelector holds the boolean flags of the count command. The flags are
// independent on the command line but resolve to exactly one predicate.
type CountSelector struct {
	Today          bool
	Overdue        bool
	CompletedToday bool
}

// Predicate resolves the selector with fixed precedence: due-today, then
// overdue, then completed-today, then the pending default.
func (s CountSelector) Predicate(today models.Date) Predicate {
	switch {
	case s.Today:
		return DueToday(today)
	case s.Overdue:
		return Overdue(today)
	case s.CompletedToday:
		return CompletedToday(today)
	default:
		return IsPending
	}
}

// Count returns the number of tasks satisfying the predicate.
func Count(tasks []models.Task, pred Predicate) int {
	n := 0
	for _, t := range tasks {
		if pred(t) {
			n++
		}
	}
	return n
}
