package cli

import (
	"github.com/valter-silva-au/tasknotes/internal/observability"
	"github.com/valter-silva-au/tasknotes/internal/storage"
)

// Service instances, set during app initialization in app.go.
var (
	// VaultPath is the configured vault root, used when neither the --path
	// flag nor TN_VAULT is set.
	VaultPath string

	Scanner storage.Scanner

	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
)
