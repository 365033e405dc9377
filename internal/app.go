// Package internal provides the App struct that wires all components of
// tasknotes together and initializes the CLI layer.
package internal

import (
	"os"

	"github.com/valter-silva-au/tasknotes/internal/cli"
	"github.com/valter-silva-au/tasknotes/internal/core"
	"github.com/valter-silva-au/tasknotes/internal/observability"
	"github.com/valter-silva-au/tasknotes/internal/storage"
	"github.com/valter-silva-au/tasknotes/pkg/models"
)

// App holds all service dependencies for tasknotes.
type App struct {
	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.GlobalConfig

	// Storage layer
	Scanner storage.Scanner

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components of tasknotes. Configuration comes
// from .tasknotesrc in the current or home directory; a missing file yields
// defaults.
func NewApp() (*App, error) {
	app := &App{}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager()
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		return nil, err
	}
	app.Config = globalCfg

	// --- Observability ---
	// The event log is opt-in: scans write nothing unless a path is set.
	eventLogPath := globalCfg.EventLogPath
	if env := os.Getenv("TN_EVENT_LOG"); env != "" {
		eventLogPath = env
	}
	if eventLogPath != "" {
		app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
		if err != nil {
			// Non-fatal: disable event logging if the log can't be created.
			app.EventLog = nil
		}
	}
	if app.EventLog != nil {
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}

	// --- Storage layer ---
	app.Scanner = storage.NewScanner(storage.ScannerOptions{
		ArchiveSibling: globalCfg.ArchiveSibling,
		Events:         scanLogger(app.EventLog),
	})

	// --- Wire CLI layer ---
	cli.VaultPath = globalCfg.VaultPath
	cli.Scanner = app.Scanner
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// scanLogger adapts an EventLog to the scanner's logger interface, mapping a
// nil log to a nil interface so the scanner skips logging entirely.
func scanLogger(log observability.EventLog) storage.ScanEventLogger {
	if log == nil {
		return nil
	}
	return log
}
