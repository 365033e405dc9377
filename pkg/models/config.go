package models

// GlobalConfig holds settings read from the optional .tasknotesrc file.
// All fields have working defaults so the tool runs without any config.
type GlobalConfig struct {
	// VaultPath is the default TaskNotes folder, used when --path is not given.
	VaultPath string
	// ArchiveSibling controls whether a sibling Archive directory next to the
	// scanned folder is also collected.
	ArchiveSibling bool
	// EventLogPath enables the JSONL scan event log when non-empty. Disabled
	// by default so a plain run writes nothing.
	EventLogPath string
}
