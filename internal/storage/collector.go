package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/valter-silva-au/tasknotes/pkg/models"
)

// ScanEventLogger receives diagnostic events emitted during collection.
// Implementations must tolerate being called for every file in the vault.
type ScanEventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// Scanner collects Task records from a vault directory tree.
type Scanner interface {
	Collect(root string) ([]models.Task, error)
}

// ScannerOptions configures vault collection.
type ScannerOptions struct {
	// ArchiveSibling also scans a directory named Archive next to the root,
	// for vault layouts where archived notes live outside the scanned folder.
	ArchiveSibling bool
	// Events, when non-nil, receives scan.file_parsed, scan.file_skipped,
	// and scan.completed events.
	Events ScanEventLogger
}

type vaultScanner struct {
	opts ScannerOptions
}

// NewScanner creates a Scanner with the given options.
func NewScanner(opts ScannerOptions) Scanner {
	return &vaultScanner{opts: opts}
}

// Collect walks root recursively, following symlinks, and parses every file
// with a case-insensitive .md extension. Files that fail to parse are skipped;
// one malformed note must not block listing all others. Records are
// deduplicated by (filename, dateCreated), first occurrence wins. A missing
// or non-directory root yields an empty result, not an error.
func (s *vaultScanner) Collect(root string) ([]models.Task, error) {
	var (
		tasks   []models.Task
		seen    = make(map[models.Identity]struct{})
		visited = make(map[string]struct{})
		skipped int
	)

	s.scanDir(root, visited, seen, &tasks, &skipped)

	if s.opts.ArchiveSibling {
		archive := filepath.Join(filepath.Dir(root), "Archive")
		if filepath.Clean(archive) != filepath.Clean(root) {
			s.scanDir(archive, visited, seen, &tasks, &skipped)
		}
	}

	s.logEvent("scan.completed", map[string]any{
		"root":      root,
		"collected": len(tasks),
		"skipped":   skipped,
	})
	return tasks, nil
}

// scanDir recursively collects tasks from one directory. visited guards
// against symlink cycles; entries are processed in os.ReadDir's sorted order
// so traversal is deterministic for a given filesystem state.
func (s *vaultScanner) scanDir(dir string, visited map[string]struct{}, seen map[models.Identity]struct{}, tasks *[]models.Task, skipped *int) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if _, ok := visited[resolved]; ok {
		return
	}
	visited[resolved] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks, so linked directories and files are treated
		// like their targets.
		target, err := os.Stat(path)
		if err != nil {
			continue
		}
		if target.IsDir() {
			s.scanDir(path, visited, seen, tasks, skipped)
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}

		task, err := ParseTaskFile(path)
		if err != nil {
			*skipped++
			s.logEvent("scan.file_skipped", map[string]any{
				"path":   path,
				"reason": err.Error(),
			})
			continue
		}

		id := task.Identity()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		*tasks = append(*tasks, *task)
		s.logEvent("scan.file_parsed", map[string]any{"path": path})
	}
}

func (s *vaultScanner) logEvent(eventType string, data map[string]any) {
	if s.opts.Events == nil {
		return
	}
	_ = s.opts.Events.LogEvent(eventType, data) // Diagnostics only; never fails a scan.
}
