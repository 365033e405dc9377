package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/tasknotes/internal/cli"
)

// chdir switches the working directory for the test so NewApp reads config
// from a controlled location.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting cwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
}

func TestNewApp_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TN_EVENT_LOG", "")

	app, err := NewApp()
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if app.Scanner == nil {
		t.Error("expected scanner to be initialized")
	}
	if app.EventLog != nil {
		t.Error("expected event log disabled by default")
	}
	if app.MetricsCalc != nil {
		t.Error("expected metrics calculator disabled when event log is off")
	}
	if cli.Scanner == nil {
		t.Error("expected CLI scanner to be wired")
	}
}

func TestNewApp_ReadsConfig(t *testing.T) {
	dir := t.TempDir()
	content := "vault:\n  path: /notes/vault\nscan:\n  archive_sibling: false\n"
	if err := os.WriteFile(filepath.Join(dir, ".tasknotesrc"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TN_EVENT_LOG", "")

	app, err := NewApp()
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if app.Config.VaultPath != "/notes/vault" {
		t.Errorf("vault path = %q, want /notes/vault", app.Config.VaultPath)
	}
	if app.Config.ArchiveSibling {
		t.Error("expected archive sibling scanning disabled")
	}
	if cli.VaultPath != "/notes/vault" {
		t.Errorf("CLI vault path = %q, want /notes/vault", cli.VaultPath)
	}
}

func TestNewApp_EventLogFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	logPath := filepath.Join(t.TempDir(), "events.jsonl")
	t.Setenv("TN_EVENT_LOG", logPath)

	app, err := NewApp()
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if app.EventLog == nil {
		t.Fatal("expected event log enabled via TN_EVENT_LOG")
	}
	defer app.EventLog.Close()
	if app.MetricsCalc == nil {
		t.Error("expected metrics calculator enabled with event log")
	}
}

func TestNewApp_MalformedConfigFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".tasknotesrc"), []byte("vault: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	if _, err := NewApp(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
