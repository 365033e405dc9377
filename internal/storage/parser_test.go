package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing note: %v", err)
	}
	return path
}

func TestParseTaskFile(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "Buy milk.md", `---
status: open
priority: high
dateCreated: "2026-01-10"
tags:
  - errand
  - home
projects:
  - groceries
due: 2026-03-15
completedDate: 2026-03-14
taskSourceType: manual
---
Some note body.
`)

	task, err := ParseTaskFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Filename != "Buy milk" {
		t.Errorf("filename = %q, want %q", task.Filename, "Buy milk")
	}
	if task.Status != "open" {
		t.Errorf("status = %q, want %q", task.Status, "open")
	}
	if task.Priority != "high" {
		t.Errorf("priority = %q, want %q", task.Priority, "high")
	}
	if task.DateCreated != "2026-01-10" {
		t.Errorf("dateCreated = %q, want %q", task.DateCreated, "2026-01-10")
	}
	if len(task.Tags) != 2 || task.Tags[0] != "errand" || task.Tags[1] != "home" {
		t.Errorf("tags = %v, want [errand home]", task.Tags)
	}
	if len(task.Projects) != 1 || task.Projects[0] != "groceries" {
		t.Errorf("projects = %v, want [groceries]", task.Projects)
	}
	if task.Due == nil || task.Due.String() != "2026-03-15" {
		t.Errorf("due = %v, want 2026-03-15", task.Due)
	}
	if task.CompletedDate == nil || task.CompletedDate.String() != "2026-03-14" {
		t.Errorf("completedDate = %v, want 2026-03-14", task.CompletedDate)
	}
	if task.TaskSourceType != "manual" {
		t.Errorf("taskSourceType = %q, want %q", task.TaskSourceType, "manual")
	}
}

func TestParseTaskFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "minimal.md", "---\nstatus: open\n---\n")

	task, err := ParseTaskFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Priority != "" || task.DateCreated != "" || task.TaskSourceType != "" {
		t.Errorf("expected empty optional strings, got %+v", task)
	}
	if len(task.Tags) != 0 || len(task.Projects) != 0 {
		t.Errorf("expected empty tags/projects, got %v / %v", task.Tags, task.Projects)
	}
	if task.Due != nil || task.CompletedDate != nil {
		t.Errorf("expected absent dates, got %v / %v", task.Due, task.CompletedDate)
	}
}

func TestParseTaskFile_MissingFrontmatter(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "plain.md", "# Just a note\n\nNo metadata here.\n")

	_, err := ParseTaskFile(path)
	if !errors.Is(err, ErrMissingFrontmatter) {
		t.Fatalf("expected ErrMissingFrontmatter, got %v", err)
	}
}

func TestParseTaskFile_MissingStatus(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "nostatus.md", "---\npriority: low\n---\n")

	_, err := ParseTaskFile(path)
	if !errors.Is(err, ErrMalformedFrontmatter) {
		t.Fatalf("expected ErrMalformedFrontmatter, got %v", err)
	}
}

func TestParseTaskFile_BadDueDate(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "baddate.md", "---\nstatus: open\ndue: next tuesday\n---\n")

	_, err := ParseTaskFile(path)
	if !errors.Is(err, ErrMalformedFrontmatter) {
		t.Fatalf("expected ErrMalformedFrontmatter, got %v", err)
	}
}

func TestParseTaskFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeNote(t, dir, "badyaml.md", "---\nstatus: [unclosed\n---\n")

	_, err := ParseTaskFile(path)
	if !errors.Is(err, ErrMalformedFrontmatter) {
		t.Fatalf("expected ErrMalformedFrontmatter, got %v", err)
	}
}

func TestParseTaskFile_Unreadable(t *testing.T) {
	_, err := ParseTaskFile(filepath.Join(t.TempDir(), "does-not-exist.md"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileStem(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/vault/Buy milk.md", "Buy milk"},
		{"note.MD", "note"},
		{"/vault/.md", "unknown"},
		{"archive.tar.md", "archive.tar"},
	}
	for _, c := range cases {
		if got := fileStem(c.path); got != c.want {
			t.Errorf("fileStem(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}
