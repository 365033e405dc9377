package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDashboardModel_InitialState(t *testing.T) {
	m := newDashboardModel()
	if !m.loading {
		t.Error("expected model to start in loading state")
	}
	if m.activePanel != panelSummary {
		t.Errorf("expected summary panel active, got %d", m.activePanel)
	}
}

func TestDashboardModel_TabCyclesPanels(t *testing.T) {
	m := newDashboardModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(dashboardModel)
	if m.activePanel != panelDueToday {
		t.Errorf("expected due-today panel after tab, got %d", m.activePanel)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(dashboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(dashboardModel)
	if m.activePanel != panelSummary {
		t.Errorf("expected wrap back to summary panel, got %d", m.activePanel)
	}
}

func TestDashboardModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		m := newDashboardModel()
		var msg tea.KeyMsg
		switch key {
		case "q":
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("expected quit command for key %s", key)
		}
	}
}

func TestDashboardModel_DataLoaded(t *testing.T) {
	m := newDashboardModel()
	m.width = 80
	m.height = 24

	msg := dataLoadedMsg{
		summary: &vaultSummary{
			total:    5,
			pending:  3,
			dueToday: 1,
			overdue:  1,
			done:     2,
		},
		dueToday: []taskRow{{filename: "due-today", due: "2026-08-29"}},
		overdue:  []taskRow{{filename: "overdue", priority: "high", due: "2026-08-28"}},
	}

	next, _ := m.Update(msg)
	m = next.(dashboardModel)

	if m.loading {
		t.Error("expected loading to be false after data loaded")
	}

	view := m.View()
	if !strings.Contains(view, "Summary") {
		t.Error("expected view to contain Summary panel")
	}
	if !strings.Contains(view, "due-today") {
		t.Error("expected view to contain due-today task")
	}
	if !strings.Contains(view, "Total: 5") {
		t.Error("expected view to contain total count")
	}
}

func TestDashboardModel_LoadError(t *testing.T) {
	m := newDashboardModel()
	m.width = 80
	m.height = 24

	next, _ := m.Update(dataLoadedMsg{err: errors.New("vault unreadable")})
	m = next.(dashboardModel)

	view := m.View()
	if !strings.Contains(view, "vault unreadable") {
		t.Error("expected view to show load error")
	}
}

func TestDashboardLoadData(t *testing.T) {
	setupCommandTest(t, &mockScanner{tasks: testVault()})

	msg := loadData()
	loaded, ok := msg.(dataLoadedMsg)
	if !ok {
		t.Fatalf("expected dataLoadedMsg, got %T", msg)
	}
	if loaded.err != nil {
		t.Fatalf("unexpected error: %v", loaded.err)
	}
	if loaded.summary.total != 4 {
		t.Errorf("expected total 4, got %d", loaded.summary.total)
	}
	if loaded.summary.pending != 3 {
		t.Errorf("expected 3 pending, got %d", loaded.summary.pending)
	}
	if loaded.summary.dueToday != 1 || loaded.summary.overdue != 1 || loaded.summary.completedToday != 1 {
		t.Errorf("unexpected summary: %+v", loaded.summary)
	}
	if len(loaded.dueToday) != 1 || loaded.dueToday[0].filename != "due-today" {
		t.Errorf("unexpected due-today rows: %+v", loaded.dueToday)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-very-long-filename", 10, "a-very-..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
