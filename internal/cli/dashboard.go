package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/valter-silva-au/tasknotes/internal/core"
	"github.com/valter-silva-au/tasknotes/pkg/models"
)

// Dashboard panel indices.
const (
	panelSummary = iota
	panelDueToday
	panelOverdue
	panelCount
)

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	summary  *vaultSummary
	dueToday []taskRow
	overdue  []taskRow

	// State.
	loading bool
	err     error
}

type vaultSummary struct {
	total          int
	pending        int
	dueToday       int
	overdue        int
	completedToday int
	done           int
}

type taskRow struct {
	filename string
	priority string
	due      string
}

// dataLoadedMsg carries loaded data back to the model.
type dataLoadedMsg struct {
	summary  *vaultSummary
	dueToday []taskRow
	overdue  []taskRow
	err      error
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	dueTodayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel() dashboardModel {
	return dashboardModel{
		activePanel: panelSummary,
		loading:     true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.summary = msg.summary
		m.dueToday = msg.dueToday
		m.overdue = msg.overdue
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" tn Dashboard ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading vault...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	summaryPanel := m.renderSummaryPanel()
	dueTodayPanel := m.renderTaskPanel("Due Today", m.dueToday, dueTodayStyle)
	overduePanel := m.renderTaskPanel("Overdue", m.overdue, overdueStyle)

	// Available width for panels after accounting for margins.
	availableWidth := m.width - 2

	var body string
	if availableWidth > 120 {
		// Horizontal layout: three columns.
		colWidth := availableWidth / 3
		summaryPanel = m.applyPanelStyle(panelSummary, summaryPanel, colWidth-4)
		dueTodayPanel = m.applyPanelStyle(panelDueToday, dueTodayPanel, colWidth-4)
		overduePanel = m.applyPanelStyle(panelOverdue, overduePanel, colWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, summaryPanel, dueTodayPanel, overduePanel)
	} else {
		// Vertical layout: stacked.
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		summaryPanel = m.applyPanelStyle(panelSummary, summaryPanel, panelWidth)
		dueTodayPanel = m.applyPanelStyle(panelDueToday, dueTodayPanel, panelWidth)
		overduePanel = m.applyPanelStyle(panelOverdue, overduePanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, summaryPanel, dueTodayPanel, overduePanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderSummaryPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Summary"))
	b.WriteString("\n")

	if m.summary == nil || m.summary.total == 0 {
		b.WriteString("  No tasks found.")
		return b.String()
	}

	s := m.summary
	lines := []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"Pending", s.pending, pendingStyle},
		{"Due today", s.dueToday, dueTodayStyle},
		{"Overdue", s.overdue, overdueStyle},
		{"Done today", s.completedToday, completedStyle},
		{"Done", s.done, completedStyle},
	}

	for _, l := range lines {
		b.WriteString(l.style.Render(fmt.Sprintf("  %-14s %d", l.label, l.value)))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  Total: %d", s.total))

	return b.String()
}

func (m dashboardModel) renderTaskPanel(header string, rows []taskRow, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString("  Nothing here.")
		return b.String()
	}

	for _, r := range rows {
		line := fmt.Sprintf("  %-30s %s", truncate(r.filename, 30), r.due)
		if r.priority != "" {
			line = fmt.Sprintf("  [%s] %-24s %s", r.priority, truncate(r.filename, 24), r.due)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  Total: %d", len(rows)))

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func loadData() tea.Msg {
	tasks, err := collectTasks()
	if err != nil {
		return dataLoadedMsg{err: err}
	}

	today := core.Today()
	summary := &vaultSummary{total: len(tasks)}
	var dueToday, overdue []taskRow

	for _, t := range tasks {
		if core.IsDone(t) {
			summary.done++
		} else {
			summary.pending++
		}
		if core.IsDueToday(t, today) {
			summary.dueToday++
			dueToday = append(dueToday, toRow(t))
		}
		if core.IsOverdue(t, today) {
			summary.overdue++
			overdue = append(overdue, toRow(t))
		}
		if core.IsCompletedToday(t, today) {
			summary.completedToday++
		}
	}

	return dataLoadedMsg{
		summary:  summary,
		dueToday: dueToday,
		overdue:  overdue,
	}
}

func toRow(t models.Task) taskRow {
	row := taskRow{filename: t.Filename, priority: t.Priority}
	if t.Due != nil {
		row.due = t.Due.String()
	}
	return row
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard for the vault",
	Long: `Launch an interactive terminal dashboard summarizing the vault: pending,
due-today, overdue, and completed-today counts with task lists.

Navigate between panels with Tab, refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scanner == nil {
			return fmt.Errorf("scanner not initialized")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
