// Package mcp provides an MCP (Model Context Protocol) server that exposes
// tasknotes queries as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/valter-silva-au/tasknotes/internal/core"
	"github.com/valter-silva-au/tasknotes/internal/observability"
	"github.com/valter-silva-au/tasknotes/internal/storage"
	"github.com/valter-silva-au/tasknotes/pkg/models"
)

// Server wraps the vault scanner and exposes task queries as MCP tools.
type Server struct {
	server      *gomcp.Server
	scanner     storage.Scanner
	vaultPath   string
	metricsCalc observability.MetricsCalculator
}

// NewServer creates a new MCP server scanning the given vault path.
// metricsCalc may be nil if the event log is disabled.
func NewServer(scanner storage.Scanner, vaultPath string, metricsCalc observability.MetricsCalculator, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		scanner:     scanner,
		vaultPath:   vaultPath,
		metricsCalc: metricsCalc,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "tn", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listTasksInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"filter tasks by state (all, today, overdue, pending, completed-today). Defaults to all."`
}

type taskOutput struct {
	Filename      string   `json:"filename"`
	Status        string   `json:"status"`
	Priority      string   `json:"priority,omitempty"`
	DateCreated   string   `json:"dateCreated,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Projects      []string `json:"projects,omitempty"`
	Due           string   `json:"due,omitempty"`
	CompletedDate string   `json:"completedDate,omitempty"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type countTasksInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"filter tasks by state (today, overdue, pending, completed-today). Defaults to pending."`
}

type countTasksOutput struct {
	Count int `json:"count"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	ScansCompleted int            `json:"scans_completed"`
	TasksCollected int            `json:"tasks_collected"`
	FilesParsed    int            `json:"files_parsed"`
	FilesSkipped   int            `json:"files_skipped"`
	SkipsByReason  map[string]int `json:"skips_by_reason"`
	EventCount     int            `json:"event_count"`
	OldestEvent    string         `json:"oldest_event,omitempty"`
	NewestEvent    string         `json:"newest_event,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks from the vault with an optional state filter. Returns task records parsed from note frontmatter.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "count_tasks",
		Description: "Count tasks in the vault matching a state filter. Defaults to counting pending tasks.",
	}, s.handleCountTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get aggregated scan metrics from the event log, including parsed and skipped file counts.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	filter := input.Filter
	if filter == "" {
		filter = "all"
	}

	pred, err := filterPredicate(filter)
	if err != nil {
		return errorResult(err.Error()), listTasksOutput{}, nil
	}

	tasks, err := s.scanner.Collect(s.vaultPath)
	if err != nil {
		return errorResult(fmt.Sprintf("scanning vault: %s", err)), listTasksOutput{}, nil
	}

	matched := core.Filter(tasks, pred)
	out := listTasksOutput{
		Tasks: make([]taskOutput, len(matched)),
		Count: len(matched),
	}
	for i, t := range matched {
		out.Tasks[i] = taskToOutput(t)
	}

	return nil, out, nil
}

func (s *Server) handleCountTasks(_ context.Context, _ *gomcp.CallToolRequest, input countTasksInput) (*gomcp.CallToolResult, countTasksOutput, error) {
	filter := input.Filter
	if filter == "" {
		filter = "pending"
	}

	pred, err := filterPredicate(filter)
	if err != nil {
		return errorResult(err.Error()), countTasksOutput{}, nil
	}

	tasks, err := s.scanner.Collect(s.vaultPath)
	if err != nil {
		return errorResult(fmt.Sprintf("scanning vault: %s", err)), countTasksOutput{}, nil
	}

	return nil, countTasksOutput{Count: core.Count(tasks, pred)}, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (event log may be disabled)"), emptyMetricsOutput(), nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "7d"
	}

	sinceTime, err := parseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		ScansCompleted: metrics.ScansCompleted,
		TasksCollected: metrics.TasksCollected,
		FilesParsed:    metrics.FilesParsed,
		FilesSkipped:   metrics.FilesSkipped,
		SkipsByReason:  metrics.SkipsByReason,
		EventCount:     metrics.EventCount,
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

// --- Helpers ---

// filterPredicate maps a filter name to the matching task predicate, binding
// date-relative filters to the current local date.
func filterPredicate(filter string) (core.Predicate, error) {
	today := core.Today()
	switch filter {
	case "all":
		return core.All, nil
	case "today":
		return core.DueToday(today), nil
	case "overdue":
		return core.Overdue(today), nil
	case "pending":
		return core.IsPending, nil
	case "completed-today":
		return core.CompletedToday(today), nil
	default:
		return nil, fmt.Errorf("invalid filter %q: must be one of all, today, overdue, pending, completed-today", filter)
	}
}

func taskToOutput(t models.Task) taskOutput {
	out := taskOutput{
		Filename:    t.Filename,
		Status:      t.Status,
		Priority:    t.Priority,
		DateCreated: t.DateCreated,
		Tags:        t.Tags,
		Projects:    t.Projects,
	}
	if t.Due != nil {
		out.Due = t.Due.String()
	}
	if t.CompletedDate != nil {
		out.CompletedDate = t.CompletedDate.String()
	}
	return out
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{
		SkipsByReason: make(map[string]int),
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseSince parses a human-friendly duration string like "7d", "30d", or "24h"
// into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}
