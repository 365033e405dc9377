package cli

import (
	"encoding/json"
	"fmt"

	"github.com/valter-silva-au/tasknotes/pkg/models"
)

// renderTasks pretty-prints tasks as a JSON array to stdout. An empty set
// renders as [] rather than null.
func renderTasks(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting tasks as JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
