package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/valter-silva-au/tasknotes/pkg/models"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontmatter marks a note without a complete frontmatter block.
	ErrMissingFrontmatter = errors.New("missing frontmatter")
	// ErrMalformedFrontmatter marks a block that decodes but violates the
	// schema: absent status or an unparseable calendar date.
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")
)

// ParseTaskFile reads a note file and decodes its frontmatter into a Task.
// The task's Filename is set from the file's base name with the extension
// stripped; frontmatter never supplies it.
func ParseTaskFile(path string) (*models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	block, ok := ExtractFrontmatter(string(data))
	if !ok {
		return nil, fmt.Errorf("%w in %s", ErrMissingFrontmatter, path)
	}

	var task models.Task
	if err := yaml.Unmarshal([]byte(block), &task); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrMalformedFrontmatter, path, err)
	}
	if task.Status == "" {
		return nil, fmt.Errorf("%w in %s: status is required", ErrMalformedFrontmatter, path)
	}

	task.Filename = fileStem(path)
	return &task, nil
}

// fileStem returns the base name without its extension, or "unknown" when
// nothing remains.
func fileStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "unknown"
	}
	return stem
}
