// Package models defines the data types shared across the tasknotes system:
// the Task record parsed from note frontmatter and the calendar Date type
// used for due and completion dates.
package models

// Task represents one note file's metadata. It is constructed once per
// successfully parsed file and never mutated afterwards.
//
// The yaml tags name the frontmatter keys; the json tags name the external
// fields used for output. Filename is assigned by the collector from the
// file's base name and is never read from frontmatter.
type Task struct {
	Filename       string   `yaml:"-" json:"filename"`
	Status         string   `yaml:"status" json:"status"`
	Priority       string   `yaml:"priority,omitempty" json:"priority,omitempty"`
	DateCreated    string   `yaml:"dateCreated,omitempty" json:"dateCreated,omitempty"`
	Tags           []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Projects       []string `yaml:"projects,omitempty" json:"projects,omitempty"`
	Due            *Date    `yaml:"due,omitempty" json:"due,omitempty"`
	CompletedDate  *Date    `yaml:"completedDate,omitempty" json:"completedDate,omitempty"`
	TaskSourceType string   `yaml:"taskSourceType,omitempty" json:"taskSourceType,omitempty"`
}

// Identity is the deduplication key for collected tasks: two records with the
// same filename and the same (possibly empty) creation date are the same
// logical task.
type Identity struct {
	Filename    string
	DateCreated string
}

// Identity returns the task's deduplication key.
func (t *Task) Identity() Identity {
	return Identity{Filename: t.Filename, DateCreated: t.DateCreated}
}
