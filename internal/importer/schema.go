package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SemesterImport is the top-level JSON structure for bulk semester setup:
// classes, their tasks, and an optional study profile in one file.
type SemesterImport struct {
	Classes []ClassImport  `json:"classes"`
	Tasks   []TaskImport   `json:"tasks"`
	Profile *ProfileImport `json:"profile,omitempty"`
}

// ClassImport defines one class in the import file. Ref is the local
// handle tasks use to point at their class.
type ClassImport struct {
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Subject string `json:"subject,omitempty"`
	Code    string `json:"code,omitempty"`
}

// TaskImport defines one task in the import file.
type TaskImport struct {
	ClassRef    string  `json:"class_ref,omitempty"`
	Title       string  `json:"title"`
	Type        string  `json:"type,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ProfileImport defines the optional study profile section.
type ProfileImport struct {
	FocusSessionMin  *int           `json:"focus_session_min,omitempty"`
	BreakDurationMin *int           `json:"break_duration_min,omitempty"`
	DailyLimitHours  *float64       `json:"daily_limit_hours,omitempty"`
	Windows          []WindowImport `json:"windows,omitempty"`
}

// WindowImport defines one weekly study window.
type WindowImport struct {
	Day          string `json:"day"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Productivity *int   `json:"productivity,omitempty"`
}

// Load reads and decodes a semester import file.
func Load(path string) (*SemesterImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema SemesterImport
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
