package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveClassID resolves user input to a class ID. Accepts an exact
// class name (case-insensitive), a full UUID, or a unique UUID prefix.
func resolveClassID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("class is required")
	}

	classes, err := app.Classes.List(ctx)
	if err != nil {
		return "", err
	}

	for _, c := range classes {
		if strings.EqualFold(c.Name, input) || strings.EqualFold(c.Code, input) {
			return c.ID, nil
		}
	}
	for _, c := range classes {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range classes {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("class not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("class ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTaskID resolves user input to a task ID by exact match or
// unique UUID prefix across all tasks, completed included.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// classNameIndex returns a classID -> name lookup for formatting.
func classNameIndex(ctx context.Context, app *App) (map[string]string, error) {
	classes, err := app.Classes.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(classes))
	for _, c := range classes {
		names[c.ID] = c.Name
	}
	return names, nil
}
