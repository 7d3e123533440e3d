package domain

import "time"

type Task struct {
	ID          string
	ClassID     string
	Title       string
	Description string
	Type        TaskType
	DueDate     *time.Time
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pending reports whether the task still needs work as of now:
// incomplete, and either undated or not yet more than a day past due.
func (t Task) Pending(now time.Time) bool {
	if t.Completed {
		return false
	}
	if t.DueDate != nil && t.DueDate.Before(now.AddDate(0, 0, -1)) {
		return false
	}
	return true
}
