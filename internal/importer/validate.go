package importer

import (
	"fmt"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

var validDays = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

// ValidateSemesterImport checks the import schema before conversion and
// returns every validation error found, not just the first.
func ValidateSemesterImport(schema *SemesterImport) []error {
	var errs []error

	classRefs := make(map[string]bool)
	for i, c := range schema.Classes {
		prefix := fmt.Sprintf("classes[%d]", i)
		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if classRefs[c.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref %q is duplicated", prefix, c.Ref))
		}
		classRefs[c.Ref] = true
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	for i, t := range schema.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.ClassRef != "" && !classRefs[t.ClassRef] {
			errs = append(errs, fmt.Errorf("%s.class_ref %q does not match any class", prefix, t.ClassRef))
		}
		if t.Type != "" && !domain.ValidTaskTypes[t.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, t.Type))
		}
		if t.DueDate != nil {
			if _, err := time.Parse("2006-01-02", *t.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.due_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *t.DueDate))
			}
		}
	}

	errs = append(errs, validateProfileImport(schema.Profile)...)
	return errs
}

func validateProfileImport(p *ProfileImport) []error {
	if p == nil {
		return nil
	}
	var errs []error

	if p.FocusSessionMin != nil && *p.FocusSessionMin <= 0 {
		errs = append(errs, fmt.Errorf("profile.focus_session_min must be positive"))
	}
	if p.BreakDurationMin != nil && *p.BreakDurationMin < 0 {
		errs = append(errs, fmt.Errorf("profile.break_duration_min cannot be negative"))
	}
	if p.DailyLimitHours != nil && *p.DailyLimitHours <= 0 {
		errs = append(errs, fmt.Errorf("profile.daily_limit_hours must be positive"))
	}

	for i, w := range p.Windows {
		prefix := fmt.Sprintf("profile.windows[%d]", i)
		if !validDays[normalizeDay(w.Day)] {
			errs = append(errs, fmt.Errorf("%s.day: invalid value %q", prefix, w.Day))
		}
		start, startErr := time.Parse("15:04", w.Start)
		if startErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: invalid time %q (expected HH:MM)", prefix, w.Start))
		}
		end, endErr := time.Parse("15:04", w.End)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: invalid time %q (expected HH:MM)", prefix, w.End))
		}
		if startErr == nil && endErr == nil && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: end %q must be after start %q", prefix, w.End, w.Start))
		}
		if w.Productivity != nil && (*w.Productivity < 0 || *w.Productivity > 10) {
			errs = append(errs, fmt.Errorf("%s.productivity must be 0-10", prefix))
		}
	}

	return errs
}
