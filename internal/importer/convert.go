package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexmoren/studyplan/internal/domain"
)

// ConvertedSemester holds the domain objects produced from an import
// file, ready for persistence.
type ConvertedSemester struct {
	Classes []*domain.Class
	Tasks   []*domain.Task
	Profile *domain.StudyProfile
}

// Convert transforms a validated SemesterImport into domain objects.
// Call ValidateSemesterImport first; Convert assumes the schema is valid.
func Convert(schema *SemesterImport) *ConvertedSemester {
	now := time.Now().UTC()
	out := &ConvertedSemester{}

	refMap := make(map[string]string) // class ref -> UUID
	for _, c := range schema.Classes {
		id := uuid.New().String()
		refMap[c.Ref] = id

		subject := c.Subject
		if subject == "" {
			subject = c.Name
		}
		out.Classes = append(out.Classes, &domain.Class{
			ID:        id,
			Name:      c.Name,
			Subject:   subject,
			Code:      strings.ToUpper(c.Code),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, t := range schema.Tasks {
		typ := t.Type
		if typ == "" {
			typ = string(domain.TaskAssignment)
		}
		task := &domain.Task{
			ID:          uuid.New().String(),
			ClassID:     refMap[t.ClassRef],
			Title:       t.Title,
			Description: t.Description,
			Type:        domain.TaskType(typ),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if t.DueDate != nil {
			if due, err := time.Parse("2006-01-02", *t.DueDate); err == nil {
				task.DueDate = &due
			}
		}
		out.Tasks = append(out.Tasks, task)
	}

	if p := schema.Profile; p != nil {
		profile := domain.DefaultProfile()
		if p.FocusSessionMin != nil {
			profile.FocusSessionMin = *p.FocusSessionMin
		}
		if p.BreakDurationMin != nil {
			profile.BreakDurationMin = *p.BreakDurationMin
		}
		if p.DailyLimitHours != nil {
			profile.DailyLimitHours = *p.DailyLimitHours
		}
		for _, w := range p.Windows {
			productivity := 5
			if w.Productivity != nil {
				productivity = *w.Productivity
			}
			profile.Preferences = append(profile.Preferences, domain.StudyTimePreference{
				DayOfWeek:         dayOfWeek(w.Day),
				StartTime:         w.Start,
				EndTime:           w.End,
				ProductivityScore: productivity,
			})
		}
		out.Profile = profile
	}

	return out
}

func normalizeDay(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var dayByName = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

func dayOfWeek(s string) time.Weekday {
	return dayByName[normalizeDay(s)]
}
