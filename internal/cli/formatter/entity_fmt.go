package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexmoren/studyplan/internal/domain"
)

// FormatClassList renders the class table.
func FormatClassList(classes []*domain.Class, pendingByClass map[string]int) string {
	headers := []string{"ID", "NAME", "SUBJECT", "CODE", "PENDING"}
	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		code := c.Code
		if code == "" {
			code = "--"
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.Name),
			c.Subject,
			Dim(code),
			fmt.Sprintf("%d", pendingByClass[c.ID]),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskList renders the task table with due dates colored by urgency.
func FormatTaskList(tasks []*domain.Task, classNames map[string]string, now time.Time) string {
	headers := []string{"ID", "TITLE", "CLASS", "TYPE", "DUE", "STATUS"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		class := classNames[t.ClassID]
		if class == "" {
			class = Dim("--")
		}
		due := Dim("--")
		if t.DueDate != nil {
			due = RelativeDateStyled(*t.DueDate)
		}
		status := StyleBlue.Render("○ Pending")
		if t.Completed {
			status = StyleGreen.Render("✔ Done")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Title),
			class,
			TaskTypeBadge(t.Type),
			due,
			status,
		})
	}
	return RenderTable(headers, rows)
}

// FormatProfile renders the study profile and its weekly windows.
func FormatProfile(p *domain.StudyProfile) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Focus sessions   %s\n", Bold(FormatMinutes(p.FocusSessionMin))))
	b.WriteString(fmt.Sprintf("Breaks           %s\n", Bold(FormatMinutes(p.BreakDurationMin))))
	b.WriteString(fmt.Sprintf("Daily limit      %s\n", Bold(FormatHours(p.DailyLimitHours))))

	b.WriteString("\n" + Header("Study windows") + "\n")
	if len(p.Preferences) == 0 {
		b.WriteString(Dim("  none configured — run 'studyplan profile setup'") + "\n")
	}
	for _, pref := range p.Preferences {
		b.WriteString(fmt.Sprintf("  %-9s %s–%s  %s\n",
			pref.DayOfWeek.String(),
			pref.StartTime, pref.EndTime,
			Dim(fmt.Sprintf("productivity %d/10", pref.ProductivityScore)),
		))
	}

	if len(p.SubjectDifficulty) > 0 {
		b.WriteString("\n" + Header("Subject difficulty") + "\n")
		for subject, d := range p.SubjectDifficulty {
			b.WriteString(fmt.Sprintf("  %-20s %.1f\n", subject, d))
		}
	}

	return RenderBox("Study profile", b.String())
}
