package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexmoren/studyplan/internal/app"
	"github.com/alexmoren/studyplan/internal/domain"
)

// FormatPlan formats a freshly generated plan, grouped by day.
func FormatPlan(resp *app.GeneratePlanResponse, classNames map[string]string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s — %s  %s\n",
		Bold("Plan"),
		resp.Start.Format("Jan 2"),
		resp.End.Format("Jan 2"),
		Dim(fmt.Sprintf("(%s, goal: %s)", TruncID(resp.ScheduleID), resp.PrimaryGoal)),
	))
	b.WriteString(fmt.Sprintf("%d sessions, %s of study\n\n",
		resp.SessionCount, FormatMinutes(resp.TotalMinutes)))

	b.WriteString(renderSessionDays(resp.Sessions, classNames))

	if resp.Estimate != nil {
		b.WriteString("\n" + StressIndicator(resp.Estimate.StressLevel) +
			Dim(fmt.Sprintf("  burnout risk %.0f/100", resp.Estimate.BurnoutRisk)) + "\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}

	return b.String()
}

// FormatSchedule formats a stored schedule and its sessions.
func FormatSchedule(sched *domain.Schedule, sessions []domain.StudySession, classNames map[string]string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s — %s  %s\n",
		Bold("Schedule"),
		sched.Start.Format("Jan 2"),
		sched.End.Format("Jan 2"),
		Dim(fmt.Sprintf("(%s, goal: %s)", TruncID(sched.ID), sched.PrimaryGoal)),
	))
	b.WriteString(fmt.Sprintf("%d sessions, %s of study\n\n",
		sched.SessionCount, FormatMinutes(sched.TotalMinutes)))

	b.WriteString(renderSessionDays(sessions, classNames))

	for _, w := range sched.Warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}

	return b.String()
}

// renderSessionDays groups sessions by calendar date and renders one
// block per day. Sessions are assumed sorted by date then start time.
func renderSessionDays(sessions []domain.StudySession, classNames map[string]string) string {
	if len(sessions) == 0 {
		return Dim("No sessions scheduled.") + "\n"
	}

	var b strings.Builder
	var currentDay time.Time
	for _, sess := range sessions {
		if !sess.Date.Equal(currentDay) {
			if !currentDay.IsZero() {
				b.WriteString("\n")
			}
			currentDay = sess.Date
			b.WriteString(Header(DayHeading(sess.Date)) + "\n")
		}
		b.WriteString("  " + FormatSessionLine(sess, classNames) + "\n")
	}
	return b.String()
}

// FormatSessionLine renders one session as a single table-free line.
func FormatSessionLine(sess domain.StudySession, classNames map[string]string) string {
	name := classNames[sess.ClassID]
	if name == "" {
		name = "Unassigned"
	}

	line := fmt.Sprintf("%s–%s  %s  %s  %s",
		sess.StartTime, sess.EndTime,
		Bold(name),
		SessionTypePill(sess.Type),
		Dim(FormatMinutes(sess.DurationMin)),
	)
	if sess.FocusArea != "" {
		line += "  " + Dim(sess.FocusArea)
	}
	if sess.Status != domain.SessionScheduled {
		line += "  " + SessionStatusPill(sess.Status)
	}
	return line
}
