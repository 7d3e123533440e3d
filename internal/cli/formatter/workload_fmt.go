package formatter

import (
	"fmt"
	"strings"

	"github.com/alexmoren/studyplan/internal/app"
)

const loadBarWidth = 10

// FormatWorkload formats a WorkloadResponse into a styled dashboard.
func FormatWorkload(resp *app.WorkloadResponse) string {
	var b strings.Builder

	if len(resp.Classes) == 0 {
		b.WriteString(Dim("No pending work. Enjoy the quiet.") + "\n")
		return RenderBox("Workload", b.String())
	}

	maxHours := 0.0
	for _, c := range resp.Classes {
		if c.EstimatedHours > maxHours {
			maxHours = c.EstimatedHours
		}
	}

	headers := []string{"CLASS", "PENDING", "EST. EFFORT", "LOAD", "DAILY PACE", "NEXT DEADLINES"}
	rows := make([][]string, 0, len(resp.Classes))
	for _, c := range resp.Classes {
		load := ""
		if maxHours > 0 {
			load = RenderLoad(c.EstimatedHours/maxHours, loadBarWidth)
		}
		deadlines := Dim("--")
		if len(c.UpcomingDeadlines) > 0 {
			deadlines = StyleYellow.Render(strings.Join(c.UpcomingDeadlines, ", "))
		}
		rows = append(rows, []string{
			Bold(c.ClassName),
			fmt.Sprintf("%d", c.PendingTasks),
			FormatHours(c.EstimatedHours),
			load,
			FormatMinutes(c.RecommendedDailyMin) + Dim("/day"),
			deadlines,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if est := resp.Estimate; est != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s total, %s recommended daily\n",
			StressIndicator(est.StressLevel),
			Bold(FormatHours(est.EstimatedTotalHours)),
			Bold(FormatHours(est.RecommendedDailyHours)),
		))
		b.WriteString(fmt.Sprintf("Burnout risk %.0f/100, overload %s\n",
			est.BurnoutRisk, est.OverloadRisk))

		if len(est.PeakWorkloadDates) > 0 {
			b.WriteString(Dim("Peak days: "+strings.Join(est.PeakWorkloadDates, ", ")) + "\n")
		}
		if len(est.DeadlineConflicts) > 0 {
			for _, c := range est.DeadlineConflicts {
				b.WriteString(StyleYellow.Render("  CRUNCH: "+c) + "\n")
			}
		}
		if len(est.Recommendations) > 0 {
			b.WriteString("\n" + Header("Recommendations") + "\n")
			for _, r := range est.Recommendations {
				b.WriteString("  • " + r + "\n")
			}
		}
	}

	for _, w := range resp.Warnings {
		b.WriteString("\n" + StyleYellow.Render("  WARNING: "+w) + "\n")
	}

	return RenderBox("Workload", b.String())
}
