package cmd

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/studyplanhq/studyplan/internal/planner"
	"github.com/studyplanhq/studyplan/internal/schedule"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	dayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))
)

// renderPlan formats a generated plan as a day-by-day listing.
func renderPlan(plan *planner.Plan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Study plan") + "\n\n")

	byDay := make(map[string][]schedule.Task)
	for _, t := range plan.Tasks {
		byDay[t.Day().Format("2006-01-02")] = append(byDay[t.Day().Format("2006-01-02")], t)
	}
	for _, day := range plan.Days {
		b.WriteString(dayStyle.Render(formatDay(day.Date)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %.1fh in %d blocks", day.Hours, day.Blocks)))
		b.WriteByte('\n')
		for _, t := range byDay[day.Date] {
			b.WriteString(renderTask(t))
		}
		b.WriteByte('\n')
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("Total: %.1f hours", plan.TotalHours)) + "\n")
	for _, t := range plan.Unscheduled {
		b.WriteString(warnStyle.Render("unscheduled: "+t.Title) + "\n")
	}
	for _, n := range plan.Notices {
		b.WriteString(warnStyle.Render(n) + "\n")
	}
	return b.String()
}

// formatDay turns a 2006-01-02 date key into a readable heading.
func formatDay(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Mon Jan 2")
}

func renderTask(t schedule.Task) string {
	return fmt.Sprintf("  %s-%s  %-9s %s %s\n",
		t.Start.Format("15:04"),
		t.End.Format("15:04"),
		t.Difficulty,
		t.Title,
		dimStyle.Render(fmt.Sprintf("(p=%.2f)", t.Priority)),
	)
}

// renderMastery formats the per-topic mastery overview.
func renderMastery(rows []planner.TopicMastery, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mastery") + "\n\n")
	for _, row := range rows {
		if row.State == nil {
			b.WriteString(fmt.Sprintf("  %-28s %s\n", row.Topic.Name, dimStyle.Render("not yet tested")))
			continue
		}
		st := row.State
		score := fmt.Sprintf("%5.1f ±%.0f", st.Score, st.Confidence)
		switch {
		case st.Score >= 80:
			score = goodStyle.Render(score)
		case st.Score < 40:
			score = badStyle.Render(score)
		}
		due := ""
		if st.IsDue(now) {
			due = warnStyle.Render("  review due")
		}
		b.WriteString(fmt.Sprintf("  %-28s %s  %-9s%s\n", row.Topic.Name, score, st.Trend, due))
	}
	return b.String()
}

// renderNotices prints replan notices, or a quiet confirmation when
// everything fit.
func renderNotices(notices []string) string {
	if len(notices) == 0 {
		return goodStyle.Render("schedule updated") + "\n"
	}
	var b strings.Builder
	for _, n := range notices {
		b.WriteString(warnStyle.Render(n) + "\n")
	}
	return b.String()
}
