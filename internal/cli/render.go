package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/essentials"
	"github.com/2beens/fittrack/internal/gymstats/stats"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c83fd"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#868e96"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#51cf66"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printMuted(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// printToasts flushes the notifications raised while the command ran.
func printToasts(w io.Writer, toaster *viewstate.RecordingToaster) {
	for _, t := range toaster.Drain() {
		if t.Success {
			fmt.Fprintln(w, successStyle.Render("✔ "+t.Message))
		} else {
			fmt.Fprintln(w, errorStyle.Render("✖ "+t.Message))
		}
	}
}

func renderGroups(w io.Writer, doc *api.ExerciseGroupsDoc, selected string) {
	printTitle(w, fmt.Sprintf("Exercise groups (%d exercises)", doc.ExercisesCount()))
	if len(doc.Categories) == 0 {
		printMuted(w, "no categories yet")
		return
	}
	for _, c := range doc.Categories {
		name := c.CategoryName
		if name == selected {
			name = "▸ " + name
		}
		lines := []string{headerStyle.Render(name)}
		if len(c.Exercises) == 0 {
			lines = append(lines, mutedStyle.Render("no exercises"))
		}
		for _, ex := range c.Exercises {
			line := "• " + ex.ExerciseName
			if ex.Description != "" {
				line += mutedStyle.Render("  " + ex.Description)
			}
			lines = append(lines, line)
		}
		fmt.Fprintln(w, panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
}

func renderExercises(w io.Writer, category string, list []api.Exercise) {
	printTitle(w, "Exercises: "+category)
	if len(list) == 0 {
		printMuted(w, "no exercises in this category")
		return
	}
	for _, ex := range list {
		fmt.Fprintf(w, "%s  %s\n", mutedStyle.Render(ex.ID), ex.Name)
	}
}

func renderLogs(w io.Writer, date, category string, logs []api.Log, available []api.GroupExercise) {
	printTitle(w, fmt.Sprintf("Log %s / %s", date, category))
	if len(logs) == 0 {
		printMuted(w, "nothing logged yet")
	}
	for _, l := range logs {
		fmt.Fprintf(w, "%-28s reps: %-4d count: %d\n", l.ExerciseName, l.Reps, l.Count)
	}
	if len(available) > 0 {
		names := make([]string, 0, len(available))
		for _, ex := range available {
			names = append(names, ex.ExerciseName)
		}
		printMuted(w, "available: %s", strings.Join(names, ", "))
	}
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func renderEssentials(w io.Writer, tracker *essentials.Tracker) {
	printTitle(w, "Daily essentials "+tracker.Date())

	metricRow := func(label string, metric essentials.Metric, unit string) {
		current, goal := tracker.Current(metric), tracker.Goal(metric)
		progress := tracker.MetricProgress(metric)
		fmt.Fprintf(w, "%-12s %s %6.1f / %-6.1f %s (%3.0f%%)\n",
			label, progressBar(progress, 20), current, goal, unit, progress)
	}

	if tracker.ShouldShowSection(essentials.SectionWaterIntake) {
		metricRow("Water", essentials.MetricWater, "l")
	}
	if tracker.ShouldShowSection(essentials.SectionSteps) {
		metricRow("Steps", essentials.MetricSteps, "")
	}
	if tracker.ShouldShowSection(essentials.SectionCalories) {
		metricRow("Calories", essentials.MetricCalories, "kcal")
		printMuted(w, "  burned %d, net %d", tracker.CaloriesBurned(), tracker.NetCalories())
	}
	if tracker.ShouldShowSection(essentials.SectionSleep) {
		metricRow("Sleep", essentials.MetricSleep, "h")
		printMuted(w, "  quality %d/5", tracker.SleepQuality())
	}
	if tracker.ShouldShowSection(essentials.SectionWeight) {
		fmt.Fprintf(w, "%-12s %.1f kg\n", "Weight", tracker.Weight())
	}
	if tracker.ShouldShowSection(essentials.SectionMood) {
		fmt.Fprintf(w, "%-12s %d/10\n", "Mood", tracker.Mood())
	}
	if tracker.ShouldShowSection(essentials.SectionEnergy) {
		fmt.Fprintf(w, "%-12s %d/10\n", "Energy", tracker.Energy())
	}
	if tracker.ShouldShowSection(essentials.SectionBodyMeasurements) {
		metricRow("Body fat", essentials.MetricBodyFat, "%")
		metricRow("Muscle", essentials.MetricMuscleMass, "kg")
		metricRow("Waist", essentials.MetricWaist, "cm")
	}
	if tracker.ShouldShowSection(essentials.SectionSupplements) {
		s := tracker.Supplements()
		fmt.Fprintf(w, "%-12s multivitamin %s  vitamin D %s  omega-3 %s  protein %.0fg %s\n",
			"Supplements", check(s.Multivitamin), check(s.VitaminD), check(s.Omega3), s.ProteinPowder, s.Other)
	}
	if tracker.ShouldShowSection(essentials.SectionHabits) {
		metricRow("Meditation", essentials.MetricMeditation, "min")
		metricRow("Reading", essentials.MetricReading, "min")
		metricRow("Screen time", essentials.MetricScreenTime, "h")
		printMuted(w, "  stress %d/10", tracker.Habits().StressLevel)
	}
}

func check(v bool) string {
	if v {
		return "✔"
	}
	return "✖"
}

func renderStats(w io.Writer, viewer *stats.Viewer) {
	printTitle(w, fmt.Sprintf("Stats: %s, %s", viewer.Category(), viewer.SelectedLabel()))

	exercises := viewer.Exercises()
	if len(exercises) == 0 {
		printMuted(w, "no stats for this period")
	}
	for _, ex := range exercises {
		current, expected := ex.Totals.Reps, ex.ExpectedFromAverage.Reps
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(stats.ProgressColor(current, expected)))
		progress := stats.ProgressPercent(current, expected)
		fmt.Fprintf(w, "%-24s %s %s %5.0f reps (expected %.0f) %+.0f%%\n",
			ex.ExerciseName,
			color.Render(progressBar(progress/1.5, 20)),
			color.Render(stats.ChangeIcon(current, expected)),
			current,
			expected,
			stats.ChangePercent(current, expected),
		)
	}

	if overall := viewer.Overall(); overall != nil {
		fmt.Fprintln(w, panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Overall"),
			fmt.Sprintf("streak %d (longest %d)", overall.CurrentStreak, overall.LongestStreak),
			fmt.Sprintf("workout days %d, exercises %d", overall.TotalWorkoutDays, overall.TotalExercises),
			fmt.Sprintf("period reps %.0f vs lifetime avg %.0f (%+.1f%%)",
				overall.PeriodTotal.Reps, overall.LifetimeAverage.Reps, overall.ComparisonPercent),
		)))
	}
}

func renderProfile(w io.Writer, p api.Profile, bmi float64, bmiOK bool, bmiCategory string) {
	printTitle(w, strings.TrimSpace(p.Firstname+" "+p.Lastname))
	fmt.Fprintf(w, "email: %s\n", p.Email)
	if p.Age != nil {
		fmt.Fprintf(w, "age: %d\n", *p.Age)
	}
	if p.Gender != "" {
		fmt.Fprintf(w, "gender: %s\n", p.Gender)
	}
	if p.FitnessLevel != "" {
		fmt.Fprintf(w, "fitness level: %s\n", p.FitnessLevel)
	}
	if p.Weight != nil {
		fmt.Fprintf(w, "weight: %.1f kg\n", *p.Weight)
	}
	if p.Height != nil {
		fmt.Fprintf(w, "height: %.0f cm\n", *p.Height)
	}
	if bmiOK {
		fmt.Fprintf(w, "bmi: %.1f (%s)\n", bmi, bmiCategory)
	}
	if len(p.Goals) > 0 {
		fmt.Fprintln(w, headerStyle.Render("Goals"))
		for i, g := range p.Goals {
			fmt.Fprintf(w, "%d. %s\n", i, g)
		}
	}
}
