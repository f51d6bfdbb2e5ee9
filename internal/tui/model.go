package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thisisharsh7/drink-log/internal/clock"
	"github.com/thisisharsh7/drink-log/internal/models"
	"github.com/thisisharsh7/drink-log/internal/stats"
	"github.com/thisisharsh7/drink-log/internal/storage"
	"github.com/thisisharsh7/drink-log/internal/tracker"
)

// tickMsg fires once a minute. It re-runs the idempotent intake load so a
// session left open across midnight picks up the day rollover.
type tickMsg time.Time

type Model struct {
	store   storage.Provider
	clk     clock.Clock
	tracker *tracker.Tracker
	engine  *stats.Engine

	settings models.Settings
	intake   models.WaterIntake
	stats    models.Stats

	progress progress.Model
	width    int
}

func NewModel(store storage.Provider, clk clock.Clock) Model {
	m := Model{
		store:    store,
		clk:      clk,
		tracker:  tracker.New(store, clk),
		engine:   stats.New(store, clk),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.refresh()
	return m
}

// refresh reloads settings, today's intake, and derived stats from the store.
func (m *Model) refresh() {
	settings, err := m.store.GetSettings()
	if err != nil {
		settings = models.Settings{}
	}
	models.ApplyDefaultSettings(&settings)

	m.settings = settings
	m.intake = m.tracker.Load()
	m.stats = m.engine.Compute(settings.DailyGoal)
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 8; w > 0 && w < 60 {
			m.progress.Width = w
		}
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "l":
			m.tracker.Increment(m.settings.DailyGoal)
			m.refresh()
			return m, nil
		case "r":
			m.refresh()
			return m, nil
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("💧 drinklog"))
	b.WriteString("\n\n")

	pct := tracker.Progress(m.intake.Count, m.settings.DailyGoal)
	b.WriteString("  " + m.progress.ViewAs(pct) + "\n")
	line := fmt.Sprintf("  %d of %d drinks today", m.intake.Count, m.settings.DailyGoal)
	if m.intake.Count >= m.settings.DailyGoal {
		b.WriteString(goalMetStyle.Render(line+"  — goal met! 🎉") + "\n")
	} else {
		b.WriteString(statStyle.Render(line) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("  Streak: %d day(s)   Goal days: %d",
		m.stats.CurrentStreak, m.stats.TotalGoalDays)) + "\n\n")

	b.WriteString(dimStyle.Render("  Last 7 days") + "\n")
	b.WriteString(m.weeklyChart() + "\n")

	b.WriteString(helpStyle.Render("space/l: log a drink • r: refresh • q: quit"))

	return b.String()
}

// weeklyChart renders each of the last 7 days as a labelled mini bar,
// oldest first.
func (m Model) weeklyChart() string {
	const barWidth = 10

	var rows []string
	for _, record := range m.stats.WeeklyData {
		filled := 0
		if record.Goal > 0 {
			filled = record.Count * barWidth / record.Goal
		}
		if filled > barWidth {
			filled = barWidth
		}

		bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
			barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

		label, err := weekdayLabel(record.Date)
		if err != nil {
			label = "??"
		}

		marker := " "
		if record.GoalMet {
			marker = goalMetStyle.Render("✔")
		}

		rows = append(rows, fmt.Sprintf("  %s %s %2d %s", dimStyle.Render(label), bar, record.Count, marker))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func weekdayLabel(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String()[:2], nil
}
