// Package tui is a terminal month browser for the daily log.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dailyeat/internal/calendar"
	"dailyeat/internal/core"
	"dailyeat/internal/history"
	"dailyeat/internal/tracker"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Months loads a laid-out month.
type Months interface {
	Month(ctx context.Context, m core.Month, target int) (history.MonthView, error)
}

// Today is the editing session whose target the stepper changes.
type Today interface {
	Status() tracker.Status
	SetTarget(target int) error
	Now() time.Time
}

type monthLoadedMsg struct {
	view history.MonthView
}

type model struct {
	ctx    context.Context
	months Months
	today  Today

	month  core.Month
	target int
	view   *history.MonthView

	width  int
	height int
	err    error

	quitting bool
}

func initModel(ctx context.Context, months Months, today Today) model {
	st := today.Status()
	return model{
		ctx:    ctx,
		months: months,
		today:  today,
		month:  core.MonthOf(today.Now()),
		target: st.Target,
	}
}

func (m model) Init() tea.Cmd {
	return m.load()
}

// load fetches the current month for the current target.
func (m model) load() tea.Cmd {
	ctx, months, month, target := m.ctx, m.months, m.month, m.target
	return func() tea.Msg {
		view, err := months.Month(ctx, month, target)
		if err != nil {
			return err
		}
		return monthLoadedMsg{view: view}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case error:
		m.err = msg
		return m, nil

	case monthLoadedMsg:
		// Drop responses for a month or target the user already moved away from.
		if msg.view.Grid.Month != m.month || msg.view.Summary.Target != m.target {
			return m, nil
		}
		m.err = nil
		m.view = &msg.view
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			m.month = m.month.Prev()
			return m, m.load()
		case "right", "l":
			m.month = m.month.Next()
			return m, m.load()
		case "t":
			m.month = core.MonthOf(m.today.Now())
			return m, m.load()
		case "+", "=":
			return m.stepTarget(1)
		case "-", "_":
			return m.stepTarget(-1)
		}
	}
	return m, nil
}

func (m model) stepTarget(steps int) (tea.Model, tea.Cmd) {
	next := calendar.StepTarget(m.target, steps)
	if next == m.target {
		return m, nil
	}
	if err := m.today.SetTarget(next); err != nil {
		m.err = err
		return m, nil
	}
	m.target = next
	return m, m.load()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Width(cellWidth*calendar.Columns).Render(m.month.Title()))
	b.WriteString("\n\n")

	header := make([]string, len(weekdays))
	for i, d := range weekdays {
		header[i] = weekdayStyle.Render(d)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	if m.view != nil {
		for _, week := range m.view.Grid.Weeks() {
			row := make([]string, len(week))
			for i, c := range week {
				row[i] = renderCell(c)
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(m.summaryView()))
	} else if m.err == nil {
		b.WriteString(textStyle.Render("Loading..."))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(textRedStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("←/→ month • t today • +/- target • q quit"))
	return b.String()
}

func renderCell(c calendar.Cell) string {
	if c.Blank() {
		return cellStyle.Render("")
	}
	style := cellStyle
	if c.IsToday {
		style = todayStyle
	}
	return style.Foreground(statusColor(c.Status)).Render(fmt.Sprintf("%d", c.Day))
}

func (m model) summaryView() string {
	s := m.view.Summary
	st := m.today.Status()
	lines := []string{
		labelStyle.Render("Target   ") + textStyle.Render(fmt.Sprintf("%d kcal", s.Target)),
		labelStyle.Render("Average  ") + textStyle.Render(fmt.Sprintf("%d kcal", s.Average)),
		labelStyle.Render("Success  ") + textStyle.Render(fmt.Sprintf("%d/%d days (%d%%)", s.SuccessDays, s.DaysInMonth, s.SuccessRate)),
		labelStyle.Render("Logged   ") + textStyle.Render(fmt.Sprintf("%d days", s.LoggedDays)),
		labelStyle.Render("Today    ") + lipgloss.NewStyle().Foreground(levelColor(st.Level)).
			Render(fmt.Sprintf("%d kcal eaten, %d remaining", st.Total, st.Remaining)),
	}
	return strings.Join(lines, "\n")
}

// Run starts the month browser on the alternate screen and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, months Months, today Today) error {
	p := tea.NewProgram(initModel(ctx, months, today), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
