package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dailyeat/internal/core"
	"dailyeat/internal/dailylog"
	"dailyeat/internal/history"
	"dailyeat/internal/storage/memory"
	"dailyeat/internal/tracker"
)

var testNow = time.Date(2024, 2, 7, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (model, *tracker.Tracker) {
	t.Helper()
	clock := func() time.Time { return testNow }
	store := dailylog.NewStore(memory.New(), nil)
	for _, r := range []core.LogRecord{
		core.NewLogRecord("01/02/2024", []string{"Apple"}, 2100),
		core.NewLogRecord("02/02/2024", []string{"Apple"}, 1500),
	} {
		if err := store.Save(t.Context(), r); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	tr, err := tracker.New(core.DefaultCatalog(), store, 2000, tracker.WithClock(clock))
	if err != nil {
		t.Fatalf("tracker: %v", err)
	}
	hist := history.NewService(store, history.Config{Now: clock})
	return initModel(t.Context(), hist, tr), tr
}

// send feeds msg to m and, when a command comes back, runs it and feeds its
// result too.
func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(model)
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestInitLoadsCurrentMonth(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(m.Init()())
	m = next.(model)

	if m.view == nil {
		t.Fatalf("month not loaded, err=%v", m.err)
	}
	if m.view.Summary.LoggedDays != 2 || m.view.Summary.SuccessDays != 1 {
		t.Fatalf("unexpected summary %+v", m.view.Summary)
	}
	out := m.View()
	for _, want := range []string{"FEBRUARY 2024", "Mon", "Sun", "29", "1/29 days (3%)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, m.Init()())

	m = send(t, m, key("right"))
	if m.month != (core.Month{Year: 2024, Month: 3}) || m.view.Grid.Month != m.month {
		t.Fatalf("right: month=%v view=%v", m.month, m.view.Grid.Month)
	}
	if m.view.Summary.LoggedDays != 0 {
		t.Fatalf("march should be empty: %+v", m.view.Summary)
	}

	m = send(t, m, key("left"))
	m = send(t, m, key("h"))
	if m.month != (core.Month{Year: 2024, Month: 1}) {
		t.Fatalf("left twice: month=%v", m.month)
	}
	if !strings.Contains(m.View(), "JANUARY 2024") {
		t.Fatalf("title not updated:\n%s", m.View())
	}

	m = send(t, m, key("t"))
	if m.month != (core.Month{Year: 2024, Month: 2}) {
		t.Fatalf("today: month=%v", m.month)
	}
}

func TestTargetStepper(t *testing.T) {
	m, tr := newTestModel(t)
	m = send(t, m, m.Init()())

	m = send(t, m, key("-"))
	m = send(t, m, key("-"))
	m = send(t, m, key("-"))
	m = send(t, m, key("-"))
	m = send(t, m, key("-"))
	if m.target != 1500 || tr.Target() != 1500 {
		t.Fatalf("target=%d tracker=%d", m.target, tr.Target())
	}
	if m.view.Summary.Target != 1500 || m.view.Summary.SuccessDays != 2 {
		t.Fatalf("summary not reloaded: %+v", m.view.Summary)
	}

	for range 30 {
		m = send(t, m, key("+"))
	}
	if m.target != 3500 {
		t.Fatalf("target should clamp at 3500, got %d", m.target)
	}
}

func TestStaleMonthIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(key("right"))
	m = next.(model)

	// A february response arriving after moving to march is dropped.
	feb := history.MonthView{}
	feb.Grid.Month = core.Month{Year: 2024, Month: 2}
	feb.Summary.Target = m.target
	next, _ = m.Update(monthLoadedMsg{view: feb})
	m = next.(model)
	if m.view != nil {
		t.Fatalf("stale view applied")
	}

	next, _ = m.Update(cmd())
	m = next.(model)
	if m.view == nil || m.view.Grid.Month != (core.Month{Year: 2024, Month: 3}) {
		t.Fatalf("march view not applied")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m, _ := newTestModel(t)
		next, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected QuitMsg", k)
		}
		if next.(model).View() != "" {
			t.Fatalf("%s: view should be empty after quitting", k)
		}
	}
}

func TestErrorShown(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(errors.New("backend unavailable"))
	if out := next.(model).View(); !strings.Contains(out, "Error:") {
		t.Fatalf("error not rendered:\n%s", out)
	}
}
