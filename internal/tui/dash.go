// Package tui holds ember's full-screen dashboard.
package tui

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/embertrack/ember/internal/dates"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/streak"
	"github.com/embertrack/ember/internal/ui"
)

// TypeSummary is one activity type's evaluated streak state for display.
type TypeSummary struct {
	Type     journal.ActivityType
	Result   streak.Result
	Progress streak.Progress
	Reached  int
	OnRung   bool
	AtRisk   bool
}

// DashData holds all loaded panel data for the dashboard.
type DashData struct {
	Summaries []TypeSummary
	Today     dates.Day
}

type dashDataMsg DashData
type dashErrMsg struct{ err error }

// DashModel is the Bubbletea model for the ember dashboard.
type DashModel struct {
	data    DashData
	js      *journal.Store
	loc     *time.Location
	width   int
	height  int
	loading bool
	err     error
}

// NewDashModel creates a DashModel over an open database.
func NewDashModel(db *sql.DB, loc *time.Location) *DashModel {
	return &DashModel{
		js:      journal.NewStore(db),
		loc:     loc,
		width:   80,
		height:  24,
		loading: true,
	}
}

// RunDash runs the dashboard TUI until the user quits.
func RunDash(db *sql.DB, loc *time.Location) error {
	m := NewDashModel(db, loc)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// --- Bubbletea model interface ---

func (m *DashModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *DashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashDataMsg:
		m.data = DashData(msg)
		m.loading = false
		m.err = nil
		return m, nil

	case dashErrMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.loadData()
		}
	}
	return m, nil
}

func (m *DashModel) View() string {
	if m.loading {
		return "\n  " + ui.Muted.Render("Loading…") + "\n"
	}
	if m.err != nil {
		return "\n  " + ui.Error.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.width < 50 {
		return m.renderMinimal()
	}
	return m.renderStacked()
}

// --- Layout builders ---

func (m *DashModel) renderStacked() string {
	w := m.width - 4
	parts := []string{
		"",
		"  " + ui.Title.Render(ui.IconFire+" ember") +
			ui.Muted.Render("  "+m.data.Today.Time().Format("Monday, January 2")),
		"",
	}
	if len(m.data.Summaries) == 0 {
		parts = append(parts, "  "+ui.Muted.Render("No activity types yet — run `ember types add` first."))
	}
	for _, s := range m.data.Summaries {
		parts = append(parts, renderTypePanel(s, w), "")
	}
	parts = append(parts, renderHelpBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m *DashModel) renderMinimal() string {
	var b strings.Builder
	b.WriteString("\n  " + ui.Title.Render(ui.IconFire+" ember") + "\n\n")
	for _, s := range m.data.Summaries {
		b.WriteString(fmt.Sprintf("  %s %d\n", s.Type.DisplayName(), s.Result.Current))
	}
	b.WriteString("\n  " + ui.Muted.Render("r refresh · q quit") + "\n")
	return b.String()
}

// --- Panel renderers (pure functions — no model state needed) ---

// renderTypePanel renders one activity type's streak card.
func renderTypePanel(s TypeSummary, width int) string {
	var b strings.Builder

	header := "  " + ui.Subtitle.Render(s.Type.DisplayName())
	switch {
	case s.Result.ActiveToday:
		header += "  " + ui.IconFire
	case s.AtRisk:
		header += "  " + ui.Badge.Render("at risk")
	}
	b.WriteString(header + "\n")

	cur := s.Result.Current
	b.WriteString(fmt.Sprintf("    %s %d %s", streakIcon(cur), cur, ui.Plural(cur)))
	if s.Result.Longest > cur {
		b.WriteString(ui.Muted.Render(fmt.Sprintf("  (best %d)", s.Result.Longest)))
	}
	b.WriteString("\n")

	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}
	b.WriteString(fmt.Sprintf("    %s %s\n",
		ui.ProgressBar(s.Progress.Percent, barWidth),
		ui.Muted.Render(fmt.Sprintf("%d to go %s %d", s.Progress.Remaining, ui.IconArrow, s.Progress.Next)),
	))

	if s.OnRung {
		b.WriteString("    " + ui.Success.Render(fmt.Sprintf("%s %d-day milestone reached!", ui.IconTrophy, s.Reached)) + "\n")
	}

	return b.String()
}

func streakIcon(current int) string {
	if current > 0 {
		return ui.IconFire
	}
	return ui.IconCalm
}

// renderHelpBar renders the keyboard shortcuts hint.
func renderHelpBar() string {
	return ui.Muted.Render("  r refresh · q quit")
}

// --- Data loading ---

func (m *DashModel) loadData() tea.Cmd {
	return func() tea.Msg {
		today := dates.Of(time.Now(), m.loc)

		types, err := m.js.ListTypes()
		if err != nil {
			return dashErrMsg{err}
		}

		data := DashData{Today: today}
		for _, at := range types {
			days, err := m.js.DaysAsc(at.Name)
			if err != nil {
				return dashErrMsg{err}
			}
			res, err := streak.Evaluate(days, at.Rules, today)
			if err != nil {
				return dashErrMsg{err}
			}
			risk, err := streak.AtRisk(days, at.Rules, today)
			if err != nil {
				return dashErrMsg{err}
			}
			reached, onRung, progress := res.Milestones()
			data.Summaries = append(data.Summaries, TypeSummary{
				Type:     at,
				Result:   res,
				Progress: progress,
				Reached:  reached,
				OnRung:   onRung,
				AtRisk:   risk,
			})
		}
		return dashDataMsg(data)
	}
}
