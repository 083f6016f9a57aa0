package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kcherng/ledgerkit/internal/dashboard"
	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/report"
)

const barWidth = 24

// DashboardModel shows the monthly category report: totals, proportion bars,
// month-over-month change, remaining budget, and the billing rows.
type DashboardModel struct {
	CommonModel
	svc *dashboard.Service

	query   dashboard.Query
	view    *dashboard.View
	stale   bool
	loading bool
	err     error
}

func NewDashboardModel(svc *dashboard.Service) DashboardModel {
	now := time.Now()

	return DashboardModel{
		svc: svc,
		query: dashboard.Query{
			Year:  now.Year(),
			Month: now.Month(),
			Type:  ledger.TypeExpense,
		},
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	return "Esc: back | ←/→: month | t: income/expense | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.stale = false

		if msg.err != nil {
			// Keep showing the last good view if one exists.
			if last := m.svc.Last(); last != nil && last.Query == m.query {
				v := dashboard.Assemble(last)
				m.view = &v
				m.stale = true

				return m, nil
			}

			m.err = msg.err

			return m, nil
		}

		m.err = nil
		m.view = &msg.view

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "left", "h":
			m.query.Year, m.query.Month = prevMonth(m.query.Year, m.query.Month)
			m.loading = true

			return m, m.loadCmd()
		case "right", "l":
			m.query.Year, m.query.Month = nextMonth(m.query.Year, m.query.Month)
			m.loading = true

			return m, m.loadCmd()
		case "t":
			if m.query.Type == ledger.TypeExpense {
				m.query.Type = ledger.TypeIncome
			} else {
				m.query.Type = ledger.TypeExpense
			}

			m.loading = true

			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.view == nil {
		return lipgloss.NewStyle().Padding(2).Render("No data yet. Press r to refresh.")
	}

	var b strings.Builder

	header := fmt.Sprintf("%d/%d · %s · %s", m.query.Year, int(m.query.Month), m.query.Type, m.view.TotalLabel)
	if m.view.Report.Change != "" {
		header += fmt.Sprintf(" (%s vs last month)", m.view.Report.Change)
	}

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n")

	if m.view.RemainingLabel != "" {
		b.WriteString(fmt.Sprintf("Remaining budget: %s\n", m.view.RemainingLabel))
	}

	if m.stale {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("(stale: last refresh failed)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	for _, stat := range m.view.Report.CategoryStats {
		b.WriteString(renderStat(stat))
		b.WriteString("\n")
	}

	if len(m.view.Billing) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Billing"))
		b.WriteString("\n")

		for _, row := range m.view.Billing {
			b.WriteString(fmt.Sprintf("  %-14s %-14s %s\n", row.Name, row.Period, report.Currency(row.Amount)))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func renderStat(stat report.CategoryStat) string {
	filled := int(stat.Proportion * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + stat.Category.Color()))

	return fmt.Sprintf("%-4s %s %8s  %4.0f%%  %s",
		stat.Category.Label(),
		barStyle.Render(bar),
		report.Currency(stat.Amount),
		stat.Proportion*100,
		stat.Change,
	)
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}

	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}

	return year, month + 1
}

type dashboardLoadedMsg struct {
	view dashboard.View
	err  error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snap, err := m.svc.Refresh(ctx, query)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{view: dashboard.Assemble(snap)}
	}
}
