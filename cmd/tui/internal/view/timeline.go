package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kcherng/ledgerkit/internal/dashboard"
	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/report"
)

// TimelineModel lists the month's transactions grouped by day and category.
type TimelineModel struct {
	CommonModel
	svc *dashboard.Service

	query   dashboard.Query
	table   table.Model
	days    []report.DateGroup
	loading bool
	err     error
}

func NewTimelineModel(svc *dashboard.Service) TimelineModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Category", Width: 10},
		{Title: "Items", Width: 30},
		{Title: "Total", Width: 10},
		{Title: "Payment", Width: 12},
		{Title: "Payer", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	now := time.Now()

	return TimelineModel{
		svc:   svc,
		table: t,
		query: dashboard.Query{
			Year:  now.Year(),
			Month: now.Month(),
			Type:  ledger.TypeExpense,
		},
	}
}

func (m TimelineModel) Title() string { return "Timeline" }
func (m TimelineModel) ShortHelp() string {
	return "Esc: back | ←/→: month | r: refresh"
}

func (m TimelineModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TimelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
		m.loading = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.days = msg.days
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "left":
			m.query.Year, m.query.Month = prevMonth(m.query.Year, m.query.Month)
			m.loading = true

			return m, m.loadCmd()
		case "right":
			m.query.Year, m.query.Month = nextMonth(m.query.Year, m.query.Month)
			m.loading = true

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *TimelineModel) refreshTable() {
	var rows []table.Row

	for _, day := range m.days {
		for i, group := range day.Groups {
			date := ""
			if i == 0 {
				date = day.DisplayDate
			}

			names := make([]string, 0, len(group.Items))
			for _, item := range group.Items {
				names = append(names, item.Name)
			}

			rows = append(rows, table.Row{
				date,
				group.Category.Label(),
				strings.Join(names, ", "),
				report.Currency(group.Total),
				group.PaymentMethod,
				group.PayerName,
			})
		}
	}

	m.table.SetRows(rows)
}

func (m TimelineModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading timeline...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Timeline %d/%d", m.query.Year, int(m.query.Month))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

type timelineLoadedMsg struct {
	days []report.DateGroup
	err  error
}

func (m TimelineModel) loadCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snap, err := m.svc.Refresh(ctx, query)
		if err != nil {
			return timelineLoadedMsg{err: err}
		}

		return timelineLoadedMsg{days: dashboard.Assemble(snap).Timeline}
	}
}
