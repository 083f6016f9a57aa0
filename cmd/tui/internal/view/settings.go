package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kcherng/ledgerkit/internal/ledger"
)

type settingsState int

const (
	settingsStateBrowse settingsState = iota
	settingsStateAddCard
	settingsStateAddMember
)

type settingsRow struct {
	kind string // "card" or "member"
	id   uuid.UUID
}

// SettingsModel manages credit cards and family members.
type SettingsModel struct {
	CommonModel
	svc *ledger.Service

	state   settingsState
	table   table.Model
	rows    []settingsRow
	form    *huh.Form
	loading bool
	err     error
	status  string

	// Form bindings
	formName string
	formDay  string
}

func NewSettingsModel(svc *ledger.Service) SettingsModel {
	columns := []table.Column{
		{Title: "Kind", Width: 8},
		{Title: "Name", Width: 24},
		{Title: "Detail", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return SettingsModel{svc: svc, table: t, loading: true}
}

func (m SettingsModel) Title() string { return "Cards & Members" }
func (m SettingsModel) ShortHelp() string {
	if m.state != settingsStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | c: add card | p: add member | d: delete | r: refresh"
}

func (m SettingsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		m.loading = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.setRows(msg.cards, msg.members)

		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = settingsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	switch m.state {
	case settingsStateBrowse:
		return m.updateBrowse(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m SettingsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "c":
			m.formName = ""
			m.formDay = ""
			m.form = m.cardForm()
			m.state = settingsStateAddCard
			m.table.Blur()

			return m, m.form.Init()
		case "p":
			m.formName = ""
			m.form = m.memberForm()
			m.state = settingsStateAddMember
			m.table.Blur()

			return m, m.form.Init()
		case "d":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = settingsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m SettingsModel) cardForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Card name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Title("Billing day (1-31)").
				Value(&m.formDay).
				Validate(func(s string) error {
					day, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || day < 1 || day > 31 {
						return fmt.Errorf("must be 1-31")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m SettingsModel) memberForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Member name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m *SettingsModel) setRows(cards []ledger.CreditCard, members []ledger.FamilyMember) {
	m.rows = m.rows[:0]

	rows := make([]table.Row, 0, len(cards)+len(members))

	for _, card := range cards {
		m.rows = append(m.rows, settingsRow{kind: "card", id: card.ID})
		rows = append(rows, table.Row{"card", card.Name, fmt.Sprintf("bills on day %d", card.BillingDay)})
	}

	for _, member := range members {
		detail := ""
		if member.IsDefault {
			detail = "default payer"
		}

		m.rows = append(m.rows, settingsRow{kind: "member", id: member.ID})
		rows = append(rows, table.Row{"member", member.Name, detail})
	}

	m.table.SetRows(rows)
}

func (m SettingsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state != settingsStateBrowse && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type settingsLoadedMsg struct {
	cards   []ledger.CreditCard
	members []ledger.FamilyMember
	err     error
}

func (m SettingsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cards, err := m.svc.CreditCards(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}

		members, err := m.svc.FamilyMembers(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}

		return settingsLoadedMsg{cards: cards, members: members}
	}
}

type settingsSavedMsg struct {
	err error
}

func (m SettingsModel) saveCmd() tea.Cmd {
	name := m.formName
	dayStr := m.formDay
	addCard := m.state == settingsStateAddCard

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if addCard {
			day, _ := strconv.Atoi(strings.TrimSpace(dayStr))
			_, err := m.svc.AddCreditCard(ctx, name, day)

			return settingsSavedMsg{err: err}
		}

		_, err := m.svc.AddFamilyMember(ctx, name)

		return settingsSavedMsg{err: err}
	}
}

func (m SettingsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}

	row := m.rows[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error
		if row.kind == "card" {
			err = m.svc.RemoveCreditCard(ctx, row.id)
		} else {
			err = m.svc.RemoveFamilyMember(ctx, row.id)
		}

		return settingsSavedMsg{err: err}
	}
}
