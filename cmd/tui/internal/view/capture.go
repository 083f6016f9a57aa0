package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/split"
)

type captureState int

const (
	captureStateLoading captureState = iota
	captureStateForm
	captureStateSaving
	captureStateDone
)

// CaptureModel is the manual entry form: one item, its category, an optional
// credit card, and the payers splitting the cost.
type CaptureModel struct {
	CommonModel
	svc *ledger.Service

	state   captureState
	form    *huh.Form
	err     error
	created *ledger.Transaction

	categories []ledger.CategoryRecord
	cards      []ledger.CreditCard
	members    []ledger.FamilyMember

	// Form bindings
	formType     string
	formName     string
	formAmount   string
	formCategory string
	formNote     string
	formCard     string
	formPayers   []string
}

func NewCaptureModel(svc *ledger.Service) CaptureModel {
	return CaptureModel{svc: svc, state: captureStateLoading}
}

func (m CaptureModel) Title() string { return "Add Transaction" }
func (m CaptureModel) ShortHelp() string {
	return "Navigate form | Esc: back"
}

func (m CaptureModel) Init() tea.Cmd {
	return m.loadRefsCmd()
}

func (m CaptureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case captureRefsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.categories = msg.categories
		m.cards = msg.cards
		m.members = msg.members
		m.buildForm()
		m.state = captureStateForm

		return m, m.form.Init()

	case captureSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = captureStateForm

			return m, nil
		}

		m.created = msg.tx
		m.state = captureStateDone

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || m.state == captureStateDone {
			return m, Back
		}
	}

	if m.state != captureStateForm || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = captureStateSaving

	return m, m.saveCmd()
}

func (m *CaptureModel) buildForm() {
	m.formType = string(ledger.TypeExpense)

	categoryOptions := make([]huh.Option[string], 0, len(m.categories))
	for _, rec := range m.categories {
		categoryOptions = append(categoryOptions, huh.NewOption(rec.Name, rec.ID))
	}

	cardOptions := []huh.Option[string]{huh.NewOption("Cash", "")}
	for _, card := range m.cards {
		cardOptions = append(cardOptions, huh.NewOption(card.Name, card.ID.String()))
	}

	def, haveDef := ledger.DefaultMember(m.members)

	payerOptions := make([]huh.Option[string], 0, len(m.members))
	for _, member := range m.members {
		opt := huh.NewOption(member.Name, member.ID.String())
		if haveDef && member.ID == def.ID {
			opt = opt.Selected(true)
		}

		payerOptions = append(payerOptions, opt)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", string(ledger.TypeExpense)),
					huh.NewOption("Income", string(ledger.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewInput().
				Title("Item").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("item name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if amount <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&m.formCategory),

			huh.NewInput().
				Title("Note").
				Value(&m.formNote),

			huh.NewSelect[string]().
				Title("Payment").
				Options(cardOptions...).
				Value(&m.formCard),

			huh.NewMultiSelect[string]().
				Title("Payers").
				Options(payerOptions...).
				Value(&m.formPayers),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m CaptureModel) View() string {
	switch m.state {
	case captureStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	case captureStateSaving:
		return lipgloss.NewStyle().Padding(2).Render("Saving...")
	case captureStateDone:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Saved %s\n\nPress any key to go back.", m.created.Title()),
		)
	}

	content := m.form.View()
	if m.err != nil {
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

type captureRefsMsg struct {
	categories []ledger.CategoryRecord
	cards      []ledger.CreditCard
	members    []ledger.FamilyMember
	err        error
}

func (m CaptureModel) loadRefsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		categories, err := m.svc.Categories(ctx)
		if err != nil {
			return captureRefsMsg{err: err}
		}

		cards, err := m.svc.CreditCards(ctx)
		if err != nil {
			return captureRefsMsg{err: err}
		}

		members, err := m.svc.FamilyMembers(ctx)
		if err != nil {
			return captureRefsMsg{err: err}
		}

		return captureRefsMsg{categories: categories, cards: cards, members: members}
	}
}

type captureSavedMsg struct {
	tx  *ledger.Transaction
	err error
}

func (m CaptureModel) saveCmd() tea.Cmd {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)

	var payers []split.Payer

	for _, idStr := range m.formPayers {
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}

		for _, member := range m.members {
			if member.ID == id {
				payers = append(payers, split.Payer{ID: member.ID, Name: member.Name})
				break
			}
		}
	}

	params := ledger.CreateParams{
		Type:         ledger.Type(m.formType),
		Note:         m.formNote,
		CreditCardID: m.formCard,
		Items: []ledger.CaptureItem{{
			Name:       m.formName,
			Amount:     amount,
			CategoryID: m.formCategory,
			Payers:     payers,
		}},
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.svc.Create(ctx, params)

		return captureSavedMsg{tx: tx, err: err}
	}
}
