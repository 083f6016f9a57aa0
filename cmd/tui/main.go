package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/kcherng/ledgerkit/cmd/tui/internal/view"
	"github.com/kcherng/ledgerkit/internal/config"
	"github.com/kcherng/ledgerkit/internal/dashboard"
	"github.com/kcherng/ledgerkit/internal/database"
	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/ledger/store"
)

type model struct {
	ledgerService    *ledger.Service
	dashboardService *dashboard.Service

	currentView View

	dashboardView view.DashboardModel
	timelineView  view.TimelineModel
	captureView   view.CaptureModel
	settingsView  view.SettingsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewTimeline  View = 2
	ViewCapture   View = 3
	ViewSettings  View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ledgerSvc := ledger.NewService(store.New(db))
	dashboardSvc := dashboard.NewService(ledgerSvc)

	return model{
		ledgerService:    ledgerSvc,
		dashboardService: dashboardSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(dashboardSvc),
		timelineView:     view.NewTimelineModel(dashboardSvc),
		captureView:      view.NewCaptureModel(ledgerSvc),
		settingsView:     view.NewSettingsModel(ledgerSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.dashboardService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTimeline
				m.timelineView = view.NewTimelineModel(m.dashboardService)

				return m, m.timelineView.Init()
			case "3":
				m.currentView = ViewCapture
				m.captureView = view.NewCaptureModel(m.ledgerService)

				return m, m.captureView.Init()
			case "4":
				m.currentView = ViewSettings
				m.settingsView = view.NewSettingsModel(m.ledgerService)

				return m, m.settingsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTimeline:
		var newModel tea.Model
		newModel, cmd = m.timelineView.Update(msg)
		m.timelineView = newModel.(view.TimelineModel)
	case ViewCapture:
		var newModel tea.Model
		newModel, cmd = m.captureView.Update(msg)
		m.captureView = newModel.(view.CaptureModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ledgerkit TUI\n\n" +
				"1. Dashboard\n" +
				"2. Timeline\n" +
				"3. Add Transaction\n" +
				"4. Cards & Members\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTimeline:
		return m.timelineView.View()
	case ViewCapture:
		return m.captureView.View()
	case ViewSettings:
		return m.settingsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
