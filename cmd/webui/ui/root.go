package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
)

type RootModel struct {
	State     state
	Client    *Client
	Login     LoginModel
	Dashboard DashboardModel
	Quitting  bool
	height    int
}

func NewRootModel(baseURL string) RootModel {
	c := NewClient(baseURL)
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
		height: 24,
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if m.State == stateDashboard {
			m.Dashboard.Users.SetHeight(msg.Height - 10)
			m.Dashboard.Logs.SetHeight(msg.Height - 10)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginSuccessMsg:
		m.State = stateDashboard
		m.Dashboard = NewDashboardModel(m.Client, m.height)
		return m, m.Dashboard.Init()
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateDashboard:
		return m.Dashboard.View()
	}
	return "Unknown state"
}
