package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardTab int

const (
	tabUsers dashboardTab = iota
	tabLogs
)

type usersLoadedMsg []UserRow
type logsLoadedMsg []LogRow

type DashboardModel struct {
	Client *Client
	Tab    dashboardTab
	Users  table.Model
	Logs   table.Model
	Err    error
}

func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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
	return t
}

func NewDashboardModel(c *Client, height int) DashboardModel {
	if height < 14 {
		height = 14
	}
	users := newTable([]table.Column{
		{Title: "ID", Width: 6},
		{Title: "Email", Width: 32},
		{Title: "Name", Width: 24},
		{Title: "Role", Width: 10},
		{Title: "Disabled", Width: 8},
	}, height-10)
	logs := newTable([]table.Column{
		{Title: "ID", Width: 6},
		{Title: "Time", Width: 20},
		{Title: "Actor", Width: 28},
		{Title: "Action", Width: 22},
		{Title: "Detail", Width: 30},
	}, height-10)
	return DashboardModel{Client: c, Users: users, Logs: logs}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.fetchUsers, m.fetchLogs)
}

func (m DashboardModel) fetchUsers() tea.Msg {
	users, err := m.Client.Users()
	if err != nil {
		return errMsg(err)
	}
	return usersLoadedMsg(users)
}

func (m DashboardModel) fetchLogs() tea.Msg {
	logs, err := m.Client.Logs(0, 50)
	if err != nil {
		return errMsg(err)
	}
	return logsLoadedMsg(logs)
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if m.Tab == tabUsers {
				m.Tab = tabLogs
			} else {
				m.Tab = tabUsers
			}
		case "r":
			m.Err = nil
			return m, tea.Batch(m.fetchUsers, m.fetchLogs)
		case "q":
			return m, tea.Quit
		}

	case usersLoadedMsg:
		rows := make([]table.Row, 0, len(msg))
		for _, u := range msg {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", u.ID), u.Email, u.FullName, u.Role, fmt.Sprintf("%v", u.Disabled),
			})
		}
		m.Users.SetRows(rows)

	case logsLoadedMsg:
		rows := make([]table.Row, 0, len(msg))
		for _, l := range msg {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", l.ID), l.Timestamp.Format("2006-01-02 15:04:05"), l.Actor, l.Action, l.Detail,
			})
		}
		m.Logs.SetRows(rows)

	case errMsg:
		m.Err = msg
	}

	if m.Tab == tabUsers {
		m.Users, cmd = m.Users.Update(msg)
	} else {
		m.Logs, cmd = m.Logs.Update(msg)
	}
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	if m.Tab == tabUsers {
		b.WriteString(titleStyle.Render("Dashboard - Users") + "\n\n")
		b.WriteString(m.Users.View())
	} else {
		b.WriteString(titleStyle.Render("Dashboard - Audit Log") + "\n\n")
		b.WriteString(m.Logs.View())
	}
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("Tab to switch views, 'r' to refresh, 'q' to quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
