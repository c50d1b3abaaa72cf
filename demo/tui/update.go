package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case NewsLoadedMsg:
		return m.handleNewsLoaded(msg)
	case RefreshQueuedMsg:
		return m.handleRefreshQueued(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "right", "l", "tab":
		return m.selectCountry(m.Index + 1)
	case "left", "h", "shift+tab":
		return m.selectCountry(m.Index - 1)
	case "enter":
		return m.selectCountry(m.Index)
	case "r", "R":
		if m.Loading {
			return m, nil
		}
		m = m.AddLog(fmt.Sprintf("Refresh requested for %s", m.Country()))
		return m, requestRefresh(m.Client, m.Country())
	}
	return m, nil
}

func (m Model) selectCountry(i int) (tea.Model, tea.Cmd) {
	n := len(m.Countries)
	m.Index = ((i % n) + n) % n
	m.Loading = true
	m.Err = nil
	return m, fetchNews(m.Client, m.Country())
}

// handleNewsLoaded ignores responses for a country no longer selected.
func (m Model) handleNewsLoaded(msg NewsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Country != m.Country() {
		return m, nil
	}
	m.Loading = false
	if msg.Err != nil {
		m.Err = msg.Err
		m = m.AddLog(fmt.Sprintf("Failed to load %s", msg.Country))
		return m, nil
	}
	m.Err = nil
	m.Response = msg.Response
	m = m.AddLog(fmt.Sprintf("Loaded %s: %d headlines", msg.Country, len(msg.Response.News)))
	return m, nil
}

func (m Model) handleRefreshQueued(msg RefreshQueuedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m = m.AddLog(fmt.Sprintf("Refresh failed: %v", msg.Err))
		return m, nil
	}
	m = m.AddLog(fmt.Sprintf("Refresh accepted for %s", msg.Country))
	return m, nil
}
