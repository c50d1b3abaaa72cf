package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func fetchNews(client *NewsClient, country string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.GetNews(country)
		return NewsLoadedMsg{Country: country, Response: resp, Err: err}
	}
}

func requestRefresh(client *NewsClient, country string) tea.Cmd {
	return func() tea.Msg {
		return RefreshQueuedMsg{Country: country, Err: client.Refresh(country)}
	}
}
