package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johannkk1/MacroCharts/types"
)

// DefaultCountries are the codes the viewer cycles through.
var DefaultCountries = []string{"US", "DE", "UK", "CN", "JP", "Global"}

// LogEntry represents a single log line with timestamp
type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// Model is the scorecard viewer state.
type Model struct {
	Client    *NewsClient
	Countries []string
	Index     int

	Loading  bool
	Response *types.NewsResponse
	Err      error
	Logs     []LogEntry

	now func() time.Time
}

// NewModel creates a viewer against the API at baseURL.
func NewModel(baseURL string, countries []string) Model {
	if len(countries) == 0 {
		countries = DefaultCountries
	}
	return Model{
		Client:    NewNewsClient(baseURL),
		Countries: countries,
		Loading:   true,
		Logs:      make([]LogEntry, 0),
		now:       time.Now,
	}
}

// Country is the code currently shown.
func (m Model) Country() string {
	return m.Countries[m.Index]
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return fetchNews(m.Client, m.Country())
}

// AddLog appends a message, keeping the last five.
func (m Model) AddLog(msg string) Model {
	now := time.Now
	if m.now != nil {
		now = m.now
	}
	m.Logs = append(m.Logs, LogEntry{Timestamp: now(), Message: msg})
	if len(m.Logs) > 5 {
		m.Logs = m.Logs[len(m.Logs)-5:]
	}
	return m
}

// getStateText returns the status line.
func (m Model) getStateText() string {
	switch {
	case m.Loading:
		return StatusStyle.Render(TextLoading)
	case m.Err != nil:
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err))
	case m.Response == nil:
		return InfoStyle.Render("No data yet")
	}
	c := m.Response.Hexagon.Center
	return HighlightStyle.Render(fmt.Sprintf("%s %.1f", c.Label, c.Score)) + "  " + regimeStyle(c.Regime).Render(string(c.Regime))
}
