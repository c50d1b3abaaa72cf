package tui

import "github.com/johannkk1/MacroCharts/types"

// NewsLoadedMsg carries the result of a GetNews call.
type NewsLoadedMsg struct {
	Country  string
	Response *types.NewsResponse
	Err      error
}

// RefreshQueuedMsg is sent once the server accepted a refresh.
type RefreshQueuedMsg struct {
	Country string
	Err     error
}
