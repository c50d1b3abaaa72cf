package tui

// UI Text Constants
const (
	TextFooter      = "←/→ switch country | r refresh | enter reload | q quit"
	TextLoading     = "⏳ Running pipeline..."
	TextNoHeadlines = "No headlines for this country."
)
