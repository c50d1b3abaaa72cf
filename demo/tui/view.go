package tui

import (
	"fmt"
	"strings"
)

const barWidth = 20

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📊 Macro Scorecard"))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	if m.Response != nil && !m.Loading && m.Err == nil {
		b.WriteString(BoxStyle.Render(m.scorecard()))
		b.WriteString("\n")
		b.WriteString(m.headlines())
		b.WriteString("\n")
	}

	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, l := range m.Logs {
			b.WriteString(InfoStyle.Render(fmt.Sprintf("   [%s] %s", l.Timestamp.Format("15:04:05"), l.Message)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render(TextFooter))
	return b.String()
}

func (m Model) tabs() string {
	parts := make([]string, len(m.Countries))
	for i, c := range m.Countries {
		if i == m.Index {
			parts[i] = HighlightStyle.Render(c)
		} else {
			parts[i] = InfoStyle.Render(c)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) scorecard() string {
	var b strings.Builder
	for _, h := range m.Response.Hexagon.Hexagons {
		fmt.Fprintf(&b, "%-20s %s %5.1f\n", h.Label, Bar(h.Score, barWidth), h.Score)
	}

	s := m.Response.Summary
	fmt.Fprintf(&b, "\nSentiment: %s (%.1f)  Articles: %d\n", s.MarketSentiment, s.SentimentScore, s.ArticleCount)
	if s.Verdict != "" {
		b.WriteString(s.Verdict)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) headlines() string {
	if len(m.Response.News) == 0 {
		return InfoStyle.Render(TextNoHeadlines)
	}
	var b strings.Builder
	for i, n := range m.Response.News {
		if i == 5 {
			break
		}
		mark := "•"
		switch n.SentimentScore {
		case 1:
			mark = StatusStyle.Render("▲")
		case -1:
			mark = ErrorStyle.Render("▼")
		}
		fmt.Fprintf(&b, " %s %s %s\n", mark, n.Title, InfoStyle.Render("("+n.Publisher+")"))
	}
	return b.String()
}

// Bar renders score (0-100) as a fixed-width block bar.
func Bar(score float64, width int) string {
	filled := int(score/100*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
