package rssfeeds

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanHTML strips markup from a feed summary and decodes entities. Input
// that does not parse is returned trimmed but otherwise untouched.
func CleanHTML(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return strings.TrimSpace(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(doc.Text())
}

// SplitPublisher splits Google News style "Headline - Publisher" titles on
// the last separator. ok is false when there is none.
func SplitPublisher(title string) (headline, publisher string, ok bool) {
	i := strings.LastIndex(title, " - ")
	if i < 0 {
		return title, "", false
	}
	return title[:i], title[i+len(" - "):], true
}
