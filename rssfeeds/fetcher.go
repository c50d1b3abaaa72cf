package rssfeeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

const defaultPublisher = "News Source"

// FetchFeed retrieves and parses an RSS/Atom feed, returning at most maxCount
// items. Some outlets reject bare clients, so a browser User-Agent is sent.
func FetchFeed(ctx context.Context, client *http.Client, feedURL string, maxCount int) ([]types.RawNewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", config.BrowserUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch feed: status %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	feedPublisher := feed.Title
	if feedPublisher == "" {
		feedPublisher = defaultPublisher
	}

	count := min(len(feed.Items), maxCount)
	items := make([]types.RawNewsItem, 0, count)
	for _, entry := range feed.Items[:count] {
		items = append(items, toRaw(entry, feedPublisher))
	}
	return items, nil
}

func toRaw(entry *gofeed.Item, feedPublisher string) types.RawNewsItem {
	// Use GUID if available, otherwise generate from URL
	id := entry.GUID
	if id == "" && entry.Link != "" {
		id = types.GenerateID(entry.Link)
	}

	var publishedAt time.Time
	if entry.PublishedParsed != nil {
		publishedAt = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		publishedAt = *entry.UpdatedParsed
	}

	summary := entry.Description
	if summary == "" {
		summary = entry.Content
	}

	title, publisher := entry.Title, feedPublisher
	if headline, pub, ok := SplitPublisher(entry.Title); ok {
		title, publisher = headline, pub
	}

	return types.RawNewsItem{
		ID:          id,
		Title:       title,
		Summary:     CleanHTML(summary),
		Publisher:   publisher,
		Link:        entry.Link,
		PublishedAt: publishedAt,
	}
}
