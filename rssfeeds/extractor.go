package rssfeeds

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

const maxSummaryRunes = 400

// Extractor enriches thin feed summaries with the article's own excerpt.
type Extractor struct {
	Workers int
	// Timeout caps each page fetch; the caller's context still applies.
	Timeout time.Duration
	Client  *http.Client
}

// NewExtractor returns an Extractor with the default pool size and timeout.
func NewExtractor() *Extractor {
	return &Extractor{Workers: config.ExtractorWorkers, Timeout: config.ExtractorTimeout}
}

// EnrichAll fetches every item's page with a worker pool and replaces the
// summary when the extracted excerpt is longer. Failures leave the item as
// it was. Once ctx is done the remaining items are skipped.
func (e *Extractor) EnrichAll(ctx context.Context, items []types.RawNewsItem) {
	workers := max(1, e.Workers)
	var wg sync.WaitGroup
	itemChan := make(chan int, len(items))

	// Start worker pool
	for w := 0; w < workers; w++ {
		go func(workerID int) {
			for i := range itemChan {
				if err := e.enrich(ctx, &items[i]); err != nil {
					log.Debug().Err(err).Int("worker", workerID).Str("url", items[i].Link).Msg("extraction skipped")
				}
				wg.Done()
			}
		}(w)
	}

	for i := range items {
		wg.Add(1)
		itemChan <- i
	}

	wg.Wait()
	close(itemChan)
}

func (e *Extractor) enrich(ctx context.Context, item *types.RawNewsItem) error {
	if item.Link == "" {
		return errors.New("item URL is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pageURL, err := url.Parse(item.Link)
	if err != nil {
		return fmt.Errorf("invalid item URL: %w", err)
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.Link, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", config.BrowserUserAgent)

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	excerpt := strings.TrimSpace(article.Excerpt)
	if excerpt == "" {
		excerpt = strings.TrimSpace(article.TextContent)
	}
	excerpt = clip(strings.Join(strings.Fields(excerpt), " "), maxSummaryRunes)
	if len(excerpt) > len(item.Summary) {
		item.Summary = excerpt
	}
	return nil
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
