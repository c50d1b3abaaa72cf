package classify

import (
	"math/rand/v2"
	"strings"

	"github.com/johannkk1/MacroCharts/types"
)

// Rand is the slice of math/rand/v2 the classifier draws from.
// *rand.Rand satisfies it; tests pass a seeded one.
type Rand interface {
	IntN(n int) int
	Float64() float64
	NormFloat64() float64
}

// NewRand returns a PCG-backed generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Result is the label set produced for one headline.
type Result struct {
	Category       types.Category  `json:"category"`
	Sentiment      types.Sentiment `json:"sentiment"`
	Impact         int             `json:"impact"`
	SentimentScore int             `json:"sentiment_score"`
}

// Classifier labels headlines using the keyword tables.
// It is not safe for concurrent use because of the shared random source.
type Classifier struct {
	rng Rand
}

// New creates a classifier drawing impact jitter from rng.
func New(rng Rand) *Classifier {
	return &Classifier{rng: rng}
}

// Classify assigns category, sentiment and impact to a headline.
func (c *Classifier) Classify(title string) Result {
	if title == "" {
		return Result{Category: types.CategoryGeneral, Sentiment: types.SentimentNeutral}
	}

	lower := strings.ToLower(title)

	best := types.CategoryGeneral
	bestHits := 0
	categoryHits := 0
	for _, cat := range categoryTable {
		hits := countHits(lower, cat.Keywords)
		categoryHits += hits
		if hits > bestHits {
			best = cat.Category
			bestHits = hits
		}
	}

	bull := countHits(lower, bullishWords)
	bear := countHits(lower, bearishWords)

	res := Result{Category: best, Sentiment: types.SentimentNeutral}
	switch {
	case bull > bear:
		res.Sentiment = types.SentimentPositive
		res.SentimentScore = 1
	case bear > bull:
		res.Sentiment = types.SentimentNegative
		res.SentimentScore = -1
	}

	total := categoryHits + bull + bear
	impact := min(10, total*2+c.rng.IntN(4)+1)
	res.Impact = max(3, impact)
	return res
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			n++
		}
	}
	return n
}
