package textfeatures

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/johannkk1/MacroCharts/types"
)

var (
	percentRe   = regexp.MustCompile(`(\d+\.?\d*)\s*%`)
	basisRe     = regexp.MustCompile(`(?i)(\d+)\s*(?:bps|basis\s+points?)`)
	rateRe      = regexp.MustCompile(`(?i)(?:rate|yield)(?:\s+of|\s+to|\s+at)?\s+(\d+\.?\d*)\s*%`)
	halfPointRe = regexp.MustCompile(`half.point|0\.5`)
	quarterRe   = regexp.MustCompile(`quarter.point|0\.25`)
)

var (
	cutPhrases  = []string{"rate cut", "cut rates", "cuts rates", "lowers rates", "reduces rates"}
	hikePhrases = []string{"rate hike", "raised rates", "raises rates", "increase rates", "increases rates", "lifts rates"}
	qePhrases   = []string{"quantitative easing", " qe ", "bond buying"}
	qtPhrases   = []string{"quantitative tightening", " qt ", "balance sheet reduction"}
)

// Numbers holds the numeric facts pulled out of free text, in match order.
type Numbers struct {
	Percentages []float64 `json:"percentages"`
	BasisPoints []int     `json:"basis_points"`
	Rates       []float64 `json:"rates"`
}

// ExtractNumbers scans text for percentages, basis-point figures and
// rate/yield levels. It never fails; malformed figures are skipped.
func ExtractNumbers(text string) Numbers {
	n := Numbers{
		Percentages: []float64{},
		BasisPoints: []int{},
		Rates:       []float64{},
	}

	for _, m := range percentRe.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			n.Percentages = append(n.Percentages, v)
		}
	}
	for _, m := range basisRe.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.Atoi(m[1]); err == nil {
			n.BasisPoints = append(n.BasisPoints, v)
		}
	}
	for _, m := range rateRe.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			n.Rates = append(n.Rates, v)
		}
	}
	return n
}

// ExtractPolicyActions turns central-bank wording in each item into short
// action labels such as "Rate cut (25bps)". Output follows item order.
func ExtractPolicyActions(items []types.NewsItem) []string {
	actions := []string{}
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Summary)

		switch {
		case ContainsAny(text, cutPhrases):
			actions = append(actions, describeMove("Rate cut", text))
		case ContainsAny(text, hikePhrases):
			actions = append(actions, describeMove("Rate hike", text))
		}

		if ContainsAny(text, qePhrases) {
			actions = append(actions, "Quantitative Easing program")
		}
		if ContainsAny(text, qtPhrases) {
			actions = append(actions, "Quantitative Tightening active")
		}
	}
	return actions
}

// describeMove picks the most specific size figure available for a rate move.
func describeMove(kind, text string) string {
	nums := ExtractNumbers(text)
	switch {
	case len(nums.BasisPoints) > 0:
		return fmt.Sprintf("%s (%dbps)", kind, nums.BasisPoints[0])
	case len(nums.Percentages) > 0:
		return fmt.Sprintf("%s (%s%%)", kind, FormatDecimal(nums.Percentages[0]))
	case halfPointRe.MatchString(text):
		return kind + " (50bps)"
	case quarterRe.MatchString(text):
		return kind + " (25bps)"
	default:
		return kind + " announced"
	}
}

// ContainsAny reports whether text contains at least one of the phrases.
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// CountContaining returns how many phrases occur in text.
func CountContaining(text string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			n++
		}
	}
	return n
}

// FormatDecimal prints v with the shortest exact representation but always
// keeps one decimal place, so 5 renders as "5.0" and 0.25 as "0.25".
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
