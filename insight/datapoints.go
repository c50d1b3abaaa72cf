package insight

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/johannkk1/MacroCharts/textfeatures"
	"github.com/johannkk1/MacroCharts/types"
)

var (
	centralBankRe = regexp.MustCompile(`(?i)\b(Fed|Federal Reserve|ECB|European Central Bank|BOJ|Bank of Japan|BOE|Bank of England|PBOC|SNB|RBA|BoC)\b`)
	meetingDateRe = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}(?:,?\s+\d{4})?\b`)
	voteRe        = regexp.MustCompile(`(?i)(unanimous|(\d+)-(\d+)\s*vote|split\s*vote)`)

	coreCPIRe     = regexp.MustCompile(`(?i)core\s+(?:cpi|inflation|pce)[:\s]+([0-9.]+)%`)
	headlineCPIRe = regexp.MustCompile(`(?i)(?:cpi|inflation|headline)[:\s]+([0-9.]+)%`)
	yoyRe         = regexp.MustCompile(`(?i)([0-9.]+)%\s*(?:year.over.year|yoy|y/y|annually)`)
	momRe         = regexp.MustCompile(`(?i)([0-9.]+)%\s*(?:month.over.month|mom|m/m|monthly)`)
	gdpRe         = regexp.MustCompile(`(?i)GDP[:\s]+([+-]?[0-9.]+)%`)
	unemployRe    = regexp.MustCompile(`(?i)unemployment[:\s]+([0-9.]+)%`)
	recessionRe   = regexp.MustCompile(`(?i)\b(recession|downturn|contraction|negative growth)\b`)
)

var (
	hawkishWords = []string{"hike", "hawkish", "tighten", "restrictive"}
	dovishWords  = []string{"cut", "dovish", "ease", "accommodative"}

	inflationWords  = []string{"inflation"}
	growthWords     = []string{"gdp", "growth", "expansion", "recession"}
	employmentWords = []string{"jobs", "employment", "unemployment", "payroll"}
)

// inflationTarget is the reference level most central banks aim for.
const inflationTarget = 2.0

// DataPoints returns the factual bullet list for a dimension.
func DataPoints(d types.Dimension, score float64, items []types.NewsItem) []string {
	switch d {
	case types.DimensionMonetary:
		return MonetaryDataPoints(items, score)
	case types.DimensionInflation:
		return InflationDataPoints(items, score)
	}

	info, ok := Info(d)
	if !ok {
		return nil
	}
	n := CountMentions(items, info.Coverage)
	switch d {
	case types.DimensionCurrency:
		return []string{
			"FX Sentiment: " + band(score, "Strong", "Weak", "Stable"),
			fmt.Sprintf("Currency News Coverage: %d mentions", n),
		}
	case types.DimensionPolitical:
		stability := "Elevated Risk"
		switch {
		case score > 60:
			stability = "High"
		case score > 40:
			stability = "Moderate"
		}
		return []string{
			"Political Stability: " + stability,
			fmt.Sprintf("Policy Events Tracked: %d developments", n),
		}
	case types.DimensionSentiment:
		return []string{
			"Risk Appetite: " + band(score, "Risk-On", "Risk-Off", "Neutral"),
			fmt.Sprintf("Market Sentiment Coverage: %d articles", n),
		}
	case types.DimensionFiscal:
		return []string{
			"Fiscal Condition: " + band(score, "Strong", "Concerning", "Moderate"),
			fmt.Sprintf("Fiscal Policy News: %d mentions", n),
		}
	case types.DimensionExternal:
		return []string{
			"External Risk: " + band(score, "Low", "High", "Moderate"),
			fmt.Sprintf("Trade/Sanction News: %d events", n),
		}
	}
	return nil
}

// band picks high above 60, low below 40, mid otherwise.
func band(score float64, high, low, mid string) string {
	switch {
	case score > 60:
		return high
	case score < 40:
		return low
	}
	return mid
}

// MonetaryDataPoints pulls policy actions, rates, votes and guidance out of
// the batch text.
func MonetaryDataPoints(items []types.NewsItem, score float64) []string {
	text := joinText(items)
	lower := strings.ToLower(text)
	numbers := textfeatures.ExtractNumbers(text)
	actions := textfeatures.ExtractPolicyActions(items)

	points := []string{}

	if len(actions) > 0 {
		summary := actions[0]
		if len(actions) > 1 {
			summary = fmt.Sprintf("%d policy moves", len(actions))
		}
		points = append(points, "📅 **Latest Action**: "+summary)
		if date := meetingDateRe.FindString(text); date != "" {
			points = append(points, "🗓️ **Meeting Date**: "+date)
		}
		if vote := voteRe.FindStringSubmatch(text); vote != nil {
			switch {
			case strings.Contains(strings.ToLower(vote[1]), "unanimous"):
				points = append(points, "✅ **Vote**: Unanimous consensus")
			case vote[2] != "":
				points = append(points, fmt.Sprintf("🗳️ **Vote**: %s-%s split decision", vote[2], vote[3]))
			}
		}
	} else {
		stance := "Neutral (balanced)"
		switch {
		case score > 60:
			stance = "Dovish (supportive)"
		case score < 40:
			stance = "Hawkish (restrictive)"
		}
		points = append(points, "📊 **Policy Stance**: "+stance)
	}

	if rates := numbers.Rates; len(rates) > 0 {
		latest := rates[len(rates)-1]
		if len(rates) > 1 {
			change := latest - rates[len(rates)-2]
			arrow, direction := "→", "no change"
			switch {
			case change > 0:
				arrow, direction = "↗", "hawkish tightening"
			case change < 0:
				arrow, direction = "↘", "dovish easing"
			}
			points = append(points, fmt.Sprintf("💰 **Policy Rate**: %s%% (%s %.2fpp %s)",
				textfeatures.FormatDecimal(latest), arrow, math.Abs(change), direction))
			switch {
			case latest > 5.0:
				points = append(points, fmt.Sprintf("📈 **Context**: Rate at multi-year high (%s%% level)", textfeatures.FormatDecimal(latest)))
			case latest < 1.0:
				points = append(points, fmt.Sprintf("📉 **Context**: Near zero-rate environment (%s%%)", textfeatures.FormatDecimal(latest)))
			}
		} else {
			points = append(points, fmt.Sprintf("💰 **Current Rate**: %s%%", textfeatures.FormatDecimal(latest)))
		}
	}

	if bps := numbers.BasisPoints; len(bps) > 0 {
		total := 0
		for _, b := range bps {
			total += b
		}
		cycle := "easing"
		if total > 0 {
			cycle = "tightening"
		}
		avg := float64(total) / float64(len(bps))
		points = append(points, fmt.Sprintf("📈 **Cumulative Moves**: %dbps %s (avg %.0fbps per move)", total, cycle, avg))
	}

	var guidance []string
	if strings.Contains(lower, "data-dependent") || strings.Contains(lower, "data dependent") {
		guidance = append(guidance, "Data-dependent approach")
	}
	if strings.Contains(lower, "patient") && (strings.Contains(lower, "policy") || strings.Contains(lower, "approach")) {
		guidance = append(guidance, "Patient stance indicated")
	}
	if strings.Contains(lower, "restrictive") {
		guidance = append(guidance, "Maintaining restrictive conditions")
	}
	if strings.Contains(lower, "premature") && strings.Contains(lower, "cut") {
		guidance = append(guidance, "Premature to cut rates")
	}
	if len(guidance) > 0 {
		points = append(points, "🎯 **Forward Guidance**: "+strings.Join(guidance, " | "))
	}

	if banks := uniqueMatches(centralBankRe, text); len(banks) > 0 {
		line := "🏛️ **Institutions**: " + strings.Join(banks[:min(3, len(banks))], ", ")
		if len(banks) > 3 {
			line += fmt.Sprintf(" +%d more", len(banks)-3)
		}
		points = append(points, line)
	}

	info, _ := Info(types.DimensionMonetary)
	if mentions := CountMentions(items, info.Coverage); mentions > 0 {
		pct := float64(mentions) / float64(len(items)) * 100
		hawkish := CountMentions(items, hawkishWords)
		dovish := CountMentions(items, dovishWords)
		tone := "Balanced"
		switch {
		case hawkish > dovish:
			tone = "Hawkish"
		case dovish > hawkish:
			tone = "Dovish"
		}
		points = append(points, fmt.Sprintf("📰 **Media Coverage**: %d articles (%.0f%% of total) - %s tone", mentions, pct, tone))
	}

	if len(points) == 0 {
		return []string{"Insufficient monetary policy data from recent news"}
	}
	return points
}

// InflationDataPoints reports inflation prints, growth and labour figures
// found in the batch text, followed by an outlook band and a coverage line.
func InflationDataPoints(items []types.NewsItem, score float64) []string {
	text := joinText(items)
	numbers := textfeatures.ExtractNumbers(text)

	points := []string{}

	var readings []float64
	for _, p := range numbers.Percentages {
		if p > 0 && p < 20 {
			readings = append(readings, p)
		}
	}

	if len(readings) > 0 {
		latest := readings[len(readings)-1]
		core := floatCaptures(coreCPIRe, text)
		headline := floatCaptures(headlineCPIRe, text)
		switch {
		case len(core) > 0 && len(headline) > 0:
			c, h := core[len(core)-1], headline[len(headline)-1]
			points = append(points, fmt.Sprintf("📊 **Headline CPI**: %s%% | **Core**: %s%% (spread: %+.1fpp)",
				textfeatures.FormatDecimal(h), textfeatures.FormatDecimal(c), c-h))
		case len(headline) > 0:
			points = append(points, fmt.Sprintf("📊 **Headline CPI**: %s%%", textfeatures.FormatDecimal(headline[len(headline)-1])))
		}

		yoy := floatCaptures(yoyRe, text)
		mom := floatCaptures(momRe, text)
		switch {
		case len(yoy) > 0 && len(mom) > 0:
			points = append(points, fmt.Sprintf("📈 **YoY**: %s%% | **MoM**: %s%% annualized rate",
				textfeatures.FormatDecimal(yoy[len(yoy)-1]), textfeatures.FormatDecimal(mom[len(mom)-1])))
		case len(yoy) > 0:
			points = append(points, fmt.Sprintf("📈 **Year-over-Year**: %s%%", textfeatures.FormatDecimal(yoy[len(yoy)-1])))
		}

		if len(readings) > 1 {
			change := latest - readings[len(readings)-2]
			arrow, verb := "→", "held steady"
			switch {
			case change > 0:
				arrow, verb = "↗", "accelerated"
			case change < 0:
				arrow, verb = "↘", "decelerated"
			}
			points = append(points, fmt.Sprintf("📉 **Recent Move**: %s %s %.1fpp vs prior period", arrow, verb, math.Abs(change)))
		}

		sum := 0.0
		for _, r := range readings {
			sum += r
		}
		avg := sum / float64(len(readings))
		vsAvg := latest - avg
		sign := ""
		if vsAvg > 0 {
			sign = "+"
		}
		points = append(points, fmt.Sprintf("📊 **Average**: %.1f%% (%s%.1fpp vs current, n=%d)", avg, sign, vsAvg, len(readings)))

		if len(readings) >= 3 {
			trend := readings[len(readings)-1] - readings[len(readings)-3]
			switch {
			case trend > 0.5:
				points = append(points, fmt.Sprintf("⚠️ **Trend**: Accelerating (%+.1fpp) - potential overheat risk", trend))
			case trend < -0.5:
				points = append(points, fmt.Sprintf("✅ **Trend**: Decelerating (%.1fpp) - disinflationary", trend))
			default:
				points = append(points, fmt.Sprintf("→ **Trend**: Stable (%+.1fpp) - range-bound", trend))
			}
		}

		if deviation := latest - inflationTarget; math.Abs(deviation) > 1.0 {
			side, note := "below", "notable undershoot"
			if deviation > 0 {
				side, note = "above", "significant overshoot"
			}
			points = append(points, fmt.Sprintf("🎯 **vs Target**: %.1fpp %s 2%% target - %s", math.Abs(deviation), side, note))
		}
	}

	if gdp := floatCaptures(gdpRe, text); len(gdp) > 0 {
		v := gdp[len(gdp)-1]
		assessment := "recession"
		switch {
		case v > 3:
			assessment = "strong expansion"
		case v > 1:
			assessment = "moderate growth"
		case v > -0.5:
			assessment = "stagnation risk"
		}
		points = append(points, fmt.Sprintf("💹 **GDP Growth**: %+.1f%% (%s)", v, assessment))
	}

	if unemp := floatCaptures(unemployRe, text); len(unemp) > 0 {
		v := unemp[len(unemp)-1]
		market := "slack"
		switch {
		case v < 4.0:
			market = "tight"
		case v < 5.5:
			market = "balanced"
		}
		points = append(points, fmt.Sprintf("👥 **Unemployment**: %s%% (%s labor market)", textfeatures.FormatDecimal(v), market))
	}

	if n := len(recessionRe.FindAllString(text, -1)); n > 0 {
		points = append(points, fmt.Sprintf("⚠️ **Recession Risk**: %d mentions - elevated macro uncertainty", n))
	}

	switch {
	case score > 70:
		points = append(points, "🟢 **Outlook**: Goldilocks (robust growth + controlled inflation)")
	case score > 60:
		points = append(points, "🟢 **Outlook**: Expansion phase with manageable price pressures")
	case score > 45:
		points = append(points, "🟡 **Outlook**: Moderate trajectory, data-dependent")
	case score > 30:
		points = append(points, "🟠 **Outlook**: Stagflation concerns (weak growth + sticky inflation)")
	default:
		points = append(points, "🔴 **Outlook**: Severe contraction/recession risk")
	}

	inflation := CountMentions(items, inflationWords)
	growth := CountMentions(items, growthWords)
	employment := CountMentions(items, employmentWords)
	points = append(points, fmt.Sprintf("📰 **Coverage**: %d inflation, %d growth, %d employment (%d total)",
		inflation, growth, employment, inflation+growth+employment))

	return points
}

// floatCaptures returns every parseable first-group capture of re in text.
func floatCaptures(re *regexp.Regexp, text string) []float64 {
	var out []float64
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// uniqueMatches returns distinct matches of re in first-seen order.
func uniqueMatches(re *regexp.Regexp, text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range re.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
