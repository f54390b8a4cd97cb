package analyzer

import (
	"fmt"
	"strings"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// Composer renders computed trends as deterministic plain-text summaries.
// FlatTolerance is the band (percent points) within which a demand change
// counts as flat and a comparison as a tie.
type Composer struct {
	FlatTolerance float64
}

// Summary renders the single-area analysis paragraph.
func (c Composer) Summary(area string, stats model.Stats, records int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis for %s:\n", area)
	fmt.Fprintf(&b, "- Price range: %s to %s (%d-%d)\n",
		formatPrice(stats.MinPrice), formatPrice(stats.MaxPrice), stats.FirstYear, stats.LatestYear)
	if stats.GrowthDefined {
		fmt.Fprintf(&b, "- Price growth: %.1f%% over the period\n", stats.GrowthPercent)
	} else {
		b.WriteString("- Price growth: undefined (no baseline price)\n")
	}
	fmt.Fprintf(&b, "- Demand trend: %s (%.1f%% -> %.1f%%)\n",
		c.direction(stats.FirstDemand, stats.LatestDemand), stats.FirstDemand, stats.LatestDemand)
	fmt.Fprintf(&b, "- Total records analyzed: %d", records)
	return b.String()
}

// TrendDetail renders the detailed price-growth breakdown appended for
// trend-only queries. Growth needs at least two observations.
func (c Composer) TrendDetail(stats model.Stats, records int) string {
	var b strings.Builder
	b.WriteString("Price Growth Analysis:\n")

	if records < 2 {
		b.WriteString("- Insufficient data for price growth analysis")
		return b.String()
	}

	years := stats.LatestYear - stats.FirstYear
	fmt.Fprintf(&b, "- Period: %d to %d (%d years)\n", stats.FirstYear, stats.LatestYear, years)
	fmt.Fprintf(&b, "- Starting price: %s\n", formatPrice(stats.FirstPrice))
	fmt.Fprintf(&b, "- Ending price: %s\n", formatPrice(stats.LatestPrice))

	total := stats.LatestPrice - stats.FirstPrice
	if !stats.GrowthDefined {
		fmt.Fprintf(&b, "- Total growth: %s (undefined %%)\n", formatPrice(total))
		b.WriteString("- Market trend: not assessable without a baseline price")
		return b.String()
	}

	fmt.Fprintf(&b, "- Total growth: %s (%.1f%%)\n", formatPrice(total), stats.GrowthPercent)
	if years > 0 {
		fmt.Fprintf(&b, "- Annual growth: %s per year (%.1f%% per year)\n",
			formatPrice(total/float64(years)), stats.GrowthPercent/float64(years))
	}
	fmt.Fprintf(&b, "- Market trend: %s", marketTrend(stats.GrowthPercent))
	return b.String()
}

// Comparison renders the cross-area narrative: who leads on price growth
// and on latest demand, with ties stated as comparable.
func (c Composer) Comparison(area1, area2 string, s1, s2 model.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison between %s and %s:\n", area1, area2)

	switch {
	case !s1.GrowthDefined || !s2.GrowthDefined:
		b.WriteString("- Price growth: not comparable (undefined baseline)\n")
	case absDiff(s1.GrowthPercent, s2.GrowthPercent) <= c.FlatTolerance:
		fmt.Fprintf(&b, "- Price growth: both areas are comparable (%.1f%% vs %.1f%%)\n",
			s1.GrowthPercent, s2.GrowthPercent)
	case s1.GrowthPercent > s2.GrowthPercent:
		fmt.Fprintf(&b, "- Price growth: %s leads with %.1f%% vs %.1f%%\n",
			area1, s1.GrowthPercent, s2.GrowthPercent)
	default:
		fmt.Fprintf(&b, "- Price growth: %s leads with %.1f%% vs %.1f%%\n",
			area2, s2.GrowthPercent, s1.GrowthPercent)
	}

	switch {
	case absDiff(s1.LatestDemand, s2.LatestDemand) <= c.FlatTolerance:
		fmt.Fprintf(&b, "- Latest demand: both areas are comparable (%.1f%% vs %.1f%%)",
			s1.LatestDemand, s2.LatestDemand)
	case s1.LatestDemand > s2.LatestDemand:
		fmt.Fprintf(&b, "- Latest demand: %s leads at %.1f%% vs %.1f%%",
			area1, s1.LatestDemand, s2.LatestDemand)
	default:
		fmt.Fprintf(&b, "- Latest demand: %s leads at %.1f%% vs %.1f%%",
			area2, s2.LatestDemand, s1.LatestDemand)
	}

	return b.String()
}

func (c Composer) direction(first, last float64) string {
	switch {
	case absDiff(first, last) <= c.FlatTolerance:
		return "flat"
	case last > first:
		return "increasing"
	default:
		return "decreasing"
	}
}

func marketTrend(growthPercent float64) string {
	switch {
	case growthPercent > 20:
		return "strong growth"
	case growthPercent > 10:
		return "moderate growth"
	case growthPercent > 0:
		return "slow growth"
	default:
		return "price decline"
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// formatPrice renders a rupee amount with thousands separators, matching
// the original API's summary formatting.
func formatPrice(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	out := "₹" + strings.Join(parts, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}
