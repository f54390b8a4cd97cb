package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

// keywords are the query words stripped before treating the remainder as
// an area name. Digits are stripped too ("last 3 years").
var keywords = map[string]bool{
	"analyze": true, "analyse": true, "analysis": true,
	"show": true, "give": true, "tell": true, "me": true,
	"what": true, "is": true, "about": true, "how": true,
	"price": true, "prices": true, "growth": true,
	"trend": true, "trends": true, "demand": true,
	"for": true, "of": true, "the": true, "a": true, "an": true, "in": true,
	"last": true, "year": true, "years": true, "data": true, "over": true,
	"compare": true, "comparison": true, "vs": true, "versus": true,
	"between": true,
}

// rule is one classification pattern. Rules are evaluated in priority
// order; the first rule that matches decides the intent. matched=true
// with a non-nil error means the pattern applied but no usable area
// tokens could be extracted.
type rule struct {
	name  string
	apply func(query, lower string) (intent *model.Intent, matched bool, err error)
}

var rules = []rule{
	{name: "compare", apply: matchCompare},
	{name: "trend", apply: matchTrend},
	{name: "analyze", apply: matchAnalyze},
	{name: "fallback", apply: matchFallback},
}

// Classify parses a free-text query into an Intent. It is deterministic:
// the same query always yields the same intent. The returned area tokens
// keep their original casing; only keyword matching is case-normalized.
func Classify(query string) (*model.Intent, error) {
	lower := strings.ToLower(strings.Join(strings.Fields(query), " "))

	for _, r := range rules {
		intent, matched, err := r.apply(query, lower)
		if !matched {
			continue
		}
		if err != nil {
			return nil, err
		}
		return intent, nil
	}

	return nil, fmt.Errorf("no area found in query; try %q", "Analyze Wakad")
}

func matchCompare(query, lower string) (*model.Intent, bool, error) {
	triggered := containsWord(lower, "compare") || containsWord(lower, "comparison") ||
		containsWord(lower, "vs") || containsWord(lower, "versus")

	parts := splitAreas(query)

	if !triggered {
		// "Wakad and Aundh": a bare conjunction between two
		// capitalized-looking tokens still reads as a comparison.
		if len(parts) == 2 && capitalized(parts[0]) && capitalized(parts[1]) {
			return &model.Intent{Kind: model.IntentCompare, Areas: parts[:2]}, true, nil
		}
		return nil, false, nil
	}

	if len(parts) < 2 {
		return nil, true, fmt.Errorf("specify two areas to compare, e.g. %q", "Compare Wakad and Aundh")
	}
	return &model.Intent{Kind: model.IntentCompare, Areas: parts[:2]}, true, nil
}

func matchTrend(query, lower string) (*model.Intent, bool, error) {
	if !containsWord(lower, "trend") && !containsWord(lower, "trends") {
		return nil, false, nil
	}
	area := extractArea(query)
	if area == "" {
		return nil, true, fmt.Errorf("specify an area for trend analysis, e.g. %q", "Price trend for Aundh")
	}
	return &model.Intent{Kind: model.IntentTrendOnly, Areas: []string{area}}, true, nil
}

func matchAnalyze(query, lower string) (*model.Intent, bool, error) {
	triggered := false
	for _, kw := range []string{"analyze", "analyse", "analysis", "show", "growth", "give", "tell"} {
		if containsWord(lower, kw) {
			triggered = true
			break
		}
	}
	if !triggered {
		return nil, false, nil
	}
	area := extractArea(query)
	if area == "" {
		return nil, true, fmt.Errorf("specify an area to analyze, e.g. %q", "Analyze Wakad")
	}
	return &model.Intent{Kind: model.IntentAnalyze, Areas: []string{area}}, true, nil
}

// matchFallback handles queries with no recognized keyword: whatever
// non-keyword tokens remain are treated as a single area name.
func matchFallback(query, _ string) (*model.Intent, bool, error) {
	area := extractArea(query)
	if area == "" {
		return nil, false, nil
	}
	return &model.Intent{Kind: model.IntentAnalyze, Areas: []string{area}}, true, nil
}

// extractArea strips keywords and digits from the query and joins the
// remaining words, preserving their original casing.
func extractArea(query string) string {
	var words []string
	for _, w := range strings.Fields(query) {
		trimmed := strings.Trim(w, ",.?!")
		if trimmed == "" || keywords[strings.ToLower(trimmed)] || isDigits(trimmed) {
			continue
		}
		words = append(words, trimmed)
	}
	return strings.Join(words, " ")
}

// splitAreas extracts the area tokens of a comparison query: keywords are
// stripped, then the remainder is split on "and", "vs", "versus", or
// commas, left to right.
func splitAreas(query string) []string {
	var parts []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			parts = append(parts, strings.Join(current, " "))
			current = nil
		}
	}

	for _, w := range strings.Fields(query) {
		trailingComma := strings.HasSuffix(w, ",")
		trimmed := strings.Trim(w, ",.?!")
		low := strings.ToLower(trimmed)

		if low == "and" || low == "vs" || low == "versus" {
			flush()
			continue
		}
		if trimmed != "" && !keywords[low] && !isDigits(trimmed) {
			current = append(current, trimmed)
		}
		if trailingComma {
			flush()
		}
	}
	flush()

	return parts
}

func containsWord(lower, word string) bool {
	for _, w := range strings.Fields(lower) {
		if strings.Trim(w, ",.?!") == word {
			return true
		}
	}
	return false
}

func capitalized(token string) bool {
	for _, r := range token {
		return unicode.IsUpper(r)
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
