package analyzer

import (
	"fmt"
	"strings"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
)

// Resolve maps a user-supplied area token to a canonical area name.
// Matching is case-insensitive: exact match first, then substring
// containment in either direction. Ambiguous containment matches are
// broken by shortest canonical name, then by dataset insertion order, so
// resolution is fully deterministic.
func Resolve(token string, ds *dataset.Dataset) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(token))
	if needle == "" {
		return "", fmt.Errorf("empty area name")
	}

	for _, area := range ds.Areas() {
		if strings.ToLower(area) == needle {
			return area, nil
		}
	}

	var best string
	for _, area := range ds.Areas() {
		canon := strings.ToLower(area)
		if !strings.Contains(canon, needle) && !strings.Contains(needle, canon) {
			continue
		}
		// Strict < keeps the first-encountered candidate on equal length.
		if best == "" || len(area) < len(best) {
			best = area
		}
	}
	if best != "" {
		return best, nil
	}

	return "", fmt.Errorf("unknown area %q", token)
}
