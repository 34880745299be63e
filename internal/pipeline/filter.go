package pipeline

import (
	"strings"

	"github.com/hardhatlabs/hardhat/internal/model"
)

// CategoryAll is the no-filter sentinel for category selection.
const CategoryAll = "All"

// Qualifies reports whether a record clears the minimum-value bar. A
// threshold of 0 admits everything, including rows whose cost failed to
// parse.
func Qualifies(lead model.Lead, minValue float64) bool {
	return lead.Cost >= minValue
}

// MatchesSearch is a case-insensitive substring match of query against the
// category label, the work description and the street name, OR-combined.
// The empty query matches everything. No tokenization, no fuzziness.
func MatchesSearch(lead model.Lead, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(lead.Category), query) ||
		strings.Contains(strings.ToLower(lead.Description), query) ||
		strings.Contains(strings.ToLower(lead.StreetName), query)
}

// MatchesCategory reports whether a record belongs to the selected work-type
// category. The selected token is checked against both the permit-type label
// and the description: permits are routinely miscategorized upstream but
// name the trade in free text, so the dual check buys real recall.
func MatchesCategory(lead model.Lead, selected string) bool {
	selected = strings.TrimSpace(selected)
	if selected == "" || strings.EqualFold(selected, CategoryAll) {
		return true
	}

	token := strings.ToLower(selected)
	return strings.Contains(strings.ToLower(lead.Category), token) ||
		strings.Contains(strings.ToLower(lead.Description), token)
}
