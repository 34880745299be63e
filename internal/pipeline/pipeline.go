// Package pipeline implements the lead qualification, search, sort and
// windowing core. Every function here is pure and total over the normalized
// Lead type: no predicate or comparator can fail, and recomputing a view
// with the same inputs always yields the same output.
package pipeline

import (
	"github.com/hardhatlabs/hardhat/internal/model"
)

// DefaultMinLeadValue is the qualification threshold in reported dollars.
// Rows below it are not leads and never reach any view. Overridable via the
// leads.min_value config key.
const DefaultMinLeadValue = 50000.0

// SortKey selects one of the two supported total orders.
type SortKey string

const (
	// SortByCost orders by reported cost, highest first.
	SortByCost SortKey = "cost"
	// SortByDate orders by issue date, newest first.
	SortByDate SortKey = "date"
)

// ViewState is the transient input owned by the presentation layer. The
// pipeline holds no state of its own: a view is a pure function of
// (full lead set, ViewState, BookmarkSet).
type ViewState struct {
	Search     string
	Category   string
	SortKey    SortKey
	MinValue   float64
	WindowSize int
	SavedOnly  bool
}

// View is the computed result handed back to the presentation layer.
type View struct {
	// Leads is the full qualified, filtered and sorted sequence.
	Leads []model.Lead
	// Visible is the current window: a prefix of Leads.
	Visible []model.Lead
	// Total is the match count, len(Leads).
	Total int
}

// Compute runs the whole filter → sort → window pipeline. The input slice is
// never mutated; ordering among equal sort keys follows input order.
func Compute(leads []model.Lead, state ViewState, saved model.BookmarkSet) View {
	matched := make([]model.Lead, 0, len(leads))
	for _, lead := range leads {
		if !Qualifies(lead, state.MinValue) {
			continue
		}
		if state.SavedOnly && !saved.Contains(lead.ID) {
			continue
		}
		if !MatchesSearch(lead, state.Search) {
			continue
		}
		if !MatchesCategory(lead, state.Category) {
			continue
		}
		matched = append(matched, lead)
	}

	Sort(matched, state.SortKey)

	return View{
		Leads:   matched,
		Visible: Window(matched, state.WindowSize),
		Total:   len(matched),
	}
}
