package pipeline

import (
	"sort"

	"github.com/hardhatlabs/hardhat/internal/model"
)

// Sort orders leads in place by the given key. Both orders are descending
// and stable: equal keys keep their original input order, so re-running the
// pipeline on the same snapshot always yields the identical sequence. Under
// SortByDate the zero-time sentinel sorts last.
func Sort(leads []model.Lead, key SortKey) {
	switch key {
	case SortByDate:
		sort.SliceStable(leads, func(i, j int) bool {
			// The zero time is never After anything, so invalid dates sink.
			return leads[i].IssuedAt.After(leads[j].IssuedAt)
		})
	default:
		// SortByCost is also the fallback for an unrecognized key.
		sort.SliceStable(leads, func(i, j int) bool {
			return leads[i].Cost > leads[j].Cost
		})
	}
}
