package pipeline

import "time"

// FreshnessWindow is how recently a permit must have been issued to count
// as a new lead.
const FreshnessWindow = 72 * time.Hour

// IsFresh reports whether a permit issued at issuedAt is still new relative
// to now. The zero-time sentinel from a failed date parse is never fresh.
func IsFresh(issuedAt, now time.Time) bool {
	if issuedAt.IsZero() {
		return false
	}
	return now.Sub(issuedAt) < FreshnessWindow
}
