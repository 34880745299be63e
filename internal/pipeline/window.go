package pipeline

import "github.com/hardhatlabs/hardhat/internal/model"

const (
	// DefaultWindowSize is the number of rows shown before the operator asks
	// for more.
	DefaultWindowSize = 25
	// WindowStep is the fixed increment the window grows by.
	WindowStep = 25
)

// Window returns the display prefix of a sorted lead sequence:
// leads[:min(size, len(leads))]. A non-positive size yields an empty window.
func Window(leads []model.Lead, size int) []model.Lead {
	if size <= 0 {
		return nil
	}
	if size >= len(leads) {
		return leads
	}
	return leads[:size]
}

// Pager tracks the append-only window size for an interactive session.
//
// Policy: any change to a filter predicate (search text, category,
// saved-only) resets the window to its initial size; changing the sort key
// alone does not. Callers enforce this by calling Reset on filter changes
// and nothing on sort changes.
type Pager struct {
	initial int
	step    int
	size    int
}

// NewPager creates a pager with the given initial size and growth step.
// Non-positive arguments fall back to the package defaults.
func NewPager(initial, step int) *Pager {
	if initial <= 0 {
		initial = DefaultWindowSize
	}
	if step <= 0 {
		step = WindowStep
	}
	return &Pager{initial: initial, step: step, size: initial}
}

// Size returns the current window size.
func (p *Pager) Size() int {
	return p.size
}

// Grow extends the window by one step.
func (p *Pager) Grow() {
	p.size += p.step
}

// Reset shrinks the window back to its initial size.
func (p *Pager) Reset() {
	p.size = p.initial
}
