package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// Lead represents a single normalized building-permit record. Every field is
// always well-defined after normalization: monetary parse failures become 0
// and unparsable issue dates become the zero time, so downstream predicates
// and comparators never have to handle absence.
type Lead struct {
	IssuedAt     time.Time
	ID           string
	Category     string // raw permit-type label, original casing
	Description  string
	StreetNumber string
	StreetName   string
	ContactName  string
	ContactType  string
	Status       string
	TotalFee     string
	Zip          string
	Cost         float64
}

// GenerateID derives a stable fallback identifier for exports that carry no
// explicit id or permit number. Built from address, issue date and cost so
// the same raw row hashes identically across sessions, which is what keeps
// bookmarks valid over a re-import.
func (l *Lead) GenerateID() string {
	data := fmt.Sprintf("%s:%s:%s:%.2f",
		l.StreetNumber,
		l.StreetName,
		l.IssuedAt.Format("2006-01-02"),
		l.Cost)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Address returns the display form of the street address.
func (l *Lead) Address() string {
	return strings.TrimSpace(l.StreetNumber + " " + l.StreetName)
}

// HasIssueDate reports whether the issue date parsed successfully.
func (l *Lead) HasIssueDate() bool {
	return !l.IssuedAt.IsZero()
}

// BookmarkSet is the persisted set of saved lead IDs. Membership is
// independent of any filter or sort state.
type BookmarkSet map[string]bool

// Contains reports whether the given lead ID is bookmarked.
func (b BookmarkSet) Contains(id string) bool {
	return b[id]
}

// IDs returns the bookmarked IDs in no particular order.
func (b BookmarkSet) IDs() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	return ids
}
