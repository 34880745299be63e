package pipeline

import (
	"testing"

	"github.com/hardhatlabs/hardhat/internal/model"
)

func TestQualifies(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		minValue float64
		want     bool
	}{
		{"well above threshold", 75000, 2000, true},
		{"exactly at threshold", 2000, 2000, true},
		{"just below threshold", 1999.99, 2000, false},
		{"parse-failure zero excluded at any positive threshold", 0, 1, false},
		{"zero threshold admits everything", 0, 0, true},
		{"production threshold", 50001, DefaultMinLeadValue, true},
		{"below production threshold", 49999, DefaultMinLeadValue, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := model.Lead{Cost: tt.cost}
			if got := Qualifies(lead, tt.minValue); got != tt.want {
				t.Errorf("Qualifies(cost=%v, min=%v) = %v, want %v", tt.cost, tt.minValue, got, tt.want)
			}
		})
	}
}

func TestQualifies_SubMultisetProperty(t *testing.T) {
	leads := []model.Lead{
		{ID: "a", Cost: 100},
		{ID: "b", Cost: 2000},
		{ID: "c", Cost: 2000},
		{ID: "d", Cost: 99999},
		{ID: "e", Cost: 0},
	}

	for _, threshold := range []float64{0, 100, 2000, 50000, 1e9} {
		var kept int
		for _, l := range leads {
			if Qualifies(l, threshold) {
				if l.Cost < threshold {
					t.Errorf("threshold %v kept lead with cost %v", threshold, l.Cost)
				}
				kept++
			} else if l.Cost >= threshold {
				t.Errorf("threshold %v dropped lead with cost %v", threshold, l.Cost)
			}
		}
		if kept > len(leads) {
			t.Errorf("kept %d leads out of %d", kept, len(leads))
		}
	}
}

func TestMatchesSearch(t *testing.T) {
	lead := model.Lead{
		Category:    "PERMIT - ELECTRICAL",
		Description: "rewire first floor and install new panel",
		StreetName:  "Main St",
		ContactName: "ACME ELECTRIC LLC",
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches everything", "", true},
		{"whitespace-only query matches everything", "   ", true},
		{"category substring, mixed case", "ELECTRIC", true},
		{"category substring, lower case", "electric", true},
		{"description substring", "panel", true},
		{"street name substring", "main", true},
		{"no match anywhere", "plumbing", false},
		{"substring not token: partial word hits", "rewir", true},
		{"contact name is not indexed", "acme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesSearch(lead, tt.query); got != tt.want {
				t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchesCategory(t *testing.T) {
	tests := []struct {
		name     string
		lead     model.Lead
		selected string
		want     bool
	}{
		{
			name:     "All sentinel matches anything",
			lead:     model.Lead{Category: "PERMIT - SIGNS"},
			selected: CategoryAll,
			want:     true,
		},
		{
			name:     "empty selection matches anything",
			lead:     model.Lead{Category: "PERMIT - SIGNS"},
			selected: "",
			want:     true,
		},
		{
			name:     "label match, case-insensitive",
			lead:     model.Lead{Category: "PERMIT - ELECTRIC WIRING"},
			selected: "electric",
			want:     true,
		},
		{
			name: "miscategorized row caught via description",
			lead: model.Lead{
				Category:    "PERMIT - EASY PERMIT PROCESS",
				Description: "replace electric service and meter",
			},
			selected: "ELECTRIC",
			want:     true,
		},
		{
			name:     "no match in label or description",
			lead:     model.Lead{Category: "PERMIT - SIGNS", Description: "install awning sign"},
			selected: "DEMOLITION",
			want:     false,
		},
		{
			name:     "lowercase sentinel still matches",
			lead:     model.Lead{Category: "PERMIT - SIGNS"},
			selected: "all",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesCategory(tt.lead, tt.selected); got != tt.want {
				t.Errorf("MatchesCategory(%q) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}
