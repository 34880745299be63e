package cli

import (
	"testing"
	"time"
)

func TestFormatCost(t *testing.T) {
	tests := []struct {
		name string
		cost float64
		want string
	}{
		{"zero", 0, "$0"},
		{"small", 800, "$800"},
		{"thousands", 75000, "$75,000"},
		{"millions", 1250000, "$1,250,000"},
		{"rounds cents", 1234.56, "$1,235"},
		{"negative", -5000, "-$5,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCost(tt.cost); got != tt.want {
				t.Errorf("FormatCost(%v) = %q, want %q", tt.cost, got, tt.want)
			}
		})
	}
}

func TestFormatIssueDate(t *testing.T) {
	if got := FormatIssueDate(time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)); got != "2024-03-09" {
		t.Errorf("FormatIssueDate = %q", got)
	}
	if got := FormatIssueDate(time.Time{}); got != "—" {
		t.Errorf("FormatIssueDate(zero) = %q, want dash", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short string untouched", "rewire", 10, "rewire"},
		{"exact length untouched", "rewire", 6, "rewire"},
		{"long string ellipsized", "demolish existing garage", 10, "demolish …"},
		{"whitespace collapsed", "rewire\n  first   floor", 30, "rewire first floor"},
		{"zero width", "rewire", 0, ""},
		{"width one", "rewire", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
