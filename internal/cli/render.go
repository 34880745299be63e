package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hardhatlabs/hardhat/internal/model"
	"github.com/hardhatlabs/hardhat/internal/pipeline"
)

// RenderLeads writes a lead table to w. Saved and fresh markers are
// per-row decorations, independent of whatever filtering produced the
// slice.
func RenderLeads(w io.Writer, leads []model.Lead, saved model.BookmarkSet, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	fmt.Fprintf(tw, "\t%s\t%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("COST"),
		HeaderStyle.Render("ISSUED"),
		HeaderStyle.Render("TYPE"),
		HeaderStyle.Render("DESCRIPTION"),
		HeaderStyle.Render("ADDRESS"),
		HeaderStyle.Render("CONTACT"))
	fmt.Fprintf(tw, "\t%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 12),
		strings.Repeat("-", 10),
		strings.Repeat("-", 24),
		strings.Repeat("-", 40),
		strings.Repeat("-", 20),
		strings.Repeat("-", 20))

	for _, lead := range leads {
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\t%s\t%s\n",
			savedMarker(lead, saved),
			CostStyle.Render(FormatCost(lead.Cost)),
			FormatIssueDate(lead.IssuedAt),
			freshBadge(lead, now),
			Truncate(lead.Category, 24),
			Truncate(lead.Description, 40),
			Truncate(lead.Address(), 20),
			Truncate(lead.ContactName, 20))
	}
}

// RenderLeadDetail writes the full record for a single lead.
func RenderLeadDetail(w io.Writer, lead model.Lead, saved bool, now time.Time) {
	fmt.Fprintln(w, TitleStyle.Render(FormatCost(lead.Cost)+"  "+lead.Category))

	rows := []struct {
		label string
		value string
	}{
		{"ID", lead.ID},
		{"Issued", FormatIssueDate(lead.IssuedAt)},
		{"Address", lead.Address()},
		{"Contact", strings.TrimSpace(lead.ContactName + " " + parenthesize(lead.ContactType))},
		{"Status", lead.Status},
		{"Total fee", lead.TotalFee},
		{"Zip", lead.Zip},
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", SubtleStyle.Render(r.label), r.value)
	}
	_ = tw.Flush()

	if pipeline.IsFresh(lead.IssuedAt, now) {
		fmt.Fprintln(w, FreshStyle.Render("NEW"))
	}
	if saved {
		fmt.Fprintln(w, SavedStyle.Render("★ saved"))
	}
	if lead.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, lead.Description)
	}
}

func savedMarker(lead model.Lead, saved model.BookmarkSet) string {
	if saved.Contains(lead.ID) {
		return SavedStyle.Render("★")
	}
	return " "
}

func freshBadge(lead model.Lead, now time.Time) string {
	if pipeline.IsFresh(lead.IssuedAt, now) {
		return FreshStyle.Render("NEW")
	}
	return ""
}

func parenthesize(s string) string {
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}
