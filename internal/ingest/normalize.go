package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hardhatlabs/hardhat/internal/model"
)

// Field names used by the Chicago building-permit export. The normalizer is
// the only place in the codebase that knows these; everything downstream
// works on the typed Lead.
const (
	fieldID           = "id"
	fieldPermitNumber = "permit_"
	fieldPermitType   = "permit_type"
	fieldStatus       = "permit_status"
	fieldCost         = "reported_cost"
	fieldDescription  = "work_description"
	fieldStreetNumber = "street_number"
	fieldStreetName   = "street_name"
	fieldContactName  = "contact_1_name"
	fieldContactType  = "contact_1_type"
	fieldIssueDate    = "issue_date"
	fieldTotalFee     = "total_fee"
	fieldZip          = "contact_1_zipcode"
)

// issueDateLayouts are tried in order. The portal emits the first form;
// older CSV exports carry the others.
var issueDateLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Normalize converts raw rows into leads, one to one and in order. Dropping
// unqualified rows is the pipeline's job, never the normalizer's. No row can
// fail normalization: bad monetary values become 0, bad dates become the
// zero time.
func Normalize(rows []RawRow) []model.Lead {
	leads := make([]model.Lead, len(rows))
	for i, row := range rows {
		leads[i] = normalizeRow(row)
	}
	return leads
}

func normalizeRow(row RawRow) model.Lead {
	lead := model.Lead{
		Category:     row.Get(fieldPermitType),
		Description:  row.Get(fieldDescription),
		StreetNumber: row.Get(fieldStreetNumber),
		StreetName:   row.Get(fieldStreetName),
		ContactName:  row.Get(fieldContactName),
		ContactType:  row.Get(fieldContactType),
		Status:       row.Get(fieldStatus),
		TotalFee:     row.Get(fieldTotalFee),
		Zip:          row.Get(fieldZip),
		Cost:         ParseCost(row.Get(fieldCost)),
		IssuedAt:     ParseIssueDate(row.Get(fieldIssueDate)),
	}

	// Prefer the portal's row id, then the permit number. The hash fallback
	// keeps ids stable for exports that carry neither.
	switch {
	case row.Get(fieldID) != "":
		lead.ID = row.Get(fieldID)
	case row.Get(fieldPermitNumber) != "":
		lead.ID = row.Get(fieldPermitNumber)
	default:
		lead.ID = lead.GenerateID()
	}

	return lead
}

// ParseCost parses a monetary string such as "75000", "$75,000" or
// "75000.50". Anything unparsable yields 0 so a malformed row can never
// abort a load.
func ParseCost(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseIssueDate parses the export's issue timestamp. Failures yield the
// zero time, which sorts as least-recent and is never considered fresh.
func ParseIssueDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range issueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
