package ingest

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows int
		wantErr  bool
		check    func(t *testing.T, rows []RawRow)
	}{
		{
			name: "basic header-keyed rows",
			input: "id,reported_cost,work_description\n" +
				"1,75000,rewire\n" +
				"2,1200,new outlet\n",
			wantRows: 2,
			check: func(t *testing.T, rows []RawRow) {
				if rows[0].Get("reported_cost") != "75000" {
					t.Errorf("row 0 reported_cost = %q", rows[0].Get("reported_cost"))
				}
				if rows[1].Get("work_description") != "new outlet" {
					t.Errorf("row 1 work_description = %q", rows[1].Get("work_description"))
				}
			},
		},
		{
			name:     "empty stream is a valid zero-row result",
			input:    "",
			wantRows: 0,
		},
		{
			name:     "header only",
			input:    "id,reported_cost\n",
			wantRows: 0,
		},
		{
			name: "short row leaves trailing fields absent",
			input: "id,reported_cost,work_description\n" +
				"1,500\n",
			wantRows: 1,
			check: func(t *testing.T, rows []RawRow) {
				if got := rows[0].Get("work_description"); got != "" {
					t.Errorf("absent field = %q, want empty", got)
				}
			},
		},
		{
			name: "long row drops extra cells",
			input: "id,reported_cost\n" +
				"1,500,extra,cells\n",
			wantRows: 1,
		},
		{
			name: "quoted description with commas",
			input: "id,work_description\n" +
				"1,\"demolish, then rebuild\"\n",
			wantRows: 1,
			check: func(t *testing.T, rows []RawRow) {
				if got := rows[0].Get("work_description"); got != "demolish, then rebuild" {
					t.Errorf("quoted field = %q", got)
				}
			},
		},
		{
			name: "header whitespace trimmed",
			input: " id , reported_cost \n" +
				"1,500\n",
			wantRows: 1,
			check: func(t *testing.T, rows []RawRow) {
				if rows[0].Get("reported_cost") != "500" {
					t.Errorf("trimmed header lookup failed: %v", rows[0])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadCSV(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadCSV error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(rows) != tt.wantRows {
				t.Fatalf("ReadCSV returned %d rows, want %d", len(rows), tt.wantRows)
			}
			if tt.check != nil {
				tt.check(t, rows)
			}
		})
	}
}
