package render

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/equiprofile/equiprofile/internal/report/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	doc := &compiler.Document{
		Details: &compiler.DetailTable{
			Columns: []string{"Date", "Category", "Amount", "Description"},
			Rows: [][]string{
				{"2026-01-05", "feed", "45.00", "Winter haylage"},
				{"2026-01-09", "vet", "120.00", "Vaccination, with \"booster\""},
				{"2026-02-01", "farrier", "80.00", "Full set"},
			},
		},
	}

	out, err := CSV(doc)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus one row per record")
	assert.Equal(t, doc.Details.Columns, records[0])
	for i, row := range doc.Details.Rows {
		assert.Equal(t, row, records[i+1])
	}
}

func TestCSVFallsBackToSummary(t *testing.T) {
	doc := &compiler.Document{
		Summary: []compiler.SummaryField{
			{Label: "Total Income", Value: "100.00"},
			{Label: "Net Profit", Value: "40.00"},
		},
	}

	out, err := CSV(doc)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Field", "Value"}, records[0])
	assert.Equal(t, []string{"Total Income", "100.00"}, records[1])
}

func TestCSVFilename(t *testing.T) {
	at := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "equiprofile_cost_analysis_2026-08-28.csv", CSVFilename("cost_analysis", at))
}

func TestTruncateCell(t *testing.T) {
	assert.Equal(t, "short", truncateCell("short"))

	long := strings.Repeat("a", 40)
	got := truncateCell(long)
	assert.Equal(t, 28, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
