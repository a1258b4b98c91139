package render

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/equiprofile/equiprofile/internal/report/compiler"
)

const CSVMimeType = "text/csv"

// CSV renders the document's detail table: one header row of visible
// columns followed by one row per record. A document without details
// degrades to the summary pairs so the export is never empty-bodied.
func CSV(doc *compiler.Document) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if doc.Details != nil && len(doc.Details.Columns) > 0 {
		if err := w.Write(doc.Details.Columns); err != nil {
			return "", err
		}
		for _, row := range doc.Details.Rows {
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	} else {
		if err := w.Write([]string{"Field", "Value"}); err != nil {
			return "", err
		}
		for _, field := range doc.Summary {
			if err := w.Write([]string{field.Label, field.Value}); err != nil {
				return "", err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CSVFilename builds the export filename, e.g.
// "equiprofile_cost_analysis_2026-08-28.csv".
func CSVFilename(reportType string, generatedAt time.Time) string {
	return fmt.Sprintf("equiprofile_%s_%s.csv", reportType, generatedAt.Format("2006-01-02"))
}

// PDFFilename mirrors CSVFilename for the rendered artifact.
func PDFFilename(reportType string, generatedAt time.Time) string {
	return fmt.Sprintf("equiprofile_%s_%s.pdf", reportType, generatedAt.Format("2006-01-02"))
}
