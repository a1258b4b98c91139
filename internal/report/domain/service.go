package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

const DateLayout = "2006-01-02"

// Descriptor is the client-supplied report request. HorseID and the date
// range narrow the data sources; IncludeSummary / IncludeDetails switch the
// corresponding compilation stages on or off.
type Descriptor struct {
	ReportType     string  `json:"report_type"`
	HorseID        *string `json:"horse_id,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	IncludeSummary bool    `json:"include_summary"`
	IncludeDetails bool    `json:"include_details"`
}

// Artifact is a rendered PDF ready to stream to the client.
type Artifact struct {
	Filename string
	MimeType string
	Bytes    []byte
}

// Export is a rendered CSV document.
type Export struct {
	CSV      string `json:"csv"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
}

type HistoryEntry struct {
	ID          string    `json:"id"`
	ReportType  string    `json:"report_type"`
	HorseID     *string   `json:"horse_id,omitempty"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
}

type Service interface {
	Generate(ctx context.Context, tenantID snowflake.ID, desc Descriptor) (*Artifact, error)
	ExportCSV(ctx context.Context, tenantID snowflake.ID, desc Descriptor) (*Export, error)
	History(ctx context.Context, tenantID snowflake.ID) ([]HistoryEntry, error)
}

var (
	ErrInvalidType      = errors.New("invalid_report_type")
	ErrInvalidDate      = errors.New("invalid_date")
	ErrInvalidHorse     = errors.New("invalid_horse_id")
	ErrReportGeneration = errors.New("report_generation_failed")
)

func ParseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(value)
}
