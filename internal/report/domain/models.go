package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// ReportType selects which data sources and summary fields a report carries.
type ReportType string

const (
	TypeMonthlySummary     ReportType = "monthly_summary"
	TypeHealthReport       ReportType = "health_report"
	TypeTrainingProgress   ReportType = "training_progress"
	TypeCostAnalysis       ReportType = "cost_analysis"
	TypeCompetitionSummary ReportType = "competition_summary"
)

func (t ReportType) Valid() bool {
	switch t {
	case TypeMonthlySummary, TypeHealthReport, TypeTrainingProgress,
		TypeCostAnalysis, TypeCompetitionSummary:
		return true
	}
	return false
}

// Label renders the type as the human heading used on artifacts,
// e.g. "COST ANALYSIS".
func (t ReportType) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(t), "_", " "))
}

// GeneratedReport is the audit row written once per successful generation.
// Artifacts themselves are reproducible from the ledger and are not stored.
type GeneratedReport struct {
	ID          snowflake.ID  `gorm:"primaryKey"`
	TenantID    snowflake.ID  `gorm:"column:tenant_id;not null;index"`
	ReportType  string        `gorm:"type:text;not null"`
	HorseID     *snowflake.ID `gorm:"column:horse_id"`
	Title       string        `gorm:"type:text;not null"`
	GeneratedAt time.Time     `gorm:"not null"`
}

// TableName sets the database table name.
func (GeneratedReport) TableName() string { return "generated_reports" }
