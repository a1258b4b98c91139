package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"github.com/equiprofile/equiprofile/pkg/tenantctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stubLedger records income lookups; unimplemented methods panic via the
// embedded nil interface, catching any unexpected call.
type stubLedger struct {
	ledgerdomain.Service
	incomeCalls int
}

func (s *stubLedger) ListIncome(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) ([]ledgerdomain.IncomeResponse, error) {
	s.incomeCalls++
	return nil, nil
}

func (s *stubLedger) ListExpenses(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) ([]ledgerdomain.ExpenseResponse, error) {
	return []ledgerdomain.ExpenseResponse{
		{Date: "2026-08-01", Category: "feed", Amount: 1200, Vendor: "Mill", Description: "Hay"},
	}, nil
}

type stubReportRepo struct{}

func (stubReportRepo) Insert(ctx context.Context, db *gorm.DB, record *reportdomain.GeneratedReport) error {
	return nil
}

func (stubReportRepo) List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID) ([]reportdomain.GeneratedReport, error) {
	return nil, nil
}

func TestExportCSVSkipsSummaryStage(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	ledger := &stubLedger{}
	svc := &Service{
		log:     zap.NewNop(),
		genID:   node,
		repo:    stubReportRepo{},
		ledger:  ledger,
		timeout: time.Second,
	}

	// Cost analysis summaries read income; its detail table does not.
	out, err := svc.ExportCSV(context.Background(), node.Generate(), reportdomain.Descriptor{
		ReportType:     string(reportdomain.TypeCostAnalysis),
		IncludeSummary: true,
	})
	require.NoError(t, err)

	assert.Zero(t, ledger.incomeCalls)
	assert.Contains(t, out.CSV, "Date,Category,Amount,Vendor,Description")
	assert.Contains(t, out.CSV, "12.00")
}

func TestTitleFor(t *testing.T) {
	assert.Equal(t, "Cost Analysis Report", titleFor(reportdomain.TypeCostAnalysis))
	assert.Equal(t, "Monthly Summary Report", titleFor(reportdomain.TypeMonthlySummary))
	assert.Equal(t, "Health Report", titleFor(reportdomain.TypeHealthReport))
}

func TestPeriodLabel(t *testing.T) {
	start := "2026-01-01"
	end := "2026-06-30"

	assert.Equal(t, "beginning to today", periodLabel(nil, nil))
	assert.Equal(t, "2026-01-01 to today", periodLabel(&start, nil))
	assert.Equal(t, "beginning to 2026-06-30", periodLabel(nil, &end))
	assert.Equal(t, "2026-01-01 to 2026-06-30", periodLabel(&start, &end))
}

func TestValidateDate(t *testing.T) {
	good := "2026-02-28"
	bad := "28/02/2026"
	empty := "  "

	require.NoError(t, validateDate(nil))
	require.NoError(t, validateDate(&good))
	require.NoError(t, validateDate(&empty))
	assert.ErrorIs(t, validateDate(&bad), reportdomain.ErrInvalidDate)
}

func TestGeneratedByIncludesActor(t *testing.T) {
	now := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)

	plain := generatedBy(context.Background(), now)
	assert.Equal(t, "Generated by EquiProfile on 28 Aug 2026", plain)

	ctx := tenantctx.WithActor(context.Background(), "Jo Smith")
	assert.Equal(t, "Generated by EquiProfile on 28 Aug 2026 for Jo Smith", generatedBy(ctx, now))
}

func TestTopDiscipline(t *testing.T) {
	assert.Equal(t, "none", topDiscipline(nil))

	sessions := []trainingdomain.Response{
		{Discipline: "dressage"},
		{Discipline: "jumping"},
		{Discipline: "jumping"},
		{Discipline: "dressage"},
		{Discipline: "hacking"},
	}
	// Tie between dressage and jumping resolves to first seen.
	assert.Equal(t, "dressage", topDiscipline(sessions))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.0%", percent(3, 0))
	assert.Equal(t, "40.0%", percent(4000, 10000))
	assert.Equal(t, "100.0%", percent(5, 5))
}
