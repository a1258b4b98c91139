package compiler

import (
	"context"
	"errors"
	"testing"
	"time"

	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSources struct {
	summary    []SummaryField
	summaryErr error
	details    *DetailTable
	detailsErr error

	summaryCalls int
	detailCalls  int
}

func (s *stubSources) Summary(context.Context) ([]SummaryField, error) {
	s.summaryCalls++
	return s.summary, s.summaryErr
}

func (s *stubSources) Details(context.Context) (*DetailTable, error) {
	s.detailCalls++
	return s.details, s.detailsErr
}

func passthroughRender(doc *Document) ([]byte, error) {
	return []byte("rendered:" + doc.TypeLabel), nil
}

func TestRunCompletes(t *testing.T) {
	src := &stubSources{
		summary: []SummaryField{{Label: "Total Income", Value: "100.00"}},
		details: &DetailTable{Columns: []string{"Date"}, Rows: [][]string{{"2026-01-05"}}},
	}

	c := New(zap.NewNop())
	doc := &Document{Title: "Cost Analysis Report"}
	bytes, err := c.Run(context.Background(), reportdomain.TypeCostAnalysis, doc, true, true, src, passthroughRender)

	require.NoError(t, err)
	assert.Equal(t, StateDone, c.State())
	assert.Equal(t, []byte("rendered:COST ANALYSIS"), bytes)
	assert.Equal(t, 1, src.summaryCalls)
	assert.Equal(t, 1, src.detailCalls)
	assert.Equal(t, src.summary, doc.Summary)
	assert.Equal(t, src.details, doc.Details)
}

func TestRunSkipsDisabledStages(t *testing.T) {
	src := &stubSources{}

	c := New(zap.NewNop())
	_, err := c.Run(context.Background(), reportdomain.TypeMonthlySummary, &Document{}, false, false, src, passthroughRender)

	require.NoError(t, err)
	assert.Equal(t, StateDone, c.State())
	assert.Equal(t, 0, src.summaryCalls)
	assert.Equal(t, 0, src.detailCalls)
}

func TestRunFailingDetailSourceYieldsNoBytes(t *testing.T) {
	src := &stubSources{
		summary:    []SummaryField{{Label: "Sessions", Value: "3"}},
		detailsErr: errors.New("query timeout"),
	}

	c := New(zap.NewNop())
	bytes, err := c.Run(context.Background(), reportdomain.TypeTrainingProgress, &Document{}, true, true, src, passthroughRender)

	require.Error(t, err)
	assert.Equal(t, StateFailed, c.State())
	assert.Nil(t, bytes)
}

func TestRunFailingRendererYieldsNoBytes(t *testing.T) {
	c := New(zap.NewNop())
	bytes, err := c.Run(context.Background(), reportdomain.TypeHealthReport, &Document{}, false, false, &stubSources{},
		func(*Document) ([]byte, error) { return nil, errors.New("render failed") },
	)

	require.Error(t, err)
	assert.Equal(t, StateFailed, c.State())
	assert.Nil(t, bytes)
}

func TestRunRejectsUnknownType(t *testing.T) {
	c := New(zap.NewNop())
	bytes, err := c.Run(context.Background(), reportdomain.ReportType("annual_tax"), &Document{}, true, true, &stubSources{}, passthroughRender)

	assert.ErrorIs(t, err, reportdomain.ErrInvalidType)
	assert.Equal(t, StateFailed, c.State())
	assert.Nil(t, bytes)
}

func TestRunExpiredContextFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	c := New(zap.NewNop())
	bytes, err := c.Run(ctx, reportdomain.TypeCompetitionSummary, &Document{}, true, false, &stubSources{}, passthroughRender)

	require.Error(t, err)
	assert.Equal(t, StateFailed, c.State())
	assert.Nil(t, bytes)
}

func TestRunIsSingleUse(t *testing.T) {
	c := New(zap.NewNop())
	_, err := c.Run(context.Background(), reportdomain.TypeMonthlySummary, &Document{}, false, false, &stubSources{}, passthroughRender)
	require.NoError(t, err)

	_, err = c.Run(context.Background(), reportdomain.TypeMonthlySummary, &Document{}, false, false, &stubSources{}, passthroughRender)
	assert.ErrorIs(t, err, reportdomain.ErrReportGeneration)
}
