package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/bwmarrin/snowflake"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	"github.com/equiprofile/equiprofile/internal/report/compiler"
	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"github.com/equiprofile/equiprofile/pkg/money"
)

// sources adapts a pair of closures to compiler.Sources so each report type
// can bind its own queries without a type per report.
type sources struct {
	summary func(ctx context.Context) ([]compiler.SummaryField, error)
	details func(ctx context.Context) (*compiler.DetailTable, error)
}

func (s sources) Summary(ctx context.Context) ([]compiler.SummaryField, error) {
	return s.summary(ctx)
}

func (s sources) Details(ctx context.Context) (*compiler.DetailTable, error) {
	return s.details(ctx)
}

func (s *Service) sourcesFor(reportType reportdomain.ReportType, tenantID snowflake.ID, desc reportdomain.Descriptor) compiler.Sources {
	ledgerFilter := ledgerdomain.ListFilter{
		HorseID:   optional(desc.HorseID),
		StartDate: optional(desc.StartDate),
		EndDate:   optional(desc.EndDate),
	}
	trainingFilter := trainingdomain.ListFilter{
		HorseID:   optional(desc.HorseID),
		StartDate: optional(desc.StartDate),
		EndDate:   optional(desc.EndDate),
	}
	healthFilter := healthdomain.ListFilter{
		HorseID:   optional(desc.HorseID),
		StartDate: optional(desc.StartDate),
		EndDate:   optional(desc.EndDate),
	}

	switch reportType {
	case reportdomain.TypeCostAnalysis:
		return sources{
			summary: func(ctx context.Context) ([]compiler.SummaryField, error) {
				return s.profitSummary(ctx, tenantID, ledgerFilter, true)
			},
			details: func(ctx context.Context) (*compiler.DetailTable, error) {
				return s.expenseDetails(ctx, tenantID, ledgerFilter)
			},
		}
	case reportdomain.TypeMonthlySummary:
		return sources{
			summary: func(ctx context.Context) ([]compiler.SummaryField, error) {
				return s.profitSummary(ctx, tenantID, ledgerFilter, false)
			},
			details: func(ctx context.Context) (*compiler.DetailTable, error) {
				return s.transactionDetails(ctx, tenantID, ledgerFilter)
			},
		}
	case reportdomain.TypeCompetitionSummary:
		return sources{
			summary: func(ctx context.Context) ([]compiler.SummaryField, error) {
				return s.competitionSummary(ctx, tenantID, ledgerFilter)
			},
			details: func(ctx context.Context) (*compiler.DetailTable, error) {
				return s.competitionDetails(ctx, tenantID, ledgerFilter)
			},
		}
	case reportdomain.TypeTrainingProgress:
		return sources{
			summary: func(ctx context.Context) ([]compiler.SummaryField, error) {
				return s.trainingSummary(ctx, tenantID, trainingFilter)
			},
			details: func(ctx context.Context) (*compiler.DetailTable, error) {
				return s.trainingDetails(ctx, tenantID, trainingFilter)
			},
		}
	default: // TypeHealthReport; Run rejects anything else first
		return sources{
			summary: func(ctx context.Context) ([]compiler.SummaryField, error) {
				return s.healthSummary(ctx, tenantID, healthFilter)
			},
			details: func(ctx context.Context) (*compiler.DetailTable, error) {
				return s.healthDetails(ctx, tenantID, healthFilter)
			},
		}
	}
}

// profitSummary covers monthly_summary and cost_analysis; the latter adds
// the profit margin line.
func (s *Service) profitSummary(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter, withMargin bool) ([]compiler.SummaryField, error) {
	income, err := s.ledger.ListIncome(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ledger.ListExpenses(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	var incomeTotal, expenseTotal int64
	for _, record := range income {
		incomeTotal += record.Amount
	}
	for _, record := range expenses {
		expenseTotal += record.Amount
	}
	net := incomeTotal - expenseTotal

	fields := []compiler.SummaryField{
		{Label: "Total Income", Value: money.Format(incomeTotal)},
		{Label: "Total Expenses", Value: money.Format(expenseTotal)},
		{Label: "Net Profit", Value: money.Format(net)},
	}
	if withMargin {
		fields = append(fields, compiler.SummaryField{
			Label: "Profit Margin",
			Value: percent(net, incomeTotal),
		})
	}
	return fields, nil
}

func (s *Service) competitionSummary(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) ([]compiler.SummaryField, error) {
	competitions, err := s.ledger.ListCompetitions(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	var wins int
	var prize int64
	for _, record := range competitions {
		if record.Placement == 1 {
			wins++
		}
		prize += record.PrizeMoney
	}

	return []compiler.SummaryField{
		{Label: "Total Competitions", Value: strconv.Itoa(len(competitions))},
		{Label: "Wins", Value: strconv.Itoa(wins)},
		{Label: "Win Rate", Value: percent(int64(wins), int64(len(competitions)))},
		{Label: "Total Prize Money", Value: money.Format(prize)},
	}, nil
}

func (s *Service) trainingSummary(ctx context.Context, tenantID snowflake.ID, filter trainingdomain.ListFilter) ([]compiler.SummaryField, error) {
	sessions, err := s.training.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	var minutes int
	for _, session := range sessions {
		minutes += session.DurationMinutes
	}

	return []compiler.SummaryField{
		{Label: "Total Sessions", Value: strconv.Itoa(len(sessions))},
		{Label: "Total Hours", Value: fmt.Sprintf("%.1f", float64(minutes)/60)},
		{Label: "Top Discipline", Value: topDiscipline(sessions)},
	}, nil
}

func (s *Service) healthSummary(ctx context.Context, tenantID snowflake.ID, filter healthdomain.ListFilter) ([]compiler.SummaryField, error) {
	records, err := s.health.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	var cost int64
	vaccination := "No vaccination records"
	for _, record := range records {
		cost += record.Cost
	}
	// List is date-descending, so the first vaccination seen is the latest.
	for _, record := range records {
		if record.RecordType == string(healthdomain.RecordTypeVaccination) {
			vaccination = "Last vaccination " + record.Date
			break
		}
	}

	return []compiler.SummaryField{
		{Label: "Total Records", Value: strconv.Itoa(len(records))},
		{Label: "Total Cost", Value: money.Format(cost)},
		{Label: "Vaccination Status", Value: vaccination},
	}, nil
}

func (s *Service) expenseDetails(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) (*compiler.DetailTable, error) {
	expenses, err := s.ledger.ListExpenses(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	table := &compiler.DetailTable{
		Columns: []string{"Date", "Category", "Amount", "Vendor", "Description"},
	}
	for _, record := range expenses {
		table.Rows = append(table.Rows, []string{
			record.Date, record.Category, money.Format(record.Amount),
			record.Vendor, record.Description,
		})
	}
	return table, nil
}

func (s *Service) transactionDetails(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) (*compiler.DetailTable, error) {
	income, err := s.ledger.ListIncome(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ledger.ListExpenses(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	type transaction struct {
		date, kind, key, amount, description string
	}
	rows := make([]transaction, 0, len(income)+len(expenses))
	for _, record := range income {
		rows = append(rows, transaction{record.Date, "income", record.Source, money.Format(record.Amount), record.Description})
	}
	for _, record := range expenses {
		rows = append(rows, transaction{record.Date, "expense", record.Category, money.Format(record.Amount), record.Description})
	}
	// Dates are yyyy-mm-dd so a string sort is chronological.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date > rows[j].date })

	table := &compiler.DetailTable{
		Columns: []string{"Date", "Type", "Category", "Amount", "Description"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{row.date, row.kind, row.key, row.amount, row.description})
	}
	return table, nil
}

func (s *Service) competitionDetails(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) (*compiler.DetailTable, error) {
	competitions, err := s.ledger.ListCompetitions(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	table := &compiler.DetailTable{
		Columns: []string{"Date", "Name", "Discipline", "Placement", "Prize Money"},
	}
	for _, record := range competitions {
		table.Rows = append(table.Rows, []string{
			record.Date, record.Name, record.Discipline,
			strconv.Itoa(record.Placement), money.Format(record.PrizeMoney),
		})
	}
	return table, nil
}

func (s *Service) trainingDetails(ctx context.Context, tenantID snowflake.ID, filter trainingdomain.ListFilter) (*compiler.DetailTable, error) {
	sessions, err := s.training.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	table := &compiler.DetailTable{
		Columns: []string{"Date", "Discipline", "Duration (min)", "Intensity", "Notes"},
	}
	for _, session := range sessions {
		table.Rows = append(table.Rows, []string{
			session.Date, session.Discipline,
			strconv.Itoa(session.DurationMinutes), session.Intensity, session.Notes,
		})
	}
	return table, nil
}

func (s *Service) healthDetails(ctx context.Context, tenantID snowflake.ID, filter healthdomain.ListFilter) (*compiler.DetailTable, error) {
	records, err := s.health.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	table := &compiler.DetailTable{
		Columns: []string{"Date", "Type", "Vet", "Cost", "Notes"},
	}
	for _, record := range records {
		table.Rows = append(table.Rows, []string{
			record.Date, record.RecordType, record.VetName,
			money.Format(record.Cost), record.Notes,
		})
	}
	return table, nil
}

func topDiscipline(sessions []trainingdomain.Response) string {
	if len(sessions) == 0 {
		return "none"
	}
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, session := range sessions {
		if _, seen := counts[session.Discipline]; !seen {
			order = append(order, session.Discipline)
		}
		counts[session.Discipline]++
	}
	top := order[0]
	for _, discipline := range order[1:] {
		if counts[discipline] > counts[top] {
			top = discipline
		}
	}
	return top
}

func percent(num, den int64) string {
	if den == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(num)/float64(den)*100)
}

func optional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
