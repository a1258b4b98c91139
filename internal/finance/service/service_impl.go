package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/equiprofile/equiprofile/internal/finance/aggregate"
	financedomain "github.com/equiprofile/equiprofile/internal/finance/domain"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
	horsedomain "github.com/equiprofile/equiprofile/internal/horse/domain"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"github.com/equiprofile/equiprofile/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Ledger   ledgerdomain.Service
	Training trainingdomain.Service
	Health   healthdomain.Service
	Horses   horsedomain.Service
}

type Service struct {
	log      *zap.Logger
	ledger   ledgerdomain.Service
	training trainingdomain.Service
	health   healthdomain.Service
	horses   horsedomain.Service
}

func New(p Params) financedomain.Service {
	return &Service{
		log:      p.Log.Named("finance.service"),
		ledger:   p.Ledger,
		training: p.Training,
		health:   p.Health,
		horses:   p.Horses,
	}
}

func (s *Service) FinanceStats(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) (*financedomain.FinanceStats, error) {
	income, err := s.ledger.ListIncome(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ledger.ListExpenses(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	incomeRows := make([]aggregate.Row, 0, len(income))
	for _, record := range income {
		incomeRows = append(incomeRows, aggregate.Row{
			Date:        parseDate(record.Date),
			Key:         record.Source,
			AmountMinor: record.Amount,
		})
	}
	expenseRows := make([]aggregate.Row, 0, len(expenses))
	for _, record := range expenses {
		expenseRows = append(expenseRows, aggregate.Row{
			Date:        parseDate(record.Date),
			Key:         record.Category,
			AmountMinor: record.Amount,
		})
	}

	incomeSummary := aggregate.Summarize(incomeRows)
	expenseSummary := aggregate.Summarize(expenseRows)
	incomeByMonth := aggregate.BucketByMonth(incomeRows, aggregate.DefaultMonthsBack)
	expensesByMonth := aggregate.BucketByMonth(expenseRows, aggregate.DefaultMonthsBack)
	net := incomeSummary.TotalMinor - expenseSummary.TotalMinor

	return &financedomain.FinanceStats{
		Income:             summaryView(incomeSummary),
		Expenses:           summaryView(expenseSummary),
		NetMinor:           net,
		NetDisplay:         money.Format(net),
		IncomeBySource:     breakdownViews(aggregate.BreakdownBy(incomeRows)),
		ExpensesByCategory: breakdownViews(aggregate.BreakdownBy(expenseRows)),
		IncomeByMonth:      monthViews(incomeByMonth),
		ExpensesByMonth:    monthViews(expensesByMonth),
		ProfitLoss:         profitLossViews(aggregate.ComputeProfitLoss(incomeByMonth, expensesByMonth)),
	}, nil
}

func (s *Service) CompetitionStats(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) (*financedomain.CompetitionStats, error) {
	competitions, err := s.ledger.ListCompetitions(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	var wins int
	var prize, fees int64
	prizeRows := make([]aggregate.Row, 0, len(competitions))
	for _, record := range competitions {
		if record.Placement == 1 {
			wins++
		}
		prize += record.PrizeMoney
		fees += record.EntryFee
		prizeRows = append(prizeRows, aggregate.Row{
			Date:        parseDate(record.Date),
			Key:         record.Discipline,
			AmountMinor: record.PrizeMoney,
		})
	}
	net := prize - fees

	return &financedomain.CompetitionStats{
		Total:             len(competitions),
		Wins:              wins,
		WinRate:           aggregate.Ratio(int64(wins), int64(len(competitions))),
		PrizeMoneyMinor:   prize,
		PrizeMoneyDisplay: money.Format(prize),
		EntryFeesMinor:    fees,
		EntryFeesDisplay:  money.Format(fees),
		NetMinor:          net,
		NetDisplay:        money.Format(net),
		PrizeByDiscipline: breakdownViews(aggregate.BreakdownBy(prizeRows)),
	}, nil
}

func (s *Service) ActivityByHorse(ctx context.Context, tenantID snowflake.ID) ([]financedomain.HorseActivityView, error) {
	horses, err := s.horses.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.training.List(ctx, tenantID, trainingdomain.ListFilter{})
	if err != nil {
		return nil, err
	}
	competitions, err := s.ledger.ListCompetitions(ctx, tenantID, ledgerdomain.ListFilter{})
	if err != nil {
		return nil, err
	}
	healthRecords, err := s.health.List(ctx, tenantID, healthdomain.ListFilter{})
	if err != nil {
		return nil, err
	}

	refs := make([]aggregate.HorseRef, 0, len(horses))
	for _, horse := range horses {
		id, err := horsedomain.ParseID(horse.ID)
		if err != nil {
			return nil, err
		}
		refs = append(refs, aggregate.HorseRef{ID: id, Name: horse.Name})
	}

	trainingIDs := make([]snowflake.ID, 0, len(sessions))
	for _, session := range sessions {
		if id, ok := refID(session.HorseID); ok {
			trainingIDs = append(trainingIDs, id)
		}
	}
	competitionIDs := make([]snowflake.ID, 0, len(competitions))
	for _, record := range competitions {
		if id, ok := refID(record.HorseID); ok {
			competitionIDs = append(competitionIDs, id)
		}
	}
	healthIDs := make([]snowflake.ID, 0, len(healthRecords))
	for _, record := range healthRecords {
		if id, ok := refID(record.HorseID); ok {
			healthIDs = append(healthIDs, id)
		}
	}

	activity := aggregate.CrossTabulateByHorse(refs, trainingIDs, competitionIDs, healthIDs)
	views := make([]financedomain.HorseActivityView, 0, len(activity))
	for _, row := range activity {
		views = append(views, financedomain.HorseActivityView{
			HorseID:          row.HorseID.String(),
			HorseName:        row.HorseName,
			TrainingCount:    row.TrainingCount,
			CompetitionCount: row.CompetitionCount,
			HealthCount:      row.HealthCount,
		})
	}
	return views, nil
}

func summaryView(summary aggregate.Summary) financedomain.SummaryView {
	return financedomain.SummaryView{
		TotalMinor:   summary.TotalMinor,
		TotalDisplay: money.Format(summary.TotalMinor),
		Count:        summary.Count,
	}
}

func breakdownViews(entries []aggregate.BreakdownEntry) []financedomain.BreakdownView {
	views := make([]financedomain.BreakdownView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, financedomain.BreakdownView{
			Key:           entry.Key,
			AmountMinor:   entry.AmountMinor,
			AmountDisplay: money.Format(entry.AmountMinor),
			Count:         entry.Count,
		})
	}
	return views
}

func monthViews(buckets []aggregate.MonthBucket) []financedomain.MonthView {
	views := make([]financedomain.MonthView, 0, len(buckets))
	for _, bucket := range buckets {
		views = append(views, financedomain.MonthView{
			Label:         bucket.Label,
			AmountMinor:   bucket.AmountMinor,
			AmountDisplay: money.Format(bucket.AmountMinor),
			Count:         bucket.Count,
		})
	}
	return views
}

func profitLossViews(points []aggregate.ProfitLossPoint) []financedomain.ProfitLossView {
	views := make([]financedomain.ProfitLossView, 0, len(points))
	for _, point := range points {
		views = append(views, financedomain.ProfitLossView{
			Label:          point.Label,
			IncomeMinor:    point.IncomeMinor,
			IncomeDisplay:  money.Format(point.IncomeMinor),
			ExpenseMinor:   point.ExpenseMinor,
			ExpenseDisplay: money.Format(point.ExpenseMinor),
			ProfitMinor:    point.ProfitMinor,
			ProfitDisplay:  money.Format(point.ProfitMinor),
		})
	}
	return views
}

func parseDate(value string) time.Time {
	parsed, err := time.Parse(ledgerdomain.DateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func refID(value *string) (snowflake.ID, bool) {
	if value == nil {
		return 0, false
	}
	id, err := snowflake.ParseString(*value)
	if err != nil {
		return 0, false
	}
	return id, true
}
