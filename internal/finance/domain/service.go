package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
)

// Service is the read-only stats surface over the ledger. All amounts are
// minor units with display strings added at this layer; nothing here writes.
type Service interface {
	FinanceStats(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) (*FinanceStats, error)
	CompetitionStats(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) (*CompetitionStats, error)
	ActivityByHorse(ctx context.Context, tenantID snowflake.ID) ([]HorseActivityView, error)
}

type SummaryView struct {
	TotalMinor   int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
	Count        int    `json:"count"`
}

type BreakdownView struct {
	Key           string `json:"key"`
	AmountMinor   int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Count         int    `json:"count"`
}

type MonthView struct {
	Label         string `json:"label"`
	AmountMinor   int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Count         int    `json:"count"`
}

type ProfitLossView struct {
	Label          string `json:"label"`
	IncomeMinor    int64  `json:"income"`
	IncomeDisplay  string `json:"income_display"`
	ExpenseMinor   int64  `json:"expenses"`
	ExpenseDisplay string `json:"expenses_display"`
	ProfitMinor    int64  `json:"profit"`
	ProfitDisplay  string `json:"profit_display"`
}

type FinanceStats struct {
	Income             SummaryView      `json:"income"`
	Expenses           SummaryView      `json:"expenses"`
	NetMinor           int64            `json:"net"`
	NetDisplay         string           `json:"net_display"`
	IncomeBySource     []BreakdownView  `json:"income_by_source"`
	ExpensesByCategory []BreakdownView  `json:"expenses_by_category"`
	IncomeByMonth      []MonthView      `json:"income_by_month"`
	ExpensesByMonth    []MonthView      `json:"expenses_by_month"`
	ProfitLoss         []ProfitLossView `json:"profit_loss"`
}

type CompetitionStats struct {
	Total             int             `json:"total"`
	Wins              int             `json:"wins"`
	WinRate           float64         `json:"win_rate"`
	PrizeMoneyMinor   int64           `json:"prize_money"`
	PrizeMoneyDisplay string          `json:"prize_money_display"`
	EntryFeesMinor    int64           `json:"entry_fees"`
	EntryFeesDisplay  string          `json:"entry_fees_display"`
	NetMinor          int64           `json:"net"`
	NetDisplay        string          `json:"net_display"`
	PrizeByDiscipline []BreakdownView `json:"prize_by_discipline"`
}

type HorseActivityView struct {
	HorseID          string `json:"horse_id"`
	HorseName        string `json:"horse_name"`
	TrainingCount    int    `json:"training_count"`
	CompetitionCount int    `json:"competition_count"`
	HealthCount      int    `json:"health_count"`
}
