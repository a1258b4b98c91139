package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

const DateLayout = "2006-01-02"

type Service interface {
	CreateIncome(ctx context.Context, tenantID snowflake.ID, req CreateIncomeRequest) (*IncomeResponse, error)
	ListIncome(ctx context.Context, tenantID snowflake.ID, filter ListFilter) ([]IncomeResponse, error)
	UpdateIncome(ctx context.Context, tenantID snowflake.ID, req UpdateIncomeRequest) (*IncomeResponse, error)
	DeleteIncome(ctx context.Context, tenantID snowflake.ID, id string) error

	CreateExpense(ctx context.Context, tenantID snowflake.ID, req CreateExpenseRequest) (*ExpenseResponse, error)
	ListExpenses(ctx context.Context, tenantID snowflake.ID, filter ListFilter) ([]ExpenseResponse, error)
	UpdateExpense(ctx context.Context, tenantID snowflake.ID, req UpdateExpenseRequest) (*ExpenseResponse, error)
	DeleteExpense(ctx context.Context, tenantID snowflake.ID, id string) error

	CreateCompetition(ctx context.Context, tenantID snowflake.ID, req CreateCompetitionRequest) (*CompetitionResponse, error)
	ListCompetitions(ctx context.Context, tenantID snowflake.ID, filter ListFilter) ([]CompetitionResponse, error)
	UpdateCompetition(ctx context.Context, tenantID snowflake.ID, req UpdateCompetitionRequest) (*CompetitionResponse, error)
	DeleteCompetition(ctx context.Context, tenantID snowflake.ID, id string) error
}

// ListFilter narrows a ledger listing. All fields optional; Category carries
// the expense category or income source depending on the module.
type ListFilter struct {
	HorseID   string
	StartDate string
	EndDate   string
	Category  string
}

// Filter is the repository-level, parsed form of ListFilter.
type Filter struct {
	HorseID   *snowflake.ID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

type CreateIncomeRequest struct {
	HorseID        *string `json:"horse_id,omitempty"`
	Date           string  `json:"date"`
	Source         string  `json:"source"`
	Amount         int64   `json:"amount"`
	Description    string  `json:"description"`
	PayerReference string  `json:"payer_reference"`
	PaymentMethod  string  `json:"payment_method"`
	Reference      string  `json:"reference"`
	Taxable        bool    `json:"taxable"`
	Notes          string  `json:"notes"`
}

type UpdateIncomeRequest struct {
	ID             string  `json:"id"`
	HorseID        *string `json:"horse_id,omitempty"`
	Date           *string `json:"date,omitempty"`
	Source         *string `json:"source,omitempty"`
	Amount         *int64  `json:"amount,omitempty"`
	Description    *string `json:"description,omitempty"`
	PayerReference *string `json:"payer_reference,omitempty"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	Reference      *string `json:"reference,omitempty"`
	Taxable        *bool   `json:"taxable,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

type IncomeResponse struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	HorseID        *string   `json:"horse_id,omitempty"`
	Date           string    `json:"date"`
	Source         string    `json:"source"`
	Amount         int64     `json:"amount"`
	AmountDisplay  string    `json:"amount_display"`
	Description    string    `json:"description,omitempty"`
	PayerReference string    `json:"payer_reference,omitempty"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
	Reference      string    `json:"reference,omitempty"`
	Taxable        bool      `json:"taxable"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateExpenseRequest struct {
	HorseID       *string `json:"horse_id,omitempty"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Amount        int64   `json:"amount"`
	Description   string  `json:"description"`
	Vendor        string  `json:"vendor"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"`
	Deductible    bool    `json:"deductible"`
	Notes         string  `json:"notes"`
}

type UpdateExpenseRequest struct {
	ID            string  `json:"id"`
	HorseID       *string `json:"horse_id,omitempty"`
	Date          *string `json:"date,omitempty"`
	Category      *string `json:"category,omitempty"`
	Amount        *int64  `json:"amount,omitempty"`
	Description   *string `json:"description,omitempty"`
	Vendor        *string `json:"vendor,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	Deductible    *bool   `json:"deductible,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type ExpenseResponse struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	HorseID       *string   `json:"horse_id,omitempty"`
	Date          string    `json:"date"`
	Category      string    `json:"category"`
	Amount        int64     `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Description   string    `json:"description,omitempty"`
	Vendor        string    `json:"vendor,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	Deductible    bool      `json:"deductible"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateCompetitionRequest struct {
	HorseID    *string `json:"horse_id,omitempty"`
	Date       string  `json:"date"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Discipline string  `json:"discipline"`
	Placement  int     `json:"placement"`
	EntryFee   int64   `json:"entry_fee"`
	PrizeMoney int64   `json:"prize_money"`
	Notes      string  `json:"notes"`
}

type UpdateCompetitionRequest struct {
	ID         string  `json:"id"`
	HorseID    *string `json:"horse_id,omitempty"`
	Date       *string `json:"date,omitempty"`
	Name       *string `json:"name,omitempty"`
	Location   *string `json:"location,omitempty"`
	Discipline *string `json:"discipline,omitempty"`
	Placement  *int    `json:"placement,omitempty"`
	EntryFee   *int64  `json:"entry_fee,omitempty"`
	PrizeMoney *int64  `json:"prize_money,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type CompetitionResponse struct {
	ID                string    `json:"id"`
	TenantID          string    `json:"tenant_id"`
	HorseID           *string   `json:"horse_id,omitempty"`
	Date              string    `json:"date"`
	Name              string    `json:"name"`
	Location          string    `json:"location,omitempty"`
	Discipline        string    `json:"discipline,omitempty"`
	Placement         int       `json:"placement"`
	EntryFee          int64     `json:"entry_fee"`
	PrizeMoney        int64     `json:"prize_money"`
	EntryFeeDisplay   string    `json:"entry_fee_display"`
	PrizeMoneyDisplay string    `json:"prize_money_display"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidHorse    = errors.New("invalid_horse_id")
	ErrInvalidDate     = errors.New("invalid_date")
	ErrInvalidSource   = errors.New("invalid_source")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidName     = errors.New("invalid_name")
	ErrNotFound        = errors.New("not_found")
)

func ParseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(value)
}
