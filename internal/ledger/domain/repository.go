package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertIncome(ctx context.Context, db *gorm.DB, record *IncomeRecord) error
	UpdateIncome(ctx context.Context, db *gorm.DB, record *IncomeRecord) error
	DeleteIncome(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error
	FindIncomeByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*IncomeRecord, error)
	ListIncome(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter Filter) ([]IncomeRecord, error)

	InsertExpense(ctx context.Context, db *gorm.DB, record *ExpenseRecord) error
	UpdateExpense(ctx context.Context, db *gorm.DB, record *ExpenseRecord) error
	DeleteExpense(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error
	FindExpenseByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*ExpenseRecord, error)
	ListExpenses(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter Filter) ([]ExpenseRecord, error)

	InsertCompetition(ctx context.Context, db *gorm.DB, record *CompetitionRecord) error
	UpdateCompetition(ctx context.Context, db *gorm.DB, record *CompetitionRecord) error
	DeleteCompetition(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error
	FindCompetitionByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*CompetitionRecord, error)
	ListCompetitions(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter Filter) ([]CompetitionRecord, error)
}
