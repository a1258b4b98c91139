package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() ledgerdomain.Repository {
	return &repo{}
}

func applyFilter(q *gorm.DB, filter ledgerdomain.Filter, categoryColumn string) *gorm.DB {
	if filter.HorseID != nil {
		q = q.Where("horse_id = ?", *filter.HorseID)
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	if filter.Category != "" && categoryColumn != "" {
		q = q.Where(categoryColumn+" = ?", filter.Category)
	}
	return q
}

func (r *repo) InsertIncome(ctx context.Context, db *gorm.DB, record *ledgerdomain.IncomeRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) UpdateIncome(ctx context.Context, db *gorm.DB, record *ledgerdomain.IncomeRecord) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", record.TenantID, record.ID).
		Save(record).Error
}

func (r *repo) DeleteIncome(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&ledgerdomain.IncomeRecord{}).Error
}

func (r *repo) FindIncomeByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*ledgerdomain.IncomeRecord, error) {
	var record ledgerdomain.IncomeRecord
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repo) ListIncome(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter ledgerdomain.Filter) ([]ledgerdomain.IncomeRecord, error) {
	var records []ledgerdomain.IncomeRecord
	q := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	q = applyFilter(q, filter, "source")
	if err := q.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) InsertExpense(ctx context.Context, db *gorm.DB, record *ledgerdomain.ExpenseRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) UpdateExpense(ctx context.Context, db *gorm.DB, record *ledgerdomain.ExpenseRecord) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", record.TenantID, record.ID).
		Save(record).Error
}

func (r *repo) DeleteExpense(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&ledgerdomain.ExpenseRecord{}).Error
}

func (r *repo) FindExpenseByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*ledgerdomain.ExpenseRecord, error) {
	var record ledgerdomain.ExpenseRecord
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repo) ListExpenses(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter ledgerdomain.Filter) ([]ledgerdomain.ExpenseRecord, error) {
	var records []ledgerdomain.ExpenseRecord
	q := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	q = applyFilter(q, filter, "category")
	if err := q.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) InsertCompetition(ctx context.Context, db *gorm.DB, record *ledgerdomain.CompetitionRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) UpdateCompetition(ctx context.Context, db *gorm.DB, record *ledgerdomain.CompetitionRecord) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", record.TenantID, record.ID).
		Save(record).Error
}

func (r *repo) DeleteCompetition(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&ledgerdomain.CompetitionRecord{}).Error
}

func (r *repo) FindCompetitionByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*ledgerdomain.CompetitionRecord, error) {
	var record ledgerdomain.CompetitionRecord
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repo) ListCompetitions(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter ledgerdomain.Filter) ([]ledgerdomain.CompetitionRecord, error) {
	var records []ledgerdomain.CompetitionRecord
	q := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	q = applyFilter(q, filter, "discipline")
	if err := q.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
