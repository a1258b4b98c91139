package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() healthdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *healthdomain.HealthRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, record *healthdomain.HealthRecord) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", record.TenantID, record.ID).
		Save(record).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&healthdomain.HealthRecord{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*healthdomain.HealthRecord, error) {
	var record healthdomain.HealthRecord
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

func (r *repo) List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter healthdomain.Filter) ([]healthdomain.HealthRecord, error) {
	var records []healthdomain.HealthRecord
	q := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.HorseID != nil {
		q = q.Where("horse_id = ?", *filter.HorseID)
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	if filter.RecordType != "" {
		q = q.Where("record_type = ?", filter.RecordType)
	}
	if err := q.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
