package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() reportdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *reportdomain.GeneratedReport) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID) ([]reportdomain.GeneratedReport, error) {
	var records []reportdomain.GeneratedReport
	err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("generated_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
