package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() trainingdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, session *trainingdomain.TrainingSession) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, session *trainingdomain.TrainingSession) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", session.TenantID, session.ID).
		Save(session).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&trainingdomain.TrainingSession{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*trainingdomain.TrainingSession, error) {
	var session trainingdomain.TrainingSession
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter trainingdomain.Filter) ([]trainingdomain.TrainingSession, error) {
	var sessions []trainingdomain.TrainingSession
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
	if err := q.Order("date DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
