package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	horsedomain "github.com/equiprofile/equiprofile/internal/horse/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() horsedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, h *horsedomain.Horse) error {
	return db.WithContext(ctx).Create(h).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, h *horsedomain.Horse) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", h.TenantID, h.ID).
		Save(h).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&horsedomain.Horse{}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*horsedomain.Horse, error) {
	var horse horsedomain.Horse
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&horse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &horse, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID) ([]horsedomain.Horse, error) {
	var horses []horsedomain.Horse
	err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&horses).Error
	if err != nil {
		return nil, err
	}
	return horses, nil
}
