package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, horse *Horse) error
	Update(ctx context.Context, db *gorm.DB, horse *Horse) error
	Delete(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*Horse, error)
	List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID) ([]Horse, error)
}
