package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *GeneratedReport) error
	List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID) ([]GeneratedReport, error)
}
