package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Filter struct {
	HorseID    *snowflake.ID
	StartDate  *time.Time
	EndDate    *time.Time
	RecordType string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *HealthRecord) error
	Update(ctx context.Context, db *gorm.DB, record *HealthRecord) error
	Delete(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, id snowflake.ID) (*HealthRecord, error)
	List(ctx context.Context, db *gorm.DB, tenantID snowflake.ID, filter Filter) ([]HealthRecord, error)
}
