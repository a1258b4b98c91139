package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Horse is a directory entry owned by one tenant. The directory order
// (creation order) is authoritative for per-horse comparisons.
type Horse struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	TenantID    snowflake.ID `gorm:"column:tenant_id;not null;index"`
	Name        string       `gorm:"type:text;not null"`
	Breed       string       `gorm:"type:text;not null;default:''"`
	DateOfBirth *time.Time   `gorm:"type:date"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Horse) TableName() string { return "horses" }
