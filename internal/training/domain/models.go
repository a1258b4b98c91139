package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// TrainingSession records one schooling or exercise session for a horse.
type TrainingSession struct {
	ID              snowflake.ID  `gorm:"primaryKey"`
	TenantID        snowflake.ID  `gorm:"column:tenant_id;not null;index"`
	HorseID         *snowflake.ID `gorm:"column:horse_id;index"`
	Date            time.Time     `gorm:"type:date;not null;index"`
	Discipline      string        `gorm:"type:text;not null;default:''"`
	DurationMinutes int           `gorm:"not null;default:0"`
	Intensity       string        `gorm:"type:text;not null;default:''"`
	Notes           string        `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (TrainingSession) TableName() string { return "training_sessions" }
