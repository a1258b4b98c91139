package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// RecordType is the closed set of health record classifications.
type RecordType string

const (
	RecordTypeVaccination RecordType = "vaccination"
	RecordTypeDeworming   RecordType = "deworming"
	RecordTypeDental      RecordType = "dental"
	RecordTypeFarrier     RecordType = "farrier"
	RecordTypeVetVisit    RecordType = "vet_visit"
	RecordTypeMedication  RecordType = "medication"
	RecordTypeInjury      RecordType = "injury"
	RecordTypeOther       RecordType = "other"
)

var recordTypes = map[RecordType]struct{}{
	RecordTypeVaccination: {},
	RecordTypeDeworming:   {},
	RecordTypeDental:      {},
	RecordTypeFarrier:     {},
	RecordTypeVetVisit:    {},
	RecordTypeMedication:  {},
	RecordTypeInjury:      {},
	RecordTypeOther:       {},
}

func (t RecordType) Valid() bool {
	_, ok := recordTypes[t]
	return ok
}

// HealthRecord is one veterinary or care event. Cost is integer pence.
type HealthRecord struct {
	ID          snowflake.ID  `gorm:"primaryKey"`
	TenantID    snowflake.ID  `gorm:"column:tenant_id;not null;index"`
	HorseID     *snowflake.ID `gorm:"column:horse_id;index"`
	Date        time.Time     `gorm:"type:date;not null;index"`
	RecordType  RecordType    `gorm:"column:record_type;type:text;not null"`
	VetName     string        `gorm:"column:vet_name;type:text;not null;default:''"`
	Cost        int64         `gorm:"not null;default:0"`
	NextDueDate *time.Time    `gorm:"column:next_due_date;type:date"`
	Notes       string        `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (HealthRecord) TableName() string { return "health_records" }
