package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// IncomeSource is the closed set of income classifications.
type IncomeSource string

const (
	IncomeSourceLesson      IncomeSource = "lesson"
	IncomeSourceTraining    IncomeSource = "training"
	IncomeSourceSale        IncomeSource = "sale"
	IncomeSourceStud        IncomeSource = "stud"
	IncomeSourcePrize       IncomeSource = "prize"
	IncomeSourceBoarding    IncomeSource = "boarding"
	IncomeSourceSponsorship IncomeSource = "sponsorship"
	IncomeSourceOther       IncomeSource = "other"
)

var incomeSources = map[IncomeSource]struct{}{
	IncomeSourceLesson:      {},
	IncomeSourceTraining:    {},
	IncomeSourceSale:        {},
	IncomeSourceStud:        {},
	IncomeSourcePrize:       {},
	IncomeSourceBoarding:    {},
	IncomeSourceSponsorship: {},
	IncomeSourceOther:       {},
}

func (s IncomeSource) Valid() bool {
	_, ok := incomeSources[s]
	return ok
}

// ExpenseCategory is the closed set of expense classifications.
type ExpenseCategory string

const (
	ExpenseCategoryFeed        ExpenseCategory = "feed"
	ExpenseCategoryVet         ExpenseCategory = "vet"
	ExpenseCategoryFarrier     ExpenseCategory = "farrier"
	ExpenseCategoryEquipment   ExpenseCategory = "equipment"
	ExpenseCategoryTransport   ExpenseCategory = "transport"
	ExpenseCategoryInsurance   ExpenseCategory = "insurance"
	ExpenseCategoryTraining    ExpenseCategory = "training"
	ExpenseCategoryCompetition ExpenseCategory = "competition"
	ExpenseCategoryBoarding    ExpenseCategory = "boarding"
	ExpenseCategorySupplies    ExpenseCategory = "supplies"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

var expenseCategories = map[ExpenseCategory]struct{}{
	ExpenseCategoryFeed:        {},
	ExpenseCategoryVet:         {},
	ExpenseCategoryFarrier:     {},
	ExpenseCategoryEquipment:   {},
	ExpenseCategoryTransport:   {},
	ExpenseCategoryInsurance:   {},
	ExpenseCategoryTraining:    {},
	ExpenseCategoryCompetition: {},
	ExpenseCategoryBoarding:    {},
	ExpenseCategorySupplies:    {},
	ExpenseCategoryMaintenance: {},
	ExpenseCategoryOther:       {},
}

func (c ExpenseCategory) Valid() bool {
	_, ok := expenseCategories[c]
	return ok
}

// IncomeRecord is a tenant-scoped ledger entry. Amount is integer pence;
// Date is the calendar date the transaction occurred, not creation time.
type IncomeRecord struct {
	ID             snowflake.ID  `gorm:"primaryKey"`
	TenantID       snowflake.ID  `gorm:"column:tenant_id;not null;index"`
	HorseID        *snowflake.ID `gorm:"column:horse_id;index"`
	Date           time.Time     `gorm:"type:date;not null;index"`
	Source         IncomeSource  `gorm:"type:text;not null"`
	Amount         int64         `gorm:"not null"`
	Description    string        `gorm:"type:text;not null;default:''"`
	PayerReference string        `gorm:"type:text;not null;default:''"`
	PaymentMethod  string        `gorm:"type:text;not null;default:''"`
	Reference      string        `gorm:"type:text;not null;default:''"`
	Taxable        bool          `gorm:"not null;default:false"`
	Notes          string        `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (IncomeRecord) TableName() string { return "income_records" }

// ExpenseRecord mirrors IncomeRecord for the expense side of the ledger.
type ExpenseRecord struct {
	ID            snowflake.ID    `gorm:"primaryKey"`
	TenantID      snowflake.ID    `gorm:"column:tenant_id;not null;index"`
	HorseID       *snowflake.ID   `gorm:"column:horse_id;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Category      ExpenseCategory `gorm:"type:text;not null"`
	Amount        int64           `gorm:"not null"`
	Description   string          `gorm:"type:text;not null;default:''"`
	Vendor        string          `gorm:"type:text;not null;default:''"`
	PaymentMethod string          `gorm:"type:text;not null;default:''"`
	Reference     string          `gorm:"type:text;not null;default:''"`
	Deductible    bool            `gorm:"not null;default:false"`
	Notes         string          `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ExpenseRecord) TableName() string { return "expense_records" }

// CompetitionRecord tracks one event entry with its money flows. EntryFee
// and PrizeMoney are both integer pence.
type CompetitionRecord struct {
	ID         snowflake.ID  `gorm:"primaryKey"`
	TenantID   snowflake.ID  `gorm:"column:tenant_id;not null;index"`
	HorseID    *snowflake.ID `gorm:"column:horse_id;index"`
	Date       time.Time     `gorm:"type:date;not null;index"`
	Name       string        `gorm:"type:text;not null"`
	Location   string        `gorm:"type:text;not null;default:''"`
	Discipline string        `gorm:"type:text;not null;default:''"`
	Placement  int           `gorm:"not null;default:0"`
	EntryFee   int64         `gorm:"column:entry_fee;not null;default:0"`
	PrizeMoney int64         `gorm:"column:prize_money;not null;default:0"`
	Notes      string        `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (CompetitionRecord) TableName() string { return "competition_records" }
