package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

const DateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, tenantID snowflake.ID, req CreateRequest) (*Response, error)
	List(ctx context.Context, tenantID snowflake.ID, filter ListFilter) ([]Response, error)
	Update(ctx context.Context, tenantID snowflake.ID, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, tenantID snowflake.ID, id string) error
}

type ListFilter struct {
	HorseID    string
	StartDate  string
	EndDate    string
	RecordType string
}

type CreateRequest struct {
	HorseID     *string `json:"horse_id,omitempty"`
	Date        string  `json:"date"`
	RecordType  string  `json:"record_type"`
	VetName     string  `json:"vet_name"`
	Cost        int64   `json:"cost"`
	NextDueDate *string `json:"next_due_date,omitempty"`
	Notes       string  `json:"notes"`
}

type UpdateRequest struct {
	ID          string  `json:"id"`
	HorseID     *string `json:"horse_id,omitempty"`
	Date        *string `json:"date,omitempty"`
	RecordType  *string `json:"record_type,omitempty"`
	VetName     *string `json:"vet_name,omitempty"`
	Cost        *int64  `json:"cost,omitempty"`
	NextDueDate *string `json:"next_due_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type Response struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	HorseID     *string   `json:"horse_id,omitempty"`
	Date        string    `json:"date"`
	RecordType  string    `json:"record_type"`
	VetName     string    `json:"vet_name,omitempty"`
	Cost        int64     `json:"cost"`
	CostDisplay string    `json:"cost_display"`
	NextDueDate *string   `json:"next_due_date,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidHorse  = errors.New("invalid_horse_id")
	ErrInvalidDate   = errors.New("invalid_date")
	ErrInvalidType   = errors.New("invalid_record_type")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrNotFound      = errors.New("not_found")
)

func ParseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(value)
}
