package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Create(ctx context.Context, tenantID snowflake.ID, req CreateRequest) (*Response, error)
	List(ctx context.Context, tenantID snowflake.ID) ([]Response, error)
	GetByID(ctx context.Context, tenantID snowflake.ID, id string) (*Response, error)
	Update(ctx context.Context, tenantID snowflake.ID, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, tenantID snowflake.ID, id string) error
}

type CreateRequest struct {
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

type UpdateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

type Response struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidDate = errors.New("invalid_date")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)

func ParseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(value)
}
