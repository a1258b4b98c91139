package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	horsedomain "github.com/equiprofile/equiprofile/internal/horse/domain"
	"github.com/equiprofile/equiprofile/internal/realtime"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   horsedomain.Repository
	Events realtime.Publisher `optional:"true"`
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   horsedomain.Repository
	genID  *snowflake.Node
	events realtime.Publisher
}

func New(p Params) horsedomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("horse.service"),
		repo:   p.Repo,
		genID:  p.GenID,
		events: p.Events,
	}
}

func (s *Service) Create(ctx context.Context, tenantID snowflake.ID, req horsedomain.CreateRequest) (*horsedomain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, horsedomain.ErrInvalidName
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, horsedomain.ErrInvalidDate
	}

	now := time.Now().UTC()
	h := &horsedomain.Horse{
		ID:          s.genID.Generate(),
		TenantID:    tenantID,
		Name:        name,
		Breed:       strings.TrimSpace(req.Breed),
		DateOfBirth: dob,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, h); err != nil {
		return nil, err
	}

	resp := toResponse(h)
	s.publish(tenantID, realtime.ActionCreated, resp)
	return resp, nil
}

func (s *Service) List(ctx context.Context, tenantID snowflake.ID) ([]horsedomain.Response, error) {
	items, err := s.repo.List(ctx, s.db, tenantID)
	if err != nil {
		return nil, err
	}

	resp := make([]horsedomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, tenantID snowflake.ID, id string) (*horsedomain.Response, error) {
	horseID, err := horsedomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return nil, horsedomain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, tenantID, horseID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, horsedomain.ErrNotFound
	}
	return toResponse(item), nil
}

func (s *Service) Update(ctx context.Context, tenantID snowflake.ID, req horsedomain.UpdateRequest) (*horsedomain.Response, error) {
	horseID, err := horsedomain.ParseID(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, horsedomain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, tenantID, horseID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, horsedomain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, horsedomain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Breed != nil {
		item.Breed = strings.TrimSpace(*req.Breed)
	}
	if req.DateOfBirth != nil {
		dob, err := parseOptionalDate(req.DateOfBirth)
		if err != nil {
			return nil, horsedomain.ErrInvalidDate
		}
		item.DateOfBirth = dob
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	s.publish(tenantID, realtime.ActionUpdated, resp)
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, tenantID snowflake.ID, id string) error {
	horseID, err := horsedomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return horsedomain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, tenantID, horseID)
	if err != nil {
		return err
	}
	if item == nil {
		return horsedomain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, tenantID, horseID); err != nil {
		return err
	}

	s.publish(tenantID, realtime.ActionDeleted, map[string]string{"id": horseID.String()})
	return nil
}

func (s *Service) publish(tenantID snowflake.ID, action string, payload interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(tenantID, realtime.ModuleHorses, realtime.Event{
		Action:  action,
		Payload: payload,
	})
}

func toResponse(h *horsedomain.Horse) *horsedomain.Response {
	var dob *string
	if h.DateOfBirth != nil {
		formatted := h.DateOfBirth.Format(dateLayout)
		dob = &formatted
	}
	return &horsedomain.Response{
		ID:          h.ID.String(),
		TenantID:    h.TenantID.String(),
		Name:        h.Name,
		Breed:       h.Breed,
		DateOfBirth: dob,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
