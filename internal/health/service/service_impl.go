package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
	"github.com/equiprofile/equiprofile/internal/realtime"
	"github.com/equiprofile/equiprofile/pkg/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   healthdomain.Repository
	Events realtime.Publisher `optional:"true"`
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   healthdomain.Repository
	genID  *snowflake.Node
	events realtime.Publisher
}

func New(p Params) healthdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("health.service"),
		repo:   p.Repo,
		genID:  p.GenID,
		events: p.Events,
	}
}

func (s *Service) Create(ctx context.Context, tenantID snowflake.ID, req healthdomain.CreateRequest) (*healthdomain.Response, error) {
	date, err := time.Parse(healthdomain.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, healthdomain.ErrInvalidDate
	}

	recordType := healthdomain.RecordType(strings.TrimSpace(req.RecordType))
	if !recordType.Valid() {
		return nil, healthdomain.ErrInvalidType
	}

	if req.Cost < 0 {
		return nil, healthdomain.ErrInvalidAmount
	}

	horseID, err := parseOptionalHorseID(req.HorseID)
	if err != nil {
		return nil, healthdomain.ErrInvalidHorse
	}

	nextDue, err := parseOptionalDate(req.NextDueDate)
	if err != nil {
		return nil, healthdomain.ErrInvalidDate
	}

	now := time.Now().UTC()
	record := &healthdomain.HealthRecord{
		ID:          s.genID.Generate(),
		TenantID:    tenantID,
		HorseID:     horseID,
		Date:        date,
		RecordType:  recordType,
		VetName:     strings.TrimSpace(req.VetName),
		Cost:        req.Cost,
		NextDueDate: nextDue,
		Notes:       strings.TrimSpace(req.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toResponse(record)
	s.publish(tenantID, realtime.ActionCreated, resp)
	return resp, nil
}

func (s *Service) List(ctx context.Context, tenantID snowflake.ID, filter healthdomain.ListFilter) ([]healthdomain.Response, error) {
	parsed, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx, s.db, tenantID, parsed)
	if err != nil {
		return nil, err
	}

	resp := make([]healthdomain.Response, 0, len(records))
	for i := range records {
		resp = append(resp, *toResponse(&records[i]))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, tenantID snowflake.ID, req healthdomain.UpdateRequest) (*healthdomain.Response, error) {
	id, err := healthdomain.ParseID(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, healthdomain.ErrInvalidID
	}

	record, err := s.repo.FindByID(ctx, s.db, tenantID, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, healthdomain.ErrNotFound
	}

	if req.Date != nil {
		date, err := time.Parse(healthdomain.DateLayout, strings.TrimSpace(*req.Date))
		if err != nil {
			return nil, healthdomain.ErrInvalidDate
		}
		record.Date = date
	}
	if req.RecordType != nil {
		recordType := healthdomain.RecordType(strings.TrimSpace(*req.RecordType))
		if !recordType.Valid() {
			return nil, healthdomain.ErrInvalidType
		}
		record.RecordType = recordType
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return nil, healthdomain.ErrInvalidAmount
		}
		record.Cost = *req.Cost
	}
	if req.HorseID != nil {
		horseID, err := parseOptionalHorseID(req.HorseID)
		if err != nil {
			return nil, healthdomain.ErrInvalidHorse
		}
		record.HorseID = horseID
	}
	if req.NextDueDate != nil {
		nextDue, err := parseOptionalDate(req.NextDueDate)
		if err != nil {
			return nil, healthdomain.ErrInvalidDate
		}
		record.NextDueDate = nextDue
	}
	if req.VetName != nil {
		record.VetName = strings.TrimSpace(*req.VetName)
	}
	if req.Notes != nil {
		record.Notes = strings.TrimSpace(*req.Notes)
	}

	record.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toResponse(record)
	s.publish(tenantID, realtime.ActionUpdated, resp)
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, tenantID snowflake.ID, id string) error {
	recordID, err := healthdomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return healthdomain.ErrInvalidID
	}

	record, err := s.repo.FindByID(ctx, s.db, tenantID, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return healthdomain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, tenantID, recordID); err != nil {
		return err
	}

	s.publish(tenantID, realtime.ActionDeleted, map[string]string{"id": recordID.String()})
	return nil
}

func (s *Service) publish(tenantID snowflake.ID, action string, payload interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(tenantID, realtime.ModuleHealth, realtime.Event{
		Action:  action,
		Payload: payload,
	})
}

func toResponse(record *healthdomain.HealthRecord) *healthdomain.Response {
	var horseID *string
	if record.HorseID != nil {
		value := record.HorseID.String()
		horseID = &value
	}
	var nextDue *string
	if record.NextDueDate != nil {
		value := record.NextDueDate.Format(healthdomain.DateLayout)
		nextDue = &value
	}
	return &healthdomain.Response{
		ID:          record.ID.String(),
		TenantID:    record.TenantID.String(),
		HorseID:     horseID,
		Date:        record.Date.Format(healthdomain.DateLayout),
		RecordType:  string(record.RecordType),
		VetName:     record.VetName,
		Cost:        record.Cost,
		CostDisplay: money.Format(record.Cost),
		NextDueDate: nextDue,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func parseOptionalHorseID(value *string) (*snowflake.ID, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	id, err := healthdomain.ParseID(trimmed)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(healthdomain.DateLayout, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseFilter(filter healthdomain.ListFilter) (healthdomain.Filter, error) {
	var parsed healthdomain.Filter

	if horseID := strings.TrimSpace(filter.HorseID); horseID != "" {
		id, err := healthdomain.ParseID(horseID)
		if err != nil {
			return parsed, healthdomain.ErrInvalidHorse
		}
		parsed.HorseID = &id
	}
	if start := strings.TrimSpace(filter.StartDate); start != "" {
		date, err := time.Parse(healthdomain.DateLayout, start)
		if err != nil {
			return parsed, healthdomain.ErrInvalidDate
		}
		parsed.StartDate = &date
	}
	if end := strings.TrimSpace(filter.EndDate); end != "" {
		date, err := time.Parse(healthdomain.DateLayout, end)
		if err != nil {
			return parsed, healthdomain.ErrInvalidDate
		}
		parsed.EndDate = &date
	}
	parsed.RecordType = strings.TrimSpace(filter.RecordType)

	return parsed, nil
}
