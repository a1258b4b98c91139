package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/equiprofile/equiprofile/internal/realtime"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   trainingdomain.Repository
	Events realtime.Publisher `optional:"true"`
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   trainingdomain.Repository
	genID  *snowflake.Node
	events realtime.Publisher
}

func New(p Params) trainingdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("training.service"),
		repo:   p.Repo,
		genID:  p.GenID,
		events: p.Events,
	}
}

func (s *Service) Create(ctx context.Context, tenantID snowflake.ID, req trainingdomain.CreateRequest) (*trainingdomain.Response, error) {
	date, err := time.Parse(trainingdomain.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, trainingdomain.ErrInvalidDate
	}
	if req.DurationMinutes < 0 {
		return nil, trainingdomain.ErrInvalidDuration
	}

	horseID, err := parseOptionalHorseID(req.HorseID)
	if err != nil {
		return nil, trainingdomain.ErrInvalidHorse
	}

	now := time.Now().UTC()
	session := &trainingdomain.TrainingSession{
		ID:              s.genID.Generate(),
		TenantID:        tenantID,
		HorseID:         horseID,
		Date:            date,
		Discipline:      strings.TrimSpace(req.Discipline),
		DurationMinutes: req.DurationMinutes,
		Intensity:       strings.TrimSpace(req.Intensity),
		Notes:           strings.TrimSpace(req.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, session); err != nil {
		return nil, err
	}

	resp := toResponse(session)
	s.publish(tenantID, realtime.ActionCreated, resp)
	return resp, nil
}

func (s *Service) List(ctx context.Context, tenantID snowflake.ID, filter trainingdomain.ListFilter) ([]trainingdomain.Response, error) {
	parsed, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.List(ctx, s.db, tenantID, parsed)
	if err != nil {
		return nil, err
	}

	resp := make([]trainingdomain.Response, 0, len(sessions))
	for i := range sessions {
		resp = append(resp, *toResponse(&sessions[i]))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, tenantID snowflake.ID, req trainingdomain.UpdateRequest) (*trainingdomain.Response, error) {
	id, err := trainingdomain.ParseID(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, trainingdomain.ErrInvalidID
	}

	session, err := s.repo.FindByID(ctx, s.db, tenantID, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, trainingdomain.ErrNotFound
	}

	if req.Date != nil {
		date, err := time.Parse(trainingdomain.DateLayout, strings.TrimSpace(*req.Date))
		if err != nil {
			return nil, trainingdomain.ErrInvalidDate
		}
		session.Date = date
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 0 {
			return nil, trainingdomain.ErrInvalidDuration
		}
		session.DurationMinutes = *req.DurationMinutes
	}
	if req.HorseID != nil {
		horseID, err := parseOptionalHorseID(req.HorseID)
		if err != nil {
			return nil, trainingdomain.ErrInvalidHorse
		}
		session.HorseID = horseID
	}
	if req.Discipline != nil {
		session.Discipline = strings.TrimSpace(*req.Discipline)
	}
	if req.Intensity != nil {
		session.Intensity = strings.TrimSpace(*req.Intensity)
	}
	if req.Notes != nil {
		session.Notes = strings.TrimSpace(*req.Notes)
	}

	session.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, session); err != nil {
		return nil, err
	}

	resp := toResponse(session)
	s.publish(tenantID, realtime.ActionUpdated, resp)
	return resp, nil
}

func (s *Service) Delete(ctx context.Context, tenantID snowflake.ID, id string) error {
	sessionID, err := trainingdomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return trainingdomain.ErrInvalidID
	}

	session, err := s.repo.FindByID(ctx, s.db, tenantID, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return trainingdomain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, tenantID, sessionID); err != nil {
		return err
	}

	s.publish(tenantID, realtime.ActionDeleted, map[string]string{"id": sessionID.String()})
	return nil
}

func (s *Service) publish(tenantID snowflake.ID, action string, payload interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(tenantID, realtime.ModuleTraining, realtime.Event{
		Action:  action,
		Payload: payload,
	})
}

func toResponse(session *trainingdomain.TrainingSession) *trainingdomain.Response {
	var horseID *string
	if session.HorseID != nil {
		value := session.HorseID.String()
		horseID = &value
	}
	return &trainingdomain.Response{
		ID:              session.ID.String(),
		TenantID:        session.TenantID.String(),
		HorseID:         horseID,
		Date:            session.Date.Format(trainingdomain.DateLayout),
		Discipline:      session.Discipline,
		DurationMinutes: session.DurationMinutes,
		Intensity:       session.Intensity,
		Notes:           session.Notes,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
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
	id, err := trainingdomain.ParseID(trimmed)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseFilter(filter trainingdomain.ListFilter) (trainingdomain.Filter, error) {
	var parsed trainingdomain.Filter

	if horseID := strings.TrimSpace(filter.HorseID); horseID != "" {
		id, err := trainingdomain.ParseID(horseID)
		if err != nil {
			return parsed, trainingdomain.ErrInvalidHorse
		}
		parsed.HorseID = &id
	}
	if start := strings.TrimSpace(filter.StartDate); start != "" {
		date, err := time.Parse(trainingdomain.DateLayout, start)
		if err != nil {
			return parsed, trainingdomain.ErrInvalidDate
		}
		parsed.StartDate = &date
	}
	if end := strings.TrimSpace(filter.EndDate); end != "" {
		date, err := time.Parse(trainingdomain.DateLayout, end)
		if err != nil {
			return parsed, trainingdomain.ErrInvalidDate
		}
		parsed.EndDate = &date
	}

	return parsed, nil
}
