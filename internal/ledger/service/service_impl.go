package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
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
	Repo   ledgerdomain.Repository
	Events realtime.Publisher `optional:"true"`
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   ledgerdomain.Repository
	genID  *snowflake.Node
	events realtime.Publisher
}

func New(p Params) ledgerdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("ledger.service"),
		repo:   p.Repo,
		genID:  p.GenID,
		events: p.Events,
	}
}

func (s *Service) CreateIncome(ctx context.Context, tenantID snowflake.ID, req ledgerdomain.CreateIncomeRequest) (*ledgerdomain.IncomeResponse, error) {
	date, err := parseRequiredDate(req.Date)
	if err != nil {
		return nil, ledgerdomain.ErrInvalidDate
	}

	source := ledgerdomain.IncomeSource(strings.TrimSpace(req.Source))
	if !source.Valid() {
		return nil, ledgerdomain.ErrInvalidSource
	}

	if req.Amount < 0 {
		return nil, ledgerdomain.ErrInvalidAmount
	}

	horseID, err := parseOptionalHorseID(req.HorseID)
	if err != nil {
		return nil, ledgerdomain.ErrInvalidHorse
	}

	now := time.Now().UTC()
	record := &ledgerdomain.IncomeRecord{
		ID:             s.genID.Generate(),
		TenantID:       tenantID,
		HorseID:        horseID,
		Date:           date,
		Source:         source,
		Amount:         req.Amount,
		Description:    strings.TrimSpace(req.Description),
		PayerReference: strings.TrimSpace(req.PayerReference),
		PaymentMethod:  strings.TrimSpace(req.PaymentMethod),
		Reference:      strings.TrimSpace(req.Reference),
		Taxable:        req.Taxable,
		Notes:          strings.TrimSpace(req.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.InsertIncome(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toIncomeResponse(record)
	s.publish(tenantID, realtime.ModuleIncome, realtime.ActionCreated, resp)
	return resp, nil
}

func (s *Service) ListIncome(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) ([]ledgerdomain.IncomeResponse, error) {
	parsed, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListIncome(ctx, s.db, tenantID, parsed)
	if err != nil {
		return nil, err
	}

	resp := make([]ledgerdomain.IncomeResponse, 0, len(records))
	for i := range records {
		resp = append(resp, *toIncomeResponse(&records[i]))
	}
	return resp, nil
}

func (s *Service) UpdateIncome(ctx context.Context, tenantID snowflake.ID, req ledgerdomain.UpdateIncomeRequest) (*ledgerdomain.IncomeResponse, error) {
	id, err := ledgerdomain.ParseID(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, ledgerdomain.ErrInvalidID
	}

	record, err := s.repo.FindIncomeByID(ctx, s.db, tenantID, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ledgerdomain.ErrNotFound
	}

	if req.Date != nil {
		date, err := parseRequiredDate(*req.Date)
		if err != nil {
			return nil, ledgerdomain.ErrInvalidDate
		}
		record.Date = date
	}
	if req.Source != nil {
		source := ledgerdomain.IncomeSource(strings.TrimSpace(*req.Source))
		if !source.Valid() {
			return nil, ledgerdomain.ErrInvalidSource
		}
		record.Source = source
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, ledgerdomain.ErrInvalidAmount
		}
		record.Amount = *req.Amount
	}
	if req.HorseID != nil {
		horseID, err := parseOptionalHorseID(req.HorseID)
		if err != nil {
			return nil, ledgerdomain.ErrInvalidHorse
		}
		record.HorseID = horseID
	}
	if req.Description != nil {
		record.Description = strings.TrimSpace(*req.Description)
	}
	if req.PayerReference != nil {
		record.PayerReference = strings.TrimSpace(*req.PayerReference)
	}
	if req.PaymentMethod != nil {
		record.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}
	if req.Reference != nil {
		record.Reference = strings.TrimSpace(*req.Reference)
	}
	if req.Taxable != nil {
		record.Taxable = *req.Taxable
	}
	if req.Notes != nil {
		record.Notes = strings.TrimSpace(*req.Notes)
	}

	record.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateIncome(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toIncomeResponse(record)
	s.publish(tenantID, realtime.ModuleIncome, realtime.ActionUpdated, resp)
	return resp, nil
}

func (s *Service) DeleteIncome(ctx context.Context, tenantID snowflake.ID, id string) error {
	recordID, err := ledgerdomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return ledgerdomain.ErrInvalidID
	}

	record, err := s.repo.FindIncomeByID(ctx, s.db, tenantID, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return ledgerdomain.ErrNotFound
	}

	if err := s.repo.DeleteIncome(ctx, s.db, tenantID, recordID); err != nil {
		return err
	}

	s.publish(tenantID, realtime.ModuleIncome, realtime.ActionDeleted, map[string]string{"id": recordID.String()})
	return nil
}

func (s *Service) CreateExpense(ctx context.Context, tenantID snowflake.ID, req ledgerdomain.CreateExpenseRequest) (*ledgerdomain.ExpenseResponse, error) {
	date, err := parseRequiredDate(req.Date)
	if err != nil {
		return nil, ledgerdomain.ErrInvalidDate
	}

	category := ledgerdomain.ExpenseCategory(strings.TrimSpace(req.Category))
	if !category.Valid() {
		return nil, ledgerdomain.ErrInvalidCategory
	}

	if req.Amount < 0 {
		return nil, ledgerdomain.ErrInvalidAmount
	}

	horseID, err := parseOptionalHorseID(req.HorseID)
	if err != nil {
		return nil, ledgerdomain.ErrInvalidHorse
	}

	now := time.Now().UTC()
	record := &ledgerdomain.ExpenseRecord{
		ID:            s.genID.Generate(),
		TenantID:      tenantID,
		HorseID:       horseID,
		Date:          date,
		Category:      category,
		Amount:        req.Amount,
		Description:   strings.TrimSpace(req.Description),
		Vendor:        strings.TrimSpace(req.Vendor),
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Reference:     strings.TrimSpace(req.Reference),
		Deductible:    req.Deductible,
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.InsertExpense(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toExpenseResponse(record)
	s.publish(tenantID, realtime.ModuleExpenses, realtime.ActionCreated, resp)
	return resp, nil
}

func (s *Service) ListExpenses(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) ([]ledgerdomain.ExpenseResponse, error) {
	parsed, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListExpenses(ctx, s.db, tenantID, parsed)
	if err != nil {
		return nil, err
	}

	resp := make([]ledgerdomain.ExpenseResponse, 0, len(records))
	for i := range records {
		resp = append(resp, *toExpenseResponse(&records[i]))
	}
	return resp, nil
}

func (s *Service) UpdateExpense(ctx context.Context, tenantID snowflake.ID, req ledgerdomain.UpdateExpenseRequest) (*ledgerdomain.ExpenseResponse, error) {
	id, err := ledgerdomain.ParseID(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, ledgerdomain.ErrInvalidID
	}

	record, err := s.repo.FindExpenseByID(ctx, s.db, tenantID, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ledgerdomain.ErrNotFound
	}

	if req.Date != nil {
		date, err := parseRequiredDate(*req.Date)
		if err != nil {
			return nil, ledgerdomain.ErrInvalidDate
		}
		record.Date = date
	}
	if req.Category != nil {
		category := ledgerdomain.ExpenseCategory(strings.TrimSpace(*req.Category))
		if !category.Valid() {
			return nil, ledgerdomain.ErrInvalidCategory
		}
		record.Category = category
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, ledgerdomain.ErrInvalidAmount
		}
		record.Amount = *req.Amount
	}
	if req.HorseID != nil {
		horseID, err := parseOptionalHorseID(req.HorseID)
		if err != nil {
			return nil, ledgerdomain.ErrInvalidHorse
		}
		record.HorseID = horseID
	}
	if req.Description != nil {
		record.Description = strings.TrimSpace(*req.Description)
	}
	if req.Vendor != nil {
		record.Vendor = strings.TrimSpace(*req.Vendor)
	}
	if req.PaymentMethod != nil {
		record.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}
	if req.Reference != nil {
		record.Reference = strings.TrimSpace(*req.Reference)
	}
	if req.Deductible != nil {
		record.Deductible = *req.Deductible
	}
	if req.Notes != nil {
		record.Notes = strings.TrimSpace(*req.Notes)
	}

	record.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateExpense(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toExpenseResponse(record)
	s.publish(tenantID, realtime.ModuleExpenses, realtime.ActionUpdated, resp)
	return resp, nil
}

func (s *Service) DeleteExpense(ctx context.Context, tenantID snowflake.ID, id string) error {
	recordID, err := ledgerdomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return ledgerdomain.ErrInvalidID
	}

	record, err := s.repo.FindExpenseByID(ctx, s.db, tenantID, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return ledgerdomain.ErrNotFound
	}

	if err := s.repo.DeleteExpense(ctx, s.db, tenantID, recordID); err != nil {
		return err
	}

	s.publish(tenantID, realtime.ModuleExpenses, realtime.ActionDeleted, map[string]string{"id": recordID.String()})
	return nil
}

func (s *Service) CreateCompetition(ctx context.Context, tenantID snowflake.ID, req ledgerdomain.CreateCompetitionRequest) (*ledgerdomain.CompetitionResponse, error) {
	date, err := parseRequiredDate(req.Date)
	if err != nil {
		return nil, ledgerdomain.ErrInvalidDate
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ledgerdomain.ErrInvalidName
	}

	if req.EntryFee < 0 || req.PrizeMoney < 0 {
		return nil, ledgerdomain.ErrInvalidAmount
	}

	horseID, err := parseOptionalHorseID(req.HorseID)
	if err != nil {
		return nil, ledgerdomain.ErrInvalidHorse
	}

	now := time.Now().UTC()
	record := &ledgerdomain.CompetitionRecord{
		ID:         s.genID.Generate(),
		TenantID:   tenantID,
		HorseID:    horseID,
		Date:       date,
		Name:       name,
		Location:   strings.TrimSpace(req.Location),
		Discipline: strings.TrimSpace(req.Discipline),
		Placement:  req.Placement,
		EntryFee:   req.EntryFee,
		PrizeMoney: req.PrizeMoney,
		Notes:      strings.TrimSpace(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.InsertCompetition(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toCompetitionResponse(record)
	s.publish(tenantID, realtime.ModuleCompetitions, realtime.ActionCreated, resp)
	return resp, nil
}

func (s *Service) ListCompetitions(ctx context.Context, tenantID snowflake.ID, filter ledgerdomain.ListFilter) ([]ledgerdomain.CompetitionResponse, error) {
	parsed, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListCompetitions(ctx, s.db, tenantID, parsed)
	if err != nil {
		return nil, err
	}

	resp := make([]ledgerdomain.CompetitionResponse, 0, len(records))
	for i := range records {
		resp = append(resp, *toCompetitionResponse(&records[i]))
	}
	return resp, nil
}

func (s *Service) UpdateCompetition(ctx context.Context, tenantID snowflake.ID, req ledgerdomain.UpdateCompetitionRequest) (*ledgerdomain.CompetitionResponse, error) {
	id, err := ledgerdomain.ParseID(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, ledgerdomain.ErrInvalidID
	}

	record, err := s.repo.FindCompetitionByID(ctx, s.db, tenantID, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ledgerdomain.ErrNotFound
	}

	if req.Date != nil {
		date, err := parseRequiredDate(*req.Date)
		if err != nil {
			return nil, ledgerdomain.ErrInvalidDate
		}
		record.Date = date
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ledgerdomain.ErrInvalidName
		}
		record.Name = name
	}
	if req.EntryFee != nil {
		if *req.EntryFee < 0 {
			return nil, ledgerdomain.ErrInvalidAmount
		}
		record.EntryFee = *req.EntryFee
	}
	if req.PrizeMoney != nil {
		if *req.PrizeMoney < 0 {
			return nil, ledgerdomain.ErrInvalidAmount
		}
		record.PrizeMoney = *req.PrizeMoney
	}
	if req.HorseID != nil {
		horseID, err := parseOptionalHorseID(req.HorseID)
		if err != nil {
			return nil, ledgerdomain.ErrInvalidHorse
		}
		record.HorseID = horseID
	}
	if req.Location != nil {
		record.Location = strings.TrimSpace(*req.Location)
	}
	if req.Discipline != nil {
		record.Discipline = strings.TrimSpace(*req.Discipline)
	}
	if req.Placement != nil {
		record.Placement = *req.Placement
	}
	if req.Notes != nil {
		record.Notes = strings.TrimSpace(*req.Notes)
	}

	record.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateCompetition(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toCompetitionResponse(record)
	s.publish(tenantID, realtime.ModuleCompetitions, realtime.ActionUpdated, resp)
	return resp, nil
}

func (s *Service) DeleteCompetition(ctx context.Context, tenantID snowflake.ID, id string) error {
	recordID, err := ledgerdomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return ledgerdomain.ErrInvalidID
	}

	record, err := s.repo.FindCompetitionByID(ctx, s.db, tenantID, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return ledgerdomain.ErrNotFound
	}

	if err := s.repo.DeleteCompetition(ctx, s.db, tenantID, recordID); err != nil {
		return err
	}

	s.publish(tenantID, realtime.ModuleCompetitions, realtime.ActionDeleted, map[string]string{"id": recordID.String()})
	return nil
}

func (s *Service) publish(tenantID snowflake.ID, module, action string, payload interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(tenantID, module, realtime.Event{
		Action:  action,
		Payload: payload,
	})
}

func toIncomeResponse(r *ledgerdomain.IncomeRecord) *ledgerdomain.IncomeResponse {
	return &ledgerdomain.IncomeResponse{
		ID:             r.ID.String(),
		TenantID:       r.TenantID.String(),
		HorseID:        horseIDString(r.HorseID),
		Date:           r.Date.Format(ledgerdomain.DateLayout),
		Source:         string(r.Source),
		Amount:         r.Amount,
		AmountDisplay:  money.Format(r.Amount),
		Description:    r.Description,
		PayerReference: r.PayerReference,
		PaymentMethod:  r.PaymentMethod,
		Reference:      r.Reference,
		Taxable:        r.Taxable,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toExpenseResponse(r *ledgerdomain.ExpenseRecord) *ledgerdomain.ExpenseResponse {
	return &ledgerdomain.ExpenseResponse{
		ID:            r.ID.String(),
		TenantID:      r.TenantID.String(),
		HorseID:       horseIDString(r.HorseID),
		Date:          r.Date.Format(ledgerdomain.DateLayout),
		Category:      string(r.Category),
		Amount:        r.Amount,
		AmountDisplay: money.Format(r.Amount),
		Description:   r.Description,
		Vendor:        r.Vendor,
		PaymentMethod: r.PaymentMethod,
		Reference:     r.Reference,
		Deductible:    r.Deductible,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toCompetitionResponse(r *ledgerdomain.CompetitionRecord) *ledgerdomain.CompetitionResponse {
	return &ledgerdomain.CompetitionResponse{
		ID:                r.ID.String(),
		TenantID:          r.TenantID.String(),
		HorseID:           horseIDString(r.HorseID),
		Date:              r.Date.Format(ledgerdomain.DateLayout),
		Name:              r.Name,
		Location:          r.Location,
		Discipline:        r.Discipline,
		Placement:         r.Placement,
		EntryFee:          r.EntryFee,
		PrizeMoney:        r.PrizeMoney,
		EntryFeeDisplay:   money.Format(r.EntryFee),
		PrizeMoneyDisplay: money.Format(r.PrizeMoney),
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func horseIDString(id *snowflake.ID) *string {
	if id == nil {
		return nil
	}
	value := id.String()
	return &value
}

func parseRequiredDate(value string) (time.Time, error) {
	return time.Parse(ledgerdomain.DateLayout, strings.TrimSpace(value))
}

func parseOptionalHorseID(value *string) (*snowflake.ID, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	id, err := ledgerdomain.ParseID(trimmed)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseFilter(filter ledgerdomain.ListFilter) (ledgerdomain.Filter, error) {
	var parsed ledgerdomain.Filter

	if horseID := strings.TrimSpace(filter.HorseID); horseID != "" {
		id, err := ledgerdomain.ParseID(horseID)
		if err != nil {
			return parsed, ledgerdomain.ErrInvalidHorse
		}
		parsed.HorseID = &id
	}
	if start := strings.TrimSpace(filter.StartDate); start != "" {
		date, err := time.Parse(ledgerdomain.DateLayout, start)
		if err != nil {
			return parsed, ledgerdomain.ErrInvalidDate
		}
		parsed.StartDate = &date
	}
	if end := strings.TrimSpace(filter.EndDate); end != "" {
		date, err := time.Parse(ledgerdomain.DateLayout, end)
		if err != nil {
			return parsed, ledgerdomain.ErrInvalidDate
		}
		parsed.EndDate = &date
	}
	parsed.Category = strings.TrimSpace(filter.Category)

	return parsed, nil
}
