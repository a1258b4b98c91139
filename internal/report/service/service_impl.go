package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/equiprofile/equiprofile/internal/config"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
	horsedomain "github.com/equiprofile/equiprofile/internal/horse/domain"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	"github.com/equiprofile/equiprofile/internal/report/compiler"
	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	"github.com/equiprofile/equiprofile/internal/report/render"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"github.com/equiprofile/equiprofile/pkg/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Cfg      config.Config
	Repo     reportdomain.Repository
	Ledger   ledgerdomain.Service
	Training trainingdomain.Service
	Health   healthdomain.Service
	Horses   horsedomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     reportdomain.Repository
	ledger   ledgerdomain.Service
	training trainingdomain.Service
	health   healthdomain.Service
	horses   horsedomain.Service
	timeout  time.Duration
}

func New(p Params) reportdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("report.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		ledger:   p.Ledger,
		training: p.Training,
		health:   p.Health,
		horses:   p.Horses,
		timeout:  time.Duration(p.Cfg.ReportTimeout) * time.Second,
	}
}

func (s *Service) Generate(ctx context.Context, tenantID snowflake.ID, desc reportdomain.Descriptor) (*reportdomain.Artifact, error) {
	doc, reportType, horseID, err := s.prepare(ctx, tenantID, desc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	c := compiler.New(s.log)
	artifact, err := c.Run(ctx, reportType, doc, desc.IncludeSummary, desc.IncludeDetails,
		s.sourcesFor(reportType, tenantID, desc), render.PDF)
	if err != nil {
		s.log.Error("report generation failed",
			zap.String("tenant_id", tenantID.String()),
			zap.String("report_type", string(reportType)),
			zap.Error(err),
		)
		return nil, reportdomain.ErrReportGeneration
	}

	if err := s.audit(ctx, tenantID, reportType, horseID, doc); err != nil {
		return nil, err
	}

	return &reportdomain.Artifact{
		Filename: render.PDFFilename(string(reportType), doc.GeneratedAt),
		MimeType: render.PDFMimeType,
		Bytes:    artifact,
	}, nil
}

func (s *Service) ExportCSV(ctx context.Context, tenantID snowflake.ID, desc reportdomain.Descriptor) (*reportdomain.Export, error) {
	// CSV artifacts are purely tabular: detail rows are always fetched and
	// the summary stage is skipped rather than fetched and discarded.
	desc.IncludeSummary = false
	desc.IncludeDetails = true

	doc, reportType, horseID, err := s.prepare(ctx, tenantID, desc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	c := compiler.New(s.log)
	artifact, err := c.Run(ctx, reportType, doc, desc.IncludeSummary, desc.IncludeDetails,
		s.sourcesFor(reportType, tenantID, desc),
		func(doc *compiler.Document) ([]byte, error) {
			out, err := render.CSV(doc)
			if err != nil {
				return nil, err
			}
			return []byte(out), nil
		})
	if err != nil {
		s.log.Error("csv export failed",
			zap.String("tenant_id", tenantID.String()),
			zap.String("report_type", string(reportType)),
			zap.Error(err),
		)
		return nil, reportdomain.ErrReportGeneration
	}

	if err := s.audit(ctx, tenantID, reportType, horseID, doc); err != nil {
		return nil, err
	}

	return &reportdomain.Export{
		CSV:      string(artifact),
		Filename: render.CSVFilename(string(reportType), doc.GeneratedAt),
		MimeType: render.CSVMimeType,
	}, nil
}

func (s *Service) History(ctx context.Context, tenantID snowflake.ID) ([]reportdomain.HistoryEntry, error) {
	records, err := s.repo.List(ctx, s.db, tenantID)
	if err != nil {
		return nil, err
	}

	entries := make([]reportdomain.HistoryEntry, 0, len(records))
	for _, record := range records {
		var horseID *string
		if record.HorseID != nil {
			value := record.HorseID.String()
			horseID = &value
		}
		entries = append(entries, reportdomain.HistoryEntry{
			ID:          record.ID.String(),
			ReportType:  record.ReportType,
			HorseID:     horseID,
			Title:       record.Title,
			GeneratedAt: record.GeneratedAt,
		})
	}
	return entries, nil
}

// prepare validates the descriptor and assembles the document shell:
// title, metadata block and generation stamp.
func (s *Service) prepare(ctx context.Context, tenantID snowflake.ID, desc reportdomain.Descriptor) (*compiler.Document, reportdomain.ReportType, *snowflake.ID, error) {
	reportType := reportdomain.ReportType(strings.TrimSpace(desc.ReportType))
	if !reportType.Valid() {
		return nil, "", nil, reportdomain.ErrInvalidType
	}

	if err := validateDate(desc.StartDate); err != nil {
		return nil, "", nil, err
	}
	if err := validateDate(desc.EndDate); err != nil {
		return nil, "", nil, err
	}

	horseName := "All Horses"
	var horseID *snowflake.ID
	if desc.HorseID != nil && strings.TrimSpace(*desc.HorseID) != "" {
		id, err := reportdomain.ParseID(strings.TrimSpace(*desc.HorseID))
		if err != nil {
			return nil, "", nil, reportdomain.ErrInvalidHorse
		}
		horse, err := s.horses.GetByID(ctx, tenantID, id.String())
		if err != nil {
			return nil, "", nil, err
		}
		horseID = &id
		horseName = horse.Name
	}

	now := time.Now().UTC()
	doc := &compiler.Document{
		Title:       titleFor(reportType),
		GeneratedAt: now,
		GeneratedBy: generatedBy(ctx, now),
		Meta: []compiler.SummaryField{
			{Label: "Generated", Value: now.Format("2 Jan 2006 15:04 UTC")},
			{Label: "Horse", Value: horseName},
			{Label: "Period", Value: periodLabel(desc.StartDate, desc.EndDate)},
		},
	}
	return doc, reportType, horseID, nil
}

func (s *Service) audit(ctx context.Context, tenantID snowflake.ID, reportType reportdomain.ReportType, horseID *snowflake.ID, doc *compiler.Document) error {
	record := &reportdomain.GeneratedReport{
		ID:          s.genID.Generate(),
		TenantID:    tenantID,
		ReportType:  string(reportType),
		HorseID:     horseID,
		Title:       doc.Title,
		GeneratedAt: doc.GeneratedAt,
	}
	if err := s.repo.Insert(ctx, s.db, record); err != nil {
		return err
	}

	s.log.Info("report generated",
		zap.String("tenant_id", tenantID.String()),
		zap.String("report_type", string(reportType)),
		zap.String("report_id", record.ID.String()),
	)
	return nil
}

func validateDate(value *string) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	if _, err := time.Parse(reportdomain.DateLayout, strings.TrimSpace(*value)); err != nil {
		return reportdomain.ErrInvalidDate
	}
	return nil
}

func periodLabel(start, end *string) string {
	from, to := "beginning", "today"
	if start != nil && strings.TrimSpace(*start) != "" {
		from = strings.TrimSpace(*start)
	}
	if end != nil && strings.TrimSpace(*end) != "" {
		to = strings.TrimSpace(*end)
	}
	return from + " to " + to
}

func generatedBy(ctx context.Context, now time.Time) string {
	stamp := "Generated by EquiProfile on " + now.Format("2 Jan 2006")
	if actor := tenantctx.Actor(ctx); actor != "" {
		stamp += " for " + actor
	}
	return stamp
}

// titleFor turns a report type into its display title,
// e.g. "Cost Analysis Report".
func titleFor(reportType reportdomain.ReportType) string {
	words := strings.Split(string(reportType), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	title := strings.Join(words, " ")
	if !strings.HasSuffix(title, "Report") {
		title += " Report"
	}
	return title
}
