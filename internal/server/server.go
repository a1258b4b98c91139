package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/equiprofile/equiprofile/internal/config"
	"github.com/equiprofile/equiprofile/internal/finance"
	financedomain "github.com/equiprofile/equiprofile/internal/finance/domain"
	"github.com/equiprofile/equiprofile/internal/health"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
	"github.com/equiprofile/equiprofile/internal/horse"
	horsedomain "github.com/equiprofile/equiprofile/internal/horse/domain"
	"github.com/equiprofile/equiprofile/internal/ledger"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	obslogger "github.com/equiprofile/equiprofile/internal/observability/logger"
	obsmetrics "github.com/equiprofile/equiprofile/internal/observability/metrics"
	"github.com/equiprofile/equiprofile/internal/realtime"
	"github.com/equiprofile/equiprofile/internal/report"
	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	"github.com/equiprofile/equiprofile/internal/training"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	horse.Module,
	ledger.Module,
	training.Module,
	health.Module,
	finance.Module,
	report.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log.Named("http")))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	genID       *snowflake.Node
	horseSvc    horsedomain.Service
	ledgerSvc   ledgerdomain.Service
	trainingSvc trainingdomain.Service
	healthSvc   healthdomain.Service
	financeSvc  financedomain.Service
	reportSvc   reportdomain.Service
	liveEvents  *realtime.Hub
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	HorseSvc    horsedomain.Service
	LedgerSvc   ledgerdomain.Service
	TrainingSvc trainingdomain.Service
	HealthSvc   healthdomain.Service
	FinanceSvc  financedomain.Service
	ReportSvc   reportdomain.Service
	LiveEvents  *realtime.Hub `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		horseSvc:    p.HorseSvc,
		ledgerSvc:   p.LedgerSvc,
		trainingSvc: p.TrainingSvc,
		healthSvc:   p.HealthSvc,
		financeSvc:  p.FinanceSvc,
		reportSvc:   p.ReportSvc,
		liveEvents:  p.LiveEvents,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	v1 := s.engine.Group("/v1", s.TenantRequired())

	// -------- Horses --------
	v1.GET("/horses", s.ListHorses)
	v1.POST("/horses", s.CreateHorse)
	v1.GET("/horses/:id", s.GetHorseByID)
	v1.PATCH("/horses/:id", s.UpdateHorse)
	v1.DELETE("/horses/:id", s.DeleteHorse)
	// Not nested under /horses: gin's router rejects a static segment
	// alongside the :id wildcard.
	v1.GET("/activity", s.GetHorseActivity)

	// -------- Finances --------
	v1.GET("/finances/income", s.ListIncome)
	v1.POST("/finances/income", s.CreateIncome)
	v1.PATCH("/finances/income/:id", s.UpdateIncome)
	v1.DELETE("/finances/income/:id", s.DeleteIncome)

	v1.GET("/finances/expenses", s.ListExpenses)
	v1.POST("/finances/expenses", s.CreateExpense)
	v1.PATCH("/finances/expenses/:id", s.UpdateExpense)
	v1.DELETE("/finances/expenses/:id", s.DeleteExpense)

	v1.GET("/finances/stats", s.GetFinanceStats)

	// -------- Competitions --------
	v1.GET("/competitions", s.ListCompetitions)
	v1.POST("/competitions", s.CreateCompetition)
	v1.PATCH("/competitions/:id", s.UpdateCompetition)
	v1.DELETE("/competitions/:id", s.DeleteCompetition)
	v1.GET("/competitions/stats", s.GetCompetitionStats)

	// -------- Training --------
	v1.GET("/training", s.ListTrainingSessions)
	v1.POST("/training", s.CreateTrainingSession)
	v1.PATCH("/training/:id", s.UpdateTrainingSession)
	v1.DELETE("/training/:id", s.DeleteTrainingSession)

	// -------- Health records --------
	v1.GET("/health-records", s.ListHealthRecords)
	v1.POST("/health-records", s.CreateHealthRecord)
	v1.PATCH("/health-records/:id", s.UpdateHealthRecord)
	v1.DELETE("/health-records/:id", s.DeleteHealthRecord)

	// -------- Reports --------
	v1.POST("/reports", s.GenerateReport)
	v1.POST("/reports/export", s.ExportReportCSV)
	v1.GET("/reports", s.ListReportHistory)

	// -------- Realtime --------
	v1.GET("/events/:module", s.StreamModuleEvents)
}
