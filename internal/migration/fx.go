package migration

import (
	"github.com/equiprofile/equiprofile/internal/config"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
	horsedomain "github.com/equiprofile/equiprofile/internal/horse/domain"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// golang-migrate is wired for postgres; sqlite and mysql dev
			// setups lean on gorm's schema sync instead.
			return conn.AutoMigrate(
				&horsedomain.Horse{},
				&ledgerdomain.IncomeRecord{},
				&ledgerdomain.ExpenseRecord{},
				&ledgerdomain.CompetitionRecord{},
				&trainingdomain.TrainingSession{},
				&healthdomain.HealthRecord{},
				&reportdomain.GeneratedReport{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
