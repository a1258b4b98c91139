package report

import (
	"github.com/equiprofile/equiprofile/internal/report/repository"
	"github.com/equiprofile/equiprofile/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
